package profile

// Package profile contains the user-profile domain type and the single
// normalization function for the backend's optional-profile wire
// encodings. Every consumer of an optional profile value goes through
// Normalize; nothing else in the codebase inspects the raw shapes.

import (
	"encoding/json"
	"fmt"
)

// Profile is the backend-side user record keyed by principal.
type Profile struct {
	UserID     string  `json:"user_id"`
	Username   string  `json:"username"`
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	ProfilePic *string `json:"profile_pic,omitempty"`
	Location   *string `json:"location,omitempty"`
	Website    *string `json:"website,omitempty"`
}

// Valid reports whether the profile carries a usable identifier.
// A decoded object without a user_id counts as absent, not as a
// malformed profile.
func (p Profile) Valid() bool { return p.UserID != "" }

// Option is the tagged result of normalizing an optional profile value.
// The zero value is Absent.
type Option struct {
	present bool
	profile Profile
}

// Present reports whether a valid profile was found.
func (o Option) Present() bool { return o.present }

// Get returns the profile and whether it is present.
func (o Option) Get() (Profile, bool) { return o.profile, o.present }

// MustGet returns the profile; it panics when absent. Callers check
// Present first.
func (o Option) MustGet() Profile {
	if !o.present {
		panic("profile: MustGet on absent option")
	}
	return o.profile
}

// Some wraps a profile in a present Option. Invalid profiles normalize
// to Absent so the presence rule holds regardless of construction path.
func Some(p Profile) Option {
	if !p.Valid() {
		return Option{}
	}
	return Option{present: true, profile: p}
}

// None is the absent Option.
func None() Option { return Option{} }

// Normalize maps the backend's optional-profile wire value onto an
// Option. The backend encodes option<user> in three shapes depending on
// the call path:
//
//	[{...}]  singleton container holding the profile
//	[]       empty container
//	{...}    bare object (some gateways unwrap the option)
//
// plus JSON null for absence. Presence requires a decodable object with
// a non-empty user_id; anything else is absence, including scalar
// values a buggy gateway might emit. Only a container or object that
// fails to decode is an error, since that points at a transport fault
// rather than a missing account.
func Normalize(raw json.RawMessage) (Option, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return None(), nil
	}

	switch raw[0] {
	case '[':
		var container []Profile
		if err := json.Unmarshal(raw, &container); err != nil {
			return None(), fmt.Errorf("decode optional profile container: %w", err)
		}
		if len(container) == 0 {
			return None(), nil
		}
		return Some(container[0]), nil
	case '{':
		var p Profile
		if err := json.Unmarshal(raw, &p); err != nil {
			return None(), fmt.Errorf("decode bare profile object: %w", err)
		}
		return Some(p), nil
	default:
		return None(), nil
	}
}
