package view

// Package view defines the fixed set of SPA views the bootstrap decision
// selects between. The SPA owns rendering; this service owns which view
// a given session is entitled to land on.

import "fmt"

// View names one screen of the single-page app.
type View string

const (
	Landing        View = "landing"
	Register       View = "register"
	Feed           View = "feed"
	CreatePost     View = "create-post"
	Users          View = "users"
	UserView       View = "user-view"
	Profile        View = "profile"
	AdminDashboard View = "admin-dashboard"
	// ProfileRequired is the terminal error screen shown when a session
	// is authenticated but no profile decision could be made. The
	// bootstrap never leaves a session here on purpose; it exists so the
	// SPA has a rendering for the inconsistent case.
	ProfileRequired View = "profile-required"
)

// Parse validates a view name coming from the SPA.
func Parse(s string) (View, error) {
	v := View(s)
	switch v {
	case Landing, Register, Feed, CreatePost, Users, UserView, Profile,
		AdminDashboard, ProfileRequired:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view %q", s)
	}
}

// PromoteOnProfile applies the landing/register promotion rule: once a
// profile is confirmed, the two pre-profile views advance to the feed
// and every other view is kept as the user left it.
func PromoteOnProfile(current View) View {
	if current == Landing || current == Register || current == "" {
		return Feed
	}
	return current
}

// RequiresProfile reports whether a view is only reachable with a
// confirmed profile.
func (v View) RequiresProfile() bool {
	switch v {
	case Landing, Register, ProfileRequired:
		return false
	default:
		return true
	}
}

// RequiresAdmin reports whether a view is restricted to admin sessions.
func (v View) RequiresAdmin() bool { return v == AdminDashboard }
