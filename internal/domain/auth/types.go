package auth

// Package auth contains domain-level types for authentication and session
// bootstrap. It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Intent is the user's declared reason for authenticating. It
// disambiguates the two identical "no profile" outcomes of the profile
// probe: signup proceeds to registration, login is refused.
type Intent string

const (
	// IntentNone means no explicit login/signup action was taken in this
	// session (e.g., a resumed session after a restart). The bootstrap
	// treats it like IntentLogin: intent never survives a reload.
	IntentNone   Intent = ""
	IntentLogin  Intent = "login"
	IntentSignup Intent = "signup"
)

// IsSignup reports whether the intent is an explicit signup.
func (i Intent) IsSignup() bool { return i == IntentSignup }

// State names a position in the session bootstrap state machine.
type State string

const (
	StateUninitialized          State = "uninitialized"
	StateInitializing           State = "initializing"
	StateAnonymous              State = "anonymous"
	StateAuthenticatedNoActor   State = "authenticated_no_actor"
	StateAuthenticatedWithActor State = "authenticated_with_actor"
	StateAwaitingProfileCheck   State = "awaiting_profile_check"
	StateRegistering            State = "registering"
	StateReady                  State = "ready"
	StateProfileMissing         State = "profile_missing_on_login"
	StateError                  State = "error"
)

// Steady reports whether the state is one the app can rest in between
// user actions. All other states are transitional and must resolve
// before a bootstrap call returns.
func (s State) Steady() bool {
	switch s {
	case StateAnonymous, StateRegistering, StateReady:
		return true
	default:
		return false
	}
}

// Identity represents the authenticated principal returned by an IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	Principal string // stable caller identifier (e.g., sub or principal text)
	FirstName string
	LastName  string
	Email     string
	Groups    []string
	ExpiresAt time.Time // absolute expiry from IdP token
}

// Session is the server-side record persisted for an authenticated user.
// ID is an opaque session identifier. Only the bootstrap service mutates
// a Session; handlers and views read it.
type Session struct {
	ID        string `json:"id"`
	Principal string `json:"principal"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Intent    Intent `json:"intent"`
	State     State  `json:"state"`

	// Generation increases on every login completed within this session
	// record. Async probe results carry the generation they were issued
	// under and are discarded when it no longer matches.
	Generation uint64 `json:"generation"`

	HasProfile bool      `json:"has_profile"`
	IsAdmin    bool      `json:"is_admin"`
	Username   string    `json:"username,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }

// Authenticated reports whether the session carries a principal.
func (s Session) Authenticated() bool { return s.Principal != "" }
