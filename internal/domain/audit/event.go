package audit

// Package audit defines the auth-event record the gateway keeps for the
// admin dashboard. Events describe bootstrap outcomes, never request
// bodies or tokens.

import "time"

// Outcome classifies how a bootstrap step resolved.
type Outcome string

const (
	OutcomeLoginSucceeded        Outcome = "login_succeeded"
	OutcomeLoginNoProfile        Outcome = "login_no_profile"
	OutcomeLoginProbeFailed      Outcome = "login_probe_failed"
	OutcomeSignupStarted         Outcome = "signup_started"
	OutcomeSignupExistingProfile Outcome = "signup_existing_profile"
	OutcomeRegistrationConfirmed Outcome = "registration_confirmed"
	OutcomeRegistrationMissing   Outcome = "registration_missing"
	OutcomeLogout                Outcome = "logout"
	OutcomeAccountDeleted        Outcome = "account_deleted"
)

// AuthEvent is one recorded bootstrap outcome.
type AuthEvent struct {
	ID        string    `json:"id"`
	Principal string    `json:"principal"`
	Intent    string    `json:"intent"`
	Outcome   Outcome   `json:"outcome"`
	ErrorCode string    `json:"error_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Filter narrows and pages an audit-log listing. Zero fields mean no
// constraint; Limit and Offset of zero fall back to the store's
// defaults.
type Filter struct {
	Principal string
	Outcomes  []Outcome
	Since     time.Time
	Limit     int
	Offset    int
}

// Page is one page of a filtered listing plus the unpaged total, so
// the dashboard can render page controls.
type Page struct {
	Events []AuthEvent `json:"events"`
	Total  int64       `json:"total"`
}
