package ports

// Package ports defines interfaces (hexagonal ports) for auth and
// backend behavior. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
)

// Sentinel errors shared by SessionStore implementations.
var (
	// ErrSessionNotFound is returned when no session exists for an ID.
	ErrSessionNotFound = errors.New("session not found")
	// ErrGenerationMismatch is returned by SaveIfGeneration when the
	// stored session moved to a newer generation.
	ErrGenerationMismatch = errors.New("session generation mismatch")
)

// BeginInput carries inputs for initiating an auth flow.
type BeginInput struct {
	RedirectURL string
	Intent      domainauth.Intent
}

// AuthProvider initiates and completes an authentication flow against an IdP.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error

	// SaveIfGeneration saves the session only when the stored record still
	// carries the given generation, so results of probes issued under an
	// older generation are discarded on arrival instead of clobbering a
	// newer login. It returns ErrGenerationMismatch (or ErrSessionNotFound
	// when the session was logged out meanwhile) without writing otherwise.
	SaveIfGeneration(ctx context.Context, sess domainauth.Session, expected uint64) error
}

// RoleMapper maps provider groups to application roles.
type RoleMapper interface {
	Map(groups []string) domainauth.Role
}
