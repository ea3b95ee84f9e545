// Package testutil provides testing utilities and helpers for the ui-api.
package testutil

import (
	"time"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	"github.com/socialnet-labs/ui-api/internal/domain/profile"
)

// SessionBuilder provides a fluent interface for building Session objects for testing.
type SessionBuilder struct {
	sess domainauth.Session
}

// NewSession creates a new SessionBuilder with sensible defaults.
func NewSession() *SessionBuilder {
	return &SessionBuilder{
		sess: domainauth.Session{
			ID:        "test-session",
			Principal: "w7x2k-test-principal",
			Email:     "user@example.com",
			Role:      domainauth.RoleUser,
			Intent:    domainauth.IntentLogin,
			State:     domainauth.StateAuthenticatedWithActor,
			ExpiresAt: time.Now().Add(30 * time.Minute),
		},
	}
}

// WithID sets the session ID.
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.sess.ID = id
	return b
}

// WithPrincipal sets the authenticated principal.
func (b *SessionBuilder) WithPrincipal(principal string) *SessionBuilder {
	b.sess.Principal = principal
	return b
}

// WithRole sets the session role.
func (b *SessionBuilder) WithRole(role domainauth.Role) *SessionBuilder {
	b.sess.Role = role
	return b
}

// WithIntent sets the navigation intent.
func (b *SessionBuilder) WithIntent(intent domainauth.Intent) *SessionBuilder {
	b.sess.Intent = intent
	return b
}

// WithState sets the bootstrap state.
func (b *SessionBuilder) WithState(state domainauth.State) *SessionBuilder {
	b.sess.State = state
	return b
}

// WithGeneration sets the session generation counter.
func (b *SessionBuilder) WithGeneration(gen uint64) *SessionBuilder {
	b.sess.Generation = gen
	return b
}

// WithProfile marks the session as having a backend profile.
func (b *SessionBuilder) WithProfile(username string) *SessionBuilder {
	b.sess.HasProfile = true
	b.sess.Username = username
	return b
}

// WithAdmin marks the session principal as a backend admin.
func (b *SessionBuilder) WithAdmin() *SessionBuilder {
	b.sess.IsAdmin = true
	return b
}

// WithExpiresAt sets the session expiry.
func (b *SessionBuilder) WithExpiresAt(t time.Time) *SessionBuilder {
	b.sess.ExpiresAt = t
	return b
}

// Build returns the constructed session.
func (b *SessionBuilder) Build() domainauth.Session {
	return b.sess
}

// ProfileBuilder provides a fluent interface for building Profile objects for testing.
type ProfileBuilder struct {
	p profile.Profile
}

// NewProfile creates a new ProfileBuilder with sensible defaults.
func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{
		p: profile.Profile{
			UserID:   "w7x2k-test-principal",
			Username: "testuser",
		},
	}
}

// WithUserID sets the profile user ID.
func (b *ProfileBuilder) WithUserID(id string) *ProfileBuilder {
	b.p.UserID = id
	return b
}

// WithUsername sets the profile username.
func (b *ProfileBuilder) WithUsername(username string) *ProfileBuilder {
	b.p.Username = username
	return b
}

// WithFullName sets the optional full name.
func (b *ProfileBuilder) WithFullName(name string) *ProfileBuilder {
	b.p.FullName = &name
	return b
}

// WithBio sets the optional bio.
func (b *ProfileBuilder) WithBio(bio string) *ProfileBuilder {
	b.p.Bio = &bio
	return b
}

// Build returns the constructed profile.
func (b *ProfileBuilder) Build() profile.Profile {
	return b.p
}
