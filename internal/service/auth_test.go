package service

import (
	"context"
	"errors"
	"testing"
	"time"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	authmocks "github.com/socialnet-labs/ui-api/internal/mocks/auth"
	"github.com/socialnet-labs/ui-api/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(provider ports.AuthProvider, store ports.SessionStore) *AuthService {
	return NewAuthService(AuthServiceOptions{
		Provider: provider,
		Sessions: store,
		Roles:    authmocks.StaticRoleMapper{AdminGroup: "admins", UserGroup: "users"},
	})
}

func TestBeginLogin(t *testing.T) {
	svc := newTestAuthService(authmocks.NewMockAuthProvider(), authmocks.NewMemorySessionStore())

	res, err := svc.BeginLogin(context.Background(), "http://localhost:3000/auth/callback", domainauth.IntentSignup)
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", res.AuthURL)
	assert.NotEmpty(t, res.State)
	assert.NotEmpty(t, res.Nonce)
}

func TestBeginLogin_RequiresRedirectURL(t *testing.T) {
	svc := newTestAuthService(authmocks.NewMockAuthProvider(), authmocks.NewMemorySessionStore())

	_, err := svc.BeginLogin(context.Background(), "", domainauth.IntentLogin)
	assert.Error(t, err)
}

func TestCompleteLogin(t *testing.T) {
	store := authmocks.NewMemorySessionStore()
	svc := newTestAuthService(authmocks.NewMockAuthProvider(), store)

	res, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:   "code",
		State:  "state-1",
		Nonce:  "nonce-1",
		Intent: domainauth.IntentSignup,
	})
	require.NoError(t, err)

	sess := res.Session
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "w7x2k-mock-principal", sess.Principal)
	assert.Equal(t, domainauth.RoleUser, sess.Role)
	assert.Equal(t, domainauth.IntentSignup, sess.Intent)
	assert.Equal(t, domainauth.StateAuthenticatedNoActor, sess.State)
	assert.Equal(t, uint64(1), sess.Generation)

	stored, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess, stored)
}

func TestCompleteLogin_Validation(t *testing.T) {
	svc := newTestAuthService(authmocks.NewMockAuthProvider(), authmocks.NewMemorySessionStore())

	cases := []CompleteLoginInput{
		{State: "s", Nonce: "n"},
		{Code: "c", Nonce: "n"},
		{Code: "c", State: "s"},
	}
	for _, in := range cases {
		_, err := svc.CompleteLogin(context.Background(), in)
		assert.Error(t, err)
	}
}

func TestCompleteLogin_ExchangeFailure(t *testing.T) {
	provider := authmocks.NewMockAuthProvider()
	provider.ExchangeFunc = func(context.Context, ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{}, errors.New("state mismatch")
	}
	store := authmocks.NewMemorySessionStore()
	svc := newTestAuthService(provider, store)

	_, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestGetSession_ExpiredIsDeleted(t *testing.T) {
	store := authmocks.NewMemorySessionStore()
	svc := newTestAuthService(authmocks.NewMockAuthProvider(), store)

	require.NoError(t, store.Save(context.Background(), domainauth.Session{
		ID:        "expired",
		Principal: testPrincipal,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := svc.GetSession(context.Background(), "expired")
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestLogout(t *testing.T) {
	store := authmocks.NewMemorySessionStore()
	svc := newTestAuthService(authmocks.NewMockAuthProvider(), store)

	require.NoError(t, store.Save(context.Background(), domainauth.Session{
		ID:        "sess-1",
		Principal: testPrincipal,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, svc.Logout(context.Background(), "sess-1"))
	assert.Equal(t, 0, store.Len())

	// Logging out with no session is a no-op, not an error.
	require.NoError(t, svc.Logout(context.Background(), ""))
}
