package service

import (
	"context"
	"fmt"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/ports"
)

// sessionHandle resolves a session ID to its session and an
// authenticated backend handle. Writes on behalf of a user always go
// through this path; the anonymous handle is reserved for callers with
// no session at all.
func sessionHandle(
	ctx context.Context,
	sessions ports.SessionStore,
	handles ports.HandleFactory,
	sessionID string,
) (domainauth.Session, ports.BackendHandle, error) {
	sess, err := requireSession(ctx, sessions, sessionID)
	if err != nil {
		return domainauth.Session{}, nil, err
	}
	handle, err := handles.ForIdentity(domainauth.Identity{
		Principal: sess.Principal,
		Email:     sess.Email,
		ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		return domainauth.Session{}, nil, fmt.Errorf("backend handle: %w", err)
	}
	return sess, handle, nil
}

// requireSession resolves a session ID without building a backend
// handle, for operations that read only gateway-side data.
func requireSession(
	ctx context.Context,
	sessions ports.SessionStore,
	sessionID string,
) (domainauth.Session, error) {
	if sessionID == "" {
		return domainauth.Session{}, apperrors.Unauthenticated("no session")
	}
	sess, err := sessions.Get(ctx, sessionID)
	if err != nil {
		return domainauth.Session{}, apperrors.Unauthenticated("no session")
	}
	return sess, nil
}

// requireProfile guards operations that need a confirmed profile.
func requireProfile(sess domainauth.Session) error {
	if !sess.HasProfile {
		return apperrors.Forbidden("profile required")
	}
	return nil
}

// requireAdmin guards gateway-side admin operations. The backend
// re-checks the caller on its side as well.
func requireAdmin(sess domainauth.Session) error {
	if !sess.IsAdmin {
		return apperrors.Forbidden("admin required")
	}
	return nil
}
