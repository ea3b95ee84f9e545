package service

import (
	"context"
	"log/slog"

	"github.com/socialnet-labs/ui-api/internal/domain/audit"
	"github.com/socialnet-labs/ui-api/internal/domain/profile"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/ports"
)

// AccountServiceOptions groups dependencies for AccountService.
type AccountServiceOptions struct {
	Sessions ports.SessionStore
	Handles  ports.HandleFactory
	Recorder ports.AuthEventRecorder
	Logger   *slog.Logger
}

// AccountService covers the signed-in user's own profile: read, update,
// and account deletion. Deletion tears down the session as well, since
// the backend record it was bound to no longer exists.
type AccountService struct {
	sessions ports.SessionStore
	handles  ports.HandleFactory
	recorder ports.AuthEventRecorder
	logger   *slog.Logger
}

// NewAccountService constructs a new AccountService.
func NewAccountService(opts AccountServiceOptions) *AccountService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		sessions: opts.Sessions,
		handles:  opts.Handles,
		recorder: opts.Recorder,
		logger:   logger.With("component", "account"),
	}
}

// Me returns the caller's own profile, freshly read from the backend.
func (s *AccountService) Me(ctx context.Context, sessionID string) (profile.Profile, error) {
	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return profile.Profile{}, err
	}
	if profileErr := requireProfile(sess); profileErr != nil {
		return profile.Profile{}, profileErr
	}

	raw, err := handle.GetUser(ctx, sess.Principal)
	if err != nil {
		return profile.Profile{}, err
	}
	opt, err := profile.Normalize(raw)
	if err != nil {
		return profile.Profile{}, err
	}
	p, ok := opt.Get()
	if !ok {
		return profile.Profile{}, apperrors.NotFound("profile not found")
	}
	return p, nil
}

// UpdateProfile applies a partial update to the caller's own profile and
// returns the backend's status message.
func (s *AccountService) UpdateProfile(ctx context.Context, sessionID string, in ports.UpdateProfileInput) (string, error) {
	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return "", err
	}
	if profileErr := requireProfile(sess); profileErr != nil {
		return "", profileErr
	}
	return handle.UpdateUser(ctx, in)
}

// DeleteAccount removes the caller's backend record and ends the
// session. The session delete is unconditional: even if it fails the
// stored session now points at a deleted account and the next resume
// resolves it to absence anyway.
func (s *AccountService) DeleteAccount(ctx context.Context, sessionID string) (string, error) {
	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return "", err
	}
	if profileErr := requireProfile(sess); profileErr != nil {
		return "", profileErr
	}

	status, err := handle.DeleteUser(ctx)
	if err != nil {
		return "", err
	}

	if delErr := s.sessions.Delete(ctx, sessionID); delErr != nil {
		s.logger.Warn("deleting session after account removal", "error", delErr)
	}
	if s.recorder != nil {
		event := audit.AuthEvent{
			Principal: sess.Principal,
			Intent:    string(sess.Intent),
			Outcome:   audit.OutcomeAccountDeleted,
		}
		if recErr := s.recorder.Record(ctx, event); recErr != nil {
			s.logger.Warn("recording account deletion", "error", recErr)
		}
	}
	return status, nil
}
