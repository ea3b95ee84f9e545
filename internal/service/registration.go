package service

import (
	"context"
	"fmt"
	"strings"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	"github.com/socialnet-labs/ui-api/internal/domain/audit"
	"github.com/socialnet-labs/ui-api/internal/domain/profile"
	"github.com/socialnet-labs/ui-api/internal/domain/view"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/ports"
)

// RegisterInput carries the registration form plus the session it
// belongs to.
type RegisterInput struct {
	SessionID string
	Profile   ports.CreateProfileInput
}

// ConfirmRegistration creates the backend profile and then re-fetches
// it through the shared normalization before declaring the session
// ready. Server-side success alone never transitions the session: only
// a visible profile does.
func (s *BootstrapService) ConfirmRegistration(ctx context.Context, in RegisterInput) (*Result, error) {
	if in.SessionID == "" {
		return nil, apperrors.Unauthenticated("no session")
	}
	if strings.TrimSpace(in.Profile.Username) == "" {
		return nil, apperrors.ValidationField("username", "username is required")
	}

	sess, err := s.sessions.Get(ctx, in.SessionID)
	if err != nil {
		return nil, apperrors.Unauthenticated("no session")
	}
	gen := sess.Generation

	handle, err := s.handles.ForIdentity(domainauth.Identity{
		Principal: sess.Principal,
		Email:     sess.Email,
		ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("backend handle: %w", err)
	}

	if _, createErr := handle.CreateUser(ctx, in.Profile); createErr != nil {
		return nil, createErr
	}

	// Re-fetch with the same normalization as the bootstrap probe.
	raw, fetchErr := handle.GetUser(ctx, sess.Principal)
	var opt profile.Option
	if fetchErr == nil {
		opt, fetchErr = profile.Normalize(raw)
	}

	p, visible := opt.Get()
	if fetchErr != nil || !visible {
		s.logger.WarnContext(ctx, "registered profile not visible on re-fetch",
			"principal", sess.Principal, "err", fetchErr)
		s.record(ctx, audit.AuthEvent{
			Principal: sess.Principal,
			Intent:    string(sess.Intent),
			Outcome:   audit.OutcomeRegistrationMissing,
			ErrorCode: string(apperrors.GetCode(fetchErr)),
		})
		s.count("bootstrap.registration_missing", nil)
		return &Result{
			Session:   &sess,
			State:     domainauth.StateRegistering,
			View:      view.Register,
			Err:       MsgRegistrationNotVisible,
			Retryable: true,
		}, nil
	}

	isAdmin := s.deriveAdmin(ctx, handle, sess.Principal)

	sess.HasProfile = true
	sess.Username = p.Username
	sess.IsAdmin = isAdmin
	sess.State = domainauth.StateReady

	if saveErr := s.saveResolved(ctx, sess, gen); saveErr != nil {
		return nil, saveErr
	}

	s.record(ctx, audit.AuthEvent{
		Principal: sess.Principal,
		Intent:    string(sess.Intent),
		Outcome:   audit.OutcomeRegistrationConfirmed,
	})
	s.count("bootstrap.registration_confirmed", nil)

	return &Result{
		Session:    &sess,
		State:      domainauth.StateReady,
		View:       view.Feed,
		HasProfile: true,
		Profile:    &p,
		IsAdmin:    isAdmin,
	}, nil
}
