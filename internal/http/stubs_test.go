package httpx

import (
	"context"
	"errors"
	"io"
	"log/slog"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	"github.com/socialnet-labs/ui-api/internal/domain/view"
	"github.com/socialnet-labs/ui-api/internal/service"
)

// testLogger returns a logger that discards everything.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Stubs for the handler-facing service interfaces.

type stubAuthService struct {
	BeginLoginFunc    func(ctx context.Context, redirectURL string, intent domainauth.Intent) (*service.BeginLoginResult, error)
	CompleteLoginFunc func(ctx context.Context, in service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

func (s *stubAuthService) BeginLogin(ctx context.Context, redirectURL string, intent domainauth.Intent) (*service.BeginLoginResult, error) {
	if s.BeginLoginFunc != nil {
		return s.BeginLoginFunc(ctx, redirectURL, intent)
	}
	return &service.BeginLoginResult{AuthURL: "https://idp.example.com/auth", State: "state-1", Nonce: "nonce-1"}, nil
}

func (s *stubAuthService) CompleteLogin(ctx context.Context, in service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
	if s.CompleteLoginFunc != nil {
		return s.CompleteLoginFunc(ctx, in)
	}
	return nil, errors.New("CompleteLoginFunc not set")
}

func (s *stubAuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if s.GetSessionFunc != nil {
		return s.GetSessionFunc(ctx, sessionID)
	}
	return nil, errors.New("session not found")
}

type stubBootstrapService struct {
	ResumeFunc              func(ctx context.Context, in service.ResumeInput) (*service.Result, error)
	AfterLoginFunc          func(ctx context.Context, sess domainauth.Session, currentView view.View) (*service.Result, error)
	ConfirmRegistrationFunc func(ctx context.Context, in service.RegisterInput) (*service.Result, error)
	LogoutFunc              func(ctx context.Context, sessionID string) (*service.Result, error)
}

func (s *stubBootstrapService) Resume(ctx context.Context, in service.ResumeInput) (*service.Result, error) {
	if s.ResumeFunc != nil {
		return s.ResumeFunc(ctx, in)
	}
	return &service.Result{State: domainauth.StateAnonymous, View: view.Landing}, nil
}

func (s *stubBootstrapService) AfterLogin(ctx context.Context, sess domainauth.Session, currentView view.View) (*service.Result, error) {
	if s.AfterLoginFunc != nil {
		return s.AfterLoginFunc(ctx, sess, currentView)
	}
	return &service.Result{Session: &sess, State: domainauth.StateReady, View: view.Feed, HasProfile: true}, nil
}

func (s *stubBootstrapService) ConfirmRegistration(ctx context.Context, in service.RegisterInput) (*service.Result, error) {
	if s.ConfirmRegistrationFunc != nil {
		return s.ConfirmRegistrationFunc(ctx, in)
	}
	return nil, errors.New("ConfirmRegistrationFunc not set")
}

func (s *stubBootstrapService) Logout(ctx context.Context, sessionID string) (*service.Result, error) {
	if s.LogoutFunc != nil {
		return s.LogoutFunc(ctx, sessionID)
	}
	return &service.Result{State: domainauth.StateAnonymous, View: view.Landing}, nil
}
