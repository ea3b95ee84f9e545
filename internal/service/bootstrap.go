package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	"github.com/socialnet-labs/ui-api/internal/domain/audit"
	"github.com/socialnet-labs/ui-api/internal/domain/profile"
	"github.com/socialnet-labs/ui-api/internal/domain/view"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	obserrors "github.com/socialnet-labs/ui-api/internal/observability/errors"
	"github.com/socialnet-labs/ui-api/internal/ports"
	"golang.org/x/sync/singleflight"
)

// User-facing messages surfaced by bootstrap outcomes. The SPA renders
// them verbatim.
const (
	// MsgNoAccount is the blocking error for a login with no backend profile.
	MsgNoAccount = "No account found for this identity. Please sign up first."
	// MsgProbeFailed is the retryable error for a transient probe failure on login.
	MsgProbeFailed = "Error checking your account. Please try again."
	// MsgActorFailed is the retryable error for a local handle-construction failure.
	MsgActorFailed = "Could not connect to the backend. Please wait and retry."
	// MsgAccountExists is the transient notice for a signup that found an existing profile.
	MsgAccountExists = "An account already exists for this identity."
	// MsgRegistrationNotVisible is shown when a created profile cannot be read back.
	MsgRegistrationNotVisible = "Registration succeeded but the profile is not visible yet. Please try again."
)

// NoticeTTL is how long the SPA keeps a transient notice on screen.
const NoticeTTL = 3 * time.Second

// ErrSuperseded reports that a bootstrap decision lost to a newer
// session generation and was discarded without effect.
var ErrSuperseded = errors.New("bootstrap decision superseded by newer session state")

// MetricsSink is the subset of the statsd client the bootstrap emits to.
type MetricsSink interface {
	Count(name string, value int64, tags map[string]string)
	Timing(name string, value time.Duration, tags map[string]string)
}

// BootstrapServiceOptions groups dependencies for BootstrapService.
type BootstrapServiceOptions struct {
	Sessions ports.SessionStore
	Handles  ports.HandleFactory
	Recorder ports.AuthEventRecorder
	Metrics  MetricsSink
	Logger   *slog.Logger
}

// BootstrapService runs the session/profile bootstrap decision: given an
// authenticated session it probes for a backend profile, derives admin
// status, and resolves the session to exactly one steady state. It is
// the only code that mutates a Session after login.
type BootstrapService struct {
	sessions ports.SessionStore
	handles  ports.HandleFactory
	recorder ports.AuthEventRecorder
	metrics  MetricsSink
	logger   *slog.Logger

	// adminProbe deduplicates concurrent is_caller_admin calls per principal.
	adminProbe singleflight.Group
}

// NewBootstrapService constructs a new BootstrapService.
func NewBootstrapService(opts BootstrapServiceOptions) *BootstrapService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BootstrapService{
		sessions: opts.Sessions,
		handles:  opts.Handles,
		recorder: opts.Recorder,
		metrics:  opts.Metrics,
		logger:   logger.With("component", "bootstrap"),
	}
}

// Result is the resolved bootstrap outcome handed to the SPA.
type Result struct {
	// Session is nil for anonymous outcomes.
	Session *domainauth.Session

	State      domainauth.State
	View       view.View
	HasProfile bool
	Profile    *profile.Profile
	IsAdmin    bool

	// Notice is a transient, self-clearing message (NoticeTTL); it never
	// blocks the resolved view.
	Notice string

	// Err is a blocking user-facing message. Retryable tells the SPA
	// whether offering a retry makes sense.
	Err       string
	Retryable bool
}

// anonymousResult is the steady anonymous outcome (landing page).
func anonymousResult(errMsg string) *Result {
	return &Result{
		State: domainauth.StateAnonymous,
		View:  view.Landing,
		Err:   errMsg,
	}
}

// ResumeInput carries the SPA's state for a startup bootstrap.
type ResumeInput struct {
	SessionID   string
	CurrentView view.View
}

// Resume runs the bootstrap for a restored session at SPA startup.
// Intent never survives a reload: whatever the session last recorded,
// the probe runs under login semantics.
func (s *BootstrapService) Resume(ctx context.Context, in ResumeInput) (*Result, error) {
	if in.SessionID == "" {
		return anonymousResult(""), nil
	}

	sess, err := s.sessions.Get(ctx, in.SessionID)
	if err != nil {
		// A missing or expired session resumes as anonymous, not as an error.
		return anonymousResult(""), nil
	}

	sess.Intent = domainauth.IntentNone
	return s.resolve(ctx, sess, in.CurrentView)
}

// AfterLogin runs the bootstrap immediately after a login/signup
// exchange persisted a fresh session.
func (s *BootstrapService) AfterLogin(ctx context.Context, sess domainauth.Session, currentView view.View) (*Result, error) {
	return s.resolve(ctx, sess, currentView)
}

// Logout clears the session unconditionally. Any in-flight probe for
// the old session finds the record gone and is discarded on arrival.
func (s *BootstrapService) Logout(ctx context.Context, sessionID string) (*Result, error) {
	if sessionID == "" {
		return anonymousResult(""), nil
	}

	sess, getErr := s.sessions.Get(ctx, sessionID)
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("delete session: %w", err)
	}
	if getErr == nil {
		s.record(ctx, audit.AuthEvent{
			Principal: sess.Principal,
			Intent:    string(sess.Intent),
			Outcome:   audit.OutcomeLogout,
		})
	}
	s.count("bootstrap.logout", nil)
	return anonymousResult(""), nil
}

// resolve implements the bootstrap decision for one authenticated
// session. Every path lands in exactly one of: anonymous (session
// cleared), registering, or ready; transient failures keep the session
// and report a retryable error.
func (s *BootstrapService) resolve(ctx context.Context, sess domainauth.Session, currentView view.View) (*Result, error) {
	gen := sess.Generation
	intent := sess.Intent

	handle, err := s.handles.ForIdentity(domainauth.Identity{
		Principal: sess.Principal,
		FirstName: sess.FirstName,
		LastName:  sess.LastName,
		Email:     sess.Email,
		ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		// Local construction failure: safe to retry, session untouched.
		s.logger.WarnContext(ctx, "backend handle construction failed", "err", err)
		s.count("bootstrap.actor_failed", map[string]string{"error": obserrors.Classify(err)})
		return &Result{
			Session:   &sess,
			State:     domainauth.StateAuthenticatedNoActor,
			View:      view.Landing,
			Err:       MsgActorFailed,
			Retryable: true,
		}, nil
	}

	sess.State = domainauth.StateAwaitingProfileCheck

	start := time.Now()
	raw, probeErr := handle.GetUser(ctx, sess.Principal)
	s.timing("bootstrap.profile_probe", time.Since(start), nil)

	var opt profile.Option
	if probeErr == nil {
		opt, probeErr = profile.Normalize(raw)
	}

	if probeErr != nil {
		return s.resolveProbeFailure(ctx, sess, gen, probeErr)
	}

	if p, ok := opt.Get(); ok {
		return s.resolvePresent(ctx, sess, gen, handle, p, currentView)
	}
	return s.resolveAbsent(ctx, sess, gen, intent)
}

// resolvePresent handles a confirmed profile: admin derivation, session
// persistence, and the landing/register view promotion.
func (s *BootstrapService) resolvePresent(
	ctx context.Context,
	sess domainauth.Session,
	gen uint64,
	handle ports.BackendHandle,
	p profile.Profile,
	currentView view.View,
) (*Result, error) {
	isAdmin := s.deriveAdmin(ctx, handle, sess.Principal)

	sess.HasProfile = true
	sess.Username = p.Username
	sess.IsAdmin = isAdmin
	sess.State = domainauth.StateReady

	if err := s.saveResolved(ctx, sess, gen); err != nil {
		return nil, err
	}

	res := &Result{
		Session:    &sess,
		State:      domainauth.StateReady,
		View:       view.PromoteOnProfile(currentView),
		HasProfile: true,
		Profile:    &p,
		IsAdmin:    isAdmin,
	}

	if sess.Intent.IsSignup() {
		res.Notice = MsgAccountExists
		s.record(ctx, audit.AuthEvent{
			Principal: sess.Principal,
			Intent:    string(sess.Intent),
			Outcome:   audit.OutcomeSignupExistingProfile,
		})
		s.count("bootstrap.signup_existing_profile", nil)
	} else {
		s.record(ctx, audit.AuthEvent{
			Principal: sess.Principal,
			Intent:    string(sess.Intent),
			Outcome:   audit.OutcomeLoginSucceeded,
		})
		s.count("bootstrap.login_succeeded", nil)
	}
	return res, nil
}

// resolveAbsent handles a confirmed profile absence, split by intent.
func (s *BootstrapService) resolveAbsent(
	ctx context.Context,
	sess domainauth.Session,
	gen uint64,
	intent domainauth.Intent,
) (*Result, error) {
	if intent.IsSignup() {
		sess.HasProfile = false
		sess.State = domainauth.StateRegistering
		if err := s.saveResolved(ctx, sess, gen); err != nil {
			return nil, err
		}
		s.record(ctx, audit.AuthEvent{
			Principal: sess.Principal,
			Intent:    string(intent),
			Outcome:   audit.OutcomeSignupStarted,
		})
		s.count("bootstrap.signup_started", nil)
		return &Result{
			Session: &sess,
			State:   domainauth.StateRegistering,
			View:    view.Register,
		}, nil
	}

	// Login (or unknown intent) with no profile: hard policy error.
	// Full logout, never into the app.
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return nil, fmt.Errorf("delete session after no-profile login: %w", err)
	}
	s.record(ctx, audit.AuthEvent{
		Principal: sess.Principal,
		Intent:    string(intent),
		Outcome:   audit.OutcomeLoginNoProfile,
	})
	s.count("bootstrap.login_no_profile", nil)
	return anonymousResult(MsgNoAccount), nil
}

// resolveProbeFailure handles a transport or decode failure of the
// profile probe: signup fails open into registration, login keeps the
// session and reports a retryable error.
func (s *BootstrapService) resolveProbeFailure(
	ctx context.Context,
	sess domainauth.Session,
	gen uint64,
	probeErr error,
) (*Result, error) {
	s.logger.WarnContext(ctx, "profile probe failed",
		"principal", sess.Principal,
		"intent", sess.Intent,
		"err", probeErr,
	)

	if sess.Intent.IsSignup() {
		// Fail open: a probe failure must not block a legitimate signup.
		sess.HasProfile = false
		sess.State = domainauth.StateRegistering
		if err := s.saveResolved(ctx, sess, gen); err != nil {
			return nil, err
		}
		s.record(ctx, audit.AuthEvent{
			Principal: sess.Principal,
			Intent:    string(sess.Intent),
			Outcome:   audit.OutcomeSignupStarted,
			ErrorCode: string(apperrors.GetCode(probeErr)),
		})
		s.count("bootstrap.signup_probe_failed_open", map[string]string{"error": obserrors.Classify(probeErr)})
		return &Result{
			Session: &sess,
			State:   domainauth.StateRegistering,
			View:    view.Register,
		}, nil
	}

	// Login path: keep the session for a manual retry, stay on landing.
	sess.State = domainauth.StateAuthenticatedWithActor
	if err := s.saveResolved(ctx, sess, gen); err != nil {
		return nil, err
	}
	s.record(ctx, audit.AuthEvent{
		Principal: sess.Principal,
		Intent:    string(sess.Intent),
		Outcome:   audit.OutcomeLoginProbeFailed,
		ErrorCode: string(apperrors.GetCode(probeErr)),
	})
	s.count("bootstrap.login_probe_failed", map[string]string{"error": obserrors.Classify(probeErr)})
	return &Result{
		Session:   &sess,
		State:     domainauth.StateAuthenticatedWithActor,
		View:      view.Landing,
		Err:       MsgProbeFailed,
		Retryable: true,
	}, nil
}

// deriveAdmin runs the idempotent admin probe. It fails closed: any
// error means not admin, and is never surfaced to the user.
func (s *BootstrapService) deriveAdmin(ctx context.Context, handle ports.BackendHandle, principal string) bool {
	v, err, _ := s.adminProbe.Do(principal, func() (any, error) {
		return handle.IsCallerAdmin(ctx)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "admin probe failed, defaulting to non-admin",
			"principal", principal, "err", err)
		s.count("bootstrap.admin_probe_failed", map[string]string{"error": obserrors.Classify(err)})
		return false
	}
	isAdmin, _ := v.(bool)
	return isAdmin
}

// saveResolved persists a resolved session under its original
// generation. A mismatch means a newer login or logout won the race and
// this decision must be discarded.
func (s *BootstrapService) saveResolved(ctx context.Context, sess domainauth.Session, gen uint64) error {
	err := s.sessions.SaveIfGeneration(ctx, sess, gen)
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrGenerationMismatch) || errors.Is(err, ports.ErrSessionNotFound) {
		s.count("bootstrap.superseded", nil)
		return ErrSuperseded
	}
	return fmt.Errorf("save resolved session: %w", err)
}

func (s *BootstrapService) record(ctx context.Context, ev audit.AuthEvent) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, ev); err != nil {
		s.logger.WarnContext(ctx, "audit record failed", "outcome", ev.Outcome, "err", err)
	}
}

func (s *BootstrapService) count(name string, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.Count(name, 1, tags)
	}
}

func (s *BootstrapService) timing(name string, d time.Duration, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.Timing(name, d, tags)
	}
}
