package service

import (
	"context"

	"github.com/socialnet-labs/ui-api/internal/domain/audit"
	"github.com/socialnet-labs/ui-api/internal/domain/profile"
	"github.com/socialnet-labs/ui-api/internal/domain/social"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/ports"
)

// DirectoryServiceOptions groups dependencies for DirectoryService.
type DirectoryServiceOptions struct {
	Sessions ports.SessionStore
	Handles  ports.HandleFactory
	Recorder ports.AuthEventRecorder
}

// DirectoryService proxies the user-directory and admin surface of the
// backend, and folds the gateway's own auth-event log into the admin
// dashboard.
type DirectoryService struct {
	sessions ports.SessionStore
	handles  ports.HandleFactory
	recorder ports.AuthEventRecorder
}

// NewDirectoryService constructs a new DirectoryService.
func NewDirectoryService(opts DirectoryServiceOptions) *DirectoryService {
	return &DirectoryService{
		sessions: opts.Sessions,
		handles:  opts.Handles,
		recorder: opts.Recorder,
	}
}

// Users lists all profiles for the user directory.
func (s *DirectoryService) Users(ctx context.Context, sessionID string) ([]profile.Profile, error) {
	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return nil, err
	}
	if profileErr := requireProfile(sess); profileErr != nil {
		return nil, profileErr
	}
	return handle.GetAllUsers(ctx)
}

// User fetches one profile by principal, normalized the same way as the
// bootstrap probe. A missing profile is a NotFound error here, not an
// absence decision.
func (s *DirectoryService) User(ctx context.Context, sessionID, principal string) (profile.Profile, error) {
	if principal == "" {
		return profile.Profile{}, apperrors.ValidationField("principal", "principal is required")
	}
	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return profile.Profile{}, err
	}
	if profileErr := requireProfile(sess); profileErr != nil {
		return profile.Profile{}, profileErr
	}

	raw, err := handle.GetUser(ctx, principal)
	if err != nil {
		return profile.Profile{}, err
	}
	opt, err := profile.Normalize(raw)
	if err != nil {
		return profile.Profile{}, err
	}
	p, ok := opt.Get()
	if !ok {
		return profile.Profile{}, apperrors.NotFound("user not found")
	}
	return p, nil
}

// Dashboard is the assembled admin-dashboard payload.
type Dashboard struct {
	Stats       social.AdminStats       `json:"stats"`
	RecentUsers []social.DirectoryUser  `json:"recent_users"`
	AuthEvents  []audit.AuthEvent       `json:"auth_events"`
	Outcomes    map[audit.Outcome]int64 `json:"outcomes,omitempty"`
}

const dashboardRecentLimit = 10

// AdminDashboard assembles stats, recent users, and the gateway's own
// recent auth events for an admin session.
func (s *DirectoryService) AdminDashboard(ctx context.Context, sessionID string) (*Dashboard, error) {
	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return nil, err
	}
	if adminErr := requireAdmin(sess); adminErr != nil {
		return nil, adminErr
	}

	stats, err := handle.AdminGetStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := handle.AdminGetRecentUsers(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{Stats: stats, RecentUsers: recent}
	if s.recorder != nil {
		// Auth events are the gateway's own data; failure to read them
		// degrades the dashboard instead of failing it.
		if events, eventsErr := s.recorder.Recent(ctx, dashboardRecentLimit); eventsErr == nil {
			dash.AuthEvents = events
		}
		if counts, countsErr := s.recorder.CountsByOutcome(ctx); countsErr == nil {
			dash.Outcomes = counts
		}
	}
	return dash, nil
}

// AuthEventLog returns one filtered page of the gateway's auth-event
// audit log for an admin session.
func (s *DirectoryService) AuthEventLog(ctx context.Context, sessionID string, filter audit.Filter) (audit.Page, error) {
	sess, err := requireSession(ctx, s.sessions, sessionID)
	if err != nil {
		return audit.Page{}, err
	}
	if adminErr := requireAdmin(sess); adminErr != nil {
		return audit.Page{}, adminErr
	}
	if s.recorder == nil {
		return audit.Page{}, nil
	}
	return s.recorder.List(ctx, filter)
}

// PromoteUser grants admin on the backend.
func (s *DirectoryService) PromoteUser(ctx context.Context, sessionID, principal string) (string, error) {
	return s.adminCall(ctx, sessionID, principal, func(ctx context.Context, h ports.BackendHandle, p string) (string, error) {
		return h.AdminPromoteUser(ctx, p)
	})
}

// DemoteUser revokes admin on the backend.
func (s *DirectoryService) DemoteUser(ctx context.Context, sessionID, principal string) (string, error) {
	return s.adminCall(ctx, sessionID, principal, func(ctx context.Context, h ports.BackendHandle, p string) (string, error) {
		return h.AdminDemoteUser(ctx, p)
	})
}

// DeleteUser removes a user on the backend.
func (s *DirectoryService) DeleteUser(ctx context.Context, sessionID, principal string) (string, error) {
	return s.adminCall(ctx, sessionID, principal, func(ctx context.Context, h ports.BackendHandle, p string) (string, error) {
		return h.AdminDeleteUser(ctx, p)
	})
}

func (s *DirectoryService) adminCall(
	ctx context.Context,
	sessionID, principal string,
	call func(context.Context, ports.BackendHandle, string) (string, error),
) (string, error) {
	if principal == "" {
		return "", apperrors.ValidationField("principal", "principal is required")
	}
	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return "", err
	}
	if adminErr := requireAdmin(sess); adminErr != nil {
		return "", adminErr
	}
	return call(ctx, handle, principal)
}
