package ports

import (
	"context"
	"encoding/json"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	"github.com/socialnet-labs/ui-api/internal/domain/profile"
	"github.com/socialnet-labs/ui-api/internal/domain/social"
)

// HandleKind distinguishes the two backend bindings.
type HandleKind string

const (
	// HandleAnonymous is the default binding with no caller identity.
	HandleAnonymous HandleKind = "anonymous"
	// HandleAuthenticated is bound to a signed-in identity; the backend
	// derives the caller principal from it.
	HandleAuthenticated HandleKind = "authenticated"
)

// CreateProfileInput carries the caller-supplied registration fields.
// Only Username is required; the backend derives user_id from the
// caller principal.
type CreateProfileInput struct {
	Username   string  `json:"username"`
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	ProfilePic *string `json:"profile_pic,omitempty"`
	Location   *string `json:"location,omitempty"`
	Website    *string `json:"website,omitempty"`
}

// UpdateProfileInput carries the optional fields of a profile update;
// nil fields are left unchanged by the backend.
type UpdateProfileInput struct {
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	ProfilePic *string `json:"profile_pic,omitempty"`
	Location   *string `json:"location,omitempty"`
	Website    *string `json:"website,omitempty"`
}

// BackendHandle is a callable binding to the remote social-network
// backend. Exactly one authenticated handle is live per session
// generation; writes on behalf of an authenticated user must never go
// through the anonymous handle.
type BackendHandle interface {
	Kind() HandleKind

	// GetUser returns the raw optional-profile wire value so callers can
	// share profile.Normalize. The wire shape varies by backend call path.
	GetUser(ctx context.Context, principal string) (json.RawMessage, error)
	CreateUser(ctx context.Context, in CreateProfileInput) (string, error)
	UpdateUser(ctx context.Context, in UpdateProfileInput) (string, error)
	DeleteUser(ctx context.Context) (string, error)
	GetAllUsers(ctx context.Context) ([]profile.Profile, error)

	// IsCallerAdmin is idempotent and independent of the profile probe.
	IsCallerAdmin(ctx context.Context) (bool, error)

	GetUserFeed(ctx context.Context, principal string) ([]social.Post, error)
	GetAllPosts(ctx context.Context) ([]social.Post, error)
	CreatePost(ctx context.Context, in social.NewPost) (social.Post, error)
	LikePost(ctx context.Context, postID string) error
	UnlikePost(ctx context.Context, postID string) error

	AdminGetStats(ctx context.Context) (social.AdminStats, error)
	AdminGetRecentUsers(ctx context.Context, limit int) ([]social.DirectoryUser, error)
	AdminPromoteUser(ctx context.Context, principal string) (string, error)
	AdminDemoteUser(ctx context.Context, principal string) (string, error)
	AdminDeleteUser(ctx context.Context, principal string) (string, error)
}

// HandleFactory constructs backend handles. Construction is pure (no
// network call); failures are local configuration errors only.
type HandleFactory interface {
	// Anonymous returns the shared identity-less handle.
	Anonymous() BackendHandle

	// ForIdentity returns a handle bound to the given identity.
	// Constructing a new handle for the same session supersedes the
	// previous one for write operations.
	ForIdentity(identity domainauth.Identity) (BackendHandle, error)
}
