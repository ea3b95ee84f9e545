package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/socialnet-labs/ui-api/internal/domain/profile"
	"github.com/socialnet-labs/ui-api/internal/domain/social"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/ports"
)

// Backend method names. These are the wire names of the remote service.
const (
	methodGetUser             = "get_user"
	methodCreateUser          = "create_user"
	methodUpdateUser          = "update_user"
	methodDeleteUser          = "delete_user"
	methodGetAllUsers         = "get_all_users"
	methodIsCallerAdmin       = "is_caller_admin"
	methodGetUserFeed         = "get_user_feed"
	methodGetAllPosts         = "get_all_posts"
	methodCreatePost          = "create_post"
	methodLikePost            = "like_post"
	methodUnlikePost          = "unlike_post"
	methodAdminGetStats       = "admin_get_stats"
	methodAdminGetRecentUsers = "admin_get_recent_users"
	methodAdminPromoteUser    = "admin_promote_user"
	methodAdminDemoteUser     = "admin_demote_user"
	methodAdminDeleteUser     = "admin_delete_user"
)

// Handle is a backend binding for one caller. The anonymous handle has
// an empty caller; the backend rejects writes from it.
type Handle struct {
	client *Client
	kind   ports.HandleKind
	caller string
}

func (h *Handle) Kind() ports.HandleKind { return h.kind }

// GetUser returns the raw optional-profile value untouched; callers
// normalize it with profile.Normalize.
func (h *Handle) GetUser(ctx context.Context, principal string) (json.RawMessage, error) {
	return h.client.Query(ctx, h.caller, methodGetUser, principal)
}

func (h *Handle) CreateUser(ctx context.Context, in ports.CreateProfileInput) (string, error) {
	if h.kind != ports.HandleAuthenticated {
		return "", apperrors.Unauthenticated("create_user requires an authenticated handle")
	}
	return h.statusCall(ctx, callUpdate, methodCreateUser, in)
}

func (h *Handle) UpdateUser(ctx context.Context, in ports.UpdateProfileInput) (string, error) {
	if h.kind != ports.HandleAuthenticated {
		return "", apperrors.Unauthenticated("update_user requires an authenticated handle")
	}
	return h.statusCall(ctx, callUpdate, methodUpdateUser, in)
}

func (h *Handle) DeleteUser(ctx context.Context) (string, error) {
	if h.kind != ports.HandleAuthenticated {
		return "", apperrors.Unauthenticated("delete_user requires an authenticated handle")
	}
	return h.statusCall(ctx, callUpdate, methodDeleteUser)
}

func (h *Handle) GetAllUsers(ctx context.Context) ([]profile.Profile, error) {
	var users []profile.Profile
	if err := h.queryInto(ctx, &users, methodGetAllUsers); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *Handle) IsCallerAdmin(ctx context.Context) (bool, error) {
	var isAdmin bool
	if err := h.queryInto(ctx, &isAdmin, methodIsCallerAdmin); err != nil {
		return false, err
	}
	return isAdmin, nil
}

func (h *Handle) GetUserFeed(ctx context.Context, principal string) ([]social.Post, error) {
	var posts []social.Post
	if err := h.queryInto(ctx, &posts, methodGetUserFeed, principal); err != nil {
		return nil, err
	}
	return posts, nil
}

func (h *Handle) GetAllPosts(ctx context.Context) ([]social.Post, error) {
	var posts []social.Post
	if err := h.queryInto(ctx, &posts, methodGetAllPosts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (h *Handle) CreatePost(ctx context.Context, in social.NewPost) (social.Post, error) {
	if h.kind != ports.HandleAuthenticated {
		return social.Post{}, apperrors.Unauthenticated("create_post requires an authenticated handle")
	}
	raw, err := h.client.Update(ctx, h.caller, methodCreatePost, in)
	if err != nil {
		return social.Post{}, err
	}
	var post social.Post
	if decodeErr := json.Unmarshal(raw, &post); decodeErr != nil {
		return social.Post{}, fmt.Errorf("decode %s reply: %w", methodCreatePost, decodeErr)
	}
	return post, nil
}

func (h *Handle) LikePost(ctx context.Context, postID string) error {
	if h.kind != ports.HandleAuthenticated {
		return apperrors.Unauthenticated("like_post requires an authenticated handle")
	}
	_, err := h.client.Update(ctx, h.caller, methodLikePost, postID)
	return err
}

func (h *Handle) UnlikePost(ctx context.Context, postID string) error {
	if h.kind != ports.HandleAuthenticated {
		return apperrors.Unauthenticated("unlike_post requires an authenticated handle")
	}
	_, err := h.client.Update(ctx, h.caller, methodUnlikePost, postID)
	return err
}

func (h *Handle) AdminGetStats(ctx context.Context) (social.AdminStats, error) {
	var stats social.AdminStats
	if err := h.queryInto(ctx, &stats, methodAdminGetStats); err != nil {
		return social.AdminStats{}, err
	}
	return stats, nil
}

func (h *Handle) AdminGetRecentUsers(ctx context.Context, limit int) ([]social.DirectoryUser, error) {
	var users []social.DirectoryUser
	if err := h.queryInto(ctx, &users, methodAdminGetRecentUsers, limit); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *Handle) AdminPromoteUser(ctx context.Context, principal string) (string, error) {
	return h.statusCall(ctx, callUpdate, methodAdminPromoteUser, principal)
}

func (h *Handle) AdminDemoteUser(ctx context.Context, principal string) (string, error) {
	return h.statusCall(ctx, callUpdate, methodAdminDemoteUser, principal)
}

func (h *Handle) AdminDeleteUser(ctx context.Context, principal string) (string, error) {
	return h.statusCall(ctx, callUpdate, methodAdminDeleteUser, principal)
}

// queryInto runs a read call and decodes the ok value into out.
func (h *Handle) queryInto(ctx context.Context, out any, method string, args ...any) error {
	raw, err := h.client.Query(ctx, h.caller, method, args...)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	if decodeErr := json.Unmarshal(raw, out); decodeErr != nil {
		return fmt.Errorf("decode %s reply: %w", method, decodeErr)
	}
	return nil
}

// statusCall runs a call whose ok value is a human-readable status string.
func (h *Handle) statusCall(ctx context.Context, kind callKind, method string, args ...any) (string, error) {
	raw, err := h.client.call(ctx, kind, h.caller, method, args...)
	if err != nil {
		return "", err
	}
	var status string
	if len(raw) > 0 {
		if decodeErr := json.Unmarshal(raw, &status); decodeErr != nil {
			return "", fmt.Errorf("decode %s reply: %w", method, decodeErr)
		}
	}
	return status, nil
}
