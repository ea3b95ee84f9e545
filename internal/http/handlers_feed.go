package httpx

import (
	"context"
	"net/http"

	"github.com/socialnet-labs/ui-api/internal/domain/social"
)

// FeedServiceInterface defines the post operations the handlers proxy.
type FeedServiceInterface interface {
	Feed(ctx context.Context, sessionID string) ([]social.Post, error)
	AllPosts(ctx context.Context, sessionID string) ([]social.Post, error)
	CreatePost(ctx context.Context, sessionID string, in social.NewPost) (social.Post, error)
	Like(ctx context.Context, sessionID, postID string) error
	Unlike(ctx context.Context, sessionID, postID string) error
}

// FeedHandlers provides HTTP handlers for the post surface.
type FeedHandlers struct {
	Svc FeedServiceInterface
}

// Feed returns the personalized feed.
// GET /api/feed.
func (h *FeedHandlers) Feed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Svc.Feed(r.Context(), sessionIDFromRequest(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// AllPosts returns the global post list.
// GET /api/posts.
func (h *FeedHandlers) AllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Svc.AllPosts(r.Context(), sessionIDFromRequest(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// CreatePost publishes a new post.
// POST /api/posts.
func (h *FeedHandlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body social.NewPost
	if !DecodeJSON(w, r, &body) {
		return
	}

	post, err := h.Svc.CreatePost(r.Context(), sessionIDFromRequest(r), body)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, post)
}

// Like marks a post liked.
// POST /api/posts/{id}/like.
func (h *FeedHandlers) Like(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Like(r.Context(), sessionIDFromRequest(r), r.PathValue("id")); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "liked"})
}

// Unlike removes a like.
// DELETE /api/posts/{id}/like.
func (h *FeedHandlers) Unlike(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Unlike(r.Context(), sessionIDFromRequest(r), r.PathValue("id")); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "unliked"})
}
