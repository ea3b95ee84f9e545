package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/socialnet-labs/ui-api/internal/domain/profile"
	"github.com/socialnet-labs/ui-api/internal/ports"
)

// DirectoryServiceInterface defines the user-directory operations.
type DirectoryServiceInterface interface {
	Users(ctx context.Context, sessionID string) ([]profile.Profile, error)
	User(ctx context.Context, sessionID, principal string) (profile.Profile, error)
}

// AccountServiceInterface defines operations on the caller's own profile.
type AccountServiceInterface interface {
	Me(ctx context.Context, sessionID string) (profile.Profile, error)
	UpdateProfile(ctx context.Context, sessionID string, in ports.UpdateProfileInput) (string, error)
	DeleteAccount(ctx context.Context, sessionID string) (string, error)
}

// UserHandlers provides HTTP handlers for the directory and the
// caller's own account.
type UserHandlers struct {
	Directory    DirectoryServiceInterface
	Account      AccountServiceInterface
	CookieDomain string
	Logger       *slog.Logger
}

// List returns everyone in the directory.
// GET /api/users.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Directory.Users(r.Context(), sessionIDFromRequest(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

// Get returns one profile by principal.
// GET /api/users/{principal}.
func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Directory.User(r.Context(), sessionIDFromRequest(r), r.PathValue("principal"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

// Me returns the caller's own profile.
// GET /api/me.
func (h *UserHandlers) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.Account.Me(r.Context(), sessionIDFromRequest(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

// UpdateMe applies a partial update to the caller's own profile.
// PUT /api/me.
func (h *UserHandlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var body ports.UpdateProfileInput
	if !DecodeJSON(w, r, &body) {
		return
	}

	status, err := h.Account.UpdateProfile(r.Context(), sessionIDFromRequest(r), body)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": status})
}

// DeleteMe removes the caller's account and ends the session.
// DELETE /api/me.
func (h *UserHandlers) DeleteMe(w http.ResponseWriter, r *http.Request) {
	status, err := h.Account.DeleteAccount(r.Context(), sessionIDFromRequest(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	clearSessionCookie(w, r, h.CookieDomain)
	WriteJSON(w, http.StatusOK, map[string]string{"status": status})
}
