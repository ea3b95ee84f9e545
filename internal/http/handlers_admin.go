package httpx

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/socialnet-labs/ui-api/internal/domain/audit"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/service"
)

// AdminServiceInterface defines the admin-only directory operations.
type AdminServiceInterface interface {
	AdminDashboard(ctx context.Context, sessionID string) (*service.Dashboard, error)
	AuthEventLog(ctx context.Context, sessionID string, filter audit.Filter) (audit.Page, error)
	PromoteUser(ctx context.Context, sessionID, principal string) (string, error)
	DemoteUser(ctx context.Context, sessionID, principal string) (string, error)
	DeleteUser(ctx context.Context, sessionID, principal string) (string, error)
}

// AdminHandlers provides HTTP handlers for the admin dashboard.
type AdminHandlers struct {
	Svc AdminServiceInterface
}

// Dashboard returns stats, recent users, and recent auth events.
// GET /api/admin/dashboard.
func (h *AdminHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.Svc.AdminDashboard(r.Context(), sessionIDFromRequest(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, dash)
}

// AuthEvents returns one filtered page of the gateway's auth-event log.
// GET /api/admin/auth-events?principal=&outcome=&since=&limit=&offset=.
// The outcome parameter repeats for multiple values; since is RFC 3339.
func (h *AdminHandlers) AuthEvents(w http.ResponseWriter, r *http.Request) {
	filter, err := authEventFilterFromQuery(r)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	page, err := h.Svc.AuthEventLog(r.Context(), sessionIDFromRequest(r), filter)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

func authEventFilterFromQuery(r *http.Request) (audit.Filter, error) {
	q := r.URL.Query()
	filter := audit.Filter{Principal: q.Get("principal")}
	for _, outcome := range q["outcome"] {
		if outcome != "" {
			filter.Outcomes = append(filter.Outcomes, audit.Outcome(outcome))
		}
	}
	if since := q.Get("since"); since != "" {
		parsed, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return audit.Filter{}, apperrors.ValidationField("since", "since must be RFC 3339")
		}
		filter.Since = parsed
	}
	var err error
	if filter.Limit, err = queryInt(q.Get("limit")); err != nil {
		return audit.Filter{}, apperrors.ValidationField("limit", "limit must be an integer")
	}
	if filter.Offset, err = queryInt(q.Get("offset")); err != nil {
		return audit.Filter{}, apperrors.ValidationField("offset", "offset must be an integer")
	}
	return filter, nil
}

func queryInt(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

// Promote grants admin to a user.
// POST /api/admin/users/{principal}/promote.
func (h *AdminHandlers) Promote(w http.ResponseWriter, r *http.Request) {
	h.adminCall(w, r, h.Svc.PromoteUser)
}

// Demote revokes a user's admin rights.
// POST /api/admin/users/{principal}/demote.
func (h *AdminHandlers) Demote(w http.ResponseWriter, r *http.Request) {
	h.adminCall(w, r, h.Svc.DemoteUser)
}

// Delete removes a user.
// DELETE /api/admin/users/{principal}.
func (h *AdminHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	h.adminCall(w, r, h.Svc.DeleteUser)
}

func (h *AdminHandlers) adminCall(
	w http.ResponseWriter,
	r *http.Request,
	call func(ctx context.Context, sessionID, principal string) (string, error),
) {
	status, err := call(r.Context(), sessionIDFromRequest(r), r.PathValue("principal"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": status})
}
