package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/socialnet-labs/ui-api/internal/domain/profile"
	"github.com/socialnet-labs/ui-api/internal/domain/view"
	"github.com/socialnet-labs/ui-api/internal/ports"
	"github.com/socialnet-labs/ui-api/internal/service"
)

// BootstrapHandlers exposes the session bootstrap to the SPA: resume on
// startup, registration confirmation, and logout.
type BootstrapHandlers struct {
	Svc          BootstrapServiceInterface
	CookieDomain string
	Logger       *slog.Logger
}

// bootstrapResponse is the wire form of a resolved bootstrap decision.
type bootstrapResponse struct {
	Authenticated bool             `json:"authenticated"`
	State         string           `json:"state"`
	View          string           `json:"view"`
	HasProfile    bool             `json:"has_profile"`
	Profile       *profile.Profile `json:"profile,omitempty"`
	IsAdmin       bool             `json:"is_admin"`
	Principal     string           `json:"principal,omitempty"`
	Username      string           `json:"username,omitempty"`

	Notice      string `json:"notice,omitempty"`
	NoticeTTLMs int64  `json:"notice_ttl_ms,omitempty"`

	Error     string `json:"error,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

func toBootstrapResponse(res *service.Result) bootstrapResponse {
	out := bootstrapResponse{
		Authenticated: res.Session != nil,
		State:         string(res.State),
		View:          string(res.View),
		HasProfile:    res.HasProfile,
		Profile:       res.Profile,
		IsAdmin:       res.IsAdmin,
		Notice:        res.Notice,
		Error:         res.Err,
		Retryable:     res.Retryable,
	}
	if res.Notice != "" {
		out.NoticeTTLMs = service.NoticeTTL.Milliseconds()
	}
	if res.Session != nil {
		out.Principal = res.Session.Principal
		out.Username = res.Session.Username
	}
	return out
}

// Resume runs the startup bootstrap for the SPA.
// POST /api/session/bootstrap {"current_view": "<view>"}.
func (h *BootstrapHandlers) Resume(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CurrentView string `json:"current_view"`
	}
	if !DecodeJSON(w, r, &body) {
		return
	}

	currentView := view.Landing
	if body.CurrentView != "" {
		v, err := view.Parse(body.CurrentView)
		if err != nil {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_view", Err: err})
			return
		}
		currentView = v
	}

	res, err := h.Svc.Resume(r.Context(), service.ResumeInput{
		SessionID:   sessionIDFromRequest(r),
		CurrentView: currentView,
	})
	if err != nil {
		h.writeBootstrapError(w, r, err)
		return
	}

	if res.Session == nil {
		// The session did not survive the resume; drop the cookie too.
		clearSessionCookie(w, r, h.CookieDomain)
	}
	WriteJSON(w, http.StatusOK, toBootstrapResponse(res))
}

// Register confirms a registration for a session in the registering state.
// POST /api/session/register {"username": ..., "full_name": ..., ...}.
func (h *BootstrapHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var body ports.CreateProfileInput
	if !DecodeJSON(w, r, &body) {
		return
	}

	res, err := h.Svc.ConfirmRegistration(r.Context(), service.RegisterInput{
		SessionID: sessionIDFromRequest(r),
		Profile:   body,
	})
	if err != nil {
		h.writeBootstrapError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toBootstrapResponse(res))
}

// Logout ends the session and returns the anonymous bootstrap result.
// POST /api/session/logout.
func (h *BootstrapHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.Logout(r.Context(), sessionIDFromRequest(r))
	if err != nil {
		h.writeBootstrapError(w, r, err)
		return
	}

	clearSessionCookie(w, r, h.CookieDomain)
	WriteJSON(w, http.StatusOK, toBootstrapResponse(res))
}

func (h *BootstrapHandlers) writeBootstrapError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrSuperseded) {
		// A newer login or logout won the race; the caller should simply
		// bootstrap again against the current session state.
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "superseded", Err: err})
		return
	}
	if h.Logger != nil {
		h.Logger.ErrorContext(r.Context(), "bootstrap request failed", "error", err)
	}
	WriteServiceError(w, err)
}

// clearSessionCookie removes the session cookie on the client.
func clearSessionCookie(w http.ResponseWriter, r *http.Request, cookieDomain string) {
	isSecure := r.TLS != nil
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   cookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}
