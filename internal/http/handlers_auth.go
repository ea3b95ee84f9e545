package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	"github.com/socialnet-labs/ui-api/internal/domain/view"
	"github.com/socialnet-labs/ui-api/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	BeginLogin(ctx context.Context, redirectURL string, intent domainauth.Intent) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// BootstrapServiceInterface defines the bootstrap operations the handlers drive.
type BootstrapServiceInterface interface {
	Resume(ctx context.Context, in service.ResumeInput) (*service.Result, error)
	AfterLogin(ctx context.Context, sess domainauth.Session, currentView view.View) (*service.Result, error)
	ConfirmRegistration(ctx context.Context, in service.RegisterInput) (*service.Result, error)
	Logout(ctx context.Context, sessionID string) (*service.Result, error)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	Bootstrap    BootstrapServiceInterface
	CookieDomain string
	RedirectURL  string
	Redirects    RedirectPolicy
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login handles the login initiation endpoint.
// GET /auth/login?intent=<login|signup>&redirect_uri=<optional_redirect>.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	redirectURI := h.Redirects.Sanitize(r.URL.Query().Get("redirect_uri"))

	// Only an explicit signup is treated as one; anything else is a login.
	intent := domainauth.IntentLogin
	if r.URL.Query().Get("intent") == string(domainauth.IntentSignup) {
		intent = domainauth.IntentSignup
	}

	result, err := h.Svc.BeginLogin(r.Context(), h.RedirectURL, intent)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     err,
		})
		return
	}

	h.setOAuthCookies(w, r, oauthCookieParams{
		State:       result.State,
		Nonce:       result.Nonce,
		Intent:      intent,
		RedirectURI: redirectURI,
	})

	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback handles the OAuth callback endpoint.
// GET /auth/callback?code=<code>&state=<state>.
//
// The exchange and the profile bootstrap run back to back here:
// by the time the browser is redirected, the session is already
// resolved to a steady state (or cleared again).
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_code",
			Err:     errors.New("authorization code is required"),
		})
		return
	}
	if state == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_state",
			Err:     errors.New("state parameter is required"),
		})
		return
	}

	// Verify state and read nonce
	stateCookie, err := r.Cookie(oauthStateCookieName)
	if err != nil || stateCookie.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}
	nonceCookie, err := r.Cookie(oauthNonceCookieName)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_nonce",
			Err:     errors.New("missing nonce parameter"),
		})
		return
	}

	intent := h.intentFromCookie(r)

	result, err := h.Svc.CompleteLogin(r.Context(), service.CompleteLoginInput{
		Code:   code,
		State:  state,
		Nonce:  nonceCookie.Value,
		Intent: intent,
	})
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_completion_failed",
			Err:     err,
		})
		return
	}

	h.clearCookie(w, r, oauthStateCookieName)
	h.clearCookie(w, r, oauthNonceCookieName)
	h.clearCookie(w, r, loginIntentCookieName)

	redirectURI := h.getPostLoginRedirect(w, r)

	boot, err := h.Bootstrap.AfterLogin(r.Context(), result.Session, view.Landing)
	if err != nil {
		if errors.Is(err, service.ErrSuperseded) {
			// A newer login won the race; just land on the app.
			http.Redirect(w, r, redirectURI, http.StatusFound)
			return
		}
		h.logger().ErrorContext(r.Context(), "post-login bootstrap failed", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "bootstrap_failed",
			Err:     errors.New("could not resolve session state"),
		})
		return
	}

	if boot.Session != nil {
		h.setSessionCookie(w, r, *boot.Session)
	} else {
		// The bootstrap refused the login (e.g. no account on login
		// intent); make sure no half-session lingers on the client.
		h.clearCookie(w, r, sessionCookieName)
	}

	http.Redirect(w, r, redirectWithOutcome(redirectURI, boot), http.StatusFound)
}

// Logout handles the logout endpoint.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(sessionCookieName); err == nil {
		if _, logoutErr := h.Bootstrap.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.clearCookie(w, r, sessionCookieName)

	redirectURI := r.FormValue("redirect_uri")
	if redirectURI == "" {
		redirectURI = r.URL.Query().Get("redirect_uri")
	}
	redirectURI = safeRedirectPath(redirectURI)

	// AJAX requests get a JSON payload; regular requests redirect.
	isAJAX := strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
	if isAJAX {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"redirect_to": redirectURI,
		})
		return
	}

	http.Redirect(w, r, redirectURI, http.StatusFound)
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{
			"authenticated": false,
		})
		return
	}

	session, err := h.Svc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		// Session is invalid or expired, clear the cookie
		h.clearCookie(w, r, sessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]any{
			"authenticated": false,
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"principal":   session.Principal,
			"first_name":  session.FirstName,
			"last_name":   session.LastName,
			"email":       session.Email,
			"role":        session.Role,
			"username":    session.Username,
			"has_profile": session.HasProfile,
			"is_admin":    session.IsAdmin,
		},
		"state":      session.State,
		"expires_at": session.ExpiresAt,
	})
}

// redirectWithOutcome appends the bootstrap outcome to the post-login
// redirect so the SPA can render a blocking error or transient notice
// without another round trip.
func redirectWithOutcome(redirectURI string, boot *service.Result) string {
	u, err := url.Parse(redirectURI)
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	if boot.Err != "" {
		q.Set(authErrorParam, boot.Err)
		if boot.Retryable {
			q.Set(authRetryParam, "1")
		}
	}
	if boot.Notice != "" {
		q.Set(authNoticeParam, boot.Notice)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (h *AuthHandlers) intentFromCookie(r *http.Request) domainauth.Intent {
	c, err := r.Cookie(loginIntentCookieName)
	if err != nil || c.Value != string(domainauth.IntentSignup) {
		return domainauth.IntentLogin
	}
	return domainauth.IntentSignup
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	cd := h.CookieDomain
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   cd,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// oauthCookieParams groups values needed to set OAuth cookies (≤3 params rule).
type oauthCookieParams struct {
	State       string
	Nonce       string
	Intent      domainauth.Intent
	RedirectURI string
}

// setOAuthCookies stores OAuth state, nonce, intent, and the post-login redirect in secure cookies.
func (h *AuthHandlers) setOAuthCookies(w http.ResponseWriter, r *http.Request, p oauthCookieParams) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	cd := h.CookieDomain

	for name, value := range map[string]string{
		oauthStateCookieName:  p.State,
		oauthNonceCookieName:  p.Nonce,
		loginIntentCookieName: string(p.Intent),
		postLoginRedirectName: p.RedirectURI,
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			Domain:   cd,
			HttpOnly: true,
			Secure:   isSecure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   oauthCookieMaxAge,
		})
	}
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	cd := h.CookieDomain
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   cd,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// getPostLoginRedirect returns the post-login redirect URL and clears the cookie.
func (h *AuthHandlers) getPostLoginRedirect(w http.ResponseWriter, r *http.Request) string {
	redirectURI := "/"
	if redirectCookie, err := r.Cookie(postLoginRedirectName); err == nil {
		redirectURI = h.Redirects.Sanitize(redirectCookie.Value)
		h.clearCookie(w, r, postLoginRedirectName)
	}
	return redirectURI
}
