package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	"github.com/socialnet-labs/ui-api/internal/domain/profile"
	"github.com/socialnet-labs/ui-api/internal/domain/view"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBootstrapBody(t *testing.T, rec *httptest.ResponseRecorder) bootstrapResponse {
	t.Helper()
	var body bootstrapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestResume_Anonymous(t *testing.T) {
	h := &BootstrapHandlers{Svc: &stubBootstrapService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/session/bootstrap", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Resume(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBootstrapBody(t, rec)
	assert.False(t, body.Authenticated)
	assert.Equal(t, string(domainauth.StateAnonymous), body.State)
	assert.Equal(t, string(view.Landing), body.View)
}

func TestResume_PassesSessionAndView(t *testing.T) {
	var got service.ResumeInput
	boot := &stubBootstrapService{
		ResumeFunc: func(_ context.Context, in service.ResumeInput) (*service.Result, error) {
			got = in
			sess := domainauth.Session{ID: in.SessionID, Principal: "w7x2k-principal", Username: "alice"}
			p := profile.Profile{UserID: "u-1", Username: "alice"}
			return &service.Result{
				Session: &sess, State: domainauth.StateReady, View: view.Users,
				HasProfile: true, Profile: &p,
			}, nil
		},
	}
	h := &BootstrapHandlers{Svc: boot}

	req := httptest.NewRequest(http.MethodPost, "/api/session/bootstrap",
		strings.NewReader(`{"current_view":"users"}`))
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	rec := httptest.NewRecorder()
	h.Resume(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, view.Users, got.CurrentView)

	body := decodeBootstrapBody(t, rec)
	assert.True(t, body.Authenticated)
	assert.Equal(t, "alice", body.Username)
	require.NotNil(t, body.Profile)
	assert.Equal(t, "u-1", body.Profile.UserID)
}

func TestResume_InvalidView(t *testing.T) {
	h := &BootstrapHandlers{Svc: &stubBootstrapService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/session/bootstrap",
		strings.NewReader(`{"current_view":"nope"}`))
	rec := httptest.NewRecorder()
	h.Resume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResume_SessionGoneClearsCookie(t *testing.T) {
	h := &BootstrapHandlers{Svc: &stubBootstrapService{
		ResumeFunc: func(context.Context, service.ResumeInput) (*service.Result, error) {
			return &service.Result{State: domainauth.StateAnonymous, View: view.Landing}, nil
		},
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/session/bootstrap", strings.NewReader(`{}`))
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale"})
	rec := httptest.NewRecorder()
	h.Resume(rec, req)
	res := rec.Result()
	defer res.Body.Close()

	sessCookie := cookieByName(res, sessionCookieName)
	require.NotNil(t, sessCookie)
	assert.Equal(t, -1, sessCookie.MaxAge)
}

func TestRegister_Success(t *testing.T) {
	boot := &stubBootstrapService{
		ConfirmRegistrationFunc: func(_ context.Context, in service.RegisterInput) (*service.Result, error) {
			assert.Equal(t, "sess-1", in.SessionID)
			assert.Equal(t, "alice", in.Profile.Username)
			sess := domainauth.Session{ID: in.SessionID, Username: "alice"}
			p := profile.Profile{UserID: "u-1", Username: "alice"}
			return &service.Result{
				Session: &sess, State: domainauth.StateReady, View: view.Feed,
				HasProfile: true, Profile: &p,
			}, nil
		},
	}
	h := &BootstrapHandlers{Svc: boot}

	req := httptest.NewRequest(http.MethodPost, "/api/session/register",
		strings.NewReader(`{"username":"alice","bio":"hi"}`))
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBootstrapBody(t, rec)
	assert.Equal(t, string(view.Feed), body.View)
	assert.True(t, body.HasProfile)
}

func TestRegister_ValidationError(t *testing.T) {
	boot := &stubBootstrapService{
		ConfirmRegistrationFunc: func(context.Context, service.RegisterInput) (*service.Result, error) {
			return nil, apperrors.ValidationField("username", "username is required")
		},
	}
	h := &BootstrapHandlers{Svc: boot}

	req := httptest.NewRequest(http.MethodPost, "/api/session/register", strings.NewReader(`{"username":""}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"username"`)
}

func TestRegister_Superseded(t *testing.T) {
	boot := &stubBootstrapService{
		ConfirmRegistrationFunc: func(context.Context, service.RegisterInput) (*service.Result, error) {
			return nil, service.ErrSuperseded
		},
	}
	h := &BootstrapHandlers{Svc: boot}

	req := httptest.NewRequest(http.MethodPost, "/api/session/register", strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "superseded")
}

func TestSessionLogout(t *testing.T) {
	var gotSessionID string
	boot := &stubBootstrapService{
		LogoutFunc: func(_ context.Context, sessionID string) (*service.Result, error) {
			gotSessionID = sessionID
			return &service.Result{State: domainauth.StateAnonymous, View: view.Landing}, nil
		},
	}
	h := &BootstrapHandlers{Svc: boot}

	req := httptest.NewRequest(http.MethodPost, "/api/session/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)
	res := rec.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sess-1", gotSessionID)

	body := decodeBootstrapBody(t, rec)
	assert.False(t, body.Authenticated)

	sessCookie := cookieByName(res, sessionCookieName)
	require.NotNil(t, sessCookie)
	assert.Equal(t, -1, sessCookie.MaxAge)
}
