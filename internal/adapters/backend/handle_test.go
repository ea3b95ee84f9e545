package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	"github.com/socialnet-labs/ui-api/internal/domain/profile"
	"github.com/socialnet-labs/ui-api/internal/domain/social"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway records calls and replies per method.
type fakeGateway struct {
	t       *testing.T
	replies map[string]string // method -> raw JSON reply body
	calls   []envelope
}

func (g *fakeGateway) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var env envelope
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			g.t.Fatalf("decode envelope: %v", err)
		}
		g.calls = append(g.calls, env)

		body, ok := g.replies[env.Method]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func newTestFactory(t *testing.T, gw *fakeGateway) *Factory {
	t.Helper()

	srv := httptest.NewServer(gw.handler())
	t.Cleanup(srv.Close)

	client, err := NewClient(ClientConfig{
		Host:           srv.URL,
		ServiceID:      "bkyz2-fmaaa-aaaaa-qaaaq-cai",
		RequestTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	factory, err := NewFactory(client)
	require.NoError(t, err)
	return factory
}

func authedHandle(t *testing.T, f *Factory) ports.BackendHandle {
	t.Helper()
	h, err := f.ForIdentity(domainauth.Identity{Principal: "w7x2k-principal"})
	require.NoError(t, err)
	return h
}

func TestHandle_GetUser_RawPassthrough(t *testing.T) {
	shapes := []struct {
		name string
		body string
	}{
		{"container with profile", `{"ok": [{"user_id": "w7x2k-principal", "username": "jo"}]}`},
		{"empty container", `{"ok": []}`},
		{"bare object", `{"ok": {"user_id": "w7x2k-principal", "username": "jo"}}`},
		{"null", `{"ok": null}`},
	}

	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{t: t, replies: map[string]string{"get_user": tt.body}}
			f := newTestFactory(t, gw)

			raw, err := f.Anonymous().GetUser(context.Background(), "w7x2k-principal")
			require.NoError(t, err)

			// The raw value round-trips through normalization untouched.
			_, normErr := profile.Normalize(raw)
			assert.NoError(t, normErr)
		})
	}
}

func TestHandle_CallerPropagation(t *testing.T) {
	gw := &fakeGateway{t: t, replies: map[string]string{"is_caller_admin": `{"ok": true}`}}
	f := newTestFactory(t, gw)

	isAdmin, err := authedHandle(t, f).IsCallerAdmin(context.Background())
	require.NoError(t, err)
	assert.True(t, isAdmin)

	require.Len(t, gw.calls, 1)
	assert.Equal(t, "w7x2k-principal", gw.calls[0].Caller)
	assert.Equal(t, "is_caller_admin", gw.calls[0].Method)
}

func TestHandle_AnonymousHasNoCaller(t *testing.T) {
	gw := &fakeGateway{t: t, replies: map[string]string{"is_caller_admin": `{"ok": false}`}}
	f := newTestFactory(t, gw)

	isAdmin, err := f.Anonymous().IsCallerAdmin(context.Background())
	require.NoError(t, err)
	assert.False(t, isAdmin)

	require.Len(t, gw.calls, 1)
	assert.Empty(t, gw.calls[0].Caller)
}

func TestHandle_WritesRejectedOnAnonymous(t *testing.T) {
	gw := &fakeGateway{t: t, replies: map[string]string{}}
	f := newTestFactory(t, gw)
	anon := f.Anonymous()
	ctx := context.Background()

	_, err := anon.CreateUser(ctx, ports.CreateProfileInput{Username: "jo"})
	assert.True(t, apperrors.IsUnauthenticated(err))

	_, err = anon.UpdateUser(ctx, ports.UpdateProfileInput{})
	assert.True(t, apperrors.IsUnauthenticated(err))

	_, err = anon.DeleteUser(ctx)
	assert.True(t, apperrors.IsUnauthenticated(err))

	_, err = anon.CreatePost(ctx, social.NewPost{Content: "hi"})
	assert.True(t, apperrors.IsUnauthenticated(err))

	err = anon.LikePost(ctx, "post-1")
	assert.True(t, apperrors.IsUnauthenticated(err))

	// No write ever reached the gateway.
	assert.Empty(t, gw.calls)
}

func TestHandle_CreateUser_Success(t *testing.T) {
	gw := &fakeGateway{t: t, replies: map[string]string{"create_user": `{"ok": "User created successfully"}`}}
	f := newTestFactory(t, gw)

	status, err := authedHandle(t, f).CreateUser(context.Background(), ports.CreateProfileInput{Username: "jo"})
	require.NoError(t, err)
	assert.Equal(t, "User created successfully", status)

	require.Len(t, gw.calls, 1)
	require.Len(t, gw.calls[0].Args, 1)

	var in ports.CreateProfileInput
	require.NoError(t, json.Unmarshal(gw.calls[0].Args[0], &in))
	assert.Equal(t, "jo", in.Username)
}

func TestHandle_CreateUser_AlreadyExists(t *testing.T) {
	gw := &fakeGateway{t: t, replies: map[string]string{"create_user": `{"err": "User already exists"}`}}
	f := newTestFactory(t, gw)

	_, err := authedHandle(t, f).CreateUser(context.Background(), ports.CreateProfileInput{Username: "jo"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestHandle_AdminReject(t *testing.T) {
	gw := &fakeGateway{t: t, replies: map[string]string{
		"admin_promote_user": `{"err": "Unauthorized: Only admins can promote users"}`,
	}}
	f := newTestFactory(t, gw)

	_, err := authedHandle(t, f).AdminPromoteUser(context.Background(), "bbbbb-bb")
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestHandle_GetAllPosts(t *testing.T) {
	gw := &fakeGateway{t: t, replies: map[string]string{
		"get_all_posts": `{"ok": [{"post_id": "p1", "author_id": "a", "content": "hello", "likes": 3}]}`,
	}}
	f := newTestFactory(t, gw)

	posts, err := f.Anonymous().GetAllPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "p1", posts[0].PostID)
	assert.Equal(t, int64(3), posts[0].Likes)
}

func TestHandle_GatewayUnavailable(t *testing.T) {
	client, err := NewClient(ClientConfig{
		Host:           "http://127.0.0.1:1", // nothing listens here
		ServiceID:      "bkyz2-fmaaa-aaaaa-qaaaq-cai",
		RequestTimeout: time.Second,
	})
	require.NoError(t, err)
	f, err := NewFactory(client)
	require.NoError(t, err)

	_, err = f.Anonymous().GetAllPosts(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsRetryable(err))
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(ClientConfig{ServiceID: "x"})
	require.Error(t, err)

	_, err = NewClient(ClientConfig{Host: "http://localhost:4943"})
	require.Error(t, err)
}

func TestFactory_ForIdentity_RequiresPrincipal(t *testing.T) {
	gw := &fakeGateway{t: t, replies: map[string]string{}}
	f := newTestFactory(t, gw)

	_, err := f.ForIdentity(domainauth.Identity{})
	require.Error(t, err)
}

func TestFactory_Kinds(t *testing.T) {
	gw := &fakeGateway{t: t, replies: map[string]string{}}
	f := newTestFactory(t, gw)

	assert.Equal(t, ports.HandleAnonymous, f.Anonymous().Kind())
	assert.Equal(t, ports.HandleAuthenticated, authedHandle(t, f).Kind())
}
