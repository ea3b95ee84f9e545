package service

import (
	"context"
	"strings"
	"testing"
	"time"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	"github.com/socialnet-labs/ui-api/internal/domain/social"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/mocks"
	authmocks "github.com/socialnet-labs/ui-api/internal/mocks/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type feedFixture struct {
	store   *authmocks.MemorySessionStore
	factory *mocks.MockHandleFactory
	handle  *mocks.MockBackendHandle
	svc     *FeedService
}

func newFeedFixture(t *testing.T) *feedFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &feedFixture{
		store:   authmocks.NewMemorySessionStore(),
		factory: mocks.NewMockHandleFactory(ctrl),
		handle:  mocks.NewMockBackendHandle(ctrl),
	}
	f.svc = NewFeedService(FeedServiceOptions{Sessions: f.store, Handles: f.factory})
	return f
}

func (f *feedFixture) seedReadySession(t *testing.T) string {
	t.Helper()
	sess := domainauth.Session{
		ID:         "sess-1",
		Principal:  testPrincipal,
		Role:       domainauth.RoleUser,
		State:      domainauth.StateReady,
		Generation: 1,
		HasProfile: true,
		Username:   "alice",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, f.store.Save(context.Background(), sess))
	f.factory.EXPECT().ForIdentity(gomock.Any()).Return(f.handle, nil).AnyTimes()
	return sess.ID
}

func (f *feedFixture) seedRegisteringSession(t *testing.T) string {
	t.Helper()
	sess := domainauth.Session{
		ID:         "sess-reg",
		Principal:  testPrincipal,
		Role:       domainauth.RoleUser,
		State:      domainauth.StateRegistering,
		Generation: 1,
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, f.store.Save(context.Background(), sess))
	f.factory.EXPECT().ForIdentity(gomock.Any()).Return(f.handle, nil).AnyTimes()
	return sess.ID
}

func TestFeed(t *testing.T) {
	f := newFeedFixture(t)
	id := f.seedReadySession(t)
	posts := []social.Post{{PostID: "p1", AuthorID: "u-1", Content: "hello"}}
	f.handle.EXPECT().GetUserFeed(gomock.Any(), testPrincipal).Return(posts, nil)

	got, err := f.svc.Feed(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestFeed_NoSession(t *testing.T) {
	f := newFeedFixture(t)

	_, err := f.svc.Feed(context.Background(), "")
	assert.True(t, apperrors.IsUnauthenticated(err))

	_, err = f.svc.Feed(context.Background(), "unknown")
	assert.True(t, apperrors.IsUnauthenticated(err))
}

func TestFeed_RequiresProfile(t *testing.T) {
	f := newFeedFixture(t)
	id := f.seedRegisteringSession(t)

	_, err := f.svc.Feed(context.Background(), id)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestCreatePost(t *testing.T) {
	f := newFeedFixture(t)
	id := f.seedReadySession(t)
	in := social.NewPost{Content: "hello world", Hashtags: []string{"intro"}}
	f.handle.EXPECT().CreatePost(gomock.Any(), in).
		Return(social.Post{PostID: "p1", Content: "hello world"}, nil)

	post, err := f.svc.CreatePost(context.Background(), id, in)
	require.NoError(t, err)
	assert.Equal(t, "p1", post.PostID)
}

func TestCreatePost_Validation(t *testing.T) {
	f := newFeedFixture(t)
	id := f.seedReadySession(t)

	_, err := f.svc.CreatePost(context.Background(), id, social.NewPost{Content: "   "})
	require.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "content", apperrors.GetField(err))

	_, err = f.svc.CreatePost(context.Background(), id, social.NewPost{
		Content: strings.Repeat("a", maxPostContentLength+1),
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestLikeUnlike(t *testing.T) {
	f := newFeedFixture(t)
	id := f.seedReadySession(t)
	f.handle.EXPECT().LikePost(gomock.Any(), "p1").Return(nil)
	f.handle.EXPECT().UnlikePost(gomock.Any(), "p1").Return(nil)

	require.NoError(t, f.svc.Like(context.Background(), id, "p1"))
	require.NoError(t, f.svc.Unlike(context.Background(), id, "p1"))

	err := f.svc.Like(context.Background(), id, "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestAllPosts(t *testing.T) {
	f := newFeedFixture(t)
	id := f.seedReadySession(t)
	f.handle.EXPECT().GetAllPosts(gomock.Any()).Return([]social.Post{{PostID: "p1"}, {PostID: "p2"}}, nil)

	posts, err := f.svc.AllPosts(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
