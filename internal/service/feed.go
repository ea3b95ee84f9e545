package service

import (
	"context"
	"strings"

	"github.com/socialnet-labs/ui-api/internal/domain/social"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/ports"
)

// FeedServiceOptions groups dependencies for FeedService.
type FeedServiceOptions struct {
	Sessions ports.SessionStore
	Handles  ports.HandleFactory
}

// FeedService proxies the post surface of the backend. Reads work for
// any session with a profile; writes additionally go through the
// caller's authenticated handle.
type FeedService struct {
	sessions ports.SessionStore
	handles  ports.HandleFactory
}

// NewFeedService constructs a new FeedService.
func NewFeedService(opts FeedServiceOptions) *FeedService {
	return &FeedService{
		sessions: opts.Sessions,
		handles:  opts.Handles,
	}
}

const maxPostContentLength = 4000

// Feed returns the personalized feed for the session's principal.
func (s *FeedService) Feed(ctx context.Context, sessionID string) ([]social.Post, error) {
	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return nil, err
	}
	if profileErr := requireProfile(sess); profileErr != nil {
		return nil, profileErr
	}
	return handle.GetUserFeed(ctx, sess.Principal)
}

// AllPosts returns the global post list.
func (s *FeedService) AllPosts(ctx context.Context, sessionID string) ([]social.Post, error) {
	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return nil, err
	}
	if profileErr := requireProfile(sess); profileErr != nil {
		return nil, profileErr
	}
	return handle.GetAllPosts(ctx)
}

// CreatePost publishes a new post for the session's principal.
func (s *FeedService) CreatePost(ctx context.Context, sessionID string, in social.NewPost) (social.Post, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return social.Post{}, apperrors.ValidationField("content", "content is required")
	}
	if len(in.Content) > maxPostContentLength {
		return social.Post{}, apperrors.ValidationField("content", "content is too long")
	}

	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return social.Post{}, err
	}
	if profileErr := requireProfile(sess); profileErr != nil {
		return social.Post{}, profileErr
	}
	return handle.CreatePost(ctx, in)
}

// Like marks a post liked by the session's principal.
func (s *FeedService) Like(ctx context.Context, sessionID, postID string) error {
	if postID == "" {
		return apperrors.ValidationField("post_id", "post ID is required")
	}
	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return err
	}
	if profileErr := requireProfile(sess); profileErr != nil {
		return profileErr
	}
	return handle.LikePost(ctx, postID)
}

// Unlike removes the principal's like from a post.
func (s *FeedService) Unlike(ctx context.Context, sessionID, postID string) error {
	if postID == "" {
		return apperrors.ValidationField("post_id", "post ID is required")
	}
	sess, handle, err := sessionHandle(ctx, s.sessions, s.handles, sessionID)
	if err != nil {
		return err
	}
	if profileErr := requireProfile(sess); profileErr != nil {
		return profileErr
	}
	return handle.UnlikePost(ctx, postID)
}
