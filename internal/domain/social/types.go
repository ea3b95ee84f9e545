package social

// Package social holds the wire-facing domain types proxied from the
// remote social-network backend: posts, admin statistics, and the
// directory entries the admin dashboard renders. Profile lives in its
// own package because of its optional wire encoding.

import "time"

// Post is a feed entry as the backend reports it.
type Post struct {
	PostID        string    `json:"post_id"`
	AuthorID      string    `json:"author_id"`
	Content       string    `json:"content"`
	Hashtags      []string  `json:"hashtags,omitempty"`
	MediaURLs     []string  `json:"media_urls,omitempty"`
	Likes         int64     `json:"likes"`
	CommentsCount int64     `json:"comments_count"`
	SharesCount   int64     `json:"shares_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewPost carries the caller-supplied fields of a post being created.
type NewPost struct {
	Content   string   `json:"content"`
	Hashtags  []string `json:"hashtags,omitempty"`
	MediaURLs []string `json:"media_urls,omitempty"`
}

// AdminStats is the aggregate panel of the admin dashboard.
type AdminStats struct {
	TotalUsers  int64 `json:"total_users"`
	TotalAdmins int64 `json:"total_admins"`
	TotalPosts  int64 `json:"total_posts"`
}

// DirectoryUser is the detailed per-user row admins see; regular users
// get the plain Profile instead.
type DirectoryUser struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name,omitempty"`
	ProfilePic string    `json:"profile_pic,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}
