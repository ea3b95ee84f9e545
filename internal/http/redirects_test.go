package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirectPolicy_RelativePaths(t *testing.T) {
	p := NewRedirectPolicy("https://app.socialnet.example.com")

	assert.Equal(t, "/feed", p.Sanitize("/feed"))
	assert.Equal(t, "/users?sort=name", p.Sanitize("/users?sort=name"))
	assert.Equal(t, "/", p.Sanitize(""))
	assert.Equal(t, "/", p.Sanitize("feed"))

	// Scheme-relative URLs would escape the origin.
	assert.Equal(t, "/", p.Sanitize("//evil.example.com/feed"))
}

func TestRedirectPolicy_AbsoluteURLs(t *testing.T) {
	p := NewRedirectPolicy("https://app.socialnet.example.com")

	// Same host and same registrable domain are allowed.
	assert.Equal(t, "https://app.socialnet.example.com/feed",
		p.Sanitize("https://app.socialnet.example.com/feed"))
	assert.Equal(t, "https://admin.socialnet.example.com/",
		p.Sanitize("https://admin.socialnet.example.com/"))

	// Other domains and non-web schemes are not.
	assert.Equal(t, "/", p.Sanitize("https://evil.example.org/feed"))
	assert.Equal(t, "/", p.Sanitize("javascript:alert(1)"))
	assert.Equal(t, "/", p.Sanitize("ftp://app.socialnet.example.com/feed"))
}

func TestRedirectPolicy_EmptyBase(t *testing.T) {
	p := NewRedirectPolicy("not a url")

	assert.Equal(t, "/feed", p.Sanitize("/feed"))
	assert.Equal(t, "/", p.Sanitize("https://anywhere.example.com/"))
}

func TestSafeRedirectPath(t *testing.T) {
	assert.Equal(t, "/feed", safeRedirectPath("/feed"))
	assert.Equal(t, "/", safeRedirectPath(""))
	assert.Equal(t, "/", safeRedirectPath("https://evil.example.com/"))
	assert.Equal(t, "/", safeRedirectPath("//evil.example.com"))
	assert.Equal(t, "/", safeRedirectPath("feed"))
}
