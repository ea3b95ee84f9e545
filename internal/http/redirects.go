package httpx

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// RedirectPolicy validates post-login redirect targets. Relative paths
// are always allowed; absolute URLs only when they stay within the
// application base URL's registrable domain.
type RedirectPolicy struct {
	baseHost string
	baseSite string
}

// NewRedirectPolicy builds a policy from the application base URL.
// An unparseable base URL yields a relative-only policy.
func NewRedirectPolicy(baseURL string) RedirectPolicy {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return RedirectPolicy{}
	}
	p := RedirectPolicy{baseHost: u.Hostname()}
	if site, siteErr := publicsuffix.EffectiveTLDPlusOne(p.baseHost); siteErr == nil {
		p.baseSite = site
	}
	return p
}

// Sanitize returns a safe redirect target for the candidate, falling
// back to "/" for anything that would leave the application.
func (p RedirectPolicy) Sanitize(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil {
		return "/"
	}

	// Relative path within the app.
	if !u.IsAbs() && u.Host == "" {
		if strings.HasPrefix(u.Path, "/") && !strings.HasPrefix(u.Path, "//") {
			return candidate
		}
		return "/"
	}

	// Absolute URLs must be http(s) on the base URL's registrable domain.
	if u.Scheme != "http" && u.Scheme != "https" {
		return "/"
	}
	if !p.sameSite(u.Hostname()) {
		return "/"
	}
	return candidate
}

func (p RedirectPolicy) sameSite(host string) bool {
	if host == "" || p.baseHost == "" {
		return false
	}
	if strings.EqualFold(host, p.baseHost) {
		return true
	}
	if p.baseSite == "" {
		return false
	}
	site, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return false
	}
	return strings.EqualFold(site, p.baseSite)
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	if strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return candidate
}
