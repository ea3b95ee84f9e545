package httpx

// Cookie names used across the auth handlers and middleware.
const (
	sessionCookieName     = "session_id"
	oauthStateCookieName  = "oauth_state"
	oauthNonceCookieName  = "oauth_nonce"
	loginIntentCookieName = "login_intent"
	postLoginRedirectName = "post_login_redirect"

	// oauthCookieMaxAge bounds how long a pending IdP round trip stays
	// valid, so a stuck login popup cannot be completed much later.
	oauthCookieMaxAge = 600
)

// Query parameters appended to the post-login redirect so the SPA can
// render a blocking error without another round trip.
const (
	authErrorParam  = "auth_error"
	authRetryParam  = "auth_retry"
	authNoticeParam = "auth_notice"
)
