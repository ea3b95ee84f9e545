package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses OAuth/OIDC for authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration for the identity
// provider the SPA delegates authentication to.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"socialnet-ui"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"socialnet-ui"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`

	// MaxSessionLifetime caps the server-side session regardless of the
	// token expiry the provider reports.
	MaxSessionLifetime time.Duration `env:"MAX_SESSION_LIFETIME" envDefault:"168h"`

	// PrincipalClaimPath and GroupsClaimPath are optional JMESPath
	// expressions evaluated against the raw claim set when a provider
	// does not use the standard claim names. Empty means the built-in
	// claim precedence applies.
	PrincipalClaimPath string `env:"PRINCIPAL_CLAIM_PATH"`
	GroupsClaimPath    string `env:"GROUPS_CLAIM_PATH"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	Principal string   `env:"PRINCIPAL" envDefault:"dev-principal"`
	Email     string   `env:"EMAIL"     envDefault:"dev@example.com"`
	Groups    []string `env:"GROUPS"    envDefault:"admins"            envSeparator:";"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// AdminGroup is the IdP group granting admin role.
	AdminGroup string `env:"ADMIN_GROUP,required"`

	// UserGroup is the IdP group granting regular user role.
	UserGroup string `env:"USER_GROUP,required"`
}
