package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/socialnet-labs/ui-api/config"
	"github.com/socialnet-labs/ui-api/internal/adapters/authroles"
	"github.com/socialnet-labs/ui-api/internal/adapters/devauth"
	"github.com/socialnet-labs/ui-api/internal/adapters/oidc"
	"github.com/socialnet-labs/ui-api/internal/ports"
	"github.com/socialnet-labs/ui-api/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth     config.AuthConfig
	Sessions ports.SessionStore
	IsDev    bool
	Logger   *slog.Logger
}

// BuildAuthService creates the auth service for the configured auth
// mode. Authentication is the gateway's whole job, so a provider that
// cannot be built is a startup error rather than a disabled feature.
func BuildAuthService(cfg AuthConfig) (*service.AuthService, error) {
	if cfg.Sessions == nil {
		return nil, errors.New("auth service requires a session store")
	}

	roleMapper := authroles.StaticRoleMapper{
		AdminGroup: cfg.Auth.AdminGroup,
		UserGroup:  cfg.Auth.UserGroup,
	}

	provider, err := buildAuthProvider(cfg)
	if err != nil {
		return nil, err
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: provider,
		Sessions: cfg.Sessions,
		Roles:    roleMapper,
	}), nil
}

//nolint:ireturn // both provider implementations satisfy ports.AuthProvider.
func buildAuthProvider(cfg AuthConfig) (ports.AuthProvider, error) {
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		if !cfg.IsDev && cfg.Logger != nil {
			cfg.Logger.Warn("mock auth enabled outside development mode")
		}
		return buildDevProvider(cfg.Auth.DevAuth)

	case config.AuthModeOAuth:
		return buildOIDCProvider(cfg.Auth.OAuth)

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}

func buildDevProvider(cfg config.DevAuthConfig) (*devauth.Provider, error) {
	prov, err := devauth.NewProvider(devauth.Config{
		Principal: cfg.Principal,
		Email:     cfg.Email,
		Groups:    cfg.Groups,
		// session duration defaults inside provider
	})
	if err != nil {
		return nil, fmt.Errorf("create dev auth provider: %w", err)
	}
	return prov, nil
}

func buildOIDCProvider(oauth config.OAuthConfig) (*oidc.Provider, error) {
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		return nil, fmt.Errorf(
			"oauth mode requires discovery URL, client id, and client secret (discovery_url_empty=%t client_id_empty=%t client_secret_empty=%t)",
			oauth.DiscoveryURL == "", oauth.ClientID == "", oauth.ClientSecret == "",
		)
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:           oauth.ClientID,
		ClientSecret:       oauth.ClientSecret,
		RedirectURL:        oauth.RedirectURL,
		Scope:              oauth.Scope,
		DiscoveryURL:       oauth.DiscoveryURL,
		LogoutURL:          oauth.LogoutURL,
		MaxSessionLifetime: oauth.MaxSessionLifetime,
		PrincipalClaimPath: oauth.PrincipalClaimPath,
		GroupsClaimPath:    oauth.GroupsClaimPath,
	})
	if err != nil {
		return nil, fmt.Errorf("create OIDC provider: %w", err)
	}
	return prov, nil
}
