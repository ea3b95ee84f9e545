package config

import (
	"fmt"
	"strings"
	"time"
)

// BackendNetwork selects which deployment of the social-network backend
// the gateway talks to.
type BackendNetwork string

const (
	// NetworkLocal targets a local replica of the backend.
	NetworkLocal BackendNetwork = "local"
	// NetworkPublic targets the public deployment.
	NetworkPublic BackendNetwork = "public"
)

// UnmarshalText implements encoding.TextUnmarshaler for BackendNetwork.
func (n *BackendNetwork) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "local", "public":
		*n = BackendNetwork(v)
		return nil
	default:
		return fmt.Errorf("invalid BackendNetwork: %q (valid options: local, public)", v)
	}
}

// BackendConfig describes the remote social-network backend service.
type BackendConfig struct {
	// ServiceID is the backend service address (canister/service id).
	ServiceID string `env:"SERVICE_ID" envDefault:"bkyz2-fmaaa-aaaaa-qaaaq-cai"`

	// Network selects local vs public deployment. The host is derived
	// from it unless Host is set explicitly.
	Network BackendNetwork `env:"NETWORK" envDefault:"local"`

	// Host overrides the derived gateway host when non-empty.
	Host string `env:"HOST"`

	// RequestTimeout bounds every backend round trip.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"12s"`
}

const (
	localGatewayHost  = "http://localhost:4943"
	publicGatewayHost = "https://ic0.app"
)

// GatewayHost returns the effective backend gateway host.
func (c *BackendConfig) GatewayHost() string {
	if c.Host != "" {
		return c.Host
	}
	if c.Network == NetworkPublic {
		return publicGatewayHost
	}
	return localGatewayHost
}

// Sanitize applies guardrails to backend configuration values.
func (c *BackendConfig) Sanitize() {
	c.Host = strings.TrimRight(strings.TrimSpace(c.Host), "/")
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 12 * time.Second
	}
}
