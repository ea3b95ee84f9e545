package backend

import (
	"errors"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	"github.com/socialnet-labs/ui-api/internal/ports"
)

// Factory builds backend handles over one shared gateway client.
// Construction never touches the network.
type Factory struct {
	client    *Client
	anonymous *Handle
}

// NewFactory creates a handle factory over the given client.
func NewFactory(client *Client) (*Factory, error) {
	if client == nil {
		return nil, errors.New("gateway client is required")
	}
	return &Factory{
		client:    client,
		anonymous: &Handle{client: client, kind: ports.HandleAnonymous},
	}, nil
}

// Anonymous returns the shared identity-less handle.
func (f *Factory) Anonymous() ports.BackendHandle {
	return f.anonymous
}

// ForIdentity returns a handle bound to the given identity.
func (f *Factory) ForIdentity(identity domainauth.Identity) (ports.BackendHandle, error) {
	if identity.Principal == "" {
		return nil, errors.New("identity has no principal")
	}
	return &Handle{
		client: f.client,
		kind:   ports.HandleAuthenticated,
		caller: identity.Principal,
	}, nil
}
