package httpx

import (
	"log/slog"
	"net/http"
)

// RouterServices groups the services and settings the router wires into
// handlers.
type RouterServices struct {
	Auth      AuthServiceInterface
	Bootstrap BootstrapServiceInterface
	Feed      FeedServiceInterface
	Directory DirectoryServiceInterface
	Account   AccountServiceInterface
	Admin     AdminServiceInterface

	CookieDomain string
	BaseURL      string
	// RedirectURL is the OAuth callback URL registered with the IdP.
	RedirectURL string
	Logger      *slog.Logger
}

// NewRouter builds the full HTTP handler for the gateway.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	redirects := NewRedirectPolicy(services.BaseURL)

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Bootstrap:    services.Bootstrap,
		CookieDomain: services.CookieDomain,
		RedirectURL:  services.RedirectURL,
		Redirects:    redirects,
		Logger:       logger,
	}
	registerAuthRoutes(mux, authHandlers)

	registerSessionRoutes(mux, &BootstrapHandlers{
		Svc:          services.Bootstrap,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	})

	registerFeedRoutes(mux, &FeedHandlers{Svc: services.Feed}, services.Auth)

	registerUserRoutes(mux, &UserHandlers{
		Directory:    services.Directory,
		Account:      services.Account,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	}, services.Auth)

	registerAdminRoutes(mux, &AdminHandlers{Svc: services.Admin}, services.Auth)

	// Outermost first: recovery wraps logging wraps routing.
	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

func registerSessionRoutes(mux *http.ServeMux, h *BootstrapHandlers) {
	// Resume and logout work for anonymous callers too; the service
	// resolves a missing session to the anonymous outcome.
	mux.HandleFunc("POST /api/session/bootstrap", h.Resume)
	mux.HandleFunc("POST /api/session/register", h.Register)
	mux.HandleFunc("POST /api/session/logout", h.Logout)
}

func registerFeedRoutes(mux *http.ServeMux, h *FeedHandlers, auth AuthServiceInterface) {
	authed := RequireAuth(auth)
	mux.Handle("GET /api/feed", authed(http.HandlerFunc(h.Feed)))
	mux.Handle("GET /api/posts", authed(http.HandlerFunc(h.AllPosts)))
	mux.Handle("POST /api/posts", authed(http.HandlerFunc(h.CreatePost)))
	mux.Handle("POST /api/posts/{id}/like", authed(http.HandlerFunc(h.Like)))
	mux.Handle("DELETE /api/posts/{id}/like", authed(http.HandlerFunc(h.Unlike)))
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers, auth AuthServiceInterface) {
	authed := RequireAuth(auth)
	mux.Handle("GET /api/users", authed(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/users/{principal}", authed(http.HandlerFunc(h.Get)))
	mux.Handle("GET /api/me", authed(http.HandlerFunc(h.Me)))
	mux.Handle("PUT /api/me", authed(http.HandlerFunc(h.UpdateMe)))
	mux.Handle("DELETE /api/me", authed(http.HandlerFunc(h.DeleteMe)))
}

func registerAdminRoutes(mux *http.ServeMux, h *AdminHandlers, auth AuthServiceInterface) {
	adminOnly := RequireAdmin(auth)
	mux.Handle("GET /api/admin/dashboard", adminOnly(http.HandlerFunc(h.Dashboard)))
	mux.Handle("GET /api/admin/auth-events", adminOnly(http.HandlerFunc(h.AuthEvents)))
	mux.Handle("POST /api/admin/users/{principal}/promote", adminOnly(http.HandlerFunc(h.Promote)))
	mux.Handle("POST /api/admin/users/{principal}/demote", adminOnly(http.HandlerFunc(h.Demote)))
	mux.Handle("DELETE /api/admin/users/{principal}", adminOnly(http.HandlerFunc(h.Delete)))
}
