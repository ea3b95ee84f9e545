package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/socialnet-labs/ui-api/config"
	"github.com/socialnet-labs/ui-api/internal/adapters/backend"
	redisadapter "github.com/socialnet-labs/ui-api/internal/adapters/redis"
	"github.com/socialnet-labs/ui-api/internal/data"
	"github.com/socialnet-labs/ui-api/internal/observability/statsd"
	"github.com/socialnet-labs/ui-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Bootstrap *service.BootstrapService
	Feed      *service.FeedService
	Directory *service.DirectoryService
	Account   *service.AccountService

	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps contains external dependencies for service construction.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups the adapters backing service ports.
type serviceRepositories struct {
	Sessions   *redisadapter.SessionStore
	AuthEvents *data.AuthEventRepo
	Backend    *backend.Factory
}

// buildObservability configures the metrics sink.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	obsLogger := logger
	if obsLogger == nil {
		obsLogger = slog.Default()
	}

	var metricsSink *statsd.Client
	if cfg.Metrics.IsEnabled() {
		client, err := statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  "uiapi",
			Logger:  obsLogger,
		})
		if err != nil {
			obsLogger.Error("failed to initialise statsd client", "error", err)
		} else {
			metricsSink = client
		}
	}

	return ObservabilityContainer{
		MetricsSink:   metricsSink,
		MetricsConfig: cfg.Metrics,
	}
}

// buildRepositories builds the adapters backing service ports; no
// business rules here.
func buildRepositories(deps *ServiceDeps) (*serviceRepositories, error) {
	backendClient, err := backend.NewClient(backend.ClientConfig{
		Host:           deps.Config.Backend.GatewayHost(),
		ServiceID:      deps.Config.Backend.ServiceID,
		RequestTimeout: deps.Config.Backend.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build backend client: %w", err)
	}
	factory, err := backend.NewFactory(backendClient)
	if err != nil {
		return nil, fmt.Errorf("build backend handle factory: %w", err)
	}

	return &serviceRepositories{
		Sessions:   redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, "session:"),
		AuthEvents: data.NewAuthEventRepo(deps.DB),
		Backend:    factory,
	}, nil
}

// NewServices wires the full service graph from shared infrastructure.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, fmt.Errorf("service deps and config are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	observability := buildObservability(logger, deps.Config.Observability)

	repos, err := buildRepositories(deps)
	if err != nil {
		return ServiceContainer{}, err
	}

	authService, err := BuildAuthService(AuthConfig{
		Auth:     deps.Config.Auth,
		Sessions: repos.Sessions,
		IsDev:    deps.Config.IsDev,
		Logger:   logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build auth service: %w", err)
	}

	bootstrapService := service.NewBootstrapService(service.BootstrapServiceOptions{
		Sessions: repos.Sessions,
		Handles:  repos.Backend,
		Recorder: repos.AuthEvents,
		Metrics:  observability.MetricsSink,
		Logger:   logger,
	})

	feedService := service.NewFeedService(service.FeedServiceOptions{
		Sessions: repos.Sessions,
		Handles:  repos.Backend,
	})

	directoryService := service.NewDirectoryService(service.DirectoryServiceOptions{
		Sessions: repos.Sessions,
		Handles:  repos.Backend,
		Recorder: repos.AuthEvents,
	})

	accountService := service.NewAccountService(service.AccountServiceOptions{
		Sessions: repos.Sessions,
		Handles:  repos.Backend,
		Recorder: repos.AuthEvents,
		Logger:   logger,
	})

	return ServiceContainer{
		Auth:          authService,
		Bootstrap:     bootstrapService,
		Feed:          feedService,
		Directory:     directoryService,
		Account:       accountService,
		Observability: observability,
	}, nil
}
