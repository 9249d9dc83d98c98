package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	libdb "hackathon/backend/libs/db"
	libredis "hackathon/backend/libs/redis"
	appconfig "hackathon/backend/services/auth-service/internal/config"
	httpserver "hackathon/backend/services/auth-service/internal/http"
	"hackathon/backend/services/auth-service/internal/http/handlers"
	"hackathon/backend/services/auth-service/internal/password"
	"hackathon/backend/services/auth-service/internal/repository"
	"hackathon/backend/services/auth-service/internal/service"
)

// App wires dependencies for the auth service.
type App struct {
	server  *httpserver.Server
	closers []io.Closer
	logger  *zap.Logger
}

// New builds application graph.
func New(ctx context.Context, cfg *appconfig.Config, logger *zap.Logger) (*App, error) {
	a := &App{logger: logger}

	repo, health, err := a.openStorage(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	hasher := password.NewBcryptHasher(cfg.Password.BcryptCost)
	authSvc := service.NewAuthService(repo, hasher, logger)

	routes := httpserver.Routes{
		Signup: handlers.NewSignupHandler(authSvc, logger),
		Signin: handlers.NewSigninHandler(authSvc, logger),
		Health: handlers.NewHealthHandler(health),
	}

	router := httpserver.NewRouter(routes)
	a.server = httpserver.NewServer(
		cfg.HTTPAddress(),
		router,
		logger,
		httpserver.RecoveryMiddleware(logger),
		httpserver.LoggingMiddleware(logger),
	)
	return a, nil
}

func (a *App) openStorage(ctx context.Context, cfg *appconfig.Config) (service.UserRepository, handlers.HealthCheck, error) {
	switch cfg.Storage.Driver {
	case appconfig.DriverPostgres:
		sqlDB, err := libdb.NewPostgresDB(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, sqlDB)
		repo := repository.NewUserRepository(sqlDB)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, nil, err
		}
		return repo, sqlDB.PingContext, nil
	case appconfig.DriverRedis:
		client, err := libredis.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, client)
		ping := func(ctx context.Context) error { return client.Ping(ctx).Err() }
		return repository.NewRedisUserStore(client), ping, nil
	case appconfig.DriverMemory:
		a.logger.Warn("using in-memory user storage; accounts are lost on restart")
		return repository.NewMemoryUserStore(), nil, nil
	default:
		return nil, nil, fmt.Errorf("app: unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Run starts serving HTTP traffic until context cancellation.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases acquired resources.
func (a *App) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("failed to close resource", zap.Error(err))
		}
	}
	a.closers = nil
}
