package main

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/dex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/dex-api/internal/config"
	"github.com/KirkDiggler/dex-api/internal/errors"
	dexv1 "github.com/KirkDiggler/dex-api/internal/handlers/dex/v1"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/typechart"
	redisclient "github.com/KirkDiggler/dex-api/internal/redis"
	"github.com/KirkDiggler/dex-api/internal/repositories/resourcecache"
	"github.com/KirkDiggler/dex-api/internal/services/catalog"
	"github.com/KirkDiggler/dex-api/internal/services/session"
)

// app holds the wired server and everything that needs closing with it
type app struct {
	server   *grpc.Server
	health   *health.Server
	sessions session.Service
	closers  []func() error
}

// newLogger builds the process logger from the log section
func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// logFunc bridges the middleware logger onto slog. The middleware levels share
// slog's numeric values.
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic in handler", "panic", p)
	return errors.ToGRPCError(errors.Internalf("internal error: %v", p))
}

func newResourceCache(cfg config.RedisConfig) (resourcecache.Repository, func() error, error) {
	if cfg.Endpoint == "" {
		slog.Info("using in-memory resource cache")
		return resourcecache.NewInMemory(nil), func() error { return nil }, nil
	}

	client, err := redisclient.NewClient(cfg.Endpoint, &redisclient.Options{
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
	}

	repo, err := resourcecache.NewRedis(&resourcecache.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	slog.Info("using redis resource cache", "endpoint", cfg.Endpoint)
	return repo, client.Close, nil
}

// newApp wires services, handlers and the gRPC server from cfg
func newApp(cfg *config.Config) (*app, error) {
	cache, closeCache, err := newResourceCache(cfg.Redis)
	if err != nil {
		return nil, err
	}

	// catalog and type chart are process scoped and bypass the session cache
	shared, err := pokeapi.New(&pokeapi.Config{
		BaseURL:      cfg.PokeAPI.BaseURL,
		FetchTimeout: cfg.PokeAPI.FetchTimeout,
	})
	if err != nil {
		_ = closeCache()
		return nil, errors.Wrap(err, "failed to create pokeapi client")
	}

	cat, err := catalog.New(&catalog.Config{Client: shared})
	if err != nil {
		_ = closeCache()
		return nil, errors.Wrap(err, "failed to create catalog")
	}

	chart, err := typechart.NewOrchestrator(&typechart.Config{Client: shared})
	if err != nil {
		_ = closeCache()
		return nil, errors.Wrap(err, "failed to create type chart")
	}

	sessions, err := session.New(&session.Config{
		BaseURL:             cfg.PokeAPI.BaseURL,
		FetchTimeout:        cfg.PokeAPI.FetchTimeout,
		Catalog:             cat,
		Cache:               cache,
		IdleTTL:             cfg.Session.IdleTTL,
		PageSize:            cfg.Session.PageSize,
		MaxEvolutionFetches: cfg.Session.MaxEvolutionFetches,
	})
	if err != nil {
		_ = closeCache()
		return nil, errors.Wrap(err, "failed to create session service")
	}

	handler, err := dexv1.NewHandler(&dexv1.HandlerConfig{
		Sessions:  sessions,
		TypeChart: chart,
		Catalog:   cat,
	})
	if err != nil {
		_ = closeCache()
		return nil, errors.Wrap(err, "failed to create dex handler")
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
	)

	dexv1.RegisterDexServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(dexv1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return &app{
		server:   srv,
		health:   healthServer,
		sessions: sessions,
		closers:  []func() error{closeCache},
	}, nil
}

// shutdown marks the server as not serving, ends every session and closes
// the cache. The caller stops the gRPC server first.
func (a *app) shutdown(ctx context.Context) error {
	a.health.Shutdown()

	var firstErr error
	if err := a.sessions.Shutdown(ctx); err != nil {
		firstErr = err
	}
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
