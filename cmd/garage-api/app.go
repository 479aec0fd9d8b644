package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/qauto/garage/modules/account"
	"github.com/qauto/garage/pkg/config"
	"github.com/qauto/garage/pkg/httpserver"
	"github.com/qauto/garage/pkg/logger"
	"github.com/qauto/garage/pkg/pg"
	"github.com/qauto/garage/pkg/redis"
	"github.com/qauto/garage/svc/accounts"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`

	HTTP     httpserver.Config
	Accounts accounts.Config
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "garage-api"),
		logger.WithContextExtractors(httpserver.RequestIDExtractor()),
	}
	if cfg.LogLevel != "" {
		if lvl, err := logger.ParseLevel(cfg.LogLevel); err == nil {
			opts = append(opts, logger.WithLevel(lvl))
		}
	}
	return logger.New(opts...)
}

type app struct {
	Handler http.Handler
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newApp wires the storage backends, the accounts service and the HTTP routes.
func newApp(ctx context.Context, cfg appConfig, log *slog.Logger) (*app, error) {
	a := &app{}
	var probes []func(context.Context) error

	storage, probe, closer, err := openStorage(ctx, cfg.Accounts.Storage, log)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	if probe != nil {
		probes = append(probes, probe)
	}

	sessions, probe, closer, err := openSessions(ctx, cfg.Accounts, log)
	if err != nil {
		a.Close()
		return nil, err
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	if probe != nil {
		probes = append(probes, probe)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := accounts.NewService(storage, sessions,
		accounts.WithConfig(cfg.Accounts),
		accounts.WithLogger(log),
		accounts.WithMetrics(accounts.NewMetrics(reg)),
		accounts.WithAfterRegister(func(ctx context.Context, acc *accounts.Account) error {
			log.InfoContext(ctx, "welcome pending", logger.UserID(acc.ID), logger.Email(acc.Email))
			return nil
		}),
	)

	r := httpserver.NewRouter(log)
	r.Mount("/", account.Router(account.RouterOptions{
		API:     account.NewAPI(svc, log),
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Health:  httpserver.HealthCheckHandler(log, probes...),
	}))
	a.Handler = r

	return a, nil
}

func openStorage(ctx context.Context, backend string, log *slog.Logger) (accounts.Storage, func(context.Context) error, func(), error) {
	switch backend {
	case accounts.BackendMemory, "":
		return accounts.NewMemoryStorage(), nil, nil, nil
	case accounts.BackendPostgres:
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, nil, nil, fmt.Errorf("postgres config: %w", err)
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		pgCfg.MigrationsDir = accounts.MigrationsDir
		if err := pg.Migrate(ctx, pool, accounts.Migrations, pgCfg, log); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return accounts.NewPostgresStorage(pool), pg.Healthcheck(pool), pool.Close, nil
	default:
		return nil, nil, nil, errors.Join(accounts.ErrUnknownBackend, fmt.Errorf("storage %q", backend))
	}
}

func openSessions(ctx context.Context, cfg accounts.Config, log *slog.Logger) (accounts.SessionStore, func(context.Context) error, func(), error) {
	switch cfg.Sessions {
	case accounts.BackendMemory, "":
		return accounts.NewMemorySessionStore(), nil, nil, nil
	case accounts.BackendRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, nil, nil, fmt.Errorf("redis config: %w", err)
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		closer := func() {
			if err := client.Close(); err != nil {
				log.Warn("failed to close redis client", logger.Error(err))
			}
		}
		return accounts.NewRedisSessionStore(client, cfg.SessionPrefix), redis.Healthcheck(client), closer, nil
	default:
		return nil, nil, nil, errors.Join(accounts.ErrUnknownBackend, fmt.Errorf("sessions %q", cfg.Sessions))
	}
}
