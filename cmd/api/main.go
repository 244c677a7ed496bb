// Command api serves the salon REST API.
//
// @title                       Salon API
// @version                     1.0
// @description                 Loyalty backend for the salon dashboard.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/salonelidia/salon-system/docs"
	"github.com/salonelidia/salon-system/internal/api"
	"github.com/salonelidia/salon-system/internal/api/handler"
	"github.com/salonelidia/salon-system/internal/core/ports"
	"github.com/salonelidia/salon-system/internal/core/service"
	"github.com/salonelidia/salon-system/internal/infrastructure/config"
	"github.com/salonelidia/salon-system/internal/infrastructure/db/redis"
	"github.com/salonelidia/salon-system/internal/infrastructure/db/sqlite"
	"github.com/salonelidia/salon-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "salon-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	db, err := sqlite.Open(ctx, sqlite.Config{Path: cfg.SQLite.Path})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db, log); err != nil {
		return err
	}
	repo := sqlite.NewRepository(db)

	if cfg.SeedDemoUsers {
		p := service.NewProvisioner(repo, log)
		for _, u := range service.DemoUsers {
			if err := p.EnsureUser(ctx, u); err != nil {
				return err
			}
		}
	}

	checks := map[string]handler.HealthCheck{"sqlite": repo.Ping}

	var cache ports.StatsCache
	redisCfg := redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	if redisCfg.Enabled() {
		rdb, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer rdb.Close()

		cache = redis.NewStatsCache(rdb, cfg.Redis.StatsTTL)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", redisCfg.Addr).Msg("admin stats cache enabled")
	}

	e, err := api.NewRouter(api.Dependencies{
		Auth:           service.NewAuthService(repo, cfg.JWTSecret, service.DefaultTokenTTL),
		Salon:          service.NewSalonService(repo, cache, log),
		HealthChecks:   checks,
		AllowedOrigins: cfg.Origins(),
		Log:            log,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
