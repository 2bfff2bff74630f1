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

	"github.com/Ramos-bot/GestOnGo-App/internal/config"
	dbpkg "github.com/Ramos-bot/GestOnGo-App/internal/db"
	"github.com/Ramos-bot/GestOnGo-App/internal/logging"
	"github.com/Ramos-bot/GestOnGo-App/internal/metrics"
	"github.com/Ramos-bot/GestOnGo-App/internal/revocation"
	"github.com/Ramos-bot/GestOnGo-App/internal/routes"
	"github.com/Ramos-bot/GestOnGo-App/internal/security"
	"github.com/Ramos-bot/GestOnGo-App/internal/storage"
	"github.com/Ramos-bot/GestOnGo-App/internal/timezone"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	logger := logging.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	db, err := dbpkg.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer dbpkg.Close(db)

	if cfg.AutoMigrate {
		if err := dbpkg.Migrate(db); err != nil {
			return err
		}
	}

	if err := dbpkg.SeedAdmin(ctx, db, cfg.Admin, security.NewHasher(cfg.BcryptCost)); err != nil {
		return err
	}

	deps := routes.Deps{
		DB:      db,
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
		Clock:   timezone.NewClock(cfg.Timezone),
	}

	if cfg.RedisURL != "" {
		store, err := revocation.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer store.Close()
		deps.Revocation = store
	} else {
		logger.Warn().Msg("REDIS_URL not set, logout disabled")
	}

	if cfg.S3.Enabled() {
		deps.Photos = storage.NewS3Store(cfg.S3)
	} else {
		logger.Info().Msg("S3_BUCKET not set, service photos disabled")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("env", cfg.Env).
			Str("version", cfg.AppVersion).
			Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
