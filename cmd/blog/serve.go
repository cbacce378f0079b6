package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/edublog/blog-system/internal/api"
	"github.com/edublog/blog-system/internal/api/handler"
	"github.com/edublog/blog-system/internal/core/service"
	mongodb "github.com/edublog/blog-system/internal/infrastructure/db/mongo"
	redisdb "github.com/edublog/blog-system/internal/infrastructure/db/redis"
	"github.com/edublog/blog-system/internal/infrastructure/security"
	"github.com/edublog/blog-system/internal/pkg/config"
	"github.com/edublog/blog-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
}

// setup loads the configuration and initialises the process logger, which
// commands then fetch with logger.Get.
func setup(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "blog",
	})
	return cfg, nil
}

func runServe(ctx context.Context) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}
	log := logger.Get()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	tokens := security.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(
		mongodb.NewUserRepository(db),
		security.NewBcryptHasher(cfg.BcryptCost),
		tokens,
		redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Lockout),
		logger.Component(log, "auth"),
	)
	postService := service.NewPostService(mongodb.NewPostRepository(db), logger.Component(log, "posts"))

	e := api.NewRouter(api.Deps{
		AuthService: authService,
		PostService: postService,
		Tokens:      tokens,
		Health: map[string]handler.Pinger{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		SessionSecret:  cfg.SessionSecret,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		Logger:         logger.Component(log, "http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
