package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/blogging-platform/internal/api/http"
	"github.com/spec-kit/blogging-platform/internal/api/http/handlers"
	"github.com/spec-kit/blogging-platform/internal/auth"
	"github.com/spec-kit/blogging-platform/internal/config"
	"github.com/spec-kit/blogging-platform/internal/domain"
	"github.com/spec-kit/blogging-platform/internal/observability"
	"github.com/spec-kit/blogging-platform/internal/persistence"
	"github.com/spec-kit/blogging-platform/internal/repository"
	"github.com/spec-kit/blogging-platform/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(pg.DB, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	userRepo := repository.New[domain.User](pg.DB, logger)
	postRepo := repository.New[domain.BlogPost](pg.DB, logger)
	commentRepo := repository.New[domain.Comment](pg.DB, logger)

	tokens := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTIssuer,
		cfg.Auth.JWTAudience,
		cfg.Auth.AccessTokenTTLMinutes,
	)

	userService := service.NewUserService(cfg.Auth, userRepo, tokens, logger)
	postService := service.NewBlogPostService(postRepo, userRepo, logger)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, logger)

	authMiddleware := auth.NewAuthMiddleware(tokens)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	loginLimiter := httptransport.LoginRateLimiter(
		redis,
		logger,
		cfg.Auth.LoginRateLimit,
		time.Duration(cfg.Auth.LoginRateWindowSec)*time.Second,
	)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Users:          handlers.NewUsersHandler(userService),
		BlogPosts:      handlers.NewBlogPostsHandler(postService),
		Comments:       handlers.NewCommentsHandler(commentService),
		AuthMiddleware: authMiddleware,
		LoginLimiter:   loginLimiter,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
