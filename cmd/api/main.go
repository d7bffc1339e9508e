package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressroom/publishing-system/internal/api"
	"github.com/pressroom/publishing-system/internal/core/domain"
	"github.com/pressroom/publishing-system/internal/core/service"
	mongostore "github.com/pressroom/publishing-system/internal/infrastructure/db/mongo"
	redisstore "github.com/pressroom/publishing-system/internal/infrastructure/db/redis"
	"github.com/pressroom/publishing-system/internal/infrastructure/queue"
	"github.com/pressroom/publishing-system/internal/pkg/config"
	"github.com/pressroom/publishing-system/pkg/logger"
)

// @title        Publishing System API
// @version      1.0
// @description  Role-based article publishing service.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// --- Redis ---
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Schema: indexes, role registry, bootstrap admin ---
	articleRepo := mongostore.NewArticleRepository(db)
	userRepo := mongostore.NewUserRepository(db)
	if err := articleRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("article indexes failed")
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongostore.EnsureRoles(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	if n, err := userRepo.Count(ctx); err == nil {
		log.Info().Int64("users", n).Msg("user store ready")
	}

	if cfg.Bootstrap.AdminPassword != "" {
		authService := service.NewAuthService(userRepo, redisstore.NewTokenDenylist(rdb), cfg.JWTSecret, 24*time.Hour)
		_, err := authService.Register(ctx, cfg.Bootstrap.AdminName, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword, domain.RoleAdmin)
		switch {
		case err == nil:
			log.Info().Str("email", cfg.Bootstrap.AdminEmail).Msg("bootstrap admin created")
		case errors.Is(err, domain.ErrUserExists):
			// already seeded on a previous start
		default:
			log.Fatal().Err(err).Msg("bootstrap admin failed")
		}
	}

	// --- Audit pipeline ---
	eventRepo := mongostore.NewEventRepository(db)
	auditService := service.NewAuditService(eventRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, dispatcher, cfg.JWTSecret, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
