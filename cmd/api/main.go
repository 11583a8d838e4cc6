package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shopor/catalog-api/internal/api"
	"github.com/shopor/catalog-api/internal/core/service"
	"github.com/shopor/catalog-api/internal/core/token"
	"github.com/shopor/catalog-api/internal/infrastructure/config"
	mongodb "github.com/shopor/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shopor/catalog-api/internal/infrastructure/db/redis"
	"github.com/shopor/catalog-api/internal/infrastructure/queue"
	"github.com/shopor/catalog-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:    cfg.Redis.Addr,
		DB:      cfg.Redis.DB,
		Timeout: cfg.Redis.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Core wiring ---
	store := mongodb.NewCatalogStore(db)
	auditRepo := mongodb.NewAuditRepository(db)

	dispatcher := queue.NewAuditDispatcher(cfg.AuditWorkers, auditRepo, log)
	dispatcher.Start(ctx)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	identity := service.NewIdentityService(store, tokens, dispatcher, log)
	items := service.NewItemService(store, dispatcher, log)

	limiter := redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	e := api.NewRouter(api.Deps{
		Identity: identity,
		Items:    items,
		Tokens:   tokens,
		Limiter:  limiter,
		Mongo:    db,
		Redis:    rdb,
		Log:      log,
	})

	// --- Serve until signalled ---
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("catalog api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
