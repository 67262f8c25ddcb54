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

	"github.com/ecodot/clubhub/internal/api"
	"github.com/ecodot/clubhub/internal/core/service"
	"github.com/ecodot/clubhub/internal/infrastructure/config"
	mongodb "github.com/ecodot/clubhub/internal/infrastructure/db/mongo"
	redisdb "github.com/ecodot/clubhub/internal/infrastructure/db/redis"
	"github.com/ecodot/clubhub/internal/infrastructure/queue"
	"github.com/ecodot/clubhub/pkg/logger"

	_ "github.com/ecodot/clubhub/docs"
)

// @title        clubhub API
// @version      1.0
// @description  Membership and club-management backend.
// @BasePath     /
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Indexes and reference catalog ---
	accountRepo := mongodb.NewAccountRepository(db)
	clubRepo := mongodb.NewClubRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"accounts":   accountRepo.EnsureIndexes,
		"clubs":      clubRepo.EnsureIndexes,
		"activities": activityRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("ensure indexes failed")
		}
	}
	if err := catalogRepo.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("catalog seed failed")
	}

	// --- Activity trail ---
	activityService := service.NewActivityService(activityRepo, redisdb.NewDedupChecker(rdb), log)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		DB:         db,
		Redis:      rdb,
		Activities: dispatcher,
		Logger:     log,
		JWTSecret:  cfg.JWTSecret,
		CookieName: cfg.CookieName,
		LoginTTL:   time.Duration(cfg.LoginTTL) * time.Second,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
