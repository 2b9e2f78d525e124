package main

import (
	"log"

	"github.com/georgesofianosgr/care-track/config"
	"github.com/georgesofianosgr/care-track/controllers"
	"github.com/georgesofianosgr/care-track/logger"
	"github.com/georgesofianosgr/care-track/middlewares"
	"github.com/georgesofianosgr/care-track/repository"
	"github.com/georgesofianosgr/care-track/routes"
	"github.com/georgesofianosgr/care-track/services"
	"github.com/georgesofianosgr/care-track/store"

	"go.uber.org/zap"
)

func openBackend(cfg config.Config) (store.Backend, error) {
	switch cfg.StorageDriver {
	case "memory":
		return store.NewMemoryBackend(), nil
	case "file":
		return store.NewFileBackend(cfg.DataDir)
	default:
		// sqlite or postgres, picked from the DSN
		return store.NewGormBackend(cfg.DatabaseURL)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	backend, err := openBackend(cfg)
	if err != nil {
		zlog.Fatal("open storage", zap.Error(err))
	}

	users := repository.NewUserRepository(backend, cfg.StorePrefix)
	activities := repository.NewActivityRepository(backend, cfg.StorePrefix)
	entries := repository.NewActivityEntryRepository(backend, cfg.StorePrefix)

	authSvc := services.NewAuthService(users, backend, cfg.StorePrefix)
	activitySvc := services.NewActivityService(activities, entries)
	entrySvc := services.NewEntryService(entries)
	statsSvc := services.NewStatsService(activities, entries)

	secret := []byte(cfg.JWTSecret)
	r := routes.SetupRouter(
		zlog,
		controllers.NewAuthController(authSvc, secret),
		controllers.NewActivityController(activitySvc),
		controllers.NewEntryController(entrySvc, activitySvc),
		controllers.NewStatsController(statsSvc),
		middlewares.AuthMiddleware(users, secret),
	)

	zlog.Info("listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("storage", cfg.StorageDriver),
	)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
