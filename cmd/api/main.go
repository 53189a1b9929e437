// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zevk4/levelup-store/internal/config"
	"github.com/Zevk4/levelup-store/internal/domain/auth"
	"github.com/Zevk4/levelup-store/internal/domain/cart"
	"github.com/Zevk4/levelup-store/internal/domain/catalog"
	"github.com/Zevk4/levelup-store/internal/domain/ui"
	"github.com/Zevk4/levelup-store/internal/infrastructure/database/postgres"
	redisdb "github.com/Zevk4/levelup-store/internal/infrastructure/database/redis"
	httpserver "github.com/Zevk4/levelup-store/internal/interfaces/http"
	"github.com/Zevk4/levelup-store/internal/interfaces/http/routes"
	pkgauth "github.com/Zevk4/levelup-store/internal/pkg/auth"
	"github.com/Zevk4/levelup-store/internal/seed"
	"github.com/Zevk4/levelup-store/internal/storage"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)
	logger.WithFields(logrus.Fields{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"storage":     cfg.Storage.Backend,
	}).Info("Starting storefront backend")

	// The session tier never survives a restart; the durable tier is
	// backend-selected.
	sessionTier := storage.NewMemory()

	var redisClient *goredis.Client
	var durableTier storage.Store

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		durableTier = storage.NewMemory()

	case config.BackendFile:
		fileStore, err := storage.NewFile(cfg.Storage.FileDir)
		if err != nil {
			logger.WithError(err).Fatal("Failed to open file storage")
		}
		durableTier = fileStore

	case config.BackendRedis:
		conn, err := redisdb.NewConnection(cfg)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer conn.Close()

		if err := conn.Health(); err != nil {
			logger.WithError(err).Fatal("Redis health check failed")
		}

		redisClient = conn.GetClient()
		durableTier = storage.NewRedis(redisClient, cfg.Storage.KeyPrefix)

	case config.BackendPostgres:
		db, err := postgres.NewConnection(cfg)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to database")
		}
		defer db.Close()

		if err := db.Health(); err != nil {
			logger.WithError(err).Fatal("Database health check failed")
		}

		gormStore, err := storage.NewGorm(db.GetDB())
		if err != nil {
			logger.WithError(err).Fatal("Failed to initialize SQL storage")
		}
		durableTier = gormStore
	}

	// Construct every store once and wire consumers explicitly.
	passwords := pkgauth.NewPasswordManager(cfg)
	authStore := auth.NewStore(sessionTier, durableTier, seed.Users(), passwords, logger)
	cartStore := cart.NewStore(durableTier, logger)
	catalogStore := catalog.NewStore(sessionTier, seed.Products(), logger)
	modalStore := ui.NewModalStore()

	logger.WithField("products", len(catalogStore.Products())).Info("Stores initialized")

	server := httpserver.NewServer(cfg, logger, redisClient, &routes.Deps{
		Config:     cfg,
		Auth:       authStore,
		Cart:       cartStore,
		Catalog:    catalogStore,
		Modals:     modalStore,
		Categories: seed.Categories(),
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logger.Info("Server shutdown completed")
}

// newLogger builds the application logger from config
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
