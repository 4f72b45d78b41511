package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fermata/internal/catalog"
	"fermata/internal/config"
	"fermata/internal/server"

	"github.com/sirupsen/logrus"
)

func main() {
	configPath := "./config.toml"

	// Initialize basic logger for startup
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.WithError(err).Fatal("Error loading configuration")
	}
	if err := cfg.Logging.Apply(logger); err != nil {
		logger.WithError(err).Fatal("Error configuring logger")
	}

	// Open the catalog store and ensure the schema exists
	store, err := catalog.Open(cfg.Database.Path, cfg.Database.MaxConnections, logger)
	if err != nil {
		logger.WithError(err).Fatal("Error opening database")
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		logger.WithError(err).Fatal("Error creating schema")
	}

	// Seed the demo catalog if the store is empty
	if cfg.Seed.Demo {
		rng := rand.New(rand.NewSource(cfg.Seed.RandomSeed))
		seeded, err := store.SeedIfEmpty(rng)
		if err != nil {
			logger.WithError(err).Fatal("Error seeding demo catalog")
		}
		if seeded > 0 {
			logger.WithField("albums", seeded).Info("Demo catalog ready")
		}
	}

	catalogServer := server.New(cfg, store, logger)

	if err := catalogServer.WatchConfig(configPath); err != nil {
		logger.WithError(err).Warn("Could not start config watcher")
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := catalogServer.Start(); err != nil {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	<-c
	logger.Info("Received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := catalogServer.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}
