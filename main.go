// main.go
package main

import (
	"context"
	"log"
	"time"

	"turf-booking/cmd"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/wire"
	"turf-booking/pkg/storage"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Open the persistence file
	store, err := storage.InitStore(config.Store)
	if err != nil {
		logger.Fatal("Failed to open data store", zap.Error(err))
	}
	defer store.Close()

	logger.Info("Data store ready", zap.String("path", config.Store.Path))

	// Initialize all repositories
	repos := repository.NewRepository(store, config, logger)

	// Sweep expired sessions hourly
	go func() {
		for range time.Tick(time.Hour) {
			if err := repos.Session.CleanExpired(context.Background()); err != nil {
				logger.Warn("Session cleanup failed", zap.Error(err))
			}
		}
	}()

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
