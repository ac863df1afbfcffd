package main

import (
	"log"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/config"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/mockapi"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.App.LogLevel)
	defer logger.Sync()

	store := mockapi.NewStore()
	store.Seed(mockapi.SeedData())

	router := mockapi.BuildRouter(mockapi.RouterDeps{
		Store:       store,
		Environment: cfg.App.Environment,
		Version:     cfg.App.Version,
		Log:         logger,
	})

	logger.Infow("mock backend listening", "port", cfg.Mock.Port)
	if err := router.Run(":" + cfg.Mock.Port); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
