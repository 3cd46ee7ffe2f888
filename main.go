// File: /main.go
package main

import (
	"blog-api/config"
	"blog-api/jobs"
	"blog-api/models"
	"blog-api/repositories"
	"blog-api/routes"
	"blog-api/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)

	gin.SetMode(cfg.GinMode)

	// Seed the in-memory store with demo data unless disabled
	var seed *models.Seed
	if cfg.SeedData {
		seed = repositories.DefaultSeed()
	}
	store := repositories.NewStore(seed, log)

	statsJob := jobs.NewStoreStatsJob(store, cfg.StatsInterval, log)
	statsJob.Start()

	router := routes.NewRouter(cfg, store, log)

	log.Infof("Starting blog API server on port %s", cfg.Port)
	log.Infof("Health check available at: http://localhost:%s/health", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		statsJob.Stop()
		log.WithError(err).Fatal("Failed to start server")
	}
}
