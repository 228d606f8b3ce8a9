package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hraza/pakretail-datagen/config"
	"github.com/hraza/pakretail-datagen/internal/app/controller"
	"github.com/hraza/pakretail-datagen/internal/app/service"
	"github.com/hraza/pakretail-datagen/internal/router"
	"github.com/hraza/pakretail-datagen/internal/scheduler"
	"github.com/hraza/pakretail-datagen/internal/storage"
	"github.com/hraza/pakretail-datagen/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := cfg.Log.Level
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      cfg.Log.Format,
		EnableColor: true,
	})

	logger.Info("Starting PakRetail data generator server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Uploads are enabled only when a bucket is configured
	var uploader service.Uploader
	if cfg.S3.Bucket != "" {
		uploader = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
		)
	}

	// Initialize services
	generationService := service.NewGenerationService(cfg, uploader)

	// Initialize controllers
	runController := controller.NewRunController(generationService)

	// Setup router
	r := router.NewRouter(runController, cfg)
	engine := r.Setup()

	// Start scheduled runs if a cron expression is configured
	if cfg.Generator.Schedule != "" {
		generationScheduler := scheduler.NewGenerationScheduler(generationService, cfg.Generator.Schedule)
		if err := generationScheduler.Start(); err != nil {
			logger.Fatal("Failed to start generation scheduler", err)
		}
		defer generationScheduler.Stop()
	}

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
