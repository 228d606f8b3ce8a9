package main

import (
	"fmt"

	"github.com/hraza/pakretail-datagen/config"
	"github.com/hraza/pakretail-datagen/internal/app/service"
	"github.com/hraza/pakretail-datagen/internal/storage"
	"github.com/hraza/pakretail-datagen/pkg/logger"
)

// One-shot generation: build the dataset, export it, print a summary.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: true,
	})

	var uploader service.Uploader
	if cfg.S3.Bucket != "" {
		uploader = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
		)
	}

	generationService := service.NewGenerationService(cfg, uploader)

	summary, err := generationService.Run()
	if err != nil {
		logger.Fatal("Generation run failed", err)
	}

	fmt.Println("Generation completed successfully!")
	fmt.Printf("Run ID: %s (seed %d, %d ms)\n", summary.RunID, summary.Seed, summary.DurationMS)
	fmt.Printf("Customers: %d (addresses: %d)\n", summary.Customers, summary.Addresses)
	fmt.Printf("Products:  %d (categories: %d)\n", summary.Products, summary.Categories)
	fmt.Printf("Stores:    %d (employees: %d)\n", summary.Stores, summary.Employees)
	fmt.Printf("Orders:    %d (lines: %d, sales records: %d)\n",
		summary.Orders, summary.OrderLines, summary.SalesRecords)
	fmt.Println("Files:")
	for _, f := range summary.Files {
		fmt.Printf("  %s\n", f)
	}
}
