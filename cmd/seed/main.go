package main

import (
	"fmt"
	"log"

	"github.com/hraza/pakretail-datagen/config"
	"github.com/hraza/pakretail-datagen/internal/app/generator"
	"github.com/hraza/pakretail-datagen/internal/app/repository"
	"github.com/hraza/pakretail-datagen/internal/db"
	"github.com/hraza/pakretail-datagen/pkg/util"
)

// Seeds a Postgres database with one freshly generated dataset.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	seed := cfg.Generator.Seed
	g := generator.New(util.NewRand(seed))
	ds, err := g.Generate(generator.Counts{
		Customers: cfg.Generator.Customers,
		Products:  cfg.Generator.Products,
		Stores:    cfg.Generator.Stores,
		Employees: cfg.Generator.Employees,
		Orders:    cfg.Generator.Orders,
	})
	if err != nil {
		log.Fatal("Failed to generate dataset:", err)
	}

	fmt.Printf("Generated dataset: %d customers, %d products, %d stores, %d employees, %d orders (%d lines)\n",
		len(ds.Customers), len(ds.Products), len(ds.Stores), len(ds.Employees), len(ds.Orders), len(ds.OrderLines))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	datasetRepo := repository.NewDatasetRepository(db.GetDB())

	batchSize := 1000
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := datasetRepo.BulkInsert(ds, batchSize); err != nil {
		log.Fatal("Failed to bulk insert dataset:", err)
	}

	counts, err := datasetRepo.RowCounts()
	if err != nil {
		log.Fatal("Failed to count imported rows:", err)
	}

	fmt.Println("Import completed successfully!")
	for _, table := range []string{
		"customers", "customer_addresses", "product_categories", "products",
		"stores", "employees", "orders", "order_details", "sales_data",
	} {
		fmt.Printf("  %-20s %d rows\n", table, counts[table])
	}
}
