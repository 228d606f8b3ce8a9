package db

import (
	"github.com/hraza/pakretail-datagen/internal/app/model"
	"github.com/hraza/pakretail-datagen/pkg/logger"
)

// Migrate creates or updates the schema for every generated table.
func Migrate() error {
	logger.Info("Running database migrations", nil)

	err := DB.AutoMigrate(
		&model.Customer{},
		&model.Address{},
		&model.Category{},
		&model.Product{},
		&model.Store{},
		&model.Employee{},
		&model.Order{},
		&model.OrderLine{},
		&model.SalesRecord{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migrations completed", nil)
	return nil
}
