package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/hraza/pakretail-datagen/internal/app/generator"
	"github.com/hraza/pakretail-datagen/pkg/logger"
)

// DatasetRepository persists a generated dataset into a SQL database.
type DatasetRepository interface {
	// BulkInsert writes every table of the dataset in dependency order,
	// batched, inside a single transaction. Either the whole dataset lands
	// or nothing does.
	BulkInsert(ds *generator.Dataset, batchSize int) error
	// RowCounts returns the stored row count per table name.
	RowCounts() (map[string]int64, error)
}

type datasetRepository struct {
	db *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) DatasetRepository {
	return &datasetRepository{db: db}
}

func (r *datasetRepository) BulkInsert(ds *generator.Dataset, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 1000
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		// Parents before children so foreign keys always resolve.
		steps := []struct {
			name string
			rows interface{}
		}{
			{"customers", ds.Customers},
			{"product_categories", ds.Categories},
			{"stores", ds.Stores},
			{"customer_addresses", ds.Addresses},
			{"products", ds.Products},
			{"employees", ds.Employees},
			{"orders", ds.Orders},
			{"order_details", ds.OrderLines},
			{"sales_data", ds.SalesRecords},
		}

		for _, step := range steps {
			if err := tx.CreateInBatches(step.rows, batchSize).Error; err != nil {
				return fmt.Errorf("bulk insert %s: %w", step.name, err)
			}
			logger.Debug("Bulk inserted table", map[string]interface{}{
				"table": step.name,
			})
		}
		return nil
	})
}

func (r *datasetRepository) RowCounts() (map[string]int64, error) {
	tables := []string{
		"customers", "customer_addresses", "product_categories", "products",
		"stores", "employees", "orders", "order_details", "sales_data",
	}

	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		var n int64
		if err := r.db.Table(table).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
