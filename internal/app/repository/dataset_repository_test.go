package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hraza/pakretail-datagen/internal/app/generator"
	"github.com/hraza/pakretail-datagen/internal/app/model"
	"github.com/hraza/pakretail-datagen/internal/db"
	"github.com/hraza/pakretail-datagen/pkg/util"
)

func setupDatasetRepositoryTest(t *testing.T) (DatasetRepository, *gorm.DB, *generator.Dataset) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	g := generator.New(util.NewRand(42))
	ds, err := g.Generate(generator.Counts{Customers: 10, Products: 20, Stores: 3, Employees: 6, Orders: 15})
	require.NoError(t, err)

	return NewDatasetRepository(testDB), testDB, ds
}

func TestDatasetRepository_BulkInsert(t *testing.T) {
	repo, _, ds := setupDatasetRepositoryTest(t)

	require.NoError(t, repo.BulkInsert(ds, 5))

	counts, err := repo.RowCounts()
	require.NoError(t, err)

	assert.Equal(t, int64(len(ds.Customers)), counts["customers"])
	assert.Equal(t, int64(len(ds.Addresses)), counts["customer_addresses"])
	assert.Equal(t, int64(len(ds.Categories)), counts["product_categories"])
	assert.Equal(t, int64(len(ds.Products)), counts["products"])
	assert.Equal(t, int64(len(ds.Stores)), counts["stores"])
	assert.Equal(t, int64(len(ds.Employees)), counts["employees"])
	assert.Equal(t, int64(len(ds.Orders)), counts["orders"])
	assert.Equal(t, int64(len(ds.OrderLines)), counts["order_details"])
	assert.Equal(t, int64(len(ds.SalesRecords)), counts["sales_data"])
}

func TestDatasetRepository_BulkInsert_DefaultBatchSize(t *testing.T) {
	repo, _, ds := setupDatasetRepositoryTest(t)

	// batch size <= 0 falls back to the default
	require.NoError(t, repo.BulkInsert(ds, 0))

	counts, err := repo.RowCounts()
	require.NoError(t, err)
	assert.Equal(t, int64(len(ds.Orders)), counts["orders"])
}

func TestDatasetRepository_PreservesGeneratedIDs(t *testing.T) {
	repo, testDB, ds := setupDatasetRepositoryTest(t)
	require.NoError(t, repo.BulkInsert(ds, 100))

	var customer model.Customer
	require.NoError(t, testDB.First(&customer, 1).Error)
	assert.Equal(t, ds.Customers[0].FirstName, customer.FirstName)
	assert.Equal(t, ds.Customers[0].Segment, customer.Segment)

	var line model.OrderLine
	require.NoError(t, testDB.Where("order_id = ? AND product_id = ?", ds.OrderLines[0].OrderID, ds.OrderLines[0].ProductID).First(&line).Error)
	assert.Equal(t, ds.OrderLines[0].Quantity, line.Quantity)
	assert.InDelta(t, ds.OrderLines[0].LineTotal, line.LineTotal, 0.001)
}
