package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hraza/pakretail-datagen/internal/app/generator"
	"github.com/hraza/pakretail-datagen/pkg/util"
)

func generateTestDataset(t *testing.T) *generator.Dataset {
	t.Helper()
	g := generator.New(util.NewRand(42))
	ds, err := g.Generate(generator.Counts{Customers: 10, Products: 20, Stores: 3, Employees: 6, Orders: 15})
	require.NoError(t, err)
	return ds
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSV_OneFilePerTable(t *testing.T) {
	ds := generateTestDataset(t)
	dir := t.TempDir()

	paths, err := WriteCSV(ds, dir)
	require.NoError(t, err)
	require.Len(t, paths, 9)

	expected := []string{
		"pakistan_customers.csv",
		"pakistan_customer_addresses.csv",
		"pakistan_product_categories.csv",
		"pakistan_products.csv",
		"pakistan_stores.csv",
		"pakistan_employees.csv",
		"pakistan_orders.csv",
		"pakistan_order_details.csv",
		"pakistan_sales_data.csv",
	}
	for i, name := range expected {
		assert.Equal(t, filepath.Join(dir, name), paths[i])
	}
}

func TestWriteCSV_HeaderAndRowCounts(t *testing.T) {
	ds := generateTestDataset(t)
	dir := t.TempDir()

	_, err := WriteCSV(ds, dir)
	require.NoError(t, err)

	customers := readCSV(t, filepath.Join(dir, "pakistan_customers.csv"))
	require.NotEmpty(t, customers)
	assert.Equal(t, "CUSTOMER_ID", customers[0][0])
	assert.Equal(t, "CUSTOMER_SEGMENT", customers[0][10])
	assert.Len(t, customers, len(ds.Customers)+1) // header + rows

	orders := readCSV(t, filepath.Join(dir, "pakistan_orders.csv"))
	assert.Len(t, orders, len(ds.Orders)+1)
	assert.Equal(t, "FINAL_AMOUNT", orders[0][13])

	sales := readCSV(t, filepath.Join(dir, "pakistan_sales_data.csv"))
	assert.Len(t, sales, len(ds.OrderLines)+1, "one flattened row per order line")

	// every data row must be as wide as the header
	for _, rows := range [][][]string{customers, orders, sales} {
		width := len(rows[0])
		for _, row := range rows[1:] {
			assert.Len(t, row, width)
		}
	}
}

func TestWriteCSV_CreatesOutputDir(t *testing.T) {
	ds := generateTestDataset(t)
	dir := filepath.Join(t.TempDir(), "nested", "out")

	_, err := WriteCSV(ds, dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteXLSX(t *testing.T) {
	ds := generateTestDataset(t)
	dir := t.TempDir()

	path, err := WriteXLSX(ds, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pakistan_sales_data.xlsx"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
