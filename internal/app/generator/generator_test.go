package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hraza/pakretail-datagen/pkg/util"
)

func newTestGenerator(seed int64) *Generator {
	return New(util.NewRand(seed))
}

func TestCounts_Validate(t *testing.T) {
	valid := Counts{Customers: 1, Products: 1, Stores: 1, Employees: 1, Orders: 1}
	assert.NoError(t, valid.Validate())

	invalid := valid
	invalid.Stores = 0
	assert.ErrorIs(t, invalid.Validate(), ErrInvalidCount)

	invalid = valid
	invalid.Orders = -3
	assert.ErrorIs(t, invalid.Validate(), ErrInvalidCount)
}

func TestGenerate_Scenario(t *testing.T) {
	g := newTestGenerator(42)
	ds, err := g.Generate(Counts{Customers: 10, Products: 20, Stores: 3, Employees: 6, Orders: 15})
	require.NoError(t, err)

	assert.Len(t, ds.Customers, 10)
	assert.Len(t, ds.Products, 20)
	assert.Len(t, ds.Stores, 3)
	assert.Len(t, ds.Employees, 6)
	assert.Len(t, ds.Orders, 15)
	assert.Len(t, ds.Categories, 8)

	// 1-5 lines per order
	assert.GreaterOrEqual(t, len(ds.OrderLines), 15)
	assert.LessOrEqual(t, len(ds.OrderLines), 75)

	// no order may reference a store without employees
	staffed := make(map[uint]bool)
	for _, e := range ds.Employees {
		staffed[e.StoreID] = true
	}
	for _, o := range ds.Orders {
		assert.True(t, staffed[o.StoreID], "order %d references unstaffed store %d", o.ID, o.StoreID)
	}
}

func TestGenerate_DenseSequentialIDs(t *testing.T) {
	g := newTestGenerator(7)
	ds, err := g.Generate(Counts{Customers: 50, Products: 10, Stores: 2, Employees: 5, Orders: 5})
	require.NoError(t, err)

	require.Len(t, ds.Customers, 50)
	for i, c := range ds.Customers {
		assert.Equal(t, uint(i+1), c.ID)
	}
	for i, p := range ds.Products {
		assert.Equal(t, uint(i+1), p.ID)
	}
	for i, o := range ds.Orders {
		assert.Equal(t, uint(i+1), o.ID)
	}
	for i, a := range ds.Addresses {
		assert.Equal(t, uint(i+1), a.ID)
	}
}

func TestGenerate_ReproducibleWithSeed(t *testing.T) {
	counts := Counts{Customers: 20, Products: 15, Stores: 3, Employees: 8, Orders: 25}

	first, err := newTestGenerator(99).Generate(counts)
	require.NoError(t, err)
	second, err := newTestGenerator(99).Generate(counts)
	require.NoError(t, err)

	assert.Equal(t, first.Customers, second.Customers)
	assert.Equal(t, first.Products, second.Products)
	assert.Equal(t, first.Employees, second.Employees)
	assert.Equal(t, first.OrderLines, second.OrderLines)
}

func TestGenerate_ReferentialIntegrity(t *testing.T) {
	g := newTestGenerator(3)
	ds, err := g.Generate(Counts{Customers: 30, Products: 40, Stores: 5, Employees: 20, Orders: 60})
	require.NoError(t, err)

	customerIDs := make(map[uint]bool)
	for _, c := range ds.Customers {
		customerIDs[c.ID] = true
	}
	storeIDs := make(map[uint]bool)
	for _, s := range ds.Stores {
		storeIDs[s.ID] = true
	}
	categoryIDs := make(map[uint]bool)
	for _, c := range ds.Categories {
		categoryIDs[c.ID] = true
	}
	productIDs := make(map[uint]bool)
	for _, p := range ds.Products {
		productIDs[p.ID] = true
		assert.True(t, categoryIDs[p.CategoryID])
	}
	employeeStore := make(map[uint]uint)
	for _, e := range ds.Employees {
		employeeStore[e.ID] = e.StoreID
		assert.True(t, storeIDs[e.StoreID])
	}
	for _, a := range ds.Addresses {
		assert.True(t, customerIDs[a.CustomerID])
	}
	for _, o := range ds.Orders {
		assert.True(t, customerIDs[o.CustomerID])
		assert.True(t, storeIDs[o.StoreID])
		// the selling employee must belong to the order's store
		assert.Equal(t, o.StoreID, employeeStore[o.EmployeeID])
	}
	for _, l := range ds.OrderLines {
		assert.True(t, productIDs[l.ProductID])
	}
}
