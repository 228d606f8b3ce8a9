package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesRows_OneRowPerOrderLine(t *testing.T) {
	g, customers, stores, employees, products := buildOrderFixtures(t, 30, 3, 9)

	orders, lines, err := g.Orders(customers, stores, employees, products, 80)
	require.NoError(t, err)

	records := SalesRows(orders, lines)
	require.Len(t, records, len(lines), "flattened view must not drop any line")

	orderByID := make(map[uint]int)
	for i, o := range orders {
		orderByID[o.ID] = i
	}

	for i, r := range records {
		assert.Equal(t, uint(i+1), r.ID)

		line := lines[i]
		order := orders[orderByID[line.OrderID]]

		assert.Equal(t, order.ID, r.OrderID)
		assert.Equal(t, order.CustomerID, r.CustomerID)
		assert.Equal(t, order.StoreID, r.StoreID)
		assert.Equal(t, order.EmployeeID, r.EmployeeID)
		assert.Equal(t, order.Status, r.OrderStatus)
		assert.Equal(t, order.PaymentMethod, r.PaymentMethod)

		assert.Equal(t, line.ProductID, r.ProductID)
		assert.Equal(t, line.Quantity, r.Quantity)
		assert.Equal(t, line.UnitPrice, r.UnitPrice)
		assert.Equal(t, line.LineTotal, r.TotalAmount)
	}
}
