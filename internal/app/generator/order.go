package generator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hraza/pakretail-datagen/internal/app/model"
)

// GST rate applied to every order subtotal.
const taxRate = 0.15

// Orders generates count orders with 1-5 order lines each. The store and
// the selling employee are co-selected: a store is drawn uniformly from the
// stores that have at least one employee, then the employee uniformly from
// that store's staff, so an order never references an employee of another
// store. Returns ErrNoStaffedStores when no store qualifies.
func (g *Generator) Orders(
	customers []model.Customer,
	stores []model.Store,
	employees []model.Employee,
	products []model.Product,
	count int,
) ([]model.Order, []model.OrderLine, error) {
	if len(customers) == 0 {
		return nil, nil, fmt.Errorf("%w: customers", ErrEmptyTable)
	}
	if len(products) == 0 {
		return nil, nil, fmt.Errorf("%w: products", ErrEmptyTable)
	}

	staffByStore := make(map[uint][]model.Employee, len(stores))
	for _, e := range employees {
		staffByStore[e.StoreID] = append(staffByStore[e.StoreID], e)
	}
	var staffedStores []model.Store
	for _, s := range stores {
		if len(staffByStore[s.ID]) > 0 {
			staffedStores = append(staffedStores, s)
		}
	}
	if len(staffedStores) == 0 {
		return nil, nil, ErrNoStaffedStores
	}

	orders := make([]model.Order, 0, count)
	lines := make([]model.OrderLine, 0, count)

	for i := 1; i <= count; i++ {
		customer := customers[g.rng.Intn(len(customers))]
		store := staffedStores[g.rng.Intn(len(staffedStores))]
		staff := staffByStore[store.ID]
		employee := staff[g.rng.Intn(len(staff))]

		orderDate := g.daysAgo(730) // within last 2 years
		requiredDate := orderDate.AddDate(0, 0, g.between(1, 14))

		order := model.Order{
			ID:            uint(i),
			CustomerID:    customer.ID,
			StoreID:       store.ID,
			EmployeeID:    employee.ID,
			OrderDate:     orderDate,
			RequiredDate:  requiredDate,
			ShipMethod:    g.pick(shippingMethods),
			PaymentMethod: g.pick(paymentMethods),
			Notes:         fmt.Sprintf("Order placed by %s %s", customer.FirstName, customer.LastName),
		}

		if g.chance(0.80) {
			shipDate := orderDate.AddDate(0, 0, g.between(1, 7))
			order.ShipDate = &shipDate
		}
		order.Status = g.orderStatus(order.ShipDate)
		order.PaymentStatus = model.PaymentStatusPending
		if order.Status == model.OrderStatusDelivered || order.Status == model.OrderStatusShipped {
			order.PaymentStatus = model.PaymentStatusCompleted
		}

		orderLines := g.orderLines(order.ID, products)
		subtotal := decimal.Zero
		discount := decimal.Zero
		for _, line := range orderLines {
			subtotal = subtotal.Add(decimal.NewFromFloat(line.LineTotal))
			discount = discount.Add(discountValue(line.UnitPrice, line.Quantity, line.DiscountPercent))
		}

		totalAmount := subtotal.Round(moneyScale)
		discountAmount := discount.Round(moneyScale)
		taxAmount := totalAmount.Mul(decimal.NewFromFloat(taxRate)).Round(moneyScale)
		shippingCost := decimal.NewFromInt(int64(g.between(0, 500)))

		order.TotalAmount = totalAmount.InexactFloat64()
		order.DiscountAmount = discountAmount.InexactFloat64()
		order.TaxAmount = taxAmount.InexactFloat64()
		order.ShippingCost = shippingCost.InexactFloat64()
		order.FinalAmount = totalAmount.
			Sub(discountAmount).
			Add(taxAmount).
			Add(shippingCost).
			Round(moneyScale).
			InexactFloat64()

		orders = append(orders, order)
		lines = append(lines, orderLines...)
	}

	return orders, lines, nil
}

// orderLines draws 1-5 distinct products without replacement, clamped to
// the catalog size, and builds one line per product.
func (g *Generator) orderLines(orderID uint, products []model.Product) []model.OrderLine {
	n := g.between(1, 5)
	if n > len(products) {
		n = len(products)
	}

	lines := make([]model.OrderLine, 0, n)
	for _, idx := range g.rng.Perm(len(products))[:n] {
		product := products[idx]
		quantity := g.between(1, 5)
		discountPercent := round2(g.betweenFloat(0, 0.20) * 100)

		lines = append(lines, model.OrderLine{
			OrderID:         orderID,
			ProductID:       product.ID,
			Quantity:        quantity,
			UnitPrice:       product.UnitPrice,
			DiscountPercent: discountPercent,
			LineTotal:       lineTotal(product.UnitPrice, quantity, discountPercent),
		})
	}
	return lines
}

// orderStatus derives the status from ship-date presence: shipped in the
// past means Delivered or Shipped, shipped in the future means Shipped,
// no ship date means Pending or Processing.
func (g *Generator) orderStatus(shipDate *time.Time) model.OrderStatus {
	switch {
	case shipDate != nil && shipDate.Before(g.now):
		if g.chance(0.5) {
			return model.OrderStatusDelivered
		}
		return model.OrderStatusShipped
	case shipDate != nil:
		return model.OrderStatusShipped
	default:
		if g.chance(0.5) {
			return model.OrderStatusPending
		}
		return model.OrderStatusProcessing
	}
}
