package generator

import "github.com/hraza/pakretail-datagen/internal/app/model"

// SalesRows builds the denormalized reporting view by joining every order
// line with its order through an id-indexed map. The view holds exactly one
// row per order line, so nothing the generator produced is dropped from the
// export.
func SalesRows(orders []model.Order, lines []model.OrderLine) []model.SalesRecord {
	byID := make(map[uint]*model.Order, len(orders))
	for i := range orders {
		byID[orders[i].ID] = &orders[i]
	}

	records := make([]model.SalesRecord, 0, len(lines))
	for _, line := range lines {
		order, ok := byID[line.OrderID]
		if !ok {
			continue // orphan line, cannot happen in a generated dataset
		}
		records = append(records, model.SalesRecord{
			ID:              uint(len(records) + 1),
			OrderID:         order.ID,
			CustomerID:      order.CustomerID,
			ProductID:       line.ProductID,
			StoreID:         order.StoreID,
			EmployeeID:      order.EmployeeID,
			OrderDate:       order.OrderDate,
			ShipDate:        order.ShipDate,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			DiscountPercent: line.DiscountPercent,
			TotalAmount:     line.LineTotal,
			PaymentMethod:   order.PaymentMethod,
			OrderStatus:     order.Status,
			ShipMethod:      order.ShipMethod,
		})
	}

	return records
}
