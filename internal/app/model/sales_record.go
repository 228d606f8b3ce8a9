package model

import "time"

// SalesRecord is the denormalized reporting row joining an order line with
// its order. One record per order line; meant to be loadable into a sales
// fact table by an external ETL process.
type SalesRecord struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	OrderID         uint        `gorm:"index" json:"order_id"`
	CustomerID      uint        `gorm:"index" json:"customer_id"`
	ProductID       uint        `gorm:"index" json:"product_id"`
	StoreID         uint        `gorm:"index" json:"store_id"`
	EmployeeID      uint        `gorm:"index" json:"employee_id"`
	OrderDate       time.Time   `json:"order_date"`
	ShipDate        *time.Time  `json:"ship_date,omitempty"`
	Quantity        int         `json:"quantity_ordered"`
	UnitPrice       float64     `json:"unit_price"`
	DiscountPercent float64     `json:"discount_percent"`
	TotalAmount     float64     `json:"total_amount"` // discounted line total
	PaymentMethod   string      `gorm:"type:varchar(30)" json:"payment_method"`
	OrderStatus     OrderStatus `gorm:"type:varchar(20)" json:"order_status"`
	ShipMethod      string      `gorm:"type:varchar(20)" json:"ship_method"`
}

func (SalesRecord) TableName() string {
	return "sales_data"
}
