package model

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"

	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
)

type Order struct {
	ID             uint          `gorm:"primarykey" json:"order_id"`
	CustomerID     uint          `gorm:"not null;index" json:"customer_id"`
	StoreID        uint          `gorm:"not null;index" json:"store_id"`
	EmployeeID     uint          `gorm:"not null;index" json:"employee_id"` // always an employee of StoreID
	OrderDate      time.Time     `json:"order_date"`
	RequiredDate   time.Time     `json:"required_date"`
	ShipDate       *time.Time    `json:"ship_date,omitempty"`
	Status         OrderStatus   `gorm:"type:varchar(20)" json:"order_status"`
	ShipMethod     string        `gorm:"type:varchar(20)" json:"ship_method"`
	TotalAmount    float64       `gorm:"not null" json:"total_amount"` // sum of discounted line totals
	TaxAmount      float64       `json:"tax_amount"`
	ShippingCost   float64       `json:"shipping_cost"`
	DiscountAmount float64       `json:"discount_amount"`
	FinalAmount    float64       `gorm:"not null" json:"final_amount"`
	PaymentMethod  string        `gorm:"type:varchar(30)" json:"payment_method"`
	PaymentStatus  PaymentStatus `gorm:"type:varchar(20)" json:"payment_status"`
	Notes          string        `gorm:"type:text" json:"notes"`

	Customer Customer    `gorm:"foreignKey:CustomerID" json:"-"`
	Store    Store       `gorm:"foreignKey:StoreID" json:"-"`
	Employee Employee    `gorm:"foreignKey:EmployeeID" json:"-"`
	Lines    []OrderLine `gorm:"foreignKey:OrderID" json:"order_lines,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderLine struct {
	OrderID         uint    `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ProductID       uint    `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Quantity        int     `gorm:"not null" json:"quantity_ordered"`
	UnitPrice       float64 `gorm:"not null" json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"` // 0..20, 2 decimals
	LineTotal       float64 `gorm:"not null" json:"total_line_amount"`

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (OrderLine) TableName() string {
	return "order_details"
}
