package model

type Product struct {
	ID           uint    `gorm:"primarykey" json:"product_id"`
	Name         string  `gorm:"not null" json:"product_name"`
	CategoryID   uint    `gorm:"not null;index" json:"category_id"`
	Brand        string  `gorm:"type:varchar(50)" json:"brand"`
	Model        string  `gorm:"type:varchar(30)" json:"model"`
	Description  string  `gorm:"type:text" json:"description"`
	UnitCost     float64 `gorm:"not null" json:"unit_cost"`  // PKR, 2 decimals
	UnitPrice    float64 `gorm:"not null" json:"unit_price"` // PKR, 2 decimals
	MSRP         float64 `json:"msrp"`                       // PKR, 2 decimals
	WeightKG     float64 `json:"weight_kg"`
	DimensionsCM string  `gorm:"type:varchar(30)" json:"dimensions_cm"`
	IsActive     bool    `json:"is_active"`

	Category   Category    `gorm:"foreignKey:CategoryID" json:"-"`
	OrderLines []OrderLine `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
