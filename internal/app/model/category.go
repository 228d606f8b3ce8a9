package model

type Category struct {
	ID               uint   `gorm:"primarykey" json:"category_id"`
	Name             string `gorm:"not null;uniqueIndex" json:"category_name"`
	Description      string `gorm:"type:text" json:"description"`
	ParentCategoryID *uint  `json:"parent_category_id,omitempty"` // flat taxonomy for now
	IsActive         bool   `json:"is_active"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string {
	return "product_categories"
}
