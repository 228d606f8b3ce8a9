package model

import "time"

type Store struct {
	ID          uint      `gorm:"primarykey" json:"store_id"`
	Name        string    `gorm:"not null" json:"store_name"`
	Code        string    `gorm:"type:varchar(10);uniqueIndex" json:"store_code"`
	Address     string    `gorm:"type:text" json:"address"`
	City        string    `gorm:"index" json:"city"`
	Province    string    `gorm:"index" json:"province"`
	PostalCode  string    `gorm:"type:varchar(10)" json:"postal_code"`
	Phone       string    `gorm:"type:varchar(30)" json:"phone"`
	Email       string    `json:"email"`
	ManagerID   *uint     `json:"manager_id,omitempty"` // back-filled once employees exist
	Type        string    `gorm:"type:varchar(30)" json:"store_type"`
	IsActive    bool      `json:"is_active"`
	OpeningDate time.Time `json:"opening_date"`

	Employees []Employee `gorm:"foreignKey:StoreID" json:"-"`
	Orders    []Order    `gorm:"foreignKey:StoreID" json:"-"`
}

func (Store) TableName() string {
	return "stores"
}
