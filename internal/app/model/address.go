package model

type AddressType string

const (
	AddressPrimary   AddressType = "Primary"
	AddressSecondary AddressType = "Secondary"
)

type Address struct {
	ID            uint        `gorm:"primarykey" json:"address_id"`
	CustomerID    uint        `gorm:"not null;index" json:"customer_id"`
	Type          AddressType `gorm:"type:varchar(20)" json:"address_type"`
	StreetAddress string      `json:"street_address"`
	City          string      `gorm:"index" json:"city"`
	Province      string      `gorm:"index" json:"province"`
	PostalCode    string      `gorm:"type:varchar(10)" json:"postal_code"`
	Country       string      `gorm:"type:varchar(30)" json:"country"`
	IsDefault     bool        `json:"is_default"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Address) TableName() string {
	return "customer_addresses"
}
