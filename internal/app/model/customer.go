package model

import "time"

type CustomerSegment string

const (
	SegmentPremium    CustomerSegment = "Premium"
	SegmentRegular    CustomerSegment = "Regular"
	SegmentOccasional CustomerSegment = "Occasional"
	SegmentVIP        CustomerSegment = "VIP"
)

type Customer struct {
	ID               uint            `gorm:"primarykey" json:"customer_id"`
	FirstName        string          `gorm:"not null" json:"first_name"`
	LastName         string          `gorm:"not null" json:"last_name"`
	Email            string          `json:"email"`
	Phone            string          `gorm:"type:varchar(30)" json:"phone"`
	DateOfBirth      time.Time       `json:"date_of_birth"`
	Gender           string          `gorm:"type:varchar(10)" json:"gender"`
	MaritalStatus    string          `gorm:"type:varchar(20)" json:"marital_status"`
	EducationLevel   string          `gorm:"type:varchar(30)" json:"education_level"`
	AnnualIncome     int             `json:"annual_income"` // PKR
	Segment          CustomerSegment `gorm:"type:varchar(20);index" json:"customer_segment"`
	RegistrationDate time.Time       `json:"registration_date"`
	IsActive         bool            `json:"is_active"`

	Addresses []Address `gorm:"foreignKey:CustomerID" json:"addresses,omitempty"`
	Orders    []Order   `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
