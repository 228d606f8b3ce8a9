package model

import "time"

type Employee struct {
	ID         uint      `gorm:"primarykey" json:"employee_id"`
	FirstName  string    `gorm:"not null" json:"first_name"`
	LastName   string    `gorm:"not null" json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `gorm:"type:varchar(30)" json:"phone"`
	HireDate   time.Time `json:"hire_date"`
	JobTitle   string    `gorm:"type:varchar(40)" json:"job_title"`
	Department string    `gorm:"type:varchar(40)" json:"department"`
	StoreID    uint      `gorm:"not null;index" json:"store_id"`
	ManagerID  *uint     `json:"manager_id,omitempty"` // back-filled, may reference another store's manager
	Salary     int       `json:"salary"`               // PKR per month
	IsActive   bool      `json:"is_active"`

	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}

// IsManager reports whether the employee holds a managerial title.
func (e *Employee) IsManager() bool {
	return e.JobTitle == "Manager"
}
