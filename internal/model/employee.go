package model

import "time"

// Employee is a person that can hold any number of seats.
type Employee struct {
	EmployeeID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	FullName   string    `gorm:"type:varchar(100);not null"                     json:"full_name"`
	Occupation string    `gorm:"type:varchar(100);not null"                     json:"occupation"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	Seats []Seat `gorm:"many2many:seat_assignments;foreignKey:EmployeeID;joinForeignKey:EmployeeID;References:SeatID;joinReferences:SeatID" json:"-"`
}

// TableName maps the entity to its table.
func (Employee) TableName() string { return "employees" }
