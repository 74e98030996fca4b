package model

import "time"

// SeatAssignment is the seat-employee relation row. Both directions of
// the many-to-many are views over this single table, which makes the
// symmetry invariant structural.
type SeatAssignment struct {
	EmployeeID string    `gorm:"type:uuid;primaryKey"               json:"employee_id"`
	SeatID     string    `gorm:"type:uuid;primaryKey"               json:"seat_id"`
	AssignedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"assigned_at"`
}

// TableName maps the entity to its table.
func (SeatAssignment) TableName() string { return "seat_assignments" }
