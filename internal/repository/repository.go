package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	Floor      FloorRepository
	Room       RoomRepository
	Seat       SeatRepository
	Employee   EmployeeRepository
	Assignment AssignmentRepository
	FloorPlan  FloorPlanRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Floor:      NewFloorRepo(db),
		Room:       NewRoomRepo(db),
		Seat:       NewSeatRepo(db),
		Employee:   NewEmployeeRepo(db),
		Assignment: NewAssignmentRepo(db),
		FloorPlan:  NewFloorPlanRepo(db),
	}
}
