package service

import (
	"go.uber.org/zap"

	"github.com/kindoblue/jakarta10-tutoring/internal/repository"
)

// Service aggregates every business-logic interface.
type Service struct {
	Floor    FloorService
	Room     RoomService
	Seat     SeatService
	Employee EmployeeService
	Stats    StatsService
	Export   ExportService
}

// NewService wires the service implementations.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Floor:    NewFloorService(repo, logger),
		Room:     NewRoomService(repo, logger),
		Seat:     NewSeatService(repo, logger),
		Employee: NewEmployeeService(repo, logger),
		Stats:    NewStatsService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}
