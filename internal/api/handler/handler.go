package handler

import "github.com/kindoblue/jakarta10-tutoring/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Floor    *FloorHandler
	Room     *RoomHandler
	Seat     *SeatHandler
	Employee *EmployeeHandler
	Stats    *StatsHandler
	Export   *ExportHandler
}

// NewHandler wires the handlers to their services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Floor:    NewFloorHandler(svc.Floor),
		Room:     NewRoomHandler(svc.Room),
		Seat:     NewSeatHandler(svc.Seat),
		Employee: NewEmployeeHandler(svc.Employee),
		Stats:    NewStatsHandler(svc.Stats),
		Export:   NewExportHandler(svc.Export),
	}
}
