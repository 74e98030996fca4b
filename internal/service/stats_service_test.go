package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/kindoblue/jakarta10-tutoring/internal/model"
)

func TestStatsService_GetStats(t *testing.T) {
	repo, state := newTestRepository()
	svc := NewStatsService(repo, zap.NewNop())

	state.floors["floor-001"] = &model.Floor{FloorID: "floor-001", FloorNumber: 1, Name: "First"}
	state.rooms["room-001"] = &model.Room{RoomID: "room-001", FloorID: "floor-001", RoomNumber: "101", Name: "Open space"}
	state.rooms["room-002"] = &model.Room{RoomID: "room-002", FloorID: "floor-001", RoomNumber: "102", Name: "Meeting room"}
	state.seats["seat-001"] = &model.Seat{SeatID: "seat-001", RoomID: "room-001", SeatNumber: "A1"}
	state.seats["seat-002"] = &model.Seat{SeatID: "seat-002", RoomID: "room-001", SeatNumber: "A2"}
	state.seats["seat-003"] = &model.Seat{SeatID: "seat-003", RoomID: "room-002", SeatNumber: "B1"}
	state.employees["emp-001"] = &model.Employee{EmployeeID: "emp-001", FullName: "Ada Lovelace", Occupation: "Engineer"}

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats should succeed: %v", err)
	}
	if stats.TotalFloors != 1 {
		t.Errorf("expected 1 floor, got %d", stats.TotalFloors)
	}
	if stats.TotalRooms != 2 {
		t.Errorf("expected 2 rooms, got %d", stats.TotalRooms)
	}
	if stats.TotalSeats != 3 {
		t.Errorf("expected 3 seats, got %d", stats.TotalSeats)
	}
	if stats.TotalEmployees != 1 {
		t.Errorf("expected 1 employee, got %d", stats.TotalEmployees)
	}
}

func TestStatsService_GetStats_EmptyOffice(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewStatsService(repo, zap.NewNop())

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats should succeed: %v", err)
	}
	if stats.TotalFloors != 0 || stats.TotalRooms != 0 || stats.TotalSeats != 0 || stats.TotalEmployees != 0 {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
}
