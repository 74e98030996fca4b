package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/kindoblue/jakarta10-tutoring/internal/dto"
	"github.com/kindoblue/jakarta10-tutoring/internal/model"
)

// ── test helpers ──

func setupTestEmployeeService() (EmployeeService, *mockState) {
	repo, state := newTestRepository()
	state.floors["floor-001"] = &model.Floor{FloorID: "floor-001", FloorNumber: 1, Name: "First"}
	state.rooms["room-001"] = &model.Room{RoomID: "room-001", FloorID: "floor-001", RoomNumber: "101", Name: "Open space"}
	state.seats["seat-001"] = &model.Seat{SeatID: "seat-001", RoomID: "room-001", SeatNumber: "A1"}
	return NewEmployeeService(repo, zap.NewNop()), state
}

func addEmployee(state *mockState, id, name, occupation string) {
	state.employees[id] = &model.Employee{EmployeeID: id, FullName: name, Occupation: occupation}
}

// ── Create ──

func TestEmployeeService_Create_Success(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	result, err := svc.Create(context.Background(), &dto.CreateEmployeeRequest{
		FullName:   "Ada Lovelace",
		Occupation: "Engineer",
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if result.FullName != "Ada Lovelace" {
		t.Errorf("expected FullName=Ada Lovelace, got %s", result.FullName)
	}
	if len(result.SeatIDs) != 0 {
		t.Errorf("new employee should hold no seats, got %v", result.SeatIDs)
	}
}

func TestEmployeeService_Create_BlankFields(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	if _, err := svc.Create(context.Background(), &dto.CreateEmployeeRequest{
		FullName: " ", Occupation: "Engineer",
	}); !errors.Is(err, ErrEmployeeNameRequired) {
		t.Errorf("expected ErrEmployeeNameRequired, got: %v", err)
	}
	if _, err := svc.Create(context.Background(), &dto.CreateEmployeeRequest{
		FullName: "Ada Lovelace", Occupation: " ",
	}); !errors.Is(err, ErrEmployeeOccupationRequired) {
		t.Errorf("expected ErrEmployeeOccupationRequired, got: %v", err)
	}
}

// ── Assign ──

func TestEmployeeService_Assign_Success(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")

	result, err := svc.Assign(context.Background(), "emp-001", "seat-001")
	if err != nil {
		t.Fatalf("Assign should succeed: %v", err)
	}
	if !result.Assigned {
		t.Error("expected Assigned=true")
	}
	if !state.assignments["emp-001"]["seat-001"] {
		t.Error("relation not stored")
	}
}

func TestEmployeeService_Assign_Idempotent(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")

	if _, err := svc.Assign(context.Background(), "emp-001", "seat-001"); err != nil {
		t.Fatalf("first Assign should succeed: %v", err)
	}
	// a repeat of the same pair succeeds without duplicating anything
	if _, err := svc.Assign(context.Background(), "emp-001", "seat-001"); err != nil {
		t.Fatalf("repeated Assign should succeed: %v", err)
	}

	seats, err := svc.GetSeats(context.Background(), "emp-001")
	if err != nil {
		t.Fatalf("GetSeats should succeed: %v", err)
	}
	if len(seats) != 1 {
		t.Errorf("expected exactly 1 seat, got %d", len(seats))
	}
}

func TestEmployeeService_Assign_EmployeeMissing(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	_, err := svc.Assign(context.Background(), "nonexistent", "seat-001")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got: %v", err)
	}
}

func TestEmployeeService_Assign_SeatMissing(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")

	_, err := svc.Assign(context.Background(), "emp-001", "nonexistent")
	if !errors.Is(err, ErrSeatNotFound) {
		t.Errorf("expected ErrSeatNotFound, got: %v", err)
	}
}

func TestEmployeeService_Assign_SeatSharedByTwo(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")
	addEmployee(state, "emp-002", "Grace Hopper", "Admiral")

	if _, err := svc.Assign(context.Background(), "emp-001", "seat-001"); err != nil {
		t.Fatalf("Assign should succeed: %v", err)
	}
	if _, err := svc.Assign(context.Background(), "emp-002", "seat-001"); err != nil {
		t.Fatalf("second assignee on the same seat should succeed: %v", err)
	}
	if got := state.seatAssignees("seat-001"); len(got) != 2 {
		t.Errorf("expected 2 assignees on the seat, got %v", got)
	}
}

// ── Unassign ──

func TestEmployeeService_Unassign_Success(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")
	state.assignments["emp-001"] = map[string]bool{"seat-001": true}

	result, err := svc.Unassign(context.Background(), "emp-001", "seat-001")
	if err != nil {
		t.Fatalf("Unassign should succeed: %v", err)
	}
	if result.Assigned {
		t.Error("expected Assigned=false")
	}
}

func TestEmployeeService_Unassign_NotAssigned(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")

	// deliberately asymmetric with Assign: releasing a pair that does
	// not exist is an error, not a no-op
	_, err := svc.Unassign(context.Background(), "emp-001", "seat-001")
	if !errors.Is(err, ErrSeatNotAssigned) {
		t.Errorf("expected ErrSeatNotAssigned, got: %v", err)
	}
}

// ── Delete ──

func TestEmployeeService_Delete_ReleasesSeats(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")
	state.assignments["emp-001"] = map[string]bool{"seat-001": true}

	if err := svc.Delete(context.Background(), "emp-001"); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}
	if _, ok := state.seats["seat-001"]; !ok {
		t.Fatal("the seat itself must survive the employee delete")
	}
	if got := state.seatAssignees("seat-001"); len(got) != 0 {
		t.Errorf("seat should be free after the delete, got assignees %v", got)
	}
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	err := svc.Delete(context.Background(), "nonexistent")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got: %v", err)
	}
}

// ── Search ──

func TestEmployeeService_Search_SubstringCaseInsensitive(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")
	addEmployee(state, "emp-002", "Grace Hopper", "Admiral")
	addEmployee(state, "emp-003", "Alan Turing", "Mathematician")

	result, err := svc.Search(context.Background(), &dto.EmployeeSearchRequest{Search: "LOVE"})
	if err != nil {
		t.Fatalf("Search should succeed: %v", err)
	}
	if result.TotalElements != 1 {
		t.Fatalf("expected 1 match, got %d", result.TotalElements)
	}
	if result.Content[0].FullName != "Ada Lovelace" {
		t.Errorf("expected Ada Lovelace, got %s", result.Content[0].FullName)
	}
}

func TestEmployeeService_Search_MatchesOccupation(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")
	addEmployee(state, "emp-002", "Grace Hopper", "Admiral")

	result, err := svc.Search(context.Background(), &dto.EmployeeSearchRequest{Search: "admir"})
	if err != nil {
		t.Fatalf("Search should succeed: %v", err)
	}
	if result.TotalElements != 1 || result.Content[0].FullName != "Grace Hopper" {
		t.Errorf("expected the occupation match, got %+v", result.Content)
	}
}

func TestEmployeeService_Search_EmptyQueryListsAll(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")
	addEmployee(state, "emp-002", "Grace Hopper", "Admiral")

	result, err := svc.Search(context.Background(), &dto.EmployeeSearchRequest{})
	if err != nil {
		t.Fatalf("Search should succeed: %v", err)
	}
	if result.TotalElements != 2 {
		t.Errorf("expected 2 employees, got %d", result.TotalElements)
	}
	if result.CurrentPage != 0 || result.Size != defaultPageSize {
		t.Errorf("expected default paging 0/%d, got %d/%d", defaultPageSize, result.CurrentPage, result.Size)
	}
}

func TestEmployeeService_Search_OrderedByName(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Grace Hopper", "Admiral")
	addEmployee(state, "emp-002", "Ada Lovelace", "Engineer")
	addEmployee(state, "emp-003", "Alan Turing", "Mathematician")

	result, err := svc.Search(context.Background(), &dto.EmployeeSearchRequest{})
	if err != nil {
		t.Fatalf("Search should succeed: %v", err)
	}
	names := []string{"Ada Lovelace", "Alan Turing", "Grace Hopper"}
	for i, want := range names {
		if result.Content[i].FullName != want {
			t.Errorf("position %d: expected %s, got %s", i, want, result.Content[i].FullName)
		}
	}
}

func TestEmployeeService_Search_Paging(t *testing.T) {
	svc, state := setupTestEmployeeService()
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("emp-%03d", i)
		addEmployee(state, id, fmt.Sprintf("Employee %02d", i), "Clerk")
	}

	result, err := svc.Search(context.Background(), &dto.EmployeeSearchRequest{
		Page: intPtr(2),
		Size: intPtr(10),
	})
	if err != nil {
		t.Fatalf("Search should succeed: %v", err)
	}
	if result.TotalElements != 25 {
		t.Errorf("expected total 25, got %d", result.TotalElements)
	}
	if result.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", result.TotalPages)
	}
	if len(result.Content) != 5 {
		t.Errorf("last page should hold 5 entries, got %d", len(result.Content))
	}
}

func TestEmployeeService_Search_PageBeyondEnd(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")

	result, err := svc.Search(context.Background(), &dto.EmployeeSearchRequest{
		Page: intPtr(5),
		Size: intPtr(10),
	})
	if err != nil {
		t.Fatalf("Search should succeed: %v", err)
	}
	if len(result.Content) != 0 {
		t.Errorf("page past the end should be empty, got %d entries", len(result.Content))
	}
	if result.TotalElements != 1 {
		t.Errorf("total must still count every match, got %d", result.TotalElements)
	}
}

func TestEmployeeService_Search_InvalidBounds(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	if _, err := svc.Search(context.Background(), &dto.EmployeeSearchRequest{
		Page: intPtr(-1),
	}); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("expected ErrInvalidPage, got: %v", err)
	}
	if _, err := svc.Search(context.Background(), &dto.EmployeeSearchRequest{
		Size: intPtr(0),
	}); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("expected ErrInvalidPageSize for size 0, got: %v", err)
	}
	if _, err := svc.Search(context.Background(), &dto.EmployeeSearchRequest{
		Size: intPtr(101),
	}); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("expected ErrInvalidPageSize for size 101, got: %v", err)
	}
}

// ── full scenario ──

func TestEmployeeService_AssignUnassignRoundTrip(t *testing.T) {
	svc, state := setupTestEmployeeService()
	addEmployee(state, "emp-001", "Ada Lovelace", "Engineer")

	if _, err := svc.Assign(context.Background(), "emp-001", "seat-001"); err != nil {
		t.Fatalf("Assign should succeed: %v", err)
	}

	seats, err := svc.GetSeats(context.Background(), "emp-001")
	if err != nil {
		t.Fatalf("GetSeats should succeed: %v", err)
	}
	if len(seats) != 1 || !seats[0].Occupied {
		t.Fatalf("expected one occupied seat, got %+v", seats)
	}

	if _, err := svc.Unassign(context.Background(), "emp-001", "seat-001"); err != nil {
		t.Fatalf("Unassign should succeed: %v", err)
	}

	seats, err = svc.GetSeats(context.Background(), "emp-001")
	if err != nil {
		t.Fatalf("GetSeats should succeed: %v", err)
	}
	if len(seats) != 0 {
		t.Errorf("expected no seats after unassign, got %d", len(seats))
	}

	// releasing again must fail, not silently succeed
	if _, err := svc.Unassign(context.Background(), "emp-001", "seat-001"); !errors.Is(err, ErrSeatNotAssigned) {
		t.Errorf("expected ErrSeatNotAssigned on repeat, got: %v", err)
	}
}
