package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kindoblue/jakarta10-tutoring/internal/model"
	"github.com/kindoblue/jakarta10-tutoring/internal/repository"
	"github.com/kindoblue/jakarta10-tutoring/pkg/apperrors"
)

// mockState is the shared in-memory office. The mock repos all point
// at the same state because the delete guards and the derived assignee
// sets cross entity boundaries, just like the SQL side does.
type mockState struct {
	floors      map[string]*model.Floor
	rooms       map[string]*model.Room
	seats       map[string]*model.Seat
	employees   map[string]*model.Employee
	assignments map[string]map[string]bool // employee id -> seat id set
	plans       map[string]*model.FloorPlan
	seq         int
}

func newMockState() *mockState {
	return &mockState{
		floors:      make(map[string]*model.Floor),
		rooms:       make(map[string]*model.Room),
		seats:       make(map[string]*model.Seat),
		employees:   make(map[string]*model.Employee),
		assignments: make(map[string]map[string]bool),
		plans:       make(map[string]*model.FloorPlan),
	}
}

func (s *mockState) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%03d", prefix, s.seq)
}

func (s *mockState) seatAssignees(seatID string) []string {
	var ids []string
	for employeeID, seats := range s.assignments {
		if seats[seatID] {
			ids = append(ids, employeeID)
		}
	}
	sort.Strings(ids)
	return ids
}

func (s *mockState) employeeSeats(employeeID string) []string {
	var ids []string
	for seatID := range s.assignments[employeeID] {
		ids = append(ids, seatID)
	}
	sort.Strings(ids)
	return ids
}

// seatWithEmployees mirrors the Preload("Employees") the GORM repo does.
func (s *mockState) seatWithEmployees(seat *model.Seat) *model.Seat {
	out := *seat
	out.Employees = nil
	for _, employeeID := range s.seatAssignees(seat.SeatID) {
		out.Employees = append(out.Employees, *s.employees[employeeID])
	}
	return &out
}

// ── Mock FloorRepository ──

type mockFloorRepo struct {
	state *mockState
}

func (m *mockFloorRepo) Create(_ context.Context, floor *model.Floor) error {
	for _, f := range m.state.floors {
		if f.FloorNumber == floor.FloorNumber {
			return apperrors.ErrDuplicateKey
		}
	}
	if floor.FloorID == "" {
		floor.FloorID = m.state.nextID("floor")
	}
	if floor.CreatedAt.IsZero() {
		floor.CreatedAt = time.Now()
	}
	m.state.floors[floor.FloorID] = floor
	return nil
}

func (m *mockFloorRepo) GetByID(_ context.Context, id string) (*model.Floor, error) {
	if f, ok := m.state.floors[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFloorRepo) List(_ context.Context) ([]model.Floor, error) {
	var result []model.Floor
	for _, f := range m.state.floors {
		result = append(result, *f)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].FloorNumber < result[j].FloorNumber
	})
	return result, nil
}

func (m *mockFloorRepo) Update(_ context.Context, floor *model.Floor) error {
	for _, f := range m.state.floors {
		if f.FloorID != floor.FloorID && f.FloorNumber == floor.FloorNumber {
			return apperrors.ErrDuplicateKey
		}
	}
	m.state.floors[floor.FloorID] = floor
	return nil
}

func (m *mockFloorRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.state.floors[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, r := range m.state.rooms {
		if r.FloorID == id {
			return apperrors.ErrHasDependents
		}
	}
	delete(m.state.plans, id)
	delete(m.state.floors, id)
	return nil
}

func (m *mockFloorRepo) ListRoomIDs(_ context.Context, floorID string) ([]string, error) {
	var ids []string
	for _, r := range m.state.rooms {
		if r.FloorID == floorID {
			ids = append(ids, r.RoomID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *mockFloorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.state.floors)), nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	state *mockState
}

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	for _, r := range m.state.rooms {
		if r.FloorID == room.FloorID && r.RoomNumber == room.RoomNumber {
			return apperrors.ErrDuplicateKey
		}
	}
	if room.RoomID == "" {
		room.RoomID = m.state.nextID("room")
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now()
	}
	m.state.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*model.Room, error) {
	if r, ok := m.state.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) ListByFloor(_ context.Context, floorID string) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.state.rooms {
		if r.FloorID == floorID {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RoomNumber < result[j].RoomNumber
	})
	return result, nil
}

func (m *mockRoomRepo) Update(_ context.Context, room *model.Room) error {
	for _, r := range m.state.rooms {
		if r.RoomID != room.RoomID && r.FloorID == room.FloorID && r.RoomNumber == room.RoomNumber {
			return apperrors.ErrDuplicateKey
		}
	}
	m.state.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.state.rooms[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, s := range m.state.seats {
		if s.RoomID == id {
			return apperrors.ErrHasDependents
		}
	}
	delete(m.state.rooms, id)
	return nil
}

func (m *mockRoomRepo) UpdateGeometry(_ context.Context, id string, fields map[string]interface{}) error {
	room, ok := m.state.rooms[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["x"]; ok {
		room.X = v.(float64)
	}
	if v, ok := fields["y"]; ok {
		room.Y = v.(float64)
	}
	if v, ok := fields["width"]; ok {
		room.Width = v.(float64)
	}
	if v, ok := fields["height"]; ok {
		room.Height = v.(float64)
	}
	return nil
}

func (m *mockRoomRepo) ListSeatIDs(_ context.Context, roomID string) ([]string, error) {
	var ids []string
	for _, s := range m.state.seats {
		if s.RoomID == roomID {
			ids = append(ids, s.SeatID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *mockRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.state.rooms)), nil
}

// ── Mock SeatRepository ──

type mockSeatRepo struct {
	state *mockState
}

func (m *mockSeatRepo) Create(_ context.Context, seat *model.Seat) error {
	for _, s := range m.state.seats {
		if s.RoomID == seat.RoomID && s.SeatNumber == seat.SeatNumber {
			return apperrors.ErrDuplicateKey
		}
	}
	if seat.SeatID == "" {
		seat.SeatID = m.state.nextID("seat")
	}
	if seat.CreatedAt.IsZero() {
		seat.CreatedAt = time.Now()
	}
	m.state.seats[seat.SeatID] = seat
	return nil
}

func (m *mockSeatRepo) GetByID(_ context.Context, id string) (*model.Seat, error) {
	if s, ok := m.state.seats[id]; ok {
		return m.state.seatWithEmployees(s), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSeatRepo) GetScoped(_ context.Context, roomID, seatID string) (*model.Seat, error) {
	if s, ok := m.state.seats[seatID]; ok && s.RoomID == roomID {
		return m.state.seatWithEmployees(s), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSeatRepo) ListByRoom(_ context.Context, roomID string) ([]model.Seat, error) {
	var result []model.Seat
	for _, s := range m.state.seats {
		if s.RoomID == roomID {
			result = append(result, *m.state.seatWithEmployees(s))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SeatNumber < result[j].SeatNumber
	})
	return result, nil
}

func (m *mockSeatRepo) Update(_ context.Context, seat *model.Seat) error {
	for _, s := range m.state.seats {
		if s.SeatID != seat.SeatID && s.RoomID == seat.RoomID && s.SeatNumber == seat.SeatNumber {
			return apperrors.ErrDuplicateKey
		}
	}
	m.state.seats[seat.SeatID] = seat
	return nil
}

func (m *mockSeatRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.state.seats[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	if len(m.state.seatAssignees(id)) > 0 {
		return apperrors.ErrHasDependents
	}
	delete(m.state.seats, id)
	return nil
}

func (m *mockSeatRepo) UpdateGeometry(_ context.Context, id string, fields map[string]interface{}) error {
	seat, ok := m.state.seats[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["x"]; ok {
		seat.X = v.(float64)
	}
	if v, ok := fields["y"]; ok {
		seat.Y = v.(float64)
	}
	if v, ok := fields["width"]; ok {
		seat.Width = v.(float64)
	}
	if v, ok := fields["height"]; ok {
		seat.Height = v.(float64)
	}
	if v, ok := fields["rotation"]; ok {
		seat.Rotation = v.(float64)
	}
	return nil
}

func (m *mockSeatRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.state.seats)), nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	state *mockState
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	if employee.EmployeeID == "" {
		employee.EmployeeID = m.state.nextID("emp")
	}
	if employee.CreatedAt.IsZero() {
		employee.CreatedAt = time.Now()
	}
	m.state.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	e, ok := m.state.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *e
	out.Seats = nil
	for _, seatID := range m.state.employeeSeats(id) {
		out.Seats = append(out.Seats, *m.state.seats[seatID])
	}
	return &out, nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.state.employees[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.state.assignments, id)
	delete(m.state.employees, id)
	return nil
}

func (m *mockEmployeeRepo) Search(_ context.Context, query string, offset, limit int) ([]model.Employee, int64, error) {
	needle := strings.ToLower(query)
	var matched []model.Employee
	for _, e := range m.state.employees {
		if needle == "" ||
			strings.Contains(strings.ToLower(e.FullName), needle) ||
			strings.Contains(strings.ToLower(e.Occupation), needle) {
			matched = append(matched, *e)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].FullName != matched[j].FullName {
			return matched[i].FullName < matched[j].FullName
		}
		return matched[i].EmployeeID < matched[j].EmployeeID
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.state.employees)), nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	state *mockState
}

func (m *mockAssignmentRepo) Assign(_ context.Context, employeeID, seatID string) error {
	if m.state.assignments[employeeID] == nil {
		m.state.assignments[employeeID] = make(map[string]bool)
	}
	m.state.assignments[employeeID][seatID] = true
	return nil
}

func (m *mockAssignmentRepo) Unassign(_ context.Context, employeeID, seatID string) error {
	if !m.state.assignments[employeeID][seatID] {
		return apperrors.ErrNotAssigned
	}
	delete(m.state.assignments[employeeID], seatID)
	return nil
}

func (m *mockAssignmentRepo) Exists(_ context.Context, employeeID, seatID string) (bool, error) {
	return m.state.assignments[employeeID][seatID], nil
}

func (m *mockAssignmentRepo) ListSeatIDsByEmployee(_ context.Context, employeeID string) ([]string, error) {
	return m.state.employeeSeats(employeeID), nil
}

func (m *mockAssignmentRepo) ListEmployeeIDsBySeat(_ context.Context, seatID string) ([]string, error) {
	return m.state.seatAssignees(seatID), nil
}

// ── Mock FloorPlanRepository ──

type mockFloorPlanRepo struct {
	state *mockState
}

func (m *mockFloorPlanRepo) Get(_ context.Context, floorID string) (*model.FloorPlan, error) {
	if p, ok := m.state.plans[floorID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFloorPlanRepo) Upsert(_ context.Context, floorID, planimetry string) (*model.FloorPlan, error) {
	plan := &model.FloorPlan{
		FloorID:     floorID,
		Planimetry:  planimetry,
		LastUpdated: time.Now(),
	}
	m.state.plans[floorID] = plan
	return plan, nil
}

// ── shared setup ──

func newTestRepository() (*repository.Repository, *mockState) {
	state := newMockState()
	repo := &repository.Repository{
		Floor:      &mockFloorRepo{state: state},
		Room:       &mockRoomRepo{state: state},
		Seat:       &mockSeatRepo{state: state},
		Employee:   &mockEmployeeRepo{state: state},
		Assignment: &mockAssignmentRepo{state: state},
		FloorPlan:  &mockFloorPlanRepo{state: state},
	}
	return repo, state
}
