package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kindoblue/jakarta10-tutoring/internal/dto"
	"github.com/kindoblue/jakarta10-tutoring/internal/model"
	"github.com/kindoblue/jakarta10-tutoring/internal/repository"
	"github.com/kindoblue/jakarta10-tutoring/pkg/apperrors"
)

// ── employee module business errors ──

var (
	ErrEmployeeNotFound           = errors.New("employee does not exist")
	ErrEmployeeNameRequired       = errors.New("employee full name is required")
	ErrEmployeeOccupationRequired = errors.New("employee occupation is required")
	ErrSeatNotAssigned            = errors.New("this seat is not assigned to the employee")
	ErrInvalidPage                = errors.New("page index must not be less than zero")
	ErrInvalidPageSize            = errors.New("page size must be between 1 and 100")
)

// Search paging bounds.
const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// EmployeeService is the employee business interface. It also owns the
// seat assignment state machine and the paginated substring search.
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	GetSeats(ctx context.Context, id string) ([]dto.SeatResponse, error)
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, employeeID, seatID string) (*dto.AssignmentResponse, error)
	Unassign(ctx context.Context, employeeID, seatID string) (*dto.AssignmentResponse, error)
	Search(ctx context.Context, req *dto.EmployeeSearchRequest) (*dto.EmployeeSearchResponse, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService creates an EmployeeService instance.
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

// ── Create ──

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, ErrEmployeeNameRequired
	}
	if strings.TrimSpace(req.Occupation) == "" {
		return nil, ErrEmployeeOccupationRequired
	}

	employee := &model.Employee{
		FullName:   req.FullName,
		Occupation: req.Occupation,
	}

	if err := s.repo.Employee.Create(ctx, employee); err != nil {
		s.logger.Error("create employee failed", zap.Error(err))
		return nil, err
	}

	return toEmployeeResponse(employee), nil
}

// ── GetByID ──

func (s *employeeService) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("get employee failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEmployeeResponse(employee), nil
}

// ── GetSeats ──

func (s *employeeService) GetSeats(ctx context.Context, id string) ([]dto.SeatResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("get employee failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SeatResponse, 0, len(employee.Seats))
	for i := range employee.Seats {
		seat, err := s.repo.Seat.GetByID(ctx, employee.Seats[i].SeatID)
		if err != nil {
			return nil, err
		}
		result = append(result, *toSeatResponse(seat))
	}

	return result, nil
}

// ── Delete ──

// Delete removes the employee and clears it from every seat's assignee
// set. The seats themselves survive.
func (s *employeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("delete employee failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── Assign ──

// Assign is idempotent: assigning an already assigned pair succeeds
// without duplicating the relation.
func (s *employeeService) Assign(ctx context.Context, employeeID, seatID string) (*dto.AssignmentResponse, error) {
	if err := s.resolvePair(ctx, employeeID, seatID); err != nil {
		return nil, err
	}

	if err := s.repo.Assignment.Assign(ctx, employeeID, seatID); err != nil {
		s.logger.Error("assign seat failed",
			zap.String("employee_id", employeeID),
			zap.String("seat_id", seatID),
			zap.Error(err))
		return nil, err
	}

	return &dto.AssignmentResponse{
		EmployeeID: employeeID,
		SeatID:     seatID,
		Assigned:   true,
	}, nil
}

// ── Unassign ──

// Unassign of a pair that is not assigned is an error, deliberately
// asymmetric with Assign.
func (s *employeeService) Unassign(ctx context.Context, employeeID, seatID string) (*dto.AssignmentResponse, error) {
	if err := s.resolvePair(ctx, employeeID, seatID); err != nil {
		return nil, err
	}

	if err := s.repo.Assignment.Unassign(ctx, employeeID, seatID); err != nil {
		if errors.Is(err, apperrors.ErrNotAssigned) {
			return nil, ErrSeatNotAssigned
		}
		s.logger.Error("unassign seat failed",
			zap.String("employee_id", employeeID),
			zap.String("seat_id", seatID),
			zap.Error(err))
		return nil, err
	}

	return &dto.AssignmentResponse{
		EmployeeID: employeeID,
		SeatID:     seatID,
		Assigned:   false,
	}, nil
}

// ── Search ──

func (s *employeeService) Search(ctx context.Context, req *dto.EmployeeSearchRequest) (*dto.EmployeeSearchResponse, error) {
	page := 0
	if req.Page != nil {
		page = *req.Page
	}
	size := defaultPageSize
	if req.Size != nil {
		size = *req.Size
	}

	if page < 0 {
		return nil, ErrInvalidPage
	}
	if size < 1 || size > maxPageSize {
		return nil, ErrInvalidPageSize
	}

	employees, total, err := s.repo.Employee.Search(ctx, req.Search, page*size, size)
	if err != nil {
		s.logger.Error("search employees failed", zap.String("query", req.Search), zap.Error(err))
		return nil, err
	}

	content := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		content = append(content, *toEmployeeResponse(&employees[i]))
	}

	return &dto.EmployeeSearchResponse{
		Content:       content,
		TotalElements: total,
		TotalPages:    int(math.Ceil(float64(total) / float64(size))),
		CurrentPage:   page,
		Size:          size,
	}, nil
}

// ── internal helpers ──

// resolvePair checks both ends of an assignment operation exist.
func (s *employeeService) resolvePair(ctx context.Context, employeeID, seatID string) error {
	if _, err := s.repo.Employee.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("get employee failed", zap.String("id", employeeID), zap.Error(err))
		return err
	}
	if _, err := s.repo.Seat.GetByID(ctx, seatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSeatNotFound
		}
		s.logger.Error("get seat failed", zap.String("id", seatID), zap.Error(err))
		return err
	}
	return nil
}

func toEmployeeResponse(employee *model.Employee) *dto.EmployeeResponse {
	seatIDs := make([]string, 0, len(employee.Seats))
	for i := range employee.Seats {
		seatIDs = append(seatIDs, employee.Seats[i].SeatID)
	}

	return &dto.EmployeeResponse{
		ID:         employee.EmployeeID,
		FullName:   employee.FullName,
		Occupation: employee.Occupation,
		SeatIDs:    seatIDs,
		CreatedAt:  employee.CreatedAt.Format(time.RFC3339),
	}
}
