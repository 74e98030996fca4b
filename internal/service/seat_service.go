package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kindoblue/jakarta10-tutoring/internal/dto"
	"github.com/kindoblue/jakarta10-tutoring/internal/model"
	"github.com/kindoblue/jakarta10-tutoring/internal/repository"
	"github.com/kindoblue/jakarta10-tutoring/pkg/apperrors"
)

// ── seat module business errors ──

var (
	ErrSeatNotFound       = errors.New("seat does not exist")
	ErrSeatNumberRequired = errors.New("seat number is required")
	ErrSeatRoomNotFound   = errors.New("referenced room does not exist")
	ErrSeatInvalidRoom    = errors.New("new room reference does not resolve")
	ErrSeatNumberTaken    = errors.New("seat number already exists in this room")
	ErrSeatOccupied       = errors.New("cannot delete seat with assigned employees")
)

// SeatService is the seat business interface.
type SeatService interface {
	Create(ctx context.Context, req *dto.CreateSeatRequest) (*dto.SeatResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SeatResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSeatRequest) (*dto.SeatResponse, error)
	Delete(ctx context.Context, id string) error
}

type seatService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSeatService creates a SeatService instance.
func NewSeatService(repo *repository.Repository, logger *zap.Logger) SeatService {
	return &seatService{repo: repo, logger: logger}
}

// ── Create ──

func (s *seatService) Create(ctx context.Context, req *dto.CreateSeatRequest) (*dto.SeatResponse, error) {
	if strings.TrimSpace(req.SeatNumber) == "" {
		return nil, ErrSeatNumberRequired
	}

	if _, err := s.repo.Room.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatRoomNotFound
		}
		s.logger.Error("get room failed", zap.String("id", req.RoomID), zap.Error(err))
		return nil, err
	}

	seat := &model.Seat{
		RoomID:     req.RoomID,
		SeatNumber: req.SeatNumber,
		Width:      model.DefaultSeatWidth,
		Height:     model.DefaultSeatHeight,
	}
	applySeatGeometry(seat, req.X, req.Y, req.Width, req.Height, req.Rotation)

	if err := s.repo.Seat.Create(ctx, seat); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, ErrSeatNumberTaken
		}
		s.logger.Error("create seat failed", zap.Error(err))
		return nil, err
	}

	return toSeatResponse(seat), nil
}

// ── GetByID ──

func (s *seatService) GetByID(ctx context.Context, id string) (*dto.SeatResponse, error) {
	seat, err := s.repo.Seat.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatNotFound
		}
		s.logger.Error("get seat failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toSeatResponse(seat), nil
}

// ── Update ──

func (s *seatService) Update(ctx context.Context, id string, req *dto.UpdateSeatRequest) (*dto.SeatResponse, error) {
	if strings.TrimSpace(req.SeatNumber) == "" {
		return nil, ErrSeatNumberRequired
	}

	seat, err := s.repo.Seat.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatNotFound
		}
		s.logger.Error("get seat failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if _, err := s.repo.Room.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatInvalidRoom
		}
		s.logger.Error("get room failed", zap.String("id", req.RoomID), zap.Error(err))
		return nil, err
	}

	seat.RoomID = req.RoomID
	seat.SeatNumber = req.SeatNumber
	applySeatGeometry(seat, req.X, req.Y, req.Width, req.Height, req.Rotation)

	if err := s.repo.Seat.Update(ctx, seat); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, ErrSeatNumberTaken
		}
		s.logger.Error("update seat failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toSeatResponse(seat), nil
}

// ── Delete ──

func (s *seatService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Seat.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrSeatNotFound
		case errors.Is(err, apperrors.ErrHasDependents):
			return ErrSeatOccupied
		}
		s.logger.Error("delete seat failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── internal helpers ──

func applySeatGeometry(seat *model.Seat, x, y, width, height, rotation *float64) {
	if x != nil {
		seat.X = *x
	}
	if y != nil {
		seat.Y = *y
	}
	if width != nil {
		seat.Width = *width
	}
	if height != nil {
		seat.Height = *height
	}
	if rotation != nil {
		seat.Rotation = *rotation
	}
}

// toSeatResponse is shared across the seat, room and employee modules.
// Occupied is derived from the assignee set here, never persisted.
func toSeatResponse(seat *model.Seat) *dto.SeatResponse {
	employeeIDs := make([]string, 0, len(seat.Employees))
	for i := range seat.Employees {
		employeeIDs = append(employeeIDs, seat.Employees[i].EmployeeID)
	}

	return &dto.SeatResponse{
		ID:          seat.SeatID,
		RoomID:      seat.RoomID,
		SeatNumber:  seat.SeatNumber,
		X:           seat.X,
		Y:           seat.Y,
		Width:       seat.Width,
		Height:      seat.Height,
		Rotation:    seat.Rotation,
		EmployeeIDs: employeeIDs,
		Occupied:    len(employeeIDs) > 0,
		CreatedAt:   seat.CreatedAt.Format(time.RFC3339),
	}
}
