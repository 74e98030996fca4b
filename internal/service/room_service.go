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

// ── room module business errors ──

var (
	ErrRoomNotFound       = errors.New("room does not exist")
	ErrRoomNameRequired   = errors.New("room name is required")
	ErrRoomNumberRequired = errors.New("room number is required")
	ErrRoomFloorNotFound  = errors.New("referenced floor does not exist")
	ErrRoomInvalidFloor   = errors.New("new floor reference does not resolve")
	ErrRoomNumberTaken    = errors.New("room number already exists on this floor")
	ErrRoomHasSeats       = errors.New("cannot delete room that has seats")
	ErrEmptyGeometryPatch = errors.New("no valid geometry fields provided")
	ErrSeatNotInRoom      = errors.New("seat not found in the specified room")
)

// roomGeometryFields are the columns a room geometry patch may touch.
var roomGeometryFields = []string{"x", "y", "width", "height"}

// seatGeometryFields additionally allow rotation.
var seatGeometryFields = []string{"x", "y", "width", "height", "rotation"}

// RoomService is the room business interface. It also owns the sparse
// geometry patches for rooms and for seats scoped to a room.
type RoomService interface {
	Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RoomResponse, error)
	ListSeats(ctx context.Context, id string) ([]dto.SeatResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
	PatchGeometry(ctx context.Context, id string, geometry map[string]float64) (*dto.RoomResponse, error)
	PatchSeatGeometry(ctx context.Context, roomID, seatID string, geometry map[string]float64) (*dto.SeatResponse, error)
}

type roomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoomService creates a RoomService instance.
func NewRoomService(repo *repository.Repository, logger *zap.Logger) RoomService {
	return &roomService{repo: repo, logger: logger}
}

// ── Create ──

func (s *roomService) Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrRoomNameRequired
	}
	if strings.TrimSpace(req.RoomNumber) == "" {
		return nil, ErrRoomNumberRequired
	}

	if _, err := s.repo.Floor.GetByID(ctx, req.FloorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomFloorNotFound
		}
		s.logger.Error("get floor failed", zap.String("id", req.FloorID), zap.Error(err))
		return nil, err
	}

	room := &model.Room{
		FloorID:    req.FloorID,
		RoomNumber: req.RoomNumber,
		Name:       req.Name,
		Width:      model.DefaultRoomWidth,
		Height:     model.DefaultRoomHeight,
	}
	applyRoomGeometry(room, req.X, req.Y, req.Width, req.Height)

	if err := s.repo.Room.Create(ctx, room); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, ErrRoomNumberTaken
		}
		s.logger.Error("create room failed", zap.Error(err))
		return nil, err
	}

	return s.toRoomResponse(ctx, room)
}

// ── GetByID ──

func (s *roomService) GetByID(ctx context.Context, id string) (*dto.RoomResponse, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("get room failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toRoomResponse(ctx, room)
}

// ── ListSeats ──

func (s *roomService) ListSeats(ctx context.Context, id string) ([]dto.SeatResponse, error) {
	if _, err := s.repo.Room.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("get room failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	seats, err := s.repo.Seat.ListByRoom(ctx, id)
	if err != nil {
		s.logger.Error("list seats failed", zap.String("room_id", id), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SeatResponse, 0, len(seats))
	for i := range seats {
		result = append(result, *toSeatResponse(&seats[i]))
	}

	return result, nil
}

// ── Update ──

func (s *roomService) Update(ctx context.Context, id string, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrRoomNameRequired
	}
	if strings.TrimSpace(req.RoomNumber) == "" {
		return nil, ErrRoomNumberRequired
	}

	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("get room failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if _, err := s.repo.Floor.GetByID(ctx, req.FloorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomInvalidFloor
		}
		s.logger.Error("get floor failed", zap.String("id", req.FloorID), zap.Error(err))
		return nil, err
	}

	room.FloorID = req.FloorID
	room.RoomNumber = req.RoomNumber
	room.Name = req.Name
	applyRoomGeometry(room, req.X, req.Y, req.Width, req.Height)

	if err := s.repo.Room.Update(ctx, room); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, ErrRoomNumberTaken
		}
		s.logger.Error("update room failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toRoomResponse(ctx, room)
}

// ── Delete ──

func (s *roomService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Room.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrRoomNotFound
		case errors.Is(err, apperrors.ErrHasDependents):
			return ErrRoomHasSeats
		}
		s.logger.Error("delete room failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── PatchGeometry ──

func (s *roomService) PatchGeometry(ctx context.Context, id string, geometry map[string]float64) (*dto.RoomResponse, error) {
	fields := filterGeometry(geometry, roomGeometryFields)
	if len(fields) == 0 {
		return nil, ErrEmptyGeometryPatch
	}

	if _, err := s.repo.Room.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("get room failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Room.UpdateGeometry(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("patch room geometry failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ── PatchSeatGeometry ──

// PatchSeatGeometry treats a seat that exists but belongs to another
// room as not found for this scoped operation.
func (s *roomService) PatchSeatGeometry(ctx context.Context, roomID, seatID string, geometry map[string]float64) (*dto.SeatResponse, error) {
	fields := filterGeometry(geometry, seatGeometryFields)
	if len(fields) == 0 {
		return nil, ErrEmptyGeometryPatch
	}

	if _, err := s.repo.Seat.GetScoped(ctx, roomID, seatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// distinguish a missing room from a seat outside this room
			if _, roomErr := s.repo.Room.GetByID(ctx, roomID); roomErr != nil {
				if errors.Is(roomErr, gorm.ErrRecordNotFound) {
					return nil, ErrRoomNotFound
				}
				return nil, roomErr
			}
			return nil, ErrSeatNotInRoom
		}
		s.logger.Error("get seat failed", zap.String("seat_id", seatID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Seat.UpdateGeometry(ctx, seatID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatNotInRoom
		}
		s.logger.Error("patch seat geometry failed", zap.String("seat_id", seatID), zap.Error(err))
		return nil, err
	}

	seat, err := s.repo.Seat.GetScoped(ctx, roomID, seatID)
	if err != nil {
		return nil, err
	}
	return toSeatResponse(seat), nil
}

// ── internal helpers ──

func applyRoomGeometry(room *model.Room, x, y, width, height *float64) {
	if x != nil {
		room.X = *x
	}
	if y != nil {
		room.Y = *y
	}
	if width != nil {
		room.Width = *width
	}
	if height != nil {
		room.Height = *height
	}
}

// filterGeometry keeps only the recognized columns of a sparse patch.
func filterGeometry(geometry map[string]float64, allowed []string) map[string]interface{} {
	fields := make(map[string]interface{})
	for _, key := range allowed {
		if v, ok := geometry[key]; ok {
			fields[key] = v
		}
	}
	return fields
}

func (s *roomService) toRoomResponse(ctx context.Context, room *model.Room) (*dto.RoomResponse, error) {
	seatIDs, err := s.repo.Room.ListSeatIDs(ctx, room.RoomID)
	if err != nil {
		s.logger.Error("list seat ids failed", zap.String("room_id", room.RoomID), zap.Error(err))
		return nil, err
	}
	if seatIDs == nil {
		seatIDs = []string{}
	}

	return &dto.RoomResponse{
		ID:         room.RoomID,
		FloorID:    room.FloorID,
		RoomNumber: room.RoomNumber,
		Name:       room.Name,
		X:          room.X,
		Y:          room.Y,
		Width:      room.Width,
		Height:     room.Height,
		SeatIDs:    seatIDs,
		CreatedAt:  room.CreatedAt.Format(time.RFC3339),
	}, nil
}
