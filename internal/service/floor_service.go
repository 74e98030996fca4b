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

// ── floor module business errors ──

var (
	ErrFloorNotFound     = errors.New("floor does not exist")
	ErrFloorNameRequired = errors.New("floor name is required")
	ErrFloorNumberTaken  = errors.New("floor number already exists")
	ErrFloorHasRooms     = errors.New("cannot delete floor with existing rooms")
	ErrFloorPlanNotFound = errors.New("no floor plan found for this floor")
	ErrFloorPlanEmpty    = errors.New("floor plan data cannot be empty")
)

// FloorService is the floor business interface, including the lazily
// created one-to-one floor plan.
type FloorService interface {
	Create(ctx context.Context, req *dto.CreateFloorRequest) (*dto.FloorResponse, error)
	GetByID(ctx context.Context, id string) (*dto.FloorResponse, error)
	List(ctx context.Context) ([]dto.FloorResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateFloorRequest) (*dto.FloorResponse, error)
	Delete(ctx context.Context, id string) error
	GetPlan(ctx context.Context, floorID string) (*dto.FloorPlanResponse, error)
	SetPlan(ctx context.Context, floorID, planimetry string) (*dto.FloorPlanResponse, error)
}

type floorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFloorService creates a FloorService instance.
func NewFloorService(repo *repository.Repository, logger *zap.Logger) FloorService {
	return &floorService{repo: repo, logger: logger}
}

// ── Create ──

func (s *floorService) Create(ctx context.Context, req *dto.CreateFloorRequest) (*dto.FloorResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrFloorNameRequired
	}

	floor := &model.Floor{
		FloorNumber: *req.FloorNumber,
		Name:        req.Name,
	}

	if err := s.repo.Floor.Create(ctx, floor); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, ErrFloorNumberTaken
		}
		s.logger.Error("create floor failed", zap.Error(err))
		return nil, err
	}

	return s.toFloorResponse(ctx, floor)
}

// ── GetByID ──

func (s *floorService) GetByID(ctx context.Context, id string) (*dto.FloorResponse, error) {
	floor, err := s.repo.Floor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		s.logger.Error("get floor failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toFloorResponse(ctx, floor)
}

// ── List ──

func (s *floorService) List(ctx context.Context) ([]dto.FloorResponse, error) {
	floors, err := s.repo.Floor.List(ctx)
	if err != nil {
		s.logger.Error("list floors failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FloorResponse, 0, len(floors))
	for i := range floors {
		resp, err := s.toFloorResponse(ctx, &floors[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}

	return result, nil
}

// ── Update ──

func (s *floorService) Update(ctx context.Context, id string, req *dto.UpdateFloorRequest) (*dto.FloorResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrFloorNameRequired
	}

	floor, err := s.repo.Floor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		s.logger.Error("get floor failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	floor.FloorNumber = *req.FloorNumber
	floor.Name = req.Name

	if err := s.repo.Floor.Update(ctx, floor); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, ErrFloorNumberTaken
		}
		s.logger.Error("update floor failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toFloorResponse(ctx, floor)
}

// ── Delete ──

func (s *floorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Floor.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrFloorNotFound
		case errors.Is(err, apperrors.ErrHasDependents):
			return ErrFloorHasRooms
		}
		s.logger.Error("delete floor failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── GetPlan ──

func (s *floorService) GetPlan(ctx context.Context, floorID string) (*dto.FloorPlanResponse, error) {
	plan, err := s.repo.FloorPlan.Get(ctx, floorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorPlanNotFound
		}
		s.logger.Error("get floor plan failed", zap.String("floor_id", floorID), zap.Error(err))
		return nil, err
	}

	// a stored but empty plan reads as absent
	if plan.Planimetry == "" {
		return nil, ErrFloorPlanNotFound
	}

	return toFloorPlanResponse(plan), nil
}

// ── SetPlan ──

func (s *floorService) SetPlan(ctx context.Context, floorID, planimetry string) (*dto.FloorPlanResponse, error) {
	if strings.TrimSpace(planimetry) == "" {
		return nil, ErrFloorPlanEmpty
	}

	if _, err := s.repo.Floor.GetByID(ctx, floorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		s.logger.Error("get floor failed", zap.String("id", floorID), zap.Error(err))
		return nil, err
	}

	plan, err := s.repo.FloorPlan.Upsert(ctx, floorID, planimetry)
	if err != nil {
		s.logger.Error("store floor plan failed", zap.String("floor_id", floorID), zap.Error(err))
		return nil, err
	}

	return toFloorPlanResponse(plan), nil
}

// ── internal helpers ──

func (s *floorService) toFloorResponse(ctx context.Context, floor *model.Floor) (*dto.FloorResponse, error) {
	roomIDs, err := s.repo.Floor.ListRoomIDs(ctx, floor.FloorID)
	if err != nil {
		s.logger.Error("list room ids failed", zap.String("floor_id", floor.FloorID), zap.Error(err))
		return nil, err
	}

	hasPlan := true
	if _, err := s.repo.FloorPlan.Get(ctx, floor.FloorID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		hasPlan = false
	}

	if roomIDs == nil {
		roomIDs = []string{}
	}

	return &dto.FloorResponse{
		ID:           floor.FloorID,
		FloorNumber:  floor.FloorNumber,
		Name:         floor.Name,
		RoomIDs:      roomIDs,
		HasFloorPlan: hasPlan,
		CreatedAt:    floor.CreatedAt.Format(time.RFC3339),
	}, nil
}

func toFloorPlanResponse(plan *model.FloorPlan) *dto.FloorPlanResponse {
	return &dto.FloorPlanResponse{
		FloorID:     plan.FloorID,
		Planimetry:  plan.Planimetry,
		LastUpdated: plan.LastUpdated.Format(time.RFC3339),
	}
}
