package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kindoblue/jakarta10-tutoring/internal/dto"
	"github.com/kindoblue/jakarta10-tutoring/internal/repository"
)

// StatsService reports overall entity totals.
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatsService creates a StatsService instance.
func NewStatsService(repo *repository.Repository, logger *zap.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

func (s *statsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	employees, err := s.repo.Employee.Count(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return nil, err
	}
	floors, err := s.repo.Floor.Count(ctx)
	if err != nil {
		s.logger.Error("count floors failed", zap.Error(err))
		return nil, err
	}
	rooms, err := s.repo.Room.Count(ctx)
	if err != nil {
		s.logger.Error("count rooms failed", zap.Error(err))
		return nil, err
	}
	seats, err := s.repo.Seat.Count(ctx)
	if err != nil {
		s.logger.Error("count seats failed", zap.Error(err))
		return nil, err
	}

	return &dto.StatsResponse{
		TotalEmployees: employees,
		TotalFloors:    floors,
		TotalRooms:     rooms,
		TotalSeats:     seats,
	}, nil
}
