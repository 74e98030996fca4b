package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kindoblue/jakarta10-tutoring/internal/model"
	"github.com/kindoblue/jakarta10-tutoring/pkg/apperrors"
)

// FloorRepository is the floor data-access interface. Create, Update and
// Delete run their uniqueness / guard checks in the same transaction as
// the write.
type FloorRepository interface {
	Create(ctx context.Context, floor *model.Floor) error
	GetByID(ctx context.Context, id string) (*model.Floor, error)
	List(ctx context.Context) ([]model.Floor, error)
	Update(ctx context.Context, floor *model.Floor) error
	Delete(ctx context.Context, id string) error
	ListRoomIDs(ctx context.Context, floorID string) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type floorRepo struct {
	db *gorm.DB
}

// NewFloorRepo creates a FloorRepository backed by GORM.
func NewFloorRepo(db *gorm.DB) FloorRepository {
	return &floorRepo{db: db}
}

func (r *floorRepo) Create(ctx context.Context, floor *model.Floor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Floor{}).
			Where("floor_number = ?", floor.FloorNumber).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrDuplicateKey
		}
		return tx.Create(floor).Error
	})
}

func (r *floorRepo) GetByID(ctx context.Context, id string) (*model.Floor, error) {
	var floor model.Floor
	err := r.db.WithContext(ctx).
		Where("floor_id = ?", id).
		First(&floor).Error
	if err != nil {
		return nil, err
	}
	return &floor, nil
}

func (r *floorRepo) List(ctx context.Context) ([]model.Floor, error) {
	var floors []model.Floor
	err := r.db.WithContext(ctx).
		Order("floor_number ASC").
		Find(&floors).Error
	return floors, err
}

func (r *floorRepo) Update(ctx context.Context, floor *model.Floor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Floor{}).
			Where("floor_number = ? AND floor_id <> ?", floor.FloorNumber, floor.FloorID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrDuplicateKey
		}
		return tx.Save(floor).Error
	})
}

// Delete removes the floor together with its floor plan. It is refused
// while rooms still reference the floor.
func (r *floorRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rooms int64
		err := tx.Model(&model.Room{}).
			Where("floor_id = ?", id).
			Count(&rooms).Error
		if err != nil {
			return err
		}
		if rooms > 0 {
			return apperrors.ErrHasDependents
		}

		if err := tx.Where("floor_id = ?", id).Delete(&model.FloorPlan{}).Error; err != nil {
			return err
		}

		res := tx.Where("floor_id = ?", id).Delete(&model.Floor{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *floorRepo) ListRoomIDs(ctx context.Context, floorID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("floor_id = ?", floorID).
		Order("room_number ASC").
		Pluck("room_id", &ids).Error
	return ids, err
}

func (r *floorRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Floor{}).Count(&count).Error
	return count, err
}
