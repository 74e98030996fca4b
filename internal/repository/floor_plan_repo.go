package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kindoblue/jakarta10-tutoring/internal/model"
)

// FloorPlanRepository is the floor-plan data-access interface. The plan
// is a separately keyed record so that floor reads never load the blob.
type FloorPlanRepository interface {
	Get(ctx context.Context, floorID string) (*model.FloorPlan, error)
	// Upsert creates the plan on first write and updates it afterwards,
	// refreshing last_updated either way.
	Upsert(ctx context.Context, floorID, planimetry string) (*model.FloorPlan, error)
}

type floorPlanRepo struct {
	db *gorm.DB
}

// NewFloorPlanRepo creates a FloorPlanRepository backed by GORM.
func NewFloorPlanRepo(db *gorm.DB) FloorPlanRepository {
	return &floorPlanRepo{db: db}
}

func (r *floorPlanRepo) Get(ctx context.Context, floorID string) (*model.FloorPlan, error) {
	var plan model.FloorPlan
	err := r.db.WithContext(ctx).
		Where("floor_id = ?", floorID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *floorPlanRepo) Upsert(ctx context.Context, floorID, planimetry string) (*model.FloorPlan, error) {
	plan := &model.FloorPlan{
		FloorID:     floorID,
		Planimetry:  planimetry,
		LastUpdated: time.Now(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.FloorPlan
		err := tx.Where("floor_id = ?", floorID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(plan).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&model.FloorPlan{}).
			Where("floor_id = ?", floorID).
			Updates(map[string]interface{}{
				"planimetry":   plan.Planimetry,
				"last_updated": plan.LastUpdated,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}
