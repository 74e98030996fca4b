package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kindoblue/jakarta10-tutoring/internal/model"
	"github.com/kindoblue/jakarta10-tutoring/pkg/apperrors"
)

// SeatRepository is the seat data-access interface. Seat numbers are
// unique within a room.
type SeatRepository interface {
	Create(ctx context.Context, seat *model.Seat) error
	GetByID(ctx context.Context, id string) (*model.Seat, error)
	// GetScoped resolves a seat only when it belongs to the given room.
	GetScoped(ctx context.Context, roomID, seatID string) (*model.Seat, error)
	ListByRoom(ctx context.Context, roomID string) ([]model.Seat, error)
	Update(ctx context.Context, seat *model.Seat) error
	Delete(ctx context.Context, id string) error
	UpdateGeometry(ctx context.Context, id string, fields map[string]interface{}) error
	Count(ctx context.Context) (int64, error)
}

type seatRepo struct {
	db *gorm.DB
}

// NewSeatRepo creates a SeatRepository backed by GORM.
func NewSeatRepo(db *gorm.DB) SeatRepository {
	return &seatRepo{db: db}
}

func (r *seatRepo) Create(ctx context.Context, seat *model.Seat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Seat{}).
			Where("room_id = ? AND seat_number = ?", seat.RoomID, seat.SeatNumber).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrDuplicateKey
		}
		return tx.Create(seat).Error
	})
}

func (r *seatRepo) GetByID(ctx context.Context, id string) (*model.Seat, error) {
	var seat model.Seat
	err := r.db.WithContext(ctx).
		Preload("Employees").
		Where("seat_id = ?", id).
		First(&seat).Error
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *seatRepo) GetScoped(ctx context.Context, roomID, seatID string) (*model.Seat, error) {
	var seat model.Seat
	err := r.db.WithContext(ctx).
		Preload("Employees").
		Where("seat_id = ? AND room_id = ?", seatID, roomID).
		First(&seat).Error
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *seatRepo) ListByRoom(ctx context.Context, roomID string) ([]model.Seat, error) {
	var seats []model.Seat
	err := r.db.WithContext(ctx).
		Preload("Employees").
		Where("room_id = ?", roomID).
		Order("seat_number ASC").
		Find(&seats).Error
	return seats, err
}

func (r *seatRepo) Update(ctx context.Context, seat *model.Seat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Seat{}).
			Where("room_id = ? AND seat_number = ? AND seat_id <> ?",
				seat.RoomID, seat.SeatNumber, seat.SeatID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrDuplicateKey
		}
		return tx.Save(seat).Error
	})
}

// Delete is refused while employees are still assigned to the seat.
func (r *seatRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assigned int64
		err := tx.Model(&model.SeatAssignment{}).
			Where("seat_id = ?", id).
			Count(&assigned).Error
		if err != nil {
			return err
		}
		if assigned > 0 {
			return apperrors.ErrHasDependents
		}

		res := tx.Where("seat_id = ?", id).Delete(&model.Seat{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// UpdateGeometry merges the supplied geometry columns; columns not in
// fields keep their stored value.
func (r *seatRepo) UpdateGeometry(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Seat{}).
		Where("seat_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *seatRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Seat{}).Count(&count).Error
	return count, err
}
