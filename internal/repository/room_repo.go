package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kindoblue/jakarta10-tutoring/internal/model"
	"github.com/kindoblue/jakarta10-tutoring/pkg/apperrors"
)

// RoomRepository is the room data-access interface. Room numbers are
// unique within a floor, so every uniqueness check is scoped to the
// (floor_id, room_number) pair.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id string) (*model.Room, error)
	ListByFloor(ctx context.Context, floorID string) ([]model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id string) error
	UpdateGeometry(ctx context.Context, id string, fields map[string]interface{}) error
	ListSeatIDs(ctx context.Context, roomID string) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepo creates a RoomRepository backed by GORM.
func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Room{}).
			Where("floor_id = ? AND room_number = ?", room.FloorID, room.RoomNumber).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrDuplicateKey
		}
		return tx.Create(room).Error
	})
}

func (r *roomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Where("room_id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) ListByFloor(ctx context.Context, floorID string) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Where("floor_id = ?", floorID).
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

func (r *roomRepo) Update(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Room{}).
			Where("floor_id = ? AND room_number = ? AND room_id <> ?",
				room.FloorID, room.RoomNumber, room.RoomID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrDuplicateKey
		}
		return tx.Save(room).Error
	})
}

// Delete is refused while seats still reference the room.
func (r *roomRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seats int64
		err := tx.Model(&model.Seat{}).
			Where("room_id = ?", id).
			Count(&seats).Error
		if err != nil {
			return err
		}
		if seats > 0 {
			return apperrors.ErrHasDependents
		}

		res := tx.Where("room_id = ?", id).Delete(&model.Room{})
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
func (r *roomRepo) UpdateGeometry(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("room_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *roomRepo) ListSeatIDs(ctx context.Context, roomID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Seat{}).
		Where("room_id = ?", roomID).
		Order("seat_number ASC").
		Pluck("seat_id", &ids).Error
	return ids, err
}

func (r *roomRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Room{}).Count(&count).Error
	return count, err
}
