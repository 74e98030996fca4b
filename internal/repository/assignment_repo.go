package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kindoblue/jakarta10-tutoring/internal/model"
	"github.com/kindoblue/jakarta10-tutoring/pkg/apperrors"
)

// AssignmentRepository owns the seat-employee relation table. Both
// directions of the many-to-many read from this single table.
type AssignmentRepository interface {
	// Assign adds the pair; assigning an already assigned pair is a no-op.
	Assign(ctx context.Context, employeeID, seatID string) error
	// Unassign removes the pair; removing a pair that is not assigned
	// returns apperrors.ErrNotAssigned.
	Unassign(ctx context.Context, employeeID, seatID string) error
	Exists(ctx context.Context, employeeID, seatID string) (bool, error)
	ListSeatIDsByEmployee(ctx context.Context, employeeID string) ([]string, error)
	ListEmployeeIDsBySeat(ctx context.Context, seatID string) ([]string, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo creates an AssignmentRepository backed by GORM.
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Assign(ctx context.Context, employeeID, seatID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.SeatAssignment
		err := tx.Where("employee_id = ? AND seat_id = ?", employeeID, seatID).
			First(&existing).Error
		if err == nil {
			// already assigned, idempotent success
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&model.SeatAssignment{
			EmployeeID: employeeID,
			SeatID:     seatID,
		}).Error
	})
}

func (r *assignmentRepo) Unassign(ctx context.Context, employeeID, seatID string) error {
	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND seat_id = ?", employeeID, seatID).
		Delete(&model.SeatAssignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotAssigned
	}
	return nil
}

func (r *assignmentRepo) Exists(ctx context.Context, employeeID, seatID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SeatAssignment{}).
		Where("employee_id = ? AND seat_id = ?", employeeID, seatID).
		Count(&count).Error
	return count > 0, err
}

func (r *assignmentRepo) ListSeatIDsByEmployee(ctx context.Context, employeeID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.SeatAssignment{}).
		Where("employee_id = ?", employeeID).
		Order("assigned_at ASC").
		Pluck("seat_id", &ids).Error
	return ids, err
}

func (r *assignmentRepo) ListEmployeeIDsBySeat(ctx context.Context, seatID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.SeatAssignment{}).
		Where("seat_id = ?", seatID).
		Order("assigned_at ASC").
		Pluck("employee_id", &ids).Error
	return ids, err
}
