package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kindoblue/jakarta10-tutoring/internal/model"
)

// EmployeeRepository is the employee data-access interface.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	Delete(ctx context.Context, id string) error
	// Search runs a case-insensitive substring match over full name and
	// occupation, returning the page window plus the total match count.
	Search(ctx context.Context, query string, offset, limit int) ([]model.Employee, int64, error)
	Count(ctx context.Context) (int64, error)
}

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo creates an EmployeeRepository backed by GORM.
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("employee_id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Delete removes the employee and every assignment row referencing it
// in one transaction. Seats are never touched by this path.
func (r *employeeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("employee_id = ?", id).Delete(&model.SeatAssignment{}).Error
		if err != nil {
			return err
		}

		res := tx.Where("employee_id = ?", id).Delete(&model.Employee{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *employeeRepo) Search(ctx context.Context, query string, offset, limit int) ([]model.Employee, int64, error) {
	var employees []model.Employee
	var total int64

	pattern := "%" + query + "%"
	db := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("full_name ILIKE ? OR occupation ILIKE ?", pattern, pattern)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Seats").
		Offset(offset).Limit(limit).
		Order("full_name ASC, employee_id ASC").
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Employee{}).Count(&count).Error
	return count, err
}
