package postgres

import (
	"context"
	"time"

	employeeDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/disciplinary-management/internal/employee"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	var model employeeDatamodel.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee.FromDataModel(&model), nil
}

func (r *EmployeeRepository) GetByRegistration(ctx context.Context, registration string) (*employee.Employee, error) {
	var model employeeDatamodel.Employee
	err := r.db.WithContext(ctx).Where("registration = ?", registration).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee.FromDataModel(&model), nil
}

func (r *EmployeeRepository) Search(ctx context.Context, query string, limit, offset int) ([]*employee.Employee, error) {
	var models []*employeeDatamodel.Employee

	db := r.db.WithContext(ctx).Model(&employeeDatamodel.Employee{})
	if query != "" {
		pattern := "%" + query + "%"
		db = db.Where("full_name ILIKE ? OR registration ILIKE ? OR department ILIKE ?", pattern, pattern, pattern)
	}

	err := db.Order("full_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return employee.FromDataModelSlice(models), nil
}

// Upsert inserts an employee or refreshes the roster fields when the
// registration already exists.
func (r *EmployeeRepository) Upsert(ctx context.Context, e *employee.Employee) error {
	model := employee.ToDataModel(e)
	model.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "registration"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "position", "department", "manager", "cpf", "is_active", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return err
	}
	e.ID = model.ID
	return nil
}
