package postgres

import (
	"context"
	"time"

	processDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/process"
	"github.com/frahmantamala/disciplinary-management/internal/process"
	"gorm.io/gorm"
)

// ProcessRepository implements the process.Repository interface using GORM
type ProcessRepository struct {
	db *gorm.DB
}

func NewProcessRepository(db *gorm.DB) *ProcessRepository {
	return &ProcessRepository{db: db}
}

func (r *ProcessRepository) Create(ctx context.Context, p *process.Process) error {
	model := process.ToDataModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	p.ID = model.ID
	return nil
}

func (r *ProcessRepository) GetByID(ctx context.Context, id int64) (*process.Process, error) {
	var model processDatamodel.Process
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, process.ErrProcessNotFound
		}
		return nil, err
	}
	return process.FromDataModel(&model), nil
}

func (r *ProcessRepository) GetAll(ctx context.Context, filter process.ListFilter) ([]*process.Process, error) {
	var models []*processDatamodel.Process

	query := r.db.WithContext(ctx).Model(&processDatamodel.Process{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != 0 {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.OccurrenceFrom != nil {
		query = query.Where("occurrence_date >= ?", *filter.OccurrenceFrom)
	}
	if filter.OccurrenceTo != nil {
		query = query.Where("occurrence_date <= ?", *filter.OccurrenceTo)
	}

	err := query.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return process.FromDataModelSlice(models), nil
}

func (r *ProcessRepository) ProcessExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&processDatamodel.Process{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProcessRepository) Update(ctx context.Context, p *process.Process) error {
	p.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(process.ToDataModel(p)).Error
}

func (r *ProcessRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).Model(&processDatamodel.Process{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
