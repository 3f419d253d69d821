package postgres

import (
	"context"

	misconductDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/misconduct"
	"github.com/frahmantamala/disciplinary-management/internal/misconduct"
	"gorm.io/gorm"
)

type MisconductRepository struct {
	db *gorm.DB
}

func NewMisconductRepository(db *gorm.DB) misconduct.RepositoryAPI {
	return &MisconductRepository{db: db}
}

func (r *MisconductRepository) GetAll(ctx context.Context) ([]*misconductDatamodel.MisconductType, error) {
	var types []*misconductDatamodel.MisconductType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	return types, err
}

func (r *MisconductRepository) GetByID(ctx context.Context, id int64) (*misconductDatamodel.MisconductType, error) {
	var t misconductDatamodel.MisconductType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *MisconductRepository) Create(ctx context.Context, t *misconductDatamodel.MisconductType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *MisconductRepository) Update(ctx context.Context, t *misconductDatamodel.MisconductType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *MisconductRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&misconductDatamodel.MisconductType{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
