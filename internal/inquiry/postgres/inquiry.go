package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	inquiryDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/inquiry"
	"github.com/frahmantamala/disciplinary-management/internal/inquiry"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(ctx context.Context, inq *inquiry.Inquiry) error {
	model := inquiry.ToDataModel(inq)
	now := time.Now()
	model.CreatedAt = now
	model.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	inq.ID = model.ID
	inq.CreatedAt = model.CreatedAt
	inq.UpdatedAt = model.UpdatedAt
	for i := range model.Members {
		inq.Members[i].ID = model.Members[i].ID
	}
	for i := range model.Witnesses {
		inq.Witnesses[i].ID = model.Witnesses[i].ID
	}
	return nil
}

func (r *InquiryRepository) GetByProcessID(ctx context.Context, processID int64) (*inquiry.Inquiry, error) {
	var model inquiryDatamodel.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Witnesses").
		Where("process_id = ?", processID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inquiry.ErrInquiryNotFound
		}
		return nil, err
	}
	return inquiry.FromDataModel(&model), nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id int64) (*inquiry.Inquiry, error) {
	var model inquiryDatamodel.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Witnesses").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inquiry.ErrInquiryNotFound
		}
		return nil, err
	}
	return inquiry.FromDataModel(&model), nil
}
