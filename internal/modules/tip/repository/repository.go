package repository

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TipRepository interface {
	Create(ctx context.Context, tip *entity.Tip) error
	FindByCollector(ctx context.Context, collectorID uuid.UUID) ([]entity.Tip, error)
	FindAll(ctx context.Context) ([]entity.Tip, error)
}

type tipRepository struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) TipRepository {
	return &tipRepository{db: db}
}

func (r *tipRepository) Create(ctx context.Context, tip *entity.Tip) error {
	return r.db.WithContext(ctx).Create(tip).Error
}

func (r *tipRepository) FindByCollector(ctx context.Context, collectorID uuid.UUID) ([]entity.Tip, error) {
	var tips []entity.Tip
	if err := r.db.WithContext(ctx).
		Preload("FromResident").
		Where("to_collector_id = ?", collectorID).
		Order("sent_at DESC").
		Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *tipRepository) FindAll(ctx context.Context) ([]entity.Tip, error) {
	var tips []entity.Tip
	if err := r.db.WithContext(ctx).
		Order("sent_at DESC").
		Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}
