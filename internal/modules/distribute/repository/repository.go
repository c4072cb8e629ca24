package repository

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DistributeRepository interface {
	Create(ctx context.Context, request *entity.DistributeRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DistributeRequest, error)
	Find(ctx context.Context, status string, residentID *uuid.UUID) ([]entity.DistributeRequest, error)
	Save(ctx context.Context, request *entity.DistributeRequest) error
}

type distributeRepository struct {
	db *gorm.DB
}

func NewDistributeRepository(db *gorm.DB) DistributeRepository {
	return &distributeRepository{db: db}
}

func (r *distributeRepository) Create(ctx context.Context, request *entity.DistributeRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *distributeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DistributeRequest, error) {
	var request entity.DistributeRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *distributeRepository) Find(ctx context.Context, status string, residentID *uuid.UUID) ([]entity.DistributeRequest, error) {
	query := r.db.WithContext(ctx).Order("requested_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if residentID != nil {
		query = query.Where("resident_id = ?", *residentID)
	}

	var requests []entity.DistributeRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *distributeRepository) Save(ctx context.Context, request *entity.DistributeRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}
