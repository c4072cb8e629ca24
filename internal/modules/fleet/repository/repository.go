package repository

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FleetRepository interface {
	CreateRoute(ctx context.Context, route *entity.TruckRoute) error
	FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.TruckRoute, error)
	FindRoutes(ctx context.Context, ward, date string) ([]entity.TruckRoute, error)
	SaveRoute(ctx context.Context, route *entity.TruckRoute) error
}

type fleetRepository struct {
	db *gorm.DB
}

func NewFleetRepository(db *gorm.DB) FleetRepository {
	return &fleetRepository{db: db}
}

func (r *fleetRepository) CreateRoute(ctx context.Context, route *entity.TruckRoute) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *fleetRepository) FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.TruckRoute, error) {
	var route entity.TruckRoute
	if err := r.db.WithContext(ctx).First(&route, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *fleetRepository) FindRoutes(ctx context.Context, ward, date string) ([]entity.TruckRoute, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if ward != "" {
		query = query.Where("ward_number = ?", ward)
	}
	if date != "" {
		query = query.Where("date = ?", date)
	}

	var routes []entity.TruckRoute
	if err := query.Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *fleetRepository) SaveRoute(ctx context.Context, route *entity.TruckRoute) error {
	return r.db.WithContext(ctx).Save(route).Error
}
