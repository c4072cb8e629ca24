package service

import (
	"context"
	"errors"
	"time"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/fleet/dto"
	"anoa.com/binbeacon/internal/modules/fleet/repository"
	"anoa.com/binbeacon/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FleetService interface {
	CreateRoute(ctx context.Context, input dto.CreateRouteInput) (*entity.TruckRoute, error)
	ListRoutes(ctx context.Context, ward, date string) ([]entity.TruckRoute, error)
	AdvanceRoute(ctx context.Context, id uuid.UUID) (*entity.TruckRoute, error)
}

type fleetService struct {
	repo repository.FleetRepository
}

func NewFleetService(repo repository.FleetRepository) FleetService {
	return &fleetService{repo: repo}
}

func (s *fleetService) CreateRoute(ctx context.Context, input dto.CreateRouteInput) (*entity.TruckRoute, error) {
	collectorID, err := uuid.Parse(input.CollectorID)
	if err != nil {
		return nil, apperror.ErrValidation
	}
	if len(input.Path) < 2 {
		return nil, apperror.New(400, "route needs at least two waypoints", nil)
	}

	route := &entity.TruckRoute{
		Date:        input.Date,
		WardNumber:  input.WardNumber,
		CollectorID: collectorID,
		Path:        datatypes.NewJSONSlice(input.Path),
	}

	if err := s.repo.CreateRoute(ctx, route); err != nil {
		return nil, err
	}

	return route, nil
}

func (s *fleetService) ListRoutes(ctx context.Context, ward, date string) ([]entity.TruckRoute, error) {
	return s.repo.FindRoutes(ctx, ward, date)
}

// AdvanceRoute moves the truck one waypoint forward. The first advance stamps
// StartedAt; reaching the last waypoint stamps CompletedAt. Advancing a
// completed route is a no-op.
func (s *fleetService) AdvanceRoute(ctx context.Context, id uuid.UUID) (*entity.TruckRoute, error) {
	route, err := s.repo.FindRouteByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if route.CompletedAt != nil || route.CurrentIndex >= len(route.Path)-1 {
		return route, nil
	}

	now := time.Now()
	if route.StartedAt == nil {
		route.StartedAt = &now
	}

	route.CurrentIndex++
	if route.CurrentIndex >= len(route.Path)-1 {
		route.CompletedAt = &now
	}

	if err := s.repo.SaveRoute(ctx, route); err != nil {
		return nil, err
	}

	return route, nil
}
