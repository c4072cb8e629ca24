package service

import (
	"context"
	"errors"
	"testing"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/fleet/dto"
	"anoa.com/binbeacon/internal/modules/fleet/repository"
	"anoa.com/binbeacon/pkg/apperror"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&entity.TruckRoute{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func createRoute(t *testing.T, svc FleetService, waypoints int) *entity.TruckRoute {
	t.Helper()

	path := make([]entity.Waypoint, waypoints)
	for i := range path {
		path[i] = entity.Waypoint{Lat: 28.61 + float64(i)/1000, Lng: 77.21}
	}

	route, err := svc.CreateRoute(context.Background(), dto.CreateRouteInput{
		Date:        "2026-03-02",
		WardNumber:  "WARD-1",
		CollectorID: uuid.NewString(),
		Path:        path,
	})
	if err != nil {
		t.Fatalf("create route failed: %v", err)
	}
	return route
}

func TestCreateRouteNeedsTwoWaypoints(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFleetService(repository.NewFleetRepository(db))

	_, err := svc.CreateRoute(context.Background(), dto.CreateRouteInput{
		Date:        "2026-03-02",
		WardNumber:  "WARD-1",
		CollectorID: uuid.NewString(),
		Path:        []entity.Waypoint{{Lat: 28.61, Lng: 77.21}},
	})
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 400 {
		t.Fatalf("err = %v, want 400", err)
	}
}

func TestAdvanceRoute(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFleetService(repository.NewFleetRepository(db))
	route := createRoute(t, svc, 3)

	first, err := svc.AdvanceRoute(context.Background(), route.ID)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if first.CurrentIndex != 1 {
		t.Errorf("index = %d, want 1", first.CurrentIndex)
	}
	if first.StartedAt == nil {
		t.Error("first advance should stamp StartedAt")
	}
	if first.CompletedAt != nil {
		t.Error("route not yet complete")
	}

	second, err := svc.AdvanceRoute(context.Background(), route.ID)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if second.CurrentIndex != 2 {
		t.Errorf("index = %d, want 2", second.CurrentIndex)
	}
	if second.CompletedAt == nil {
		t.Error("reaching the last waypoint should stamp CompletedAt")
	}

	// Advancing past the end is a no-op
	third, err := svc.AdvanceRoute(context.Background(), route.ID)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if third.CurrentIndex != 2 {
		t.Errorf("index = %d, want 2 after completion", third.CurrentIndex)
	}
}

func TestAdvanceUnknownRoute(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFleetService(repository.NewFleetRepository(db))

	_, err := svc.AdvanceRoute(context.Background(), uuid.New())
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListRoutesFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFleetService(repository.NewFleetRepository(db))

	createRoute(t, svc, 2)

	other, err := svc.CreateRoute(context.Background(), dto.CreateRouteInput{
		Date:        "2026-03-03",
		WardNumber:  "WARD-2",
		CollectorID: uuid.NewString(),
		Path:        []entity.Waypoint{{Lat: 28.7, Lng: 77.1}, {Lat: 28.71, Lng: 77.11}},
	})
	if err != nil {
		t.Fatalf("create route failed: %v", err)
	}

	routes, err := svc.ListRoutes(context.Background(), "WARD-2", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(routes) != 1 || routes[0].ID != other.ID {
		t.Errorf("ward filter returned %d routes", len(routes))
	}

	routes, err = svc.ListRoutes(context.Background(), "", "2026-03-02")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(routes) != 1 {
		t.Errorf("date filter returned %d routes", len(routes))
	}
}
