package service

import (
	"context"
	"errors"
	"testing"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/report/dto"
	"anoa.com/binbeacon/internal/modules/report/repository"
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

	if err := db.AutoMigrate(&entity.User{}, &entity.OverflowReport{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func newTestService(t *testing.T) (ReportService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	// No storage or search backends in tests; both degrade gracefully
	return NewReportService(repository.NewReportRepository(db), nil, nil, ""), db
}

func floatPtr(f float64) *float64 { return &f }

func createReport(t *testing.T, svc ReportService) *entity.OverflowReport {
	t.Helper()
	report, err := svc.Create(context.Background(), dto.CreateReportInput{
		ResidentID:   uuid.NewString(),
		OverflowType: "street-bin",
		Location:     &dto.LocationInput{Lat: floatPtr(28.61), Lng: floatPtr(77.21), Address: "Main Road"},
		Remarks:      "bin overflowing since morning",
	})
	if err != nil {
		t.Fatalf("create report failed: %v", err)
	}
	return report
}

func TestCreateReportStartsPending(t *testing.T) {
	svc, db := newTestService(t)

	report := createReport(t, svc)
	if report.Status != entity.ReportStatusPending {
		t.Errorf("status = %q, want pending", report.Status)
	}
	if report.AssignedCollectorID != nil {
		t.Error("new report should have no collector")
	}

	var count int64
	db.Model(&entity.OverflowReport{}).Count(&count)
	if count != 1 {
		t.Errorf("report count = %d, want 1", count)
	}
}

func TestAssignThenResolve(t *testing.T) {
	svc, _ := newTestService(t)
	report := createReport(t, svc)
	collectorID := uuid.New()

	assigned, err := svc.Assign(context.Background(), report.ID, collectorID)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if assigned.Status != entity.ReportStatusAssigned {
		t.Errorf("status = %q, want assigned", assigned.Status)
	}

	resolved, err := svc.Resolve(context.Background(), report.ID)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.Status != entity.ReportStatusResolved {
		t.Errorf("status = %q, want resolved", resolved.Status)
	}
	// Resolving keeps the assignment for the history view
	if resolved.AssignedCollectorID == nil || *resolved.AssignedCollectorID != collectorID {
		t.Error("resolved report lost its collector")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	report := createReport(t, svc)

	if _, err := svc.Resolve(context.Background(), report.ID); err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}

	again, err := svc.Resolve(context.Background(), report.ID)
	if err != nil {
		t.Fatalf("second resolve should be a no-op, got: %v", err)
	}
	if again.Status != entity.ReportStatusResolved {
		t.Errorf("status = %q, want resolved", again.Status)
	}
}

func TestAssignAfterResolveConflicts(t *testing.T) {
	svc, _ := newTestService(t)
	report := createReport(t, svc)

	if _, err := svc.Resolve(context.Background(), report.ID); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	_, err := svc.Assign(context.Background(), report.ID, uuid.New())
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 409 {
		t.Fatalf("err = %v, want 409 conflict", err)
	}
}

func TestAssignMissingReport(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Assign(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc, _ := newTestService(t)

	first := createReport(t, svc)
	createReport(t, svc)

	if _, err := svc.Resolve(context.Background(), first.ID); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	pending, err := svc.List(context.Background(), dto.ReportFilter{Status: entity.ReportStatusPending})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("pending count = %d, want 1", len(pending))
	}
}

func TestSearchWithoutBackendReturnsEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	createReport(t, svc)

	results, err := svc.Search(context.Background(), "overflow")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0 without a search backend", len(results))
	}
}
