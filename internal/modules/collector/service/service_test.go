package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/collector/dto"
	"anoa.com/binbeacon/internal/modules/collector/repository"
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

	if err := db.AutoMigrate(
		&entity.House{},
		&entity.User{},
		&entity.CollectorProfile{},
		&entity.SegregationViolation{},
		&entity.CollectionRecord{},
		&entity.Attendance{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedHouseWithResident(t *testing.T, db *gorm.DB, score int) (*entity.House, *entity.User) {
	t.Helper()

	house := &entity.House{
		WardNumber:  "WARD-1",
		HouseNumber: "12",
		HouseCode:   "WARD-" + uuid.NewString(),
		BeaconScore: score,
	}
	if err := db.Create(house).Error; err != nil {
		t.Fatalf("failed to seed house: %v", err)
	}

	resident := &entity.User{
		Name:         "Resident",
		Phone:        uuid.NewString(),
		PasswordHash: "x",
		Role:         entity.RoleResident,
		HouseID:      &house.ID,
	}
	if err := db.Create(resident).Error; err != nil {
		t.Fatalf("failed to seed resident: %v", err)
	}

	return house, resident
}

func TestCompleteCollection(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectorService(repository.NewCollectorRepository(db))
	house, resident := seedHouseWithResident(t, db, 80)

	collectorID := uuid.New()
	profile := entity.CollectorProfile{UserID: collectorID, CollectionProgress: 95}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}

	resp, err := svc.CompleteCollection(context.Background(), collectorID, dto.CollectionCompleteInput{
		HouseID:   house.ID.String(),
		WasteType: "wet",
	})
	if err != nil {
		t.Fatalf("complete collection failed: %v", err)
	}

	if resp.Record.ResidentID != resident.ID {
		t.Error("record not linked to the house's resident")
	}
	// Progress is capped at 100
	if resp.CollectionProgress != 100 {
		t.Errorf("progress = %d, want 100", resp.CollectionProgress)
	}
}

func TestCompleteCollectionUnknownHouse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectorService(repository.NewCollectorRepository(db))

	_, err := svc.CompleteCollection(context.Background(), uuid.New(), dto.CollectionCompleteInput{
		HouseID: uuid.NewString(),
	})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReportHouseAppliesPenalty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectorService(repository.NewCollectorRepository(db))
	house, _ := seedHouseWithResident(t, db, 80)

	resp, err := svc.ReportHouse(context.Background(), uuid.New(), dto.ReportHouseInput{
		HouseID: house.ID.String(),
		Reason:  "mixed waste",
	})
	if err != nil {
		t.Fatalf("report house failed: %v", err)
	}
	if resp.BeaconScore != 70 {
		t.Errorf("score = %d, want 70", resp.BeaconScore)
	}

	var count int64
	db.Model(&entity.SegregationViolation{}).Count(&count)
	if count != 1 {
		t.Errorf("violation count = %d, want 1", count)
	}
}

func TestReportHouseScoreFloorsAtZero(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectorService(repository.NewCollectorRepository(db))
	house, _ := seedHouseWithResident(t, db, 5)

	resp, err := svc.ReportHouse(context.Background(), uuid.New(), dto.ReportHouseInput{
		HouseID: house.ID.String(),
		Reason:  "mixed waste",
	})
	if err != nil {
		t.Fatalf("report house failed: %v", err)
	}
	if resp.BeaconScore != 0 {
		t.Errorf("score = %d, want 0", resp.BeaconScore)
	}
}

func TestCheckInIsIdempotentSameDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectorService(repository.NewCollectorRepository(db))
	collectorID := uuid.New()

	first, err := svc.CheckIn(context.Background(), collectorID)
	if err != nil {
		t.Fatalf("check-in failed: %v", err)
	}

	second, err := svc.CheckIn(context.Background(), collectorID)
	if err != nil {
		t.Fatalf("repeat check-in failed: %v", err)
	}
	if first.ID != second.ID {
		t.Error("repeat check-in created a second attendance row")
	}

	var count int64
	db.Model(&entity.Attendance{}).Count(&count)
	if count != 1 {
		t.Errorf("attendance rows = %d, want 1", count)
	}
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCollectorService(repository.NewCollectorRepository(db))

	_, err := svc.CheckOut(context.Background(), uuid.New())
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 400 {
		t.Fatalf("err = %v, want 400", err)
	}
}

func TestCheckOutShortShiftIsHalfDay(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCollectorRepository(db)

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	svc := &collectorService{repo: repo, now: func() time.Time { return base }}

	collectorID := uuid.New()
	if _, err := svc.CheckIn(context.Background(), collectorID); err != nil {
		t.Fatalf("check-in failed: %v", err)
	}

	svc.now = func() time.Time { return base.Add(2 * time.Hour) }
	attendance, err := svc.CheckOut(context.Background(), collectorID)
	if err != nil {
		t.Fatalf("check-out failed: %v", err)
	}
	if attendance.Status != entity.AttendanceHalfDay {
		t.Errorf("status = %q, want half-day", attendance.Status)
	}

	// A full shift keeps the present status
	svc.now = func() time.Time { return base }
	otherID := uuid.New()
	if _, err := svc.CheckIn(context.Background(), otherID); err != nil {
		t.Fatalf("check-in failed: %v", err)
	}
	svc.now = func() time.Time { return base.Add(8 * time.Hour) }
	attendance, err = svc.CheckOut(context.Background(), otherID)
	if err != nil {
		t.Fatalf("check-out failed: %v", err)
	}
	if attendance.Status != entity.AttendancePresent {
		t.Errorf("status = %q, want present", attendance.Status)
	}
}
