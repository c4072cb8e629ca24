package service

import (
	"context"
	"errors"
	"testing"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/resident/repository"
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
		&entity.User{},
		&entity.ResidentProfile{},
		&entity.OverflowReport{},
		&entity.CollectionRecord{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedProfile(t *testing.T, db *gorm.DB, score int) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	profile := entity.ResidentProfile{
		UserID:      userID,
		BeaconScore: score,
		IsAvailable: false,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return userID
}

func TestSetAvailability(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResidentService(repository.NewResidentRepository(db))
	userID := seedProfile(t, db, 80)

	resp, err := svc.SetAvailability(context.Background(), userID, true)
	if err != nil {
		t.Fatalf("set availability failed: %v", err)
	}
	if !resp.IsAvailable {
		t.Error("expected is_available true")
	}

	var profile entity.ResidentProfile
	db.First(&profile, "user_id = ?", userID)
	if !profile.IsAvailable {
		t.Error("availability not persisted")
	}
}

func TestSetAvailabilityBlockedByLowScore(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResidentService(repository.NewResidentRepository(db))
	userID := seedProfile(t, db, 40)

	_, err := svc.SetAvailability(context.Background(), userID, true)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 400 {
		t.Fatalf("err = %v, want 400", err)
	}

	// Going unavailable is always allowed, whatever the score
	if _, err := svc.SetAvailability(context.Background(), userID, false); err != nil {
		t.Fatalf("set unavailable failed: %v", err)
	}
}

func TestSetAvailabilityUnknownResident(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResidentService(repository.NewResidentRepository(db))

	_, err := svc.SetAvailability(context.Background(), uuid.New(), true)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResidentService(repository.NewResidentRepository(db))
	userID := seedProfile(t, db, 80)

	for i := 0; i < 2; i++ {
		report := entity.OverflowReport{
			ResidentID:   userID,
			OverflowType: "street-bin",
			Status:       entity.ReportStatusPending,
		}
		if err := db.Create(&report).Error; err != nil {
			t.Fatalf("failed to seed report: %v", err)
		}
	}
	record := entity.CollectionRecord{
		ResidentID: userID,
		WasteType:  "wet",
		Status:     entity.CollectionStatusCollected,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to seed collection: %v", err)
	}

	history, err := svc.History(context.Background(), userID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history.Reports) != 2 {
		t.Errorf("reports = %d, want 2", len(history.Reports))
	}
	if len(history.Collections) != 1 {
		t.Errorf("collections = %d, want 1", len(history.Collections))
	}
}
