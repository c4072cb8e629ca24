package service

import (
	"context"
	"testing"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/feedback/dto"
	"anoa.com/binbeacon/internal/modules/feedback/repository"
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

	if err := db.AutoMigrate(&entity.User{}, &entity.Feedback{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func TestSubmitAndAverage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeedbackService(repository.NewFeedbackRepository(db))

	resident := uuid.NewString()
	collector := uuid.New()

	submit := func(rating int) {
		t.Helper()
		_, err := svc.Submit(context.Background(), dto.SubmitFeedbackInput{
			ResidentID:  resident,
			CollectorID: collector.String(),
			Rating:      rating,
		})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	submit(5)

	summary, err := svc.SummaryForCollector(context.Background(), collector)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.AverageRating != 5.0 {
		t.Errorf("average after one 5-star rating = %f, want 5.0", summary.AverageRating)
	}

	submit(2)

	summary, err = svc.SummaryForCollector(context.Background(), collector)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Count != 2 {
		t.Errorf("count = %d, want 2", summary.Count)
	}
	if summary.AverageRating != 3.5 {
		t.Errorf("average = %f, want 3.5", summary.AverageRating)
	}
}

func TestSummaryOnlyCountsOwnFeedback(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeedbackService(repository.NewFeedbackRepository(db))

	target := uuid.New()
	other := uuid.New()

	for _, c := range []uuid.UUID{target, other} {
		if _, err := svc.Submit(context.Background(), dto.SubmitFeedbackInput{
			ResidentID:  uuid.NewString(),
			CollectorID: c.String(),
			Rating:      4,
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	summary, err := svc.SummaryForCollector(context.Background(), target)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Count != 1 {
		t.Errorf("count = %d, want 1", summary.Count)
	}
}
