package service

import (
	"context"
	"errors"
	"testing"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/tip/dto"
	"anoa.com/binbeacon/internal/modules/tip/repository"
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

	if err := db.AutoMigrate(&entity.User{}, &entity.Tip{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func TestSendTipAndSummary(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTipService(repository.NewTipRepository(db))

	resident := uuid.NewString()
	collector := uuid.New()

	send := func(amount int) {
		t.Helper()
		_, err := svc.SendTip(context.Background(), dto.SendTipInput{
			FromResidentID: resident,
			ToCollectorID:  collector.String(),
			Amount:         amount,
		})
		if err != nil {
			t.Fatalf("send tip failed: %v", err)
		}
	}

	send(50)

	summary, err := svc.SummaryForCollector(context.Background(), collector)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalAmount != 50 || summary.Count != 1 {
		t.Errorf("summary = %d/%d, want 50/1", summary.TotalAmount, summary.Count)
	}
	if summary.AverageAmount != 50 {
		t.Errorf("average = %f, want 50", summary.AverageAmount)
	}

	// Duplicate tips are allowed and each one counts
	send(50)
	send(10)

	summary, err = svc.SummaryForCollector(context.Background(), collector)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalAmount != 110 || summary.Count != 3 {
		t.Errorf("summary = %d/%d, want 110/3", summary.TotalAmount, summary.Count)
	}
}

func TestSummaryForCollectorWithoutTips(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTipService(repository.NewTipRepository(db))

	summary, err := svc.SummaryForCollector(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Count != 0 || summary.AverageAmount != 0 {
		t.Errorf("empty summary = %+v", summary)
	}
}

func TestSendTipRejectsBadIDs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTipService(repository.NewTipRepository(db))

	_, err := svc.SendTip(context.Background(), dto.SendTipInput{
		FromResidentID: "not-a-uuid",
		ToCollectorID:  uuid.NewString(),
		Amount:         10,
	})
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}
