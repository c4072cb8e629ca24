package service

import (
	"context"
	"errors"
	"testing"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/chat/dto"
	"anoa.com/binbeacon/internal/modules/chat/repository"
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

	if err := db.AutoMigrate(&entity.User{}, &entity.Chat{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func TestSendRequiresOneDestination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChatService(repository.NewChatRepository(db), nil)

	// Neither receiver nor group
	_, err := svc.Send(context.Background(), dto.SendChatInput{
		SenderID: uuid.NewString(),
		Message:  "hello",
	})
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 400 {
		t.Fatalf("no destination: err = %v, want 400", err)
	}

	// Both receiver and group
	_, err = svc.Send(context.Background(), dto.SendChatInput{
		SenderID:   uuid.NewString(),
		ReceiverID: uuid.NewString(),
		Group:      "ward-1",
		Message:    "hello",
	})
	if !errors.As(err, &appErr) || appErr.Code != 400 {
		t.Fatalf("both destinations: err = %v, want 400", err)
	}
}

func TestPrivateHistoryCoversBothDirections(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChatService(repository.NewChatRepository(db), nil)

	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	send := func(from, to uuid.UUID, msg string) {
		t.Helper()
		if _, err := svc.Send(context.Background(), dto.SendChatInput{
			SenderID:   from.String(),
			ReceiverID: to.String(),
			Message:    msg,
		}); err != nil {
			t.Fatalf("send failed: %v", err)
		}
	}

	send(alice, bob, "hi bob")
	send(bob, alice, "hi alice")
	send(alice, carol, "hi carol")

	history, err := svc.PrivateHistory(context.Background(), alice, bob)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d messages, want 2", len(history))
	}
	// Oldest first
	if history[0].Message != "hi bob" || history[1].Message != "hi alice" {
		t.Errorf("history out of order: %q then %q", history[0].Message, history[1].Message)
	}
}

func TestGroupHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChatService(repository.NewChatRepository(db), nil)

	for _, msg := range []string{"first", "second"} {
		if _, err := svc.Send(context.Background(), dto.SendChatInput{
			SenderID: uuid.NewString(),
			Group:    "ward-1",
			Message:  msg,
		}); err != nil {
			t.Fatalf("send failed: %v", err)
		}
	}
	if _, err := svc.Send(context.Background(), dto.SendChatInput{
		SenderID: uuid.NewString(),
		Group:    "ward-2",
		Message:  "other ward",
	}); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	history, err := svc.GroupHistory(context.Background(), "ward-1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("history = %d messages, want 2", len(history))
	}
}
