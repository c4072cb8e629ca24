package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/training/dto"
	"anoa.com/binbeacon/internal/modules/training/repository"
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
		&entity.TrainingModule{},
		&entity.TrainingQuestion{},
		&entity.TrainingProgress{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// seedModule creates one module with three questions whose answer key is
// always option B (index 1).
func seedModule(t *testing.T, db *gorm.DB, slug, audience string) *entity.TrainingModule {
	t.Helper()

	module := &entity.TrainingModule{
		Slug:     slug,
		Title:    slug,
		Audience: audience,
		Level:    "basic",
	}
	for i := 1; i <= 3; i++ {
		module.Questions = append(module.Questions, entity.TrainingQuestion{
			Position:     i,
			Text:         fmt.Sprintf("question %d", i),
			OptionA:      "a",
			OptionB:      "b",
			OptionC:      "c",
			CorrectIndex: 1,
		})
	}
	if err := db.Create(module).Error; err != nil {
		t.Fatalf("failed to seed module: %v", err)
	}
	return module
}

func TestModulesForAudience(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTrainingService(repository.NewTrainingRepository(db))

	seedModule(t, db, "types-of-waste", entity.TrainingAudienceResident)
	seedModule(t, db, "worker-safety", entity.TrainingAudienceCollector)

	modules, err := svc.ModulesForAudience(context.Background(), entity.TrainingAudienceResident)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(modules) != 1 {
		t.Fatalf("modules = %d, want 1", len(modules))
	}
	if modules[0].Slug != "types-of-waste" {
		t.Errorf("slug = %q, want types-of-waste", modules[0].Slug)
	}

	if _, err := svc.ModulesForAudience(context.Background(), "manager"); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestSubmitQuizScoring(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTrainingService(repository.NewTrainingRepository(db))
	module := seedModule(t, db, "types-of-waste", entity.TrainingAudienceResident)
	userID := uuid.New()

	answers := map[string]int{
		module.Questions[0].ID.String(): 1, // right
		module.Questions[1].ID.String(): 0, // wrong
		module.Questions[2].ID.String(): 1, // right
	}

	result, err := svc.SubmitQuiz(context.Background(), userID, module.ID, dto.SubmitQuizInput{Answers: answers})
	if err != nil {
		t.Fatalf("submit quiz failed: %v", err)
	}
	if result.Correct != 2 {
		t.Errorf("correct = %d, want 2", result.Correct)
	}
	if result.Score != 67 {
		t.Errorf("score = %d, want 67", result.Score)
	}
	// Any submitted attempt completes the module, whatever the score
	if !result.Completed {
		t.Error("attempt should complete the module")
	}

	var progress entity.TrainingProgress
	if err := db.First(&progress, "user_id = ? AND training_module_id = ?", userID, module.ID).Error; err != nil {
		t.Fatalf("progress row missing: %v", err)
	}
	if progress.Score != 67 {
		t.Errorf("stored score = %d, want 67", progress.Score)
	}
}

func TestSubmitQuizRetakeOverwrites(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTrainingService(repository.NewTrainingRepository(db))
	module := seedModule(t, db, "types-of-waste", entity.TrainingAudienceResident)
	userID := uuid.New()

	wrong := map[string]int{module.Questions[0].ID.String(): 0}
	if _, err := svc.SubmitQuiz(context.Background(), userID, module.ID, dto.SubmitQuizInput{Answers: wrong}); err != nil {
		t.Fatalf("first attempt failed: %v", err)
	}

	all := map[string]int{
		module.Questions[0].ID.String(): 1,
		module.Questions[1].ID.String(): 1,
		module.Questions[2].ID.String(): 1,
	}
	result, err := svc.SubmitQuiz(context.Background(), userID, module.ID, dto.SubmitQuizInput{Answers: all})
	if err != nil {
		t.Fatalf("retake failed: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}

	var count int64
	db.Model(&entity.TrainingProgress{}).Where("user_id = ?", userID).Count(&count)
	if count != 1 {
		t.Errorf("progress rows = %d, want 1 after retake", count)
	}
}

func TestSubmitQuizUnknownModule(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTrainingService(repository.NewTrainingRepository(db))

	_, err := svc.SubmitQuiz(context.Background(), uuid.New(), uuid.New(), dto.SubmitQuizInput{Answers: map[string]int{}})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestProgressOverallCompletion(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTrainingService(repository.NewTrainingRepository(db))
	userID := uuid.New()

	var modules []*entity.TrainingModule
	for _, slug := range []string{"types-of-waste", "home-composting", "responsible-disposal", "rules-and-beacon-score"} {
		modules = append(modules, seedModule(t, db, slug, entity.TrainingAudienceResident))
	}

	for _, m := range modules[:3] {
		answers := map[string]int{m.Questions[0].ID.String(): 1}
		if _, err := svc.SubmitQuiz(context.Background(), userID, m.ID, dto.SubmitQuizInput{Answers: answers}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	overview, err := svc.ProgressForUser(context.Background(), userID, entity.TrainingAudienceResident)
	if err != nil {
		t.Fatalf("progress failed: %v", err)
	}
	if overview.CompletedCount != 3 || overview.TotalCount != 4 {
		t.Errorf("completed/total = %d/%d, want 3/4", overview.CompletedCount, overview.TotalCount)
	}
	if overview.OverallCompletion != 75 {
		t.Errorf("overall = %d, want 75", overview.OverallCompletion)
	}
}
