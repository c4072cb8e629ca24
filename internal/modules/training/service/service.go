package service

import (
	"context"
	"errors"
	"math"
	"time"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/training/dto"
	"anoa.com/binbeacon/internal/modules/training/repository"
	"anoa.com/binbeacon/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrainingService interface {
	ModulesForAudience(ctx context.Context, audience string) ([]entity.TrainingModule, error)
	SubmitQuiz(ctx context.Context, userID, moduleID uuid.UUID, input dto.SubmitQuizInput) (*dto.QuizResult, error)
	ProgressForUser(ctx context.Context, userID uuid.UUID, audience string) (*dto.ProgressOverview, error)
}

type trainingService struct {
	repo repository.TrainingRepository
}

func NewTrainingService(repo repository.TrainingRepository) TrainingService {
	return &trainingService{repo: repo}
}

func (s *trainingService) ModulesForAudience(ctx context.Context, audience string) ([]entity.TrainingModule, error) {
	if audience != entity.TrainingAudienceResident && audience != entity.TrainingAudienceCollector {
		return nil, apperror.ErrValidation
	}
	return s.repo.FindModulesByAudience(ctx, audience)
}

// SubmitQuiz grades the submitted answers against the module's answer key and
// records the attempt. Any score completes the module; there is no pass mark.
func (s *trainingService) SubmitQuiz(ctx context.Context, userID, moduleID uuid.UUID, input dto.SubmitQuizInput) (*dto.QuizResult, error) {
	module, err := s.repo.FindModuleByID(ctx, moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	if len(module.Questions) == 0 {
		return nil, apperror.New(500, "module has no questions", nil)
	}

	correct := 0
	for _, q := range module.Questions {
		if answer, ok := input.Answers[q.ID.String()]; ok && answer == q.CorrectIndex {
			correct++
		}
	}

	score := int(math.Round(float64(correct) / float64(len(module.Questions)) * 100))

	progress := &entity.TrainingProgress{
		UserID:           userID,
		TrainingModuleID: module.ID,
		Completed:        true,
		Score:            score,
		CompletedAt:      time.Now(),
	}
	if err := s.repo.SaveProgress(ctx, progress); err != nil {
		return nil, err
	}

	return &dto.QuizResult{
		ModuleID:       module.ID.String(),
		TotalQuestions: len(module.Questions),
		Correct:        correct,
		Score:          score,
		Completed:      true,
	}, nil
}

func (s *trainingService) ProgressForUser(ctx context.Context, userID uuid.UUID, audience string) (*dto.ProgressOverview, error) {
	modules, err := s.ModulesForAudience(ctx, audience)
	if err != nil {
		return nil, err
	}

	progress, err := s.repo.FindProgressByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byModule := make(map[uuid.UUID]entity.TrainingProgress, len(progress))
	for _, p := range progress {
		byModule[p.TrainingModuleID] = p
	}

	overview := &dto.ProgressOverview{TotalCount: len(modules)}
	for _, m := range modules {
		mp := dto.ModuleProgress{Module: m}
		if p, ok := byModule[m.ID]; ok {
			mp.Completed = p.Completed
			mp.Score = p.Score
			if p.Completed {
				overview.CompletedCount++
			}
		}
		overview.Modules = append(overview.Modules, mp)
	}

	if overview.TotalCount > 0 {
		overview.OverallCompletion = int(math.Round(float64(overview.CompletedCount) / float64(overview.TotalCount) * 100))
	}

	return overview, nil
}
