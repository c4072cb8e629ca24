package service

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/feedback/dto"
	"anoa.com/binbeacon/internal/modules/feedback/repository"
	"anoa.com/binbeacon/pkg/apperror"
	"github.com/google/uuid"
)

type FeedbackService interface {
	Submit(ctx context.Context, input dto.SubmitFeedbackInput) (*entity.Feedback, error)
	All(ctx context.Context) ([]entity.Feedback, error)
	ForCollector(ctx context.Context, collectorID uuid.UUID) ([]entity.Feedback, error)
	SummaryForCollector(ctx context.Context, collectorID uuid.UUID) (*dto.FeedbackSummary, error)
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) Submit(ctx context.Context, input dto.SubmitFeedbackInput) (*entity.Feedback, error) {
	residentID, err := uuid.Parse(input.ResidentID)
	if err != nil {
		return nil, apperror.ErrValidation
	}
	collectorID, err := uuid.Parse(input.CollectorID)
	if err != nil {
		return nil, apperror.ErrValidation
	}

	feedback := &entity.Feedback{
		ResidentID:  residentID,
		CollectorID: collectorID,
		Rating:      input.Rating,
		Comment:     input.Comment,
	}

	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (s *feedbackService) All(ctx context.Context) ([]entity.Feedback, error) {
	return s.repo.FindAll(ctx)
}

func (s *feedbackService) ForCollector(ctx context.Context, collectorID uuid.UUID) ([]entity.Feedback, error) {
	return s.repo.FindByCollector(ctx, collectorID)
}

func (s *feedbackService) SummaryForCollector(ctx context.Context, collectorID uuid.UUID) (*dto.FeedbackSummary, error) {
	feedbacks, err := s.repo.FindByCollector(ctx, collectorID)
	if err != nil {
		return nil, err
	}

	summary := &dto.FeedbackSummary{CollectorID: collectorID.String()}
	total := 0
	for _, f := range feedbacks {
		total += f.Rating
		summary.Count++
	}

	if summary.Count > 0 {
		summary.AverageRating = float64(total) / float64(summary.Count)
	}

	return summary, nil
}
