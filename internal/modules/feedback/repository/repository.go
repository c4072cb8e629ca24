package repository

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByCollector(ctx context.Context, collectorID uuid.UUID) ([]entity.Feedback, error)
	FindAll(ctx context.Context) ([]entity.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) FindByCollector(ctx context.Context, collectorID uuid.UUID) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	if err := r.db.WithContext(ctx).
		Preload("Resident").
		Where("collector_id = ?", collectorID).
		Order("submitted_at DESC").
		Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) FindAll(ctx context.Context) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	if err := r.db.WithContext(ctx).
		Order("submitted_at DESC").
		Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}
