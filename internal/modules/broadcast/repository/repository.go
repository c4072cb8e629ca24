package repository

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"gorm.io/gorm"
)

type BroadcastRepository interface {
	Create(ctx context.Context, broadcast *entity.Broadcast) error
	FindAll(ctx context.Context) ([]entity.Broadcast, error)
	FindByAudience(ctx context.Context, audience string) ([]entity.Broadcast, error)
}

type broadcastRepository struct {
	db *gorm.DB
}

func NewBroadcastRepository(db *gorm.DB) BroadcastRepository {
	return &broadcastRepository{db: db}
}

func (r *broadcastRepository) Create(ctx context.Context, broadcast *entity.Broadcast) error {
	return r.db.WithContext(ctx).Create(broadcast).Error
}

func (r *broadcastRepository) FindAll(ctx context.Context) ([]entity.Broadcast, error) {
	var broadcasts []entity.Broadcast
	if err := r.db.WithContext(ctx).
		Preload("Authority").
		Order("sent_at DESC").
		Find(&broadcasts).Error; err != nil {
		return nil, err
	}
	return broadcasts, nil
}

// FindByAudience returns broadcasts aimed at one audience plus those sent to
// everyone, newest first.
func (r *broadcastRepository) FindByAudience(ctx context.Context, audience string) ([]entity.Broadcast, error) {
	var broadcasts []entity.Broadcast
	if err := r.db.WithContext(ctx).
		Preload("Authority").
		Where("target_audience = ? OR target_audience = ?", audience, entity.AudienceAll).
		Order("sent_at DESC").
		Find(&broadcasts).Error; err != nil {
		return nil, err
	}
	return broadcasts, nil
}
