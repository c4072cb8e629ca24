package repository

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrainingRepository interface {
	FindModulesByAudience(ctx context.Context, audience string) ([]entity.TrainingModule, error)
	FindModuleByID(ctx context.Context, id uuid.UUID) (*entity.TrainingModule, error)
	FindProgressByUser(ctx context.Context, userID uuid.UUID) ([]entity.TrainingProgress, error)
	SaveProgress(ctx context.Context, progress *entity.TrainingProgress) error
	CountModules(ctx context.Context) (int64, error)
}

type trainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) TrainingRepository {
	return &trainingRepository{db: db}
}

func (r *trainingRepository) FindModulesByAudience(ctx context.Context, audience string) ([]entity.TrainingModule, error) {
	var modules []entity.TrainingModule
	if err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("audience = ?", audience).
		Order("created_at ASC").
		Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *trainingRepository) FindModuleByID(ctx context.Context, id uuid.UUID) (*entity.TrainingModule, error) {
	var module entity.TrainingModule
	if err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&module, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *trainingRepository) FindProgressByUser(ctx context.Context, userID uuid.UUID) ([]entity.TrainingProgress, error) {
	var progress []entity.TrainingProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// SaveProgress upserts on (user_id, training_module_id) so retaking a quiz
// overwrites the previous attempt instead of stacking rows.
func (r *trainingRepository) SaveProgress(ctx context.Context, progress *entity.TrainingProgress) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "training_module_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed", "score", "completed_at"}),
		}).
		Create(progress).Error
}

func (r *trainingRepository) CountModules(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.TrainingModule{}).Count(&count).Error
	return count, err
}
