package repository

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResidentRepository interface {
	ProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.ResidentProfile, error)
	SaveProfile(ctx context.Context, profile *entity.ResidentProfile) error
	ReportsByResident(ctx context.Context, residentID uuid.UUID) ([]entity.OverflowReport, error)
	CollectionsByResident(ctx context.Context, residentID uuid.UUID) ([]entity.CollectionRecord, error)
}

type residentRepository struct {
	db *gorm.DB
}

func NewResidentRepository(db *gorm.DB) ResidentRepository {
	return &residentRepository{db: db}
}

func (r *residentRepository) ProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.ResidentProfile, error) {
	var profile entity.ResidentProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *residentRepository) SaveProfile(ctx context.Context, profile *entity.ResidentProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *residentRepository) ReportsByResident(ctx context.Context, residentID uuid.UUID) ([]entity.OverflowReport, error) {
	var reports []entity.OverflowReport
	if err := r.db.WithContext(ctx).
		Where("resident_id = ?", residentID).
		Order("reported_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *residentRepository) CollectionsByResident(ctx context.Context, residentID uuid.UUID) ([]entity.CollectionRecord, error) {
	var records []entity.CollectionRecord
	if err := r.db.WithContext(ctx).
		Where("resident_id = ?", residentID).
		Order("collected_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
