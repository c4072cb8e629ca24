package repository

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.OverflowReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OverflowReport, error)
	FindByIDs(ctx context.Context, ids []string) ([]entity.OverflowReport, error)
	FindAll(ctx context.Context, status, collector string) ([]entity.OverflowReport, error)
	Save(ctx context.Context, report *entity.OverflowReport) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *entity.OverflowReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OverflowReport, error) {
	var report entity.OverflowReport
	if err := r.db.WithContext(ctx).
		Preload("Resident").
		First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.OverflowReport, error) {
	var reports []entity.OverflowReport
	if len(ids) == 0 {
		return reports, nil
	}
	if err := r.db.WithContext(ctx).
		Preload("Resident").
		Where("id IN ?", ids).
		Order("reported_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) FindAll(ctx context.Context, status, collector string) ([]entity.OverflowReport, error) {
	query := r.db.WithContext(ctx).Preload("Resident")

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if collector != "" {
		query = query.Where("assigned_collector_id = ?", collector)
	}

	var reports []entity.OverflowReport
	if err := query.Order("reported_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) Save(ctx context.Context, report *entity.OverflowReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}
