package repository

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CollectorRepository interface {
	Houses(ctx context.Context) ([]entity.House, error)
	HouseByID(ctx context.Context, id uuid.UUID) (*entity.House, error)
	SaveHouse(ctx context.Context, house *entity.House) error
	ResidentByHouse(ctx context.Context, houseID uuid.UUID) (*entity.User, error)

	CreateViolation(ctx context.Context, violation *entity.SegregationViolation) error
	CreateCollectionRecord(ctx context.Context, record *entity.CollectionRecord) error

	ProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.CollectorProfile, error)
	SaveProfile(ctx context.Context, profile *entity.CollectorProfile) error

	AttendanceFor(ctx context.Context, collectorID uuid.UUID, date string) (*entity.Attendance, error)
	CreateAttendance(ctx context.Context, attendance *entity.Attendance) error
	SaveAttendance(ctx context.Context, attendance *entity.Attendance) error
}

type collectorRepository struct {
	db *gorm.DB
}

func NewCollectorRepository(db *gorm.DB) CollectorRepository {
	return &collectorRepository{db: db}
}

func (r *collectorRepository) Houses(ctx context.Context) ([]entity.House, error) {
	var houses []entity.House
	if err := r.db.WithContext(ctx).Order("ward_number, house_number").Find(&houses).Error; err != nil {
		return nil, err
	}
	return houses, nil
}

func (r *collectorRepository) HouseByID(ctx context.Context, id uuid.UUID) (*entity.House, error) {
	var house entity.House
	if err := r.db.WithContext(ctx).First(&house, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &house, nil
}

func (r *collectorRepository) SaveHouse(ctx context.Context, house *entity.House) error {
	return r.db.WithContext(ctx).Save(house).Error
}

func (r *collectorRepository) ResidentByHouse(ctx context.Context, houseID uuid.UUID) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).
		Where("house_id = ? AND role = ?", houseID, entity.RoleResident).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *collectorRepository) CreateViolation(ctx context.Context, violation *entity.SegregationViolation) error {
	return r.db.WithContext(ctx).Create(violation).Error
}

func (r *collectorRepository) CreateCollectionRecord(ctx context.Context, record *entity.CollectionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *collectorRepository) ProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.CollectorProfile, error) {
	var profile entity.CollectorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *collectorRepository) SaveProfile(ctx context.Context, profile *entity.CollectorProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *collectorRepository) AttendanceFor(ctx context.Context, collectorID uuid.UUID, date string) (*entity.Attendance, error) {
	var attendance entity.Attendance
	if err := r.db.WithContext(ctx).
		Where("collector_id = ? AND date = ?", collectorID, date).
		First(&attendance).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *collectorRepository) CreateAttendance(ctx context.Context, attendance *entity.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *collectorRepository) SaveAttendance(ctx context.Context, attendance *entity.Attendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}
