package repository

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	// CreateResident creates the House before the User that references it,
	// plus the resident profile, inside one transaction.
	CreateResident(ctx context.Context, user *entity.User, house *entity.House, profile *entity.ResidentProfile) error
	CreateCollector(ctx context.Context, user *entity.User, profile *entity.CollectorProfile) error
	CreateAuthority(ctx context.Context, user *entity.User, profile *entity.AuthorityProfile) error

	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindByRole(ctx context.Context, role string) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)

	ResidentProfile(ctx context.Context, userID uuid.UUID) (*entity.ResidentProfile, error)
	CollectorProfile(ctx context.Context, userID uuid.UUID) (*entity.CollectorProfile, error)
	AuthorityProfile(ctx context.Context, userID uuid.UUID) (*entity.AuthorityProfile, error)
	SaveResidentProfile(ctx context.Context, profile *entity.ResidentProfile) error
	SaveCollectorProfile(ctx context.Context, profile *entity.CollectorProfile) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateResident(ctx context.Context, user *entity.User, house *entity.House, profile *entity.ResidentProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(house).Error; err != nil {
			return err
		}

		user.HouseID = &house.ID
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *userRepository) CreateCollector(ctx context.Context, user *entity.User, profile *entity.CollectorProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *userRepository) CreateAuthority(ctx context.Context, user *entity.User, profile *entity.AuthorityProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).
		Preload("House").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).
		Preload("House").
		Where("phone = ?", phone).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByRole(ctx context.Context, role string) ([]*entity.User, error) {
	var users []*entity.User
	if err := r.db.WithContext(ctx).
		Preload("House").
		Where("role = ?", role).
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) ResidentProfile(ctx context.Context, userID uuid.UUID) (*entity.ResidentProfile, error) {
	var profile entity.ResidentProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) CollectorProfile(ctx context.Context, userID uuid.UUID) (*entity.CollectorProfile, error) {
	var profile entity.CollectorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) AuthorityProfile(ctx context.Context, userID uuid.UUID) (*entity.AuthorityProfile, error) {
	var profile entity.AuthorityProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) SaveResidentProfile(ctx context.Context, profile *entity.ResidentProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *userRepository) SaveCollectorProfile(ctx context.Context, profile *entity.CollectorProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
