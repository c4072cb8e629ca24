package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/user/dto"
	"anoa.com/binbeacon/internal/modules/user/repository"
	"anoa.com/binbeacon/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default coordinates used when a resident registers without location (Delhi).
const (
	defaultLat = 28.6139
	defaultLng = 77.209
)

const defaultBeaconScore = 80

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterResponse, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*dto.RegisterResponse, error)
	// ProfileFor returns the role-shaped profile view for a user.
	ProfileFor(ctx context.Context, user *entity.User) (interface{}, error)
}

type authService struct {
	repo     repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(repo repository.UserRepository) AuthService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "change-me"
	}

	ttl := 24 * time.Hour
	if ttlStr := os.Getenv("JWT_TTL_MINUTES"); ttlStr != "" {
		if minutes, err := strconv.Atoi(ttlStr); err == nil {
			ttl = time.Duration(minutes) * time.Minute
		}
	}

	return &authService{
		repo:     repo,
		secret:   secret,
		tokenTTL: ttl,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterResponse, error) {
	if _, err := s.repo.FindByPhone(ctx, input.User.Phone); err == nil {
		return nil, apperror.ErrDuplicatePhone
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profileInput := input.Profile
	if profileInput == nil {
		profileInput = &dto.RegisterProfileInput{}
	}

	name := input.User.Name
	if name == "" {
		name = profileInput.AuthorityName
	}
	if name == "" {
		name = "User"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         name,
		Phone:        input.User.Phone,
		PasswordHash: string(hashed),
		Role:         input.User.Role,
	}

	var profile interface{}

	switch input.User.Role {
	case entity.RoleResident:
		house := buildHouse(profileInput)
		residentProfile := &entity.ResidentProfile{
			DoorNumber:  house.HouseNumber,
			Address:     house.Address,
			BeaconScore: defaultBeaconScore,
			IsAvailable: true,
		}
		if err := s.repo.CreateResident(ctx, user, house, residentProfile); err != nil {
			return nil, err
		}
		profile = residentProfile

	case entity.RoleCollector:
		collectorProfile := &entity.CollectorProfile{
			EmployeeID:   profileInput.EmployeeID,
			AreaAssigned: profileInput.AreaAssigned,
		}
		if err := s.repo.CreateCollector(ctx, user, collectorProfile); err != nil {
			return nil, err
		}
		profile = collectorProfile

	case entity.RoleAuthority:
		authorityProfile := &entity.AuthorityProfile{
			AuthorityName: valueOr(profileInput.AuthorityName, user.Name),
			EmployeeID:    profileInput.EmployeeID,
			Email:         profileInput.Email,
		}
		if err := s.repo.CreateAuthority(ctx, user, authorityProfile); err != nil {
			return nil, err
		}
		profile = authorityProfile

	default:
		return nil, apperror.ErrValidation
	}

	user.PasswordHash = ""

	return &dto.RegisterResponse{User: user, Profile: profile}, nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByPhone(ctx, input.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password, to avoid user enumeration
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	profile, err := s.ProfileFor(ctx, user)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt,
		User:        user,
		Profile:     profile,
	}, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.RegisterResponse, error) {
	user, err := s.repo.FindByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	profile, err := s.ProfileFor(ctx, user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return &dto.RegisterResponse{User: user, Profile: profile}, nil
}

func (s *authService) ProfileFor(ctx context.Context, user *entity.User) (interface{}, error) {
	switch user.Role {
	case entity.RoleResident:
		return s.repo.ResidentProfile(ctx, user.ID)
	case entity.RoleCollector:
		return s.repo.CollectorProfile(ctx, user.ID)
	case entity.RoleAuthority:
		return s.repo.AuthorityProfile(ctx, user.ID)
	}
	return nil, apperror.ErrValidation
}

func (s *authService) generateToken(user *entity.User) (string, int64, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expiresAt.Unix(), nil
}

func buildHouse(in *dto.RegisterProfileInput) *entity.House {
	house := &entity.House{
		WardNumber:  valueOr(in.WardNumber, "WARD-1"),
		HouseNumber: valueOr(in.DoorNumber, "UNKNOWN"),
		HouseCode:   in.HouseCode,
		Address:     valueOr(in.Address, "Residence - Delhi"),
		Lat:         defaultLat,
		Lng:         defaultLng,
		BeaconScore: defaultBeaconScore,
	}

	if house.HouseCode == "" {
		house.HouseCode = fmt.Sprintf("WARD-%d", time.Now().UnixMilli())
	}

	if in.Lat != nil && in.Lng != nil {
		house.Lat = *in.Lat
		house.Lng = *in.Lng
	}

	return house
}

func valueOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
