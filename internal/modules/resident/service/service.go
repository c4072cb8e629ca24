package service

import (
	"context"
	"errors"
	"net/http"

	"anoa.com/binbeacon/internal/modules/resident/dto"
	"anoa.com/binbeacon/internal/modules/resident/repository"
	"anoa.com/binbeacon/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A resident may not go available while their beacon score is below this.
const minAvailableBeaconScore = 50

type ResidentService interface {
	SetAvailability(ctx context.Context, residentID uuid.UUID, isAvailable bool) (*dto.StatusResponse, error)
	History(ctx context.Context, residentID uuid.UUID) (*dto.HistoryResponse, error)
}

type residentService struct {
	repo repository.ResidentRepository
}

func NewResidentService(repo repository.ResidentRepository) ResidentService {
	return &residentService{repo: repo}
}

func (s *residentService) SetAvailability(ctx context.Context, residentID uuid.UUID, isAvailable bool) (*dto.StatusResponse, error) {
	profile, err := s.repo.ProfileByUserID(ctx, residentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if isAvailable && profile.BeaconScore < minAvailableBeaconScore {
		return nil, apperror.New(http.StatusBadRequest, "beacon score too low to set available", nil)
	}

	profile.IsAvailable = isAvailable
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	return &dto.StatusResponse{
		Success:     true,
		IsAvailable: profile.IsAvailable,
		BeaconScore: profile.BeaconScore,
	}, nil
}

func (s *residentService) History(ctx context.Context, residentID uuid.UUID) (*dto.HistoryResponse, error) {
	reports, err := s.repo.ReportsByResident(ctx, residentID)
	if err != nil {
		return nil, err
	}

	collections, err := s.repo.CollectionsByResident(ctx, residentID)
	if err != nil {
		return nil, err
	}

	return &dto.HistoryResponse{
		Success:     true,
		Reports:     reports,
		Collections: collections,
	}, nil
}
