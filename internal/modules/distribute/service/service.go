package service

import (
	"context"
	"errors"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/distribute/dto"
	"anoa.com/binbeacon/internal/modules/distribute/repository"
	"anoa.com/binbeacon/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DistributeService interface {
	Create(ctx context.Context, input dto.CreateDistributeInput) (*entity.DistributeRequest, error)
	List(ctx context.Context, status string, residentID *uuid.UUID) ([]entity.DistributeRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.DistributeRequest, error)
}

type distributeService struct {
	repo repository.DistributeRepository
}

func NewDistributeService(repo repository.DistributeRepository) DistributeService {
	return &distributeService{repo: repo}
}

func (s *distributeService) Create(ctx context.Context, input dto.CreateDistributeInput) (*entity.DistributeRequest, error) {
	residentID, err := uuid.Parse(input.ResidentID)
	if err != nil {
		return nil, apperror.ErrValidation
	}

	request := &entity.DistributeRequest{
		ResidentID: residentID,
		ItemType:   input.ItemType,
		Status:     entity.DistributeStatusPending,
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

func (s *distributeService) List(ctx context.Context, status string, residentID *uuid.UUID) ([]entity.DistributeRequest, error) {
	return s.repo.Find(ctx, status, residentID)
}

func (s *distributeService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.DistributeRequest, error) {
	if status != entity.DistributeStatusAccepted && status != entity.DistributeStatusIgnored {
		return nil, apperror.ErrValidation
	}

	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	request.Status = status
	if err := s.repo.Save(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}
