package service

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/tip/dto"
	"anoa.com/binbeacon/internal/modules/tip/repository"
	"anoa.com/binbeacon/pkg/apperror"
	"github.com/google/uuid"
)

type TipService interface {
	SendTip(ctx context.Context, input dto.SendTipInput) (*entity.Tip, error)
	TipsForCollector(ctx context.Context, collectorID uuid.UUID) ([]entity.Tip, error)
	SummaryForCollector(ctx context.Context, collectorID uuid.UUID) (*dto.TipSummary, error)
}

type tipService struct {
	repo repository.TipRepository
}

func NewTipService(repo repository.TipRepository) TipService {
	return &tipService{repo: repo}
}

func (s *tipService) SendTip(ctx context.Context, input dto.SendTipInput) (*entity.Tip, error) {
	fromID, err := uuid.Parse(input.FromResidentID)
	if err != nil {
		return nil, apperror.ErrValidation
	}
	toID, err := uuid.Parse(input.ToCollectorID)
	if err != nil {
		return nil, apperror.ErrValidation
	}

	tip := &entity.Tip{
		FromResidentID: fromID,
		ToCollectorID:  toID,
		Amount:         input.Amount,
		Message:        input.Message,
	}

	if input.HouseID != "" {
		houseID, err := uuid.Parse(input.HouseID)
		if err != nil {
			return nil, apperror.ErrValidation
		}
		tip.HouseID = &houseID
	}

	if err := s.repo.Create(ctx, tip); err != nil {
		return nil, err
	}

	return tip, nil
}

func (s *tipService) TipsForCollector(ctx context.Context, collectorID uuid.UUID) ([]entity.Tip, error) {
	return s.repo.FindByCollector(ctx, collectorID)
}

func (s *tipService) SummaryForCollector(ctx context.Context, collectorID uuid.UUID) (*dto.TipSummary, error) {
	tips, err := s.repo.FindByCollector(ctx, collectorID)
	if err != nil {
		return nil, err
	}

	summary := &dto.TipSummary{CollectorID: collectorID.String()}
	for _, tip := range tips {
		summary.TotalAmount += tip.Amount
		summary.Count++
	}

	if summary.Count > 0 {
		summary.AverageAmount = float64(summary.TotalAmount) / float64(summary.Count)
	}

	return summary, nil
}
