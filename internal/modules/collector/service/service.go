package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/collector/dto"
	"anoa.com/binbeacon/internal/modules/collector/repository"
	"anoa.com/binbeacon/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// Fixed penalty applied to a house beacon score per violation, floored at 0.
	violationPenalty = 10
	// Each completed pickup advances the collector's daily progress by this much.
	progressStep = 5
)

type CollectorService interface {
	Houses(ctx context.Context) ([]entity.House, error)
	CompleteCollection(ctx context.Context, collectorID uuid.UUID, input dto.CollectionCompleteInput) (*dto.CollectionCompleteResponse, error)
	ReportHouse(ctx context.Context, collectorID uuid.UUID, input dto.ReportHouseInput) (*dto.ReportHouseResponse, error)
	CheckIn(ctx context.Context, collectorID uuid.UUID) (*entity.Attendance, error)
	CheckOut(ctx context.Context, collectorID uuid.UUID) (*entity.Attendance, error)
}

type collectorService struct {
	repo repository.CollectorRepository
	now  func() time.Time
}

func NewCollectorService(repo repository.CollectorRepository) CollectorService {
	return &collectorService{repo: repo, now: time.Now}
}

func (s *collectorService) Houses(ctx context.Context) ([]entity.House, error) {
	return s.repo.Houses(ctx)
}

func (s *collectorService) CompleteCollection(ctx context.Context, collectorID uuid.UUID, input dto.CollectionCompleteInput) (*dto.CollectionCompleteResponse, error) {
	houseID, err := uuid.Parse(input.HouseID)
	if err != nil {
		return nil, apperror.ErrValidation
	}

	resident, err := s.repo.ResidentByHouse(ctx, houseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	wasteType := input.WasteType
	if wasteType == "" {
		wasteType = "general"
	}

	record := &entity.CollectionRecord{
		ResidentID:  resident.ID,
		CollectorID: &collectorID,
		WasteType:   wasteType,
		Status:      entity.CollectionStatusCollected,
	}

	if err := s.repo.CreateCollectionRecord(ctx, record); err != nil {
		return nil, err
	}

	progress := 0
	profile, err := s.repo.ProfileByUserID(ctx, collectorID)
	if err == nil {
		profile.CollectionProgress = min(100, profile.CollectionProgress+progressStep)
		if err := s.repo.SaveProfile(ctx, profile); err != nil {
			return nil, err
		}
		progress = profile.CollectionProgress
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &dto.CollectionCompleteResponse{
		Success:            true,
		Record:             record,
		CollectionProgress: progress,
	}, nil
}

func (s *collectorService) ReportHouse(ctx context.Context, collectorID uuid.UUID, input dto.ReportHouseInput) (*dto.ReportHouseResponse, error) {
	houseID, err := uuid.Parse(input.HouseID)
	if err != nil {
		return nil, apperror.ErrValidation
	}

	house, err := s.repo.HouseByID(ctx, houseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	violation := &entity.SegregationViolation{
		HouseID:     house.ID,
		CollectorID: collectorID,
		Reason:      input.Reason,
	}

	if err := s.repo.CreateViolation(ctx, violation); err != nil {
		return nil, err
	}

	house.BeaconScore = max(0, house.BeaconScore-violationPenalty)
	if err := s.repo.SaveHouse(ctx, house); err != nil {
		return nil, err
	}

	return &dto.ReportHouseResponse{
		Success:     true,
		Violation:   violation,
		BeaconScore: house.BeaconScore,
	}, nil
}

func (s *collectorService) CheckIn(ctx context.Context, collectorID uuid.UUID) (*entity.Attendance, error) {
	now := s.now()
	date := now.Format("2006-01-02")

	attendance, err := s.repo.AttendanceFor(ctx, collectorID, date)
	if err == nil {
		// One attendance row per collector per day; repeat check-in is a no-op
		return attendance, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attendance = &entity.Attendance{
		CollectorID: collectorID,
		Date:        date,
		CheckInTime: &now,
		Status:      entity.AttendancePresent,
	}

	if err := s.repo.CreateAttendance(ctx, attendance); err != nil {
		return nil, err
	}

	return attendance, nil
}

func (s *collectorService) CheckOut(ctx context.Context, collectorID uuid.UUID) (*entity.Attendance, error) {
	now := s.now()
	date := now.Format("2006-01-02")

	attendance, err := s.repo.AttendanceFor(ctx, collectorID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusBadRequest, "not checked in today", nil)
		}
		return nil, err
	}

	attendance.CheckOutTime = &now

	// Less than four hours on duty counts as a half day
	if attendance.CheckInTime != nil && now.Sub(*attendance.CheckInTime) < 4*time.Hour {
		attendance.Status = entity.AttendanceHalfDay
	}

	if err := s.repo.SaveAttendance(ctx, attendance); err != nil {
		return nil, err
	}

	return attendance, nil
}
