package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"strings"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/report/dto"
	"anoa.com/binbeacon/internal/modules/report/repository"
	search "anoa.com/binbeacon/internal/modules/search/service"
	"anoa.com/binbeacon/pkg/apperror"
	"anoa.com/binbeacon/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportService interface {
	Create(ctx context.Context, input dto.CreateReportInput) (*entity.OverflowReport, error)
	CreateLegacy(ctx context.Context, input dto.LegacyCreateReportInput) (*entity.OverflowReport, error)
	Assign(ctx context.Context, reportID, collectorID uuid.UUID) (*entity.OverflowReport, error)
	Resolve(ctx context.Context, reportID uuid.UUID) (*entity.OverflowReport, error)
	List(ctx context.Context, filter dto.ReportFilter) ([]entity.OverflowReport, error)
	Search(ctx context.Context, query string) ([]entity.OverflowReport, error)
}

type reportService struct {
	repo         repository.ReportRepository
	imageStorage storage.ImageStorage
	search       search.ReportSearchService
	uploadFolder string
}

func NewReportService(repo repository.ReportRepository, imageStorage storage.ImageStorage, searchSvc search.ReportSearchService, uploadFolder string) ReportService {
	if uploadFolder == "" {
		uploadFolder = "overflow-reports"
	}
	return &reportService{
		repo:         repo,
		imageStorage: imageStorage,
		search:       searchSvc,
		uploadFolder: uploadFolder,
	}
}

func (s *reportService) Create(ctx context.Context, input dto.CreateReportInput) (*entity.OverflowReport, error) {
	residentID, err := uuid.Parse(input.ResidentID)
	if err != nil {
		return nil, apperror.ErrValidation
	}

	report := &entity.OverflowReport{
		ResidentID:   residentID,
		OverflowType: input.OverflowType,
		Lat:          *input.Location.Lat,
		Lng:          *input.Location.Lng,
		Address:      input.Location.Address,
		Remarks:      input.Remarks,
		Status:       entity.ReportStatusPending,
	}

	if input.Photo != "" && s.imageStorage != nil {
		photoURL, err := s.uploadPhoto(ctx, input.Photo, input.PhotoName)
		if err != nil {
			// The report is still worth keeping without its photo
			log.Printf("Failed to upload report photo: %v", err)
		} else {
			report.PhotoURL = photoURL
		}
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	s.indexReport(report)

	return report, nil
}

func (s *reportService) CreateLegacy(ctx context.Context, input dto.LegacyCreateReportInput) (*entity.OverflowReport, error) {
	residentID, err := uuid.Parse(input.ResidentID)
	if err != nil {
		return nil, apperror.ErrValidation
	}

	report := &entity.OverflowReport{
		ResidentID:   residentID,
		OverflowType: input.OverflowType,
		Lat:          *input.Lat,
		Lng:          *input.Lng,
		Status:       entity.ReportStatusPending,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	s.indexReport(report)

	return report, nil
}

func (s *reportService) Assign(ctx context.Context, reportID, collectorID uuid.UUID) (*entity.OverflowReport, error) {
	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if report.Status == entity.ReportStatusResolved {
		return nil, apperror.New(http.StatusConflict, "report already resolved", nil)
	}

	report.Status = entity.ReportStatusAssigned
	report.AssignedCollectorID = &collectorID

	if err := s.repo.Save(ctx, report); err != nil {
		return nil, err
	}

	s.indexReport(report)

	return report, nil
}

// Resolve moves a report to its terminal state. Resolving an already resolved
// report is a no-op, not an error.
func (s *reportService) Resolve(ctx context.Context, reportID uuid.UUID) (*entity.OverflowReport, error) {
	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if report.Status == entity.ReportStatusResolved {
		return report, nil
	}

	report.Status = entity.ReportStatusResolved

	if err := s.repo.Save(ctx, report); err != nil {
		return nil, err
	}

	s.indexReport(report)

	return report, nil
}

func (s *reportService) List(ctx context.Context, filter dto.ReportFilter) ([]entity.OverflowReport, error) {
	return s.repo.FindAll(ctx, filter.Status, filter.Collector)
}

func (s *reportService) Search(ctx context.Context, query string) ([]entity.OverflowReport, error) {
	if s.search == nil {
		return []entity.OverflowReport{}, nil
	}

	docs, err := s.search.Search(query)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}

	return s.repo.FindByIDs(ctx, ids)
}

func (s *reportService) indexReport(report *entity.OverflowReport) {
	if s.search == nil {
		return
	}
	if err := s.search.IndexReport(report); err != nil {
		log.Printf("Failed to index overflow report %s: %v", report.ID, err)
	}
}

func (s *reportService) uploadPhoto(ctx context.Context, photo, photoName string) (string, error) {
	// Accept both raw base64 and data URLs ("data:image/jpeg;base64,...")
	if idx := strings.Index(photo, ","); idx != -1 && strings.HasPrefix(photo, "data:") {
		photo = photo[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(photo)
	if err != nil {
		return "", err
	}

	if photoName == "" {
		photoName = "report.jpg"
	}

	return s.imageStorage.UploadImage(ctx, bytes.NewReader(data), s.uploadFolder, photoName)
}
