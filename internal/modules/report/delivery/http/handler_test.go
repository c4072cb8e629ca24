package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/report/repository"
	"anoa.com/binbeacon/internal/modules/report/service"
	"github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.OverflowReport{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := service.NewReportService(repository.NewReportRepository(db), nil, nil, "")
	handler := NewReportHandler(svc)

	router := gin.New()
	router.POST("/api/overflow-reports", handler.CreateReport)
	router.POST("/api/overflow", handler.CreateReportLegacy)
	router.PATCH("/api/overflow-reports/:id", handler.UpdateStatus)

	return router, db
}

func TestCreateReportMissingLocation(t *testing.T) {
	router, db := setupRouter(t)

	body := `{"residentId":"` + uuid.NewString() + `","overflowType":"street-bin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/overflow-reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var count int64
	db.Model(&entity.OverflowReport{}).Count(&count)
	if count != 0 {
		t.Errorf("report count = %d, want 0 after rejected request", count)
	}
}

func TestCreateReportLegacyShape(t *testing.T) {
	router, db := setupRouter(t)

	body := `{"residentId":"` + uuid.NewString() + `","overflowType":"street-bin","lat":28.61,"lng":77.21}`
	req := httptest.NewRequest(http.MethodPost, "/api/overflow", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var count int64
	db.Model(&entity.OverflowReport{}).Count(&count)
	if count != 1 {
		t.Errorf("report count = %d, want 1", count)
	}
}

func TestPatchRejectsNonResolvedStatus(t *testing.T) {
	router, db := setupRouter(t)

	report := entity.OverflowReport{
		ResidentID:   uuid.New(),
		OverflowType: "street-bin",
		Status:       entity.ReportStatusPending,
	}
	if err := db.Create(&report).Error; err != nil {
		t.Fatalf("failed to seed report: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/overflow-reports/"+report.ID.String(), strings.NewReader(`{"status":"assigned"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var stored entity.OverflowReport
	db.First(&stored, "id = ?", report.ID)
	if stored.Status != entity.ReportStatusPending {
		t.Errorf("status = %q, want pending untouched", stored.Status)
	}
}
