package http

import (
	"net/http"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/report/dto"
	"anoa.com/binbeacon/internal/modules/report/service"
	"anoa.com/binbeacon/pkg/response"
	"anoa.com/binbeacon/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req dto.CreateReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validator.FormatValidationError(err)})
		return
	}

	report, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Success: true, Report: report})
}

// CreateReportLegacy handles the older POST /api/overflow shape ({lat, lng}
// at the top level).
func (h *ReportHandler) CreateReportLegacy(c *gin.Context) {
	var req dto.LegacyCreateReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validator.FormatValidationError(err)})
		return
	}

	report, err := h.service.CreateLegacy(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Success: true, Report: report})
}

func (h *ReportHandler) AssignCollector(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	var req dto.AssignInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	collectorID, err := uuid.Parse(req.AssignedCollectorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
		return
	}

	report, err := h.service.Assign(c.Request.Context(), reportID, collectorID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Success: true, Report: report})
}

func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	var req dto.UpdateStatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	// The PATCH surface only moves reports to resolved; assignment goes
	// through the dedicated assign endpoint.
	if req.Status != "" && req.Status != entity.ReportStatusResolved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be resolved"})
		return
	}

	report, err := h.service.Resolve(c.Request.Context(), reportID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Success: true, Report: report})
}

func (h *ReportHandler) ListReports(c *gin.Context) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	reports, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportListResponse{Success: true, Reports: reports})
}

func (h *ReportHandler) SearchReports(c *gin.Context) {
	query := c.Query("q")

	reports, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportListResponse{Success: true, Reports: reports})
}
