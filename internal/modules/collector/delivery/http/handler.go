package http

import (
	"net/http"

	"anoa.com/binbeacon/internal/modules/collector/dto"
	"anoa.com/binbeacon/internal/modules/collector/service"
	"anoa.com/binbeacon/pkg/response"
	"anoa.com/binbeacon/pkg/validator"
	"github.com/gin-gonic/gin"
)

type CollectorHandler struct {
	service service.CollectorService
}

func NewCollectorHandler(service service.CollectorService) *CollectorHandler {
	return &CollectorHandler{service: service}
}

func (h *CollectorHandler) GetHouses(c *gin.Context) {
	houses, err := h.service.Houses(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HouseListResponse{Success: true, Houses: houses})
}

func (h *CollectorHandler) CollectionComplete(c *gin.Context) {
	collectorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.CollectionCompleteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.CompleteCollection(c.Request.Context(), collectorID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CollectorHandler) ReportHouse(c *gin.Context) {
	collectorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.ReportHouseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.ReportHouse(c.Request.Context(), collectorID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CollectorHandler) CheckIn(c *gin.Context) {
	collectorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	attendance, err := h.service.CheckIn(c.Request.Context(), collectorID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AttendanceResponse{Success: true, Attendance: attendance})
}

func (h *CollectorHandler) CheckOut(c *gin.Context) {
	collectorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	attendance, err := h.service.CheckOut(c.Request.Context(), collectorID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AttendanceResponse{Success: true, Attendance: attendance})
}
