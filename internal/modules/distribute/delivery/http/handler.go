package http

import (
	"net/http"

	"anoa.com/binbeacon/internal/modules/distribute/dto"
	"anoa.com/binbeacon/internal/modules/distribute/service"
	"anoa.com/binbeacon/pkg/response"
	"anoa.com/binbeacon/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DistributeHandler struct {
	service service.DistributeService
}

func NewDistributeHandler(service service.DistributeService) *DistributeHandler {
	return &DistributeHandler{service: service}
}

func (h *DistributeHandler) CreateRequest(c *gin.Context) {
	var req dto.CreateDistributeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	request, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Request created", "request": request})
}

func (h *DistributeHandler) ListRequests(c *gin.Context) {
	var residentID *uuid.UUID
	if raw := c.Query("residentId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident id"})
			return
		}
		residentID = &id
	}

	requests, err := h.service.List(c.Request.Context(), c.Query("status"), residentID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (h *DistributeHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	var req dto.UpdateDistributeStatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	request, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request updated", "request": request})
}
