package http

import (
	"net/http"

	"anoa.com/binbeacon/internal/modules/resident/dto"
	"anoa.com/binbeacon/internal/modules/resident/service"
	"anoa.com/binbeacon/pkg/response"
	"anoa.com/binbeacon/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResidentHandler struct {
	service service.ResidentService
}

func NewResidentHandler(service service.ResidentService) *ResidentHandler {
	return &ResidentHandler{service: service}
}

func (h *ResidentHandler) SetStatus(c *gin.Context) {
	residentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident id"})
		return
	}

	var req dto.StatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.SetAvailability(c.Request.Context(), residentID, *req.IsAvailable)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ResidentHandler) History(c *gin.Context) {
	residentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident id"})
		return
	}

	resp, err := h.service.History(c.Request.Context(), residentID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
