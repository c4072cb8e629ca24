package http

import (
	"net/http"

	"anoa.com/binbeacon/internal/modules/tip/dto"
	"anoa.com/binbeacon/internal/modules/tip/service"
	"anoa.com/binbeacon/pkg/response"
	"anoa.com/binbeacon/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TipHandler struct {
	service service.TipService
}

func NewTipHandler(service service.TipService) *TipHandler {
	return &TipHandler{service: service}
}

func (h *TipHandler) SendTip(c *gin.Context) {
	var req dto.SendTipInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	tip, err := h.service.SendTip(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TipResponse{Message: "Tip sent successfully", Tip: tip})
}

func (h *TipHandler) TipsForCollector(c *gin.Context) {
	collectorID, err := uuid.Parse(c.Param("collectorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
		return
	}

	tips, err := h.service.TipsForCollector(c.Request.Context(), collectorID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, tips)
}

func (h *TipHandler) SummaryForCollector(c *gin.Context) {
	collectorID, err := uuid.Parse(c.Param("collectorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
		return
	}

	summary, err := h.service.SummaryForCollector(c.Request.Context(), collectorID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
