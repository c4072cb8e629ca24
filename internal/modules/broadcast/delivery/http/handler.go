package http

import (
	"net/http"

	"anoa.com/binbeacon/internal/modules/broadcast/dto"
	"anoa.com/binbeacon/internal/modules/broadcast/service"
	"anoa.com/binbeacon/pkg/response"
	"anoa.com/binbeacon/pkg/validator"
	"github.com/gin-gonic/gin"
)

type BroadcastHandler struct {
	service service.BroadcastService
}

func NewBroadcastHandler(service service.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{service: service}
}

func (h *BroadcastHandler) SendBroadcast(c *gin.Context) {
	var req dto.SendBroadcastInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	broadcast, recipients, err := h.service.Send(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SendBroadcastResponse{
		Message:        "Broadcast sent",
		Broadcast:      broadcast,
		RecipientCount: recipients,
	})
}

func (h *BroadcastHandler) ListBroadcasts(c *gin.Context) {
	broadcasts, err := h.service.List(c.Request.Context(), c.Query("audience"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, broadcasts)
}
