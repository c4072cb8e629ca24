package http

import (
	"net/http"

	"anoa.com/binbeacon/internal/modules/fleet/dto"
	"anoa.com/binbeacon/internal/modules/fleet/service"
	"anoa.com/binbeacon/pkg/response"
	"anoa.com/binbeacon/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FleetHandler struct {
	service service.FleetService
}

func NewFleetHandler(service service.FleetService) *FleetHandler {
	return &FleetHandler{service: service}
}

func (h *FleetHandler) CreateRoute(c *gin.Context) {
	var req dto.CreateRouteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	route, err := h.service.CreateRoute(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Route created", "route": route})
}

func (h *FleetHandler) ListRoutes(c *gin.Context) {
	routes, err := h.service.ListRoutes(c.Request.Context(), c.Query("ward"), c.Query("date"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, routes)
}

func (h *FleetHandler) AdvanceRoute(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid route id"})
		return
	}

	route, err := h.service.AdvanceRoute(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Route advanced", "route": route})
}
