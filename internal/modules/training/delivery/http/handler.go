package http

import (
	"net/http"

	"anoa.com/binbeacon/internal/modules/training/dto"
	"anoa.com/binbeacon/internal/modules/training/service"
	"anoa.com/binbeacon/pkg/response"
	"anoa.com/binbeacon/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TrainingHandler struct {
	service service.TrainingService
}

func NewTrainingHandler(service service.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service}
}

// ListModules returns the seeded modules for one audience. Answer keys are
// stripped at the entity level and never reach the wire.
func (h *TrainingHandler) ListModules(c *gin.Context) {
	audience := c.DefaultQuery("audience", "resident")

	modules, err := h.service.ModulesForAudience(c.Request.Context(), audience)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, modules)
}

func (h *TrainingHandler) SubmitQuiz(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	moduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module id"})
		return
	}

	var req dto.SubmitQuizInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.service.SubmitQuiz(c.Request.Context(), userID, moduleID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *TrainingHandler) Progress(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	audience := c.DefaultQuery("audience", "resident")

	overview, err := h.service.ProgressForUser(c.Request.Context(), userID, audience)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
