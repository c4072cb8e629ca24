package http

import (
	"net/http"

	"anoa.com/binbeacon/internal/modules/feedback/dto"
	"anoa.com/binbeacon/internal/modules/feedback/service"
	"anoa.com/binbeacon/pkg/response"
	"anoa.com/binbeacon/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req dto.SubmitFeedbackInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	feedback, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FeedbackResponse{Message: "Feedback submitted", Feedback: feedback})
}

// ListFeedback returns all feedback, optionally scoped to one collector via
// the ?collector query param.
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	if raw := c.Query("collector"); raw != "" {
		collectorID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector id"})
			return
		}

		feedbacks, err := h.service.ForCollector(c.Request.Context(), collectorID)
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		c.JSON(http.StatusOK, feedbacks)
		return
	}

	feedbacks, err := h.service.All(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedbacks)
}

func (h *FeedbackHandler) SummaryForCollector(c *gin.Context) {
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
