package dto

import "anoa.com/binbeacon/internal/entity"

type SubmitFeedbackInput struct {
	ResidentID  string `json:"residentId" binding:"required,uuid"`
	CollectorID string `json:"collectorId" binding:"required,uuid"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment"`
}

type FeedbackResponse struct {
	Message  string           `json:"message"`
	Feedback *entity.Feedback `json:"feedback"`
}

type FeedbackSummary struct {
	CollectorID   string  `json:"collector_id"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}
