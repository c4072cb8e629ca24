package dto

import "anoa.com/binbeacon/internal/entity"

type CreateRouteInput struct {
	Date        string            `json:"date" binding:"required"`
	WardNumber  string            `json:"wardNumber" binding:"required"`
	CollectorID string            `json:"collectorId" binding:"required,uuid"`
	Path        []entity.Waypoint `json:"path" binding:"required"`
}
