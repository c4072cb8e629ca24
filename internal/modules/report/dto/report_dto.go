package dto

import "anoa.com/binbeacon/internal/entity"

type LocationInput struct {
	Lat     *float64 `json:"lat" binding:"required"`
	Lng     *float64 `json:"lng" binding:"required"`
	Address string   `json:"address"`
}

type CreateReportInput struct {
	ResidentID   string         `json:"residentId" binding:"required,uuid"`
	OverflowType string         `json:"overflowType" binding:"required"`
	Location     *LocationInput `json:"location" binding:"required"`
	Remarks      string         `json:"remarks"`
	// Photo is an optional base64-encoded image (raw or data URL).
	Photo     string `json:"photo"`
	PhotoName string `json:"photoName"`
}

// LegacyCreateReportInput is the older flat shape still sent by some clients.
type LegacyCreateReportInput struct {
	ResidentID   string   `json:"residentId" binding:"required,uuid"`
	OverflowType string   `json:"overflowType" binding:"required"`
	Lat          *float64 `json:"lat" binding:"required"`
	Lng          *float64 `json:"lng" binding:"required"`
}

type AssignInput struct {
	AssignedCollectorID string `json:"assignedCollectorId" binding:"required,uuid"`
	Status              string `json:"status"`
}

type UpdateStatusInput struct {
	Status string `json:"status"`
}

type ReportFilter struct {
	Status    string `form:"status"`
	Collector string `form:"collector"`
}

type ReportResponse struct {
	Success bool                   `json:"success"`
	Report  *entity.OverflowReport `json:"report"`
}

type ReportListResponse struct {
	Success bool                    `json:"success"`
	Reports []entity.OverflowReport `json:"reports"`
}
