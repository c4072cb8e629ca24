package dto

import "anoa.com/binbeacon/internal/entity"

type CollectionCompleteInput struct {
	HouseID   string `json:"houseId" binding:"required,uuid"`
	WasteType string `json:"wasteType"`
}

type ReportHouseInput struct {
	HouseID string `json:"houseId" binding:"required,uuid"`
	Reason  string `json:"reason" binding:"required"`
}

type HouseListResponse struct {
	Success bool           `json:"success"`
	Houses  []entity.House `json:"houses"`
}

type ReportHouseResponse struct {
	Success     bool                         `json:"success"`
	Violation   *entity.SegregationViolation `json:"violation"`
	BeaconScore int                          `json:"beaconScore"`
}

type CollectionCompleteResponse struct {
	Success            bool                     `json:"success"`
	Record             *entity.CollectionRecord `json:"record"`
	CollectionProgress int                      `json:"collectionProgress"`
}

type AttendanceResponse struct {
	Success    bool               `json:"success"`
	Attendance *entity.Attendance `json:"attendance"`
}
