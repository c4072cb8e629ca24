package dto

import "anoa.com/binbeacon/internal/entity"

type StatusInput struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

type StatusResponse struct {
	Success     bool `json:"success"`
	IsAvailable bool `json:"isAvailable"`
	BeaconScore int  `json:"beaconScore"`
}

type HistoryResponse struct {
	Success     bool                      `json:"success"`
	Reports     []entity.OverflowReport   `json:"reports"`
	Collections []entity.CollectionRecord `json:"collections"`
}
