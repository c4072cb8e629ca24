package dto

import "anoa.com/binbeacon/internal/entity"

type SendTipInput struct {
	FromResidentID string `json:"fromResidentId" binding:"required,uuid"`
	ToCollectorID  string `json:"toCollectorId" binding:"required,uuid"`
	HouseID        string `json:"houseId"`
	Amount         int    `json:"amount" binding:"required,gt=0"`
	Message        string `json:"message"`
}

type TipResponse struct {
	Message string      `json:"message"`
	Tip     *entity.Tip `json:"tip"`
}

// TipSummary is recomputed from the tip log on every read; there is no stored
// aggregate to drift out of sync.
type TipSummary struct {
	CollectorID   string  `json:"collector_id"`
	TotalAmount   int     `json:"total_amount"`
	Count         int     `json:"count"`
	AverageAmount float64 `json:"average_amount"`
}
