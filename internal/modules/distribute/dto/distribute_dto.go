package dto

type CreateDistributeInput struct {
	ResidentID string `json:"residentId" binding:"required,uuid"`
	ItemType   string `json:"itemType" binding:"required"`
}

type UpdateDistributeStatusInput struct {
	Status string `json:"status" binding:"required,oneof=accepted ignored"`
}
