package dto

import "anoa.com/binbeacon/internal/entity"

type SendBroadcastInput struct {
	AuthorityID    string `json:"authorityId" binding:"required,uuid"`
	Message        string `json:"message" binding:"required"`
	TargetAudience string `json:"targetAudience" binding:"required,oneof=all residents collectors authorities"`
}

type SendBroadcastResponse struct {
	Message        string            `json:"message"`
	Broadcast      *entity.Broadcast `json:"broadcast"`
	RecipientCount int               `json:"recipient_count"`
}
