package dto

import "anoa.com/binbeacon/internal/entity"

type SendChatInput struct {
	SenderID   string `json:"sender" binding:"required,uuid"`
	ReceiverID string `json:"receiver" binding:"omitempty,uuid"`
	Group      string `json:"group"`
	Message    string `json:"message" binding:"required"`
}

// ChatEvent is the frame fanned out to connected websocket clients.
type ChatEvent struct {
	Type string       `json:"type"`
	Chat *entity.Chat `json:"chat"`
}
