package service

import (
	"context"
	"encoding/json"
	"log"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/chat/dto"
	"anoa.com/binbeacon/internal/modules/chat/repository"
	"anoa.com/binbeacon/pkg/apperror"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ChatChannel is the redis pub/sub channel every chat message fans out on.
// Connected websocket clients filter for frames addressed to them.
const ChatChannel = "binbeacon:chats"

type ChatService interface {
	Send(ctx context.Context, input dto.SendChatInput) (*entity.Chat, error)
	PrivateHistory(ctx context.Context, user1, user2 uuid.UUID) ([]entity.Chat, error)
	GroupHistory(ctx context.Context, group string) ([]entity.Chat, error)
}

type chatService struct {
	repo  repository.ChatRepository
	redis *redis.Client
}

func NewChatService(repo repository.ChatRepository, redisClient *redis.Client) ChatService {
	return &chatService{repo: repo, redis: redisClient}
}

// Send persists the message, then publishes it. A message must name exactly
// one destination: a receiver or a group.
func (s *chatService) Send(ctx context.Context, input dto.SendChatInput) (*entity.Chat, error) {
	senderID, err := uuid.Parse(input.SenderID)
	if err != nil {
		return nil, apperror.ErrValidation
	}

	if (input.ReceiverID == "") == (input.Group == "") {
		return nil, apperror.New(400, "message needs either a receiver or a group", nil)
	}

	chat := &entity.Chat{
		SenderID: senderID,
		Group:    input.Group,
		Message:  input.Message,
	}

	if input.ReceiverID != "" {
		receiverID, err := uuid.Parse(input.ReceiverID)
		if err != nil {
			return nil, apperror.ErrValidation
		}
		chat.ReceiverID = &receiverID
	}

	if err := s.repo.Create(ctx, chat); err != nil {
		return nil, err
	}

	if s.redis != nil {
		payload, err := json.Marshal(dto.ChatEvent{Type: "chat", Chat: chat})
		if err == nil {
			if err := s.redis.Publish(ctx, ChatChannel, payload).Err(); err != nil {
				log.Printf("failed to publish chat %s: %v", chat.ID, err)
			}
		}
	}

	return chat, nil
}

func (s *chatService) PrivateHistory(ctx context.Context, user1, user2 uuid.UUID) ([]entity.Chat, error) {
	return s.repo.FindPrivate(ctx, user1, user2)
}

func (s *chatService) GroupHistory(ctx context.Context, group string) ([]entity.Chat, error) {
	return s.repo.FindGroup(ctx, group)
}
