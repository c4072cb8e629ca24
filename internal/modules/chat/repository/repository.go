package repository

import (
	"context"

	"anoa.com/binbeacon/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	FindPrivate(ctx context.Context, user1, user2 uuid.UUID) ([]entity.Chat, error)
	FindGroup(ctx context.Context, group string) ([]entity.Chat, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	return r.db.WithContext(ctx).Create(chat).Error
}

// FindPrivate returns the full conversation between two users, both
// directions, oldest first.
func (r *chatRepository) FindPrivate(ctx context.Context, user1, user2 uuid.UUID) ([]entity.Chat, error) {
	var chats []entity.Chat
	if err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			user1, user2, user2, user1).
		Order("sent_at ASC").
		Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepository) FindGroup(ctx context.Context, group string) ([]entity.Chat, error) {
	var chats []entity.Chat
	if err := r.db.WithContext(ctx).
		Where("\"group\" = ?", group).
		Order("sent_at ASC").
		Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}
