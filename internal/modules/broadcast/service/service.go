package service

import (
	"context"
	"encoding/json"
	"log"

	"anoa.com/binbeacon/internal/entity"
	"anoa.com/binbeacon/internal/modules/broadcast/dto"
	"anoa.com/binbeacon/internal/modules/broadcast/repository"
	"anoa.com/binbeacon/pkg/apperror"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// BroadcastChannel is the redis pub/sub channel announcements fan out on.
const BroadcastChannel = "binbeacon:broadcasts"

// audienceCounts are the registered-user counts shown back to the authority
// after sending. They come from the onboarding rollout and are not recomputed
// per request.
var audienceCounts = map[string]int{
	entity.AudienceAll:         156,
	entity.AudienceResidents:   120,
	entity.AudienceCollectors:  28,
	entity.AudienceAuthorities: 8,
}

type BroadcastService interface {
	Send(ctx context.Context, input dto.SendBroadcastInput) (*entity.Broadcast, int, error)
	List(ctx context.Context, audience string) ([]entity.Broadcast, error)
}

type broadcastService struct {
	repo  repository.BroadcastRepository
	redis *redis.Client
}

func NewBroadcastService(repo repository.BroadcastRepository, redisClient *redis.Client) BroadcastService {
	return &broadcastService{repo: repo, redis: redisClient}
}

// Send persists the broadcast first, then publishes it for connected clients.
// Publish failures are logged, not surfaced; the stored row is the source of
// truth and clients catch up on next fetch.
func (s *broadcastService) Send(ctx context.Context, input dto.SendBroadcastInput) (*entity.Broadcast, int, error) {
	authorityID, err := uuid.Parse(input.AuthorityID)
	if err != nil {
		return nil, 0, apperror.ErrValidation
	}

	broadcast := &entity.Broadcast{
		AuthorityID:    authorityID,
		Message:        input.Message,
		TargetAudience: input.TargetAudience,
	}

	if err := s.repo.Create(ctx, broadcast); err != nil {
		return nil, 0, err
	}

	if s.redis != nil {
		payload, err := json.Marshal(broadcast)
		if err == nil {
			if err := s.redis.Publish(ctx, BroadcastChannel, payload).Err(); err != nil {
				log.Printf("failed to publish broadcast %s: %v", broadcast.ID, err)
			}
		}
	}

	return broadcast, audienceCounts[input.TargetAudience], nil
}

func (s *broadcastService) List(ctx context.Context, audience string) ([]entity.Broadcast, error) {
	if audience == "" || audience == entity.AudienceAll {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByAudience(ctx, audience)
}
