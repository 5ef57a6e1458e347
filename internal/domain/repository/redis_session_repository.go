package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lumina_site/internal/common"
	"lumina_site/internal/domain/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// redisSessionRepository keeps sessions in Redis so they survive restarts.
// Entries are written without a TTL to match the in-memory store's
// no-expiry behavior.
type redisSessionRepository struct {
	rdb *redis.Client
}

func NewRedisSessionRepository(rdb *redis.Client) SessionRepository {
	return &redisSessionRepository{rdb: rdb}
}

func (r *redisSessionRepository) Create(ctx context.Context, user *model.User) (string, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("redisSessionRepository.Create: %w", err)
	}
	if err := r.rdb.Set(ctx, sessionKeyPrefix+id, payload, 0).Err(); err != nil {
		return "", fmt.Errorf("redisSessionRepository.Create: %w", err)
	}
	return id, nil
}

func (r *redisSessionRepository) Get(ctx context.Context, sessionID string) (*model.User, error) {
	payload, err := r.rdb.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("redisSessionRepository.Get: %w", err)
	}
	user := &model.User{}
	if err := json.Unmarshal(payload, user); err != nil {
		return nil, fmt.Errorf("redisSessionRepository.Get: %w", err)
	}
	return user, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redisSessionRepository.Delete: %w", err)
	}
	return nil
}
