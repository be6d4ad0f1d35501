package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stemsi/heritage-admin/internal/config"
	"github.com/stemsi/heritage-admin/internal/model"
)

// FlashRepository keeps one pending flash message per login session in Redis.
type FlashRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewFlashRepository creates a new FlashRepository. Unread flashes expire after ttl.
func NewFlashRepository(rdb *redis.Client, ttl time.Duration) *FlashRepository {
	return &FlashRepository{rdb: rdb, ttl: ttl}
}

// Put stores f for the session, replacing any unread flash.
func (r *FlashRepository) Put(ctx context.Context, sessionID string, f model.Flash) error {
	payload, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode flash: %w", err)
	}
	return r.rdb.Set(ctx, config.CacheKey.FlashKey(sessionID), payload, r.ttl).Err()
}

// Pop returns and deletes the pending flash. It returns nil when there is none.
func (r *FlashRepository) Pop(ctx context.Context, sessionID string) (*model.Flash, error) {
	payload, err := r.rdb.GetDel(ctx, config.CacheKey.FlashKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read flash: %w", err)
	}

	var f model.Flash
	if err := json.Unmarshal(payload, &f); err != nil {
		return nil, fmt.Errorf("decode flash: %w", err)
	}
	return &f, nil
}
