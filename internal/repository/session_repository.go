package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stemsi/heritage-admin/internal/config"
)

// SessionRepository tracks the active token ID of each logged-in user in Redis.
type SessionRepository struct {
	rdb *redis.Client
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

// Save registers tokenID as the user's active session for ttl.
func (r *SessionRepository) Save(ctx context.Context, userID int, tokenID string, ttl time.Duration) error {
	return r.rdb.Set(ctx, config.CacheKey.UserSessionKey(userID), tokenID, ttl).Err()
}

// Get returns the active token ID, or "" when the user has no session.
func (r *SessionRepository) Get(ctx context.Context, userID int) (string, error) {
	tokenID, err := r.rdb.Get(ctx, config.CacheKey.UserSessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("check session: %w", err)
	}
	return tokenID, nil
}

// Delete ends the user's session.
func (r *SessionRepository) Delete(ctx context.Context, userID int) error {
	return r.rdb.Del(ctx, config.CacheKey.UserSessionKey(userID)).Err()
}
