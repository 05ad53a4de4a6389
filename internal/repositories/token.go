package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/hackhub/internal/logger"
)

const revokedTokenPrefix = "revoked_token:"

// TokenRevocationRepository remembers logged-out token ids in Redis until they expire.
type TokenRevocationRepository struct {
	client *redis.Client
}

func NewTokenRevocationRepository(client *redis.Client) *TokenRevocationRepository {
	return &TokenRevocationRepository{client: client}
}

// Revoke marks the token id as revoked for ttl. Non-positive ttls are no-ops.
func (r *TokenRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := revokedTokenPrefix + tokenID
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Debugw("revoke token",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token id has been revoked.
func (r *TokenRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedTokenPrefix + tokenID
	err := r.client.Get(ctx, key).Err()

	logger.Log.Debugw("check token",
		"key", key,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
