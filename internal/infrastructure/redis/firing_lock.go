package redis

import (
	"context"
	"fmt"
	"time"
	"wellness-service/internal/domain/service"

	"github.com/redis/go-redis/v9"
)

// FiringLock claims reminder firings with SET NX so only one replica sends each one
type FiringLock struct {
	client *redis.Client
}

var _ service.FiringLock = (*FiringLock)(nil)

// NewFiringLock creates a new Redis-backed firing lock
func NewFiringLock(client *redis.Client) *FiringLock {
	return &FiringLock{client: client}
}

// Acquire claims key for ttl; false means another replica already holds it
func (l *FiringLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	return ok, nil
}
