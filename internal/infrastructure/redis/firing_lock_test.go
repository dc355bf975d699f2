package redis

import (
	"context"
	"os"
	"testing"
	"time"
	"wellness-service/internal/config"

	"github.com/google/uuid"
)

func TestFiringLockAcquire(t *testing.T) {
	addr := os.Getenv("WELLNESS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("WELLNESS_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client, err := NewClient(ctx, &config.RedisConfig{Addr: addr})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	lock := NewFiringLock(client)
	key := "reminder:fired:test:" + uuid.NewString()
	defer client.Del(ctx, key)

	ok, err := lock.Acquire(ctx, key, time.Minute)
	if err != nil || !ok {
		t.Fatalf("first Acquire = %v, %v; want true", ok, err)
	}

	ok, err = lock.Acquire(ctx, key, time.Minute)
	if err != nil || ok {
		t.Errorf("second Acquire = %v, %v; want false", ok, err)
	}
}
