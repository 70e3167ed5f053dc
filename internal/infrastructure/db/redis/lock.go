package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKey       = "bookings:create"
	lockTTL       = 5 * time.Second
	retryInterval = 25 * time.Millisecond
)

// releaseScript deletes the lock only if the caller still holds it, so an
// expired-and-reacquired lock is never released by the old holder.
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

// CreateLock is a Redis-backed advisory lock serializing booking creation
// across all API instances. The TTL bounds how long a crashed holder can
// block creation.
type CreateLock struct {
	client *redis.Client
}

// NewCreateLock creates a CreateLock wrapping the given Redis client.
func NewCreateLock(client *redis.Client) *CreateLock {
	return &CreateLock{client: client}
}

// Acquire blocks until the lock is held or ctx is done, polling with a
// short backoff. The returned function releases the lock; it is safe to
// call after the TTL has already expired.
func (l *CreateLock) Acquire(ctx context.Context) (func(), error) {
	token := uuid.NewString()
	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire create lock: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	release := func() {
		// Release must not inherit a cancelled request context.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = l.client.Eval(ctx, releaseScript, []string{lockKey}, token).Err()
	}
	return release, nil
}
