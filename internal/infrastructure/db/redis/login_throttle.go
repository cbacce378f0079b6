package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultLockout     = 15 * time.Minute
)

// LoginThrottle counts failed logins per username in Redis. Once a username
// reaches maxAttempts failures it stays blocked until the counter expires.
// Key format: login:fail:<username>
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int
	lockout     time.Duration
}

// NewLoginThrottle wraps client. Non-positive limits fall back to defaults.
func NewLoginThrottle(client *redis.Client, maxAttempts int, lockout time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if lockout <= 0 {
		lockout = defaultLockout
	}
	return &LoginThrottle{client: client, maxAttempts: maxAttempts, lockout: lockout}
}

// Blocked reports whether username has exhausted its attempts.
func (t *LoginThrottle) Blocked(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login throttle check: %w", err)
	}
	return n >= t.maxAttempts, nil
}

// RecordFailure increments the failure counter and restarts the lockout
// window, so the counter only expires after lockout without failures.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)

	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.lockout)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login throttle record: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *LoginThrottle) key(username string) string {
	return fmt.Sprintf("login:fail:%s", username)
}
