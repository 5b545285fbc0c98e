package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const attemptWindow = 15 * time.Minute

// LoginLimiter counts consecutive failed logins per account in Redis.
// Key format: login_attempts:<email>; counters expire after attemptWindow.
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// RecordFailure increments the failure counter and returns the new count.
// The expiry is refreshed on every failure so the window is rolling.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) (int64, error) {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("record login failure: %w", err)
	}
	if err := l.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
		return n, fmt.Errorf("set attempt expiry: %w", err)
	}
	return n, nil
}

// Failures returns the current failure count, 0 when no key exists.
func (l *LoginLimiter) Failures(ctx context.Context, email string) (int64, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read login failures: %w", err)
	}
	return n, nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		return fmt.Errorf("reset login failures: %w", err)
	}
	return nil
}

func (l *LoginLimiter) key(email string) string {
	return "login_attempts:" + email
}
