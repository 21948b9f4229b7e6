package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginWindow      = 15 * time.Minute
	maxLoginAttempts = 10
)

// LoginLimiter counts login attempts per client address in a fixed window
// backed by Redis. Key format: login_attempts:<addr>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow records an attempt from addr and reports whether it is within the
// window budget. The window starts at the first attempt and expires whole.
func (l *LoginLimiter) Allow(ctx context.Context, addr string) (bool, error) {
	key := l.key(addr)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("login limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, loginWindow).Err(); err != nil {
			return false, fmt.Errorf("login limiter expire: %w", err)
		}
	}

	return n <= maxLoginAttempts, nil
}

func (l *LoginLimiter) key(addr string) string {
	return "login_attempts:" + addr
}
