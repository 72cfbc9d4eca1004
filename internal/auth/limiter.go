package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	MaxLoginAttempts   = 5
	LoginAttemptWindow = 15 * time.Minute
)

// LoginLimiter counts failed logins per client and email in redis.
type LoginLimiter struct {
	client redis.Cmdable
}

func NewLoginLimiter(client redis.Cmdable) *LoginLimiter {
	return &LoginLimiter{client: client}
}

func loginKey(ip, email string) string {
	return fmt.Sprintf("ratelimit:login:%s:%s", ip, strings.ToLower(email))
}

// Allow records an attempt and reports whether it is within the window's
// budget, along with the attempts left after this one.
func (l *LoginLimiter) Allow(ctx context.Context, ip, email string) (bool, int64, error) {
	key := loginKey(ip, email)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment login attempt: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, LoginAttemptWindow).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set login attempt expiry: %w", err)
		}
	}

	remaining := MaxLoginAttempts - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= MaxLoginAttempts, remaining, nil
}

func (l *LoginLimiter) Reset(ctx context.Context, ip, email string) error {
	return l.client.Del(ctx, loginKey(ip, email)).Err()
}
