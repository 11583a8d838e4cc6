package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// allowScript increments the window counter and guarantees the key carries an
// expiry. The two commands run atomically in Redis, and a counter whose TTL
// was lost (a write that died between INCR and EXPIRE) is re-armed instead of
// living forever.
var allowScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n`)

// FixedWindowLimiter throttles requests per key using a Redis counter.
// Key format: ratelimit:<key>; the counter expires after one window, so the
// first request of each window resets the budget.
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per window.
func NewFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, limit: int64(limit), window: window}
}

// Allow reports whether the request identified by key fits the current window.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := "ratelimit:" + key

	n, err := allowScript.Run(ctx, l.client, []string{k}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}

	return n <= l.limit, nil
}
