package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-api/internal/config"
	"github.com/stemsi/trivia-api/internal/response"
)

// Counter increments a windowed counter and returns its new value.
type Counter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter keeps counters in Redis so every instance shares them.
type RedisCounter struct {
	rdb *redis.Client
}

// NewRedisCounter creates a RedisCounter.
func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

// Increment bumps key and sets its expiry on first use.
func (r *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimiter implements a fixed-window per-IP limiter.
type RateLimiter struct {
	counter  Counter
	limit    int
	interval time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewRateLimiter creates a RateLimiter allowing limit requests per interval.
func NewRateLimiter(counter Counter, limit int, interval time.Duration, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		counter:  counter,
		limit:    limit,
		interval: interval,
		now:      time.Now,
		log:      log.With().Str("component", "rate_limiter").Logger(),
	}
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
// Counter failures let the request through, as does a limit of zero or less.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	if rl.limit <= 0 {
		rl.log.Warn().Int("limit", rl.limit).Msg("Non-positive rate limit, limiter disabled")
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		window := rl.now().UnixNano() / int64(rl.interval)
		key := config.CacheKey.RateLimitKey(c.ClientIP(), window)

		n, err := rl.counter.Increment(c.Request.Context(), key, rl.interval)
		if err != nil {
			rl.log.Warn().Err(err).Str("key", key).Msg("Rate limit counter unavailable")
			c.Next()
			return
		}

		remaining := int64(rl.limit) - n
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if n > int64(rl.limit) {
			response.AbortFail(c, http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
