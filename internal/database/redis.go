package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-api/internal/config"
)

// NewRedisClient connects to the Redis instance holding rate limit counters.
// It returns a nil client and no error when REDIS_URL is not configured.
func NewRedisClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		log.Info().Msg("REDIS_URL not set, rate limiting disabled")
		return nil, nil
	}

	opt, err := RedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info().
		Str("addr", opt.Addr).
		Int("db", opt.DB).
		Int("rate_limit_per_minute", cfg.RateLimitPerMinute).
		Msg("Rate limit store connected")

	return rdb, nil
}

// RedisOptions parses REDIS_URL for the rate limiter. The limiter fails
// open, so timeouts are kept short to keep a slow Redis off the request path.
func RedisOptions(cfg *config.Config) (*redis.Options, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if opt.ClientName == "" {
		opt.ClientName = ApplicationName + ":ratelimit"
	}
	opt.DialTimeout = 2 * time.Second
	opt.ReadTimeout = 250 * time.Millisecond
	opt.WriteTimeout = 250 * time.Millisecond
	opt.MaxRetries = 1
	return opt, nil
}
