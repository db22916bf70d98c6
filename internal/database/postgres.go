package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-api/internal/config"
)

// ApplicationName tags store connections in pg_stat_activity.
const ApplicationName = "trivia-api"

// statementTimeout bounds a single store query. The heaviest statement is a
// full listing of the questions table.
const statementTimeout = 5 * time.Second

// NewPostgresPool creates and validates the question store connection pool.
func NewPostgresPool(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().
		Str("host", poolCfg.ConnConfig.Host).
		Str("database", poolCfg.ConnConfig.Database).
		Int32("max_conns", poolCfg.MaxConns).
		Int32("min_conns", poolCfg.MinConns).
		Msg("Question store connected")

	return pool, nil
}

// PoolConfig builds the pgxpool settings for the question store.
//
// Every request runs at most two short statements (a mutation plus the page
// listing), so the pool keeps a quarter of MaxDBConns warm and recycles idle
// connections quickly. Settings given in DATABASE_URL take precedence over
// application_name and statement_timeout.
func PoolConfig(cfg *config.Config) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	maxConns := cfg.MaxDBConns
	if maxConns < 1 {
		maxConns = 1
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = maxConns / 4
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.HealthCheckPeriod = 30 * time.Second

	params := poolCfg.ConnConfig.RuntimeParams
	if _, ok := params["application_name"]; !ok {
		params["application_name"] = ApplicationName
	}
	if _, ok := params["statement_timeout"]; !ok {
		params["statement_timeout"] = fmt.Sprintf("%d", statementTimeout.Milliseconds())
	}

	return poolCfg, nil
}
