package db

import (
	"context"
	"fmt"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/yigit/enrollment-api/internal/config"
	"github.com/yigit/enrollment-api/internal/pkg/helpers"
	"github.com/yigit/enrollment-api/internal/pkg/logger"
)

// PingTimeout bounds the startup connectivity check
const PingTimeout = 10 * time.Second

// Querier is the statement surface of a single acquired connection
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ConnFn is a function that executes on one acquired connection
type ConnFn func(ctx context.Context, q Querier) error

// Acquirer hands out pooled connections for the lifetime of a ConnFn
type Acquirer interface {
	WithConn(ctx context.Context, fn ConnFn) error
}

// PostgresDB database connection structure
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgresDB creates a new PostgreSQL connection pool
func NewPostgresDB(cfg *config.Config, lgr zerolog.Logger) (*PostgresDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), PingTimeout)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)
	poolConfig.MaxConnLifetime = helpers.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour)

	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	if cfg.Logging.Queries {
		poolConfig.ConnConfig.Tracer = NewQueryTracer(lgr, logger.ParseLevel(cfg.Logging.Level))
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &PostgresDB{Pool: pool}, nil
}

// NewQueryTracer logs every statement through zerolog at the configured level
func NewQueryTracer(lgr zerolog.Logger, level zerolog.Level) *tracelog.TraceLog {
	return &tracelog.TraceLog{
		Logger:   pgxzero.NewLogger(lgr.With().Str("component", "pgx").Logger()),
		LogLevel: TraceLogLevel(level),
	}
}

// TraceLogLevel converts a zerolog level to the pgx tracelog level
func TraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return tracelog.LogLevelError
	case zerolog.Disabled:
		return tracelog.LogLevelNone
	default:
		return tracelog.LogLevelInfo
	}
}

// WithConn acquires a connection, runs fn on it and releases it on every exit path
func (db *PostgresDB) WithConn(ctx context.Context, fn ConnFn) error {
	return withConn(ctx, func(ctx context.Context) (Querier, func(), error) {
		conn, err := db.Pool.Acquire(ctx)
		if err != nil {
			return nil, nil, err
		}
		return conn, conn.Release, nil
	}, fn)
}

type acquireFn func(ctx context.Context) (Querier, func(), error)

func withConn(ctx context.Context, acquire acquireFn, fn ConnFn) error {
	conn, release, err := acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return fn(ctx, conn)
}

// Ping checks that a connection can be obtained and used
func (db *PostgresDB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Close closing method
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
