package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/travelease/backend/pkg/config"
	"github.com/travelease/backend/pkg/retry"
)

// Client is the process-wide database handle. It owns the connection pool
// for the active engine and applies placeholder translation to every query,
// so callers write dialect-neutral templates with ? markers.
type Client struct {
	db             *sqlx.DB
	dialect        Dialect
	acquireTimeout time.Duration
}

// NewClient resolves the active dialect from configuration, opens the pool
// and verifies connectivity with exponential backoff retry.
func NewClient(cfg *config.DatabaseConfig) (*Client, error) {
	dialect := ResolveDialect(cfg)

	db, err := sqlx.Open(dialect.DriverName(), dialect.DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	retryConfig := retry.DefaultConfig()
	err = retry.DoWithLog(
		context.Background(),
		retryConfig,
		dialect.DriverName(),
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return db.PingContext(ctx)
		},
		func(attempt int, err error, nextDelay time.Duration) {
			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Dur("next_delay", nextDelay).
				Msg("database connection attempt failed, retrying")
		},
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s after retries: %w", dialect, err)
	}

	log.Info().Str("engine", string(dialect)).Msg("database engine selected")
	return &Client{db: db, dialect: dialect, acquireTimeout: cfg.ConnectTimeout}, nil
}

// NewClientForTest wraps an existing connection (typically sqlmock) in a
// Client with the given dialect.
func NewClientForTest(sqlDB *sql.DB, dialect Dialect) *Client {
	return &Client{
		db:             sqlx.NewDb(sqlDB, dialect.DriverName()),
		dialect:        dialect,
		acquireTimeout: 2 * time.Second,
	}
}

// Dialect returns the engine choice made at startup
func (c *Client) Dialect() Dialect {
	return c.dialect
}

// DB returns the underlying sqlx handle
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// acquire checks a connection out of the pool, waiting at most the
// configured connect timeout. A saturated pool surfaces as a deadline error
// instead of an unbounded wait. The deadline governs only the checkout; the
// query itself runs under the caller's context.
func (c *Client) acquire(ctx context.Context) (*sqlx.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, c.acquireTimeout)
	defer cancel()
	return c.db.Connx(acquireCtx)
}

// Get runs a single-row query and scans the result into dest
func (c *Client) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	conn, err := c.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.GetContext(ctx, dest, c.dialect.Rebind(query), args...)
}

// Select runs a multi-row query and scans the results into dest
func (c *Client) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	conn, err := c.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.SelectContext(ctx, dest, c.dialect.Rebind(query), args...)
}

// Exec runs a statement that returns no rows
func (c *Client) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	conn, err := c.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return conn.ExecContext(ctx, c.dialect.Rebind(query), args...)
}

// Insert runs an INSERT written without any id-returning clause and yields
// the generated id. PostgreSQL gets a RETURNING id suffix appended, MySQL
// reads LastInsertId from the result. Both paths present the same contract.
func (c *Client) Insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	conn, err := c.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	if c.dialect == DialectPostgres {
		var id int64
		err := conn.QueryRowxContext(ctx, c.dialect.Rebind(query)+" RETURNING id", args...).Scan(&id)
		if err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Ping verifies the connection to the database
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the connection pool
func (c *Client) Close() error {
	return c.db.Close()
}
