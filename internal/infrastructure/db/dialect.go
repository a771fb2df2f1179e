package db

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/travelease/backend/pkg/config"
)

// Dialect identifies the SQL engine active for the process. It is resolved
// once at startup and never changes afterwards.
type Dialect string

const (
	// DialectPostgres is the numbered-placeholder engine ($1, $2, ...)
	DialectPostgres Dialect = "postgres"

	// DialectMySQL is the positional-placeholder engine (?)
	DialectMySQL Dialect = "mysql"
)

// ResolveDialect picks the active engine from configuration: a connection
// URL selects PostgreSQL, its absence falls back to the local MySQL engine
// with fixed default credentials. It never fails.
func ResolveDialect(cfg *config.DatabaseConfig) Dialect {
	if cfg.URL != "" {
		return DialectPostgres
	}
	return DialectMySQL
}

// DriverName returns the database/sql driver name for the dialect
func (d Dialect) DriverName() string {
	return string(d)
}

// DSN returns the engine connection string for the dialect. Both engines
// carry the configured dial timeout: MySQL via the timeout DSN parameter,
// PostgreSQL via connect_timeout appended to the URL unless it already
// names one.
func (d Dialect) DSN(cfg *config.DatabaseConfig) string {
	if d == DialectPostgres {
		return postgresDSN(cfg)
	}
	return cfg.MySQLDSN()
}

func postgresDSN(cfg *config.DatabaseConfig) string {
	if strings.Contains(cfg.URL, "connect_timeout=") {
		return cfg.URL
	}
	seconds := int(cfg.ConnectTimeout.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	sep := "?"
	if strings.Contains(cfg.URL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sconnect_timeout=%d", cfg.URL, sep, seconds)
}

// Rebind rewrites a query template written with ordinal ? placeholders into
// the dialect's placeholder syntax: PostgreSQL queries get $n markers
// numbered 1..N in left-to-right appearance order, MySQL queries pass
// through unchanged. A query with no placeholders is returned as-is.
func (d Dialect) Rebind(query string) string {
	return sqlx.Rebind(sqlx.BindType(d.DriverName()), query)
}

// JSONText returns the SQL expression extracting key from a JSON column as
// text. The two engines spell this differently.
func (d Dialect) JSONText(column, key string) string {
	if d == DialectPostgres {
		return fmt.Sprintf("%s->>'%s'", column, key)
	}
	return fmt.Sprintf("JSON_UNQUOTE(JSON_EXTRACT(%s, '$.%s'))", column, key)
}
