package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/travelease/backend/pkg/config"
)

func TestResolveDialect(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
		want Dialect
	}{
		{
			name: "connection URL selects postgres",
			cfg:  config.DatabaseConfig{URL: "postgres://app:secret@db:5432/travelease"},
			want: DialectPostgres,
		},
		{
			name: "absent URL falls back to mysql",
			cfg:  config.DatabaseConfig{Host: "localhost", User: "travelease_user"},
			want: DialectMySQL,
		},
		{
			name: "empty config still resolves",
			cfg:  config.DatabaseConfig{},
			want: DialectMySQL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDialect(&tt.cfg))
		})
	}
}

func TestDialect_Rebind_Postgres(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "single placeholder",
			query: "SELECT id FROM users WHERE email = ?",
			want:  "SELECT id FROM users WHERE email = $1",
		},
		{
			name:  "placeholders numbered in appearance order",
			query: "INSERT INTO messages (sender_id, receiver_id, message) VALUES (?, ?, ?)",
			want:  "INSERT INTO messages (sender_id, receiver_id, message) VALUES ($1, $2, $3)",
		},
		{
			name:  "conditionally appended filters keep counting",
			query: "SELECT * FROM accommodations WHERE is_active = TRUE AND (LOWER(city) LIKE ? OR LOWER(name) LIKE ?) AND accommodation_type = ? LIMIT 50",
			want:  "SELECT * FROM accommodations WHERE is_active = TRUE AND (LOWER(city) LIKE $1 OR LOWER(name) LIKE $2) AND accommodation_type = $3 LIMIT 50",
		},
		{
			name:  "zero placeholders pass through",
			query: "SELECT COUNT(*) FROM accommodations",
			want:  "SELECT COUNT(*) FROM accommodations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DialectPostgres.Rebind(tt.query))
		})
	}
}

func TestDialect_Rebind_MySQLUnchanged(t *testing.T) {
	query := "SELECT id FROM users WHERE email = ? AND age > ?"
	assert.Equal(t, query, DialectMySQL.Rebind(query))
}

func TestDialect_JSONText(t *testing.T) {
	assert.Equal(t,
		"tc.travel_dates->>'checkin'",
		DialectPostgres.JSONText("tc.travel_dates", "checkin"),
	)
	assert.Equal(t,
		"JSON_UNQUOTE(JSON_EXTRACT(tc.travel_dates, '$.checkin'))",
		DialectMySQL.JSONText("tc.travel_dates", "checkin"),
	)
}

func TestDialect_DSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		URL:            "postgres://app:secret@db:5432/travelease",
		Host:           "localhost",
		Port:           3306,
		User:           "travelease_user",
		Password:       "travelease123",
		Name:           "travelease",
		ConnectTimeout: 2 * time.Second,
	}

	assert.Equal(t,
		"postgres://app:secret@db:5432/travelease?connect_timeout=2",
		DialectPostgres.DSN(cfg),
	)
	assert.Contains(t, DialectMySQL.DSN(cfg), "tcp(localhost:3306)/travelease")
}

func TestDialect_DSN_PostgresTimeoutVariants(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			"url with query string",
			"postgres://app:secret@db:5432/travelease?sslmode=disable",
			"postgres://app:secret@db:5432/travelease?sslmode=disable&connect_timeout=2",
		},
		{
			"explicit timeout kept",
			"postgres://app:secret@db:5432/travelease?connect_timeout=10",
			"postgres://app:secret@db:5432/travelease?connect_timeout=10",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.DatabaseConfig{URL: tc.url, ConnectTimeout: 2 * time.Second}
			assert.Equal(t, tc.want, DialectPostgres.DSN(cfg))
		})
	}
}
