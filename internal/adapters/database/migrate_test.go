package database

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelease/backend/internal/infrastructure/db"
)

func TestSchemaStatements_DependencyOrder(t *testing.T) {
	for _, dialect := range []db.Dialect{db.DialectPostgres, db.DialectMySQL} {
		stmts := schemaStatements(dialect)
		require.Len(t, stmts, 5)

		tables := []string{"users", "accommodations", "reviews", "traveler_connections", "messages"}
		for i, table := range tables {
			assert.Contains(t, stmts[i], "CREATE TABLE IF NOT EXISTS "+table)
		}
	}
}

func TestSchemaStatements_DialectSpecificTypes(t *testing.T) {
	pg := strings.Join(schemaStatements(db.DialectPostgres), "\n")
	assert.Contains(t, pg, "SERIAL PRIMARY KEY")
	assert.Contains(t, pg, "JSONB")
	assert.NotContains(t, pg, "AUTO_INCREMENT")

	my := strings.Join(schemaStatements(db.DialectMySQL), "\n")
	assert.Contains(t, my, "INT AUTO_INCREMENT PRIMARY KEY")
	assert.NotContains(t, my, "JSONB")
	assert.NotContains(t, my, "SERIAL")
}

func TestEnsureSchema_RunsAllStatements(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	client := db.NewClientForTest(sqlDB, db.DialectPostgres)

	for range schemaStatements(db.DialectPostgres) {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, EnsureSchema(context.Background(), client))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSeedData_SkipsWhenPopulated(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	client := db.NewClientForTest(sqlDB, db.DialectPostgres)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM accommodations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	require.NoError(t, EnsureSeedData(context.Background(), client))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSeedData_InsertsSamplesWhenEmpty(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	client := db.NewClientForTest(sqlDB, db.DialectPostgres)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM accommodations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	for _, acc := range sampleAccommodations {
		mock.ExpectExec(`INSERT INTO accommodations`).
			WithArgs(
				acc.name, acc.description, acc.city, acc.address, acc.price,
				acc.accType, encodeJSONList(acc.amenities), encodeJSONList(nil), true,
			).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}

	require.NoError(t, EnsureSeedData(context.Background(), client))
	assert.NoError(t, mock.ExpectationsWereMet())
}
