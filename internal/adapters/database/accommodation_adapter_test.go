package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelease/backend/internal/domain/repositories"
	"github.com/travelease/backend/internal/infrastructure/db"
	apperrors "github.com/travelease/backend/pkg/errors"
)

func searchColumns() []string {
	return []string{
		"id", "name", "description", "city", "address", "latitude", "longitude",
		"price_per_night", "accommodation_type", "amenities", "photos",
		"is_active", "created_at",
	}
}

func TestAccommodationAdapter_Search_AllFilters(t *testing.T) {
	client, mock := newMockClient(t, db.DialectPostgres)
	adapter := NewAccommodationAdapter(client)

	mock.ExpectQuery(`FROM accommodations\s+WHERE is_active = TRUE AND \(LOWER\(city\) LIKE \$1 OR LOWER\(name\) LIKE \$2\) AND accommodation_type = \$3 ORDER BY created_at DESC LIMIT 50`).
		WithArgs("%bangalore%", "%bangalore%", "hostel").
		WillReturnRows(sqlmock.NewRows(searchColumns()).
			AddRow(int64(1), "Cozy Central Hostel", "A safe hostel", "Bangalore", "MG Road",
				nil, nil, 2500, "hostel", []byte(`["WiFi"]`), []byte(`[]`), true, time.Now()).
			AddRow(int64(2), "Bangalore Backpackers", nil, "Bengaluru", "Indiranagar",
				nil, nil, 1500, "hostel", []byte(`{{broken`), nil, true, time.Now()))

	results, err := adapter.Search(context.Background(), repositories.AccommodationFilter{
		City: "Bangalore",
		Type: "hostel",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Cozy Central Hostel", results[0].Name)
	assert.Equal(t, []string{"WiFi"}, results[0].Amenities)

	// malformed JSON columns degrade to typed empty defaults
	assert.Equal(t, []string{}, results[1].Amenities)
	assert.Equal(t, []string{}, results[1].Photos)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccommodationAdapter_Search_NoFilters(t *testing.T) {
	client, mock := newMockClient(t, db.DialectMySQL)
	adapter := NewAccommodationAdapter(client)

	mock.ExpectQuery(`FROM accommodations\s+WHERE is_active = TRUE ORDER BY created_at DESC LIMIT 50`).
		WillReturnRows(sqlmock.NewRows(searchColumns()))

	results, err := adapter.Search(context.Background(), repositories.AccommodationFilter{})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccommodationAdapter_GetByID(t *testing.T) {
	client, mock := newMockClient(t, db.DialectPostgres)
	adapter := NewAccommodationAdapter(client)

	columns := append(searchColumns()[:11], "contact_info", "is_active", "created_at")
	mock.ExpectQuery(`FROM accommodations\s+WHERE id = \$1 AND is_active = TRUE`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Cozy Central Hostel", "A safe hostel", "Bangalore", "MG Road",
				12.9716, 77.5946, 2500, "hostel", []byte(`["WiFi"]`), []byte(`[]`),
				[]byte(`{"phone":"+91 98765"}`), true, time.Now()))

	acc, err := adapter.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Cozy Central Hostel", acc.Name)
	require.NotNil(t, acc.Latitude)
	assert.InDelta(t, 12.9716, *acc.Latitude, 0.0001)
	assert.Equal(t, map[string]interface{}{"phone": "+91 98765"}, acc.ContactInfo)
}

func TestAccommodationAdapter_GetByID_NotFound(t *testing.T) {
	client, mock := newMockClient(t, db.DialectPostgres)
	adapter := NewAccommodationAdapter(client)

	mock.ExpectQuery(`FROM accommodations`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(searchColumns()))

	acc, err := adapter.GetByID(context.Background(), 99)
	assert.Nil(t, acc)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
