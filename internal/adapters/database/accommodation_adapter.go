package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
	"github.com/travelease/backend/internal/infrastructure/db"
	apperrors "github.com/travelease/backend/pkg/errors"
)

// searchResultCap bounds every search response.
const searchResultCap = 50

// AccommodationAdapter implements accommodation reads over the active engine.
type AccommodationAdapter struct {
	client *db.Client
}

// NewAccommodationAdapter creates a new accommodation adapter
func NewAccommodationAdapter(client *db.Client) repositories.AccommodationRepository {
	return &AccommodationAdapter{client: client}
}

type accommodationRow struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"`
	Description   sql.NullString  `db:"description"`
	City          string          `db:"city"`
	Address       string          `db:"address"`
	Latitude      sql.NullFloat64 `db:"latitude"`
	Longitude     sql.NullFloat64 `db:"longitude"`
	PricePerNight int             `db:"price_per_night"`
	Type          string          `db:"accommodation_type"`
	Amenities     []byte          `db:"amenities"`
	Photos        []byte          `db:"photos"`
	ContactInfo   []byte          `db:"contact_info"`
	IsActive      bool            `db:"is_active"`
	CreatedAt     time.Time       `db:"created_at"`
}

func (r *accommodationRow) toEntity() *entities.Accommodation {
	acc := &entities.Accommodation{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description.String,
		City:          r.City,
		Address:       r.Address,
		PricePerNight: r.PricePerNight,
		Type:          r.Type,
		Amenities:     decodeJSONList(r.Amenities, "accommodations", r.ID),
		Photos:        decodeJSONList(r.Photos, "accommodations", r.ID),
		ContactInfo:   decodeJSONMap(r.ContactInfo, "accommodations", r.ID),
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
	}
	if r.Latitude.Valid {
		acc.Latitude = &r.Latitude.Float64
	}
	if r.Longitude.Valid {
		acc.Longitude = &r.Longitude.Float64
	}
	return acc
}

// Search lists active accommodations matching the filter, newest first,
// capped at 50 rows. Filter clauses are appended conditionally; placeholder
// numbering is left to the client's dialect translation.
func (a *AccommodationAdapter) Search(ctx context.Context, filter repositories.AccommodationFilter) ([]*entities.Accommodation, error) {
	query := `
		SELECT id, name, description, city, address, latitude, longitude,
			price_per_night, accommodation_type, amenities, photos, is_active, created_at
		FROM accommodations
		WHERE is_active = TRUE`
	args := []interface{}{}

	if filter.City != "" {
		query += " AND (LOWER(city) LIKE ? OR LOWER(name) LIKE ?)"
		needle := "%" + strings.ToLower(filter.City) + "%"
		args = append(args, needle, needle)
	}

	if filter.Type != "" {
		query += " AND accommodation_type = ?"
		args = append(args, filter.Type)
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d", searchResultCap)

	rows := []accommodationRow{}
	if err := a.client.Select(ctx, &rows, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to search accommodations", err)
	}

	accommodations := make([]*entities.Accommodation, 0, len(rows))
	for i := range rows {
		accommodations = append(accommodations, rows[i].toEntity())
	}
	return accommodations, nil
}

// GetByID retrieves an active accommodation by ID
func (a *AccommodationAdapter) GetByID(ctx context.Context, id int64) (*entities.Accommodation, error) {
	query := `
		SELECT id, name, description, city, address, latitude, longitude,
			price_per_night, accommodation_type, amenities, photos, contact_info,
			is_active, created_at
		FROM accommodations
		WHERE id = ? AND is_active = TRUE`

	var row accommodationRow
	err := a.client.Get(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("accommodation with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get accommodation", err)
	}

	return row.toEntity(), nil
}
