package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
	"github.com/travelease/backend/internal/infrastructure/db"
	apperrors "github.com/travelease/backend/pkg/errors"
)

// travelerResultCap bounds the per-accommodation traveler listing.
const travelerResultCap = 10

// TravelerAdapter implements traveler connection persistence over the
// active engine.
type TravelerAdapter struct {
	client *db.Client
}

// NewTravelerAdapter creates a new traveler adapter
func NewTravelerAdapter(client *db.Client) repositories.TravelerRepository {
	return &TravelerAdapter{client: client}
}

type travelerRow struct {
	ID                  int64          `db:"id"`
	UserID              int64          `db:"user_id"`
	AccommodationID     int64          `db:"accommodation_id"`
	TravelDates         []byte         `db:"travel_dates"`
	IsLookingForCompany bool           `db:"is_looking_for_company"`
	Message             sql.NullString `db:"message"`
	CreatedAt           time.Time      `db:"created_at"`
	FullName            sql.NullString `db:"full_name"`
	Gender              sql.NullString `db:"gender"`
	Age                 sql.Null[int]  `db:"age"`
	Interests           []byte         `db:"interests"`
	AccommodationName   sql.NullString `db:"accommodation_name"`
	City                sql.NullString `db:"city"`
}

func (r *travelerRow) toEntity() *entities.TravelerConnection {
	conn := &entities.TravelerConnection{
		ID:                  r.ID,
		UserID:              r.UserID,
		AccommodationID:     r.AccommodationID,
		TravelDates:         decodeTravelDates(r.TravelDates, r.ID),
		IsLookingForCompany: r.IsLookingForCompany,
		Message:             r.Message.String,
		CreatedAt:           r.CreatedAt,
		FullName:            r.FullName.String,
		Gender:              r.Gender.String,
		Age:                 r.Age.V,
		AccommodationName:   r.AccommodationName.String,
		City:                r.City.String,
	}
	if len(r.Interests) > 0 {
		conn.Interests = decodeJSONList(r.Interests, "users", r.UserID)
	}
	return conn
}

// CreateConnection inserts a new traveler connection and sets its generated id
func (a *TravelerAdapter) CreateConnection(ctx context.Context, connection *entities.TravelerConnection) error {
	query := `INSERT INTO traveler_connections
		(user_id, accommodation_id, travel_dates, is_looking_for_company, message)
		VALUES (?, ?, ?, ?, ?)`

	id, err := a.client.Insert(ctx, query,
		connection.UserID,
		connection.AccommodationID,
		encodeTravelDates(connection.TravelDates),
		connection.IsLookingForCompany,
		connection.Message,
	)
	if err != nil {
		return apperrors.NewInternalError("failed to create traveler connection", err)
	}

	connection.ID = id
	return nil
}

// ListByAccommodation retrieves connections looking for company at an
// accommodation, joined with the traveler's profile, newest first. The
// optional date-range filter compares against the JSON travel_dates using
// the engine's JSON text extraction.
func (a *TravelerAdapter) ListByAccommodation(ctx context.Context, accommodationID int64, checkin, checkout string) ([]*entities.TravelerConnection, error) {
	query := `
		SELECT tc.id, tc.user_id, tc.accommodation_id, tc.travel_dates,
			tc.is_looking_for_company, tc.message, tc.created_at,
			u.full_name, u.gender, u.age, u.interests
		FROM traveler_connections tc
		JOIN users u ON tc.user_id = u.id
		WHERE tc.accommodation_id = ? AND tc.is_looking_for_company = TRUE`
	args := []interface{}{accommodationID}

	if checkin != "" && checkout != "" {
		dialect := a.client.Dialect()
		query += fmt.Sprintf(" AND %s <= ? AND %s >= ?",
			dialect.JSONText("tc.travel_dates", "checkin"),
			dialect.JSONText("tc.travel_dates", "checkout"),
		)
		args = append(args, checkout, checkin)
	}

	query += fmt.Sprintf(" ORDER BY tc.created_at DESC LIMIT %d", travelerResultCap)

	rows := []travelerRow{}
	if err := a.client.Select(ctx, &rows, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to list travelers", err)
	}

	connections := make([]*entities.TravelerConnection, 0, len(rows))
	for i := range rows {
		connections = append(connections, rows[i].toEntity())
	}
	return connections, nil
}

// ListByUser retrieves a user's connections joined with accommodation name
// and city, newest first
func (a *TravelerAdapter) ListByUser(ctx context.Context, userID int64) ([]*entities.TravelerConnection, error) {
	query := `
		SELECT tc.id, tc.user_id, tc.accommodation_id, tc.travel_dates,
			tc.is_looking_for_company, tc.message, tc.created_at,
			a.name AS accommodation_name, a.city
		FROM traveler_connections tc
		JOIN accommodations a ON tc.accommodation_id = a.id
		WHERE tc.user_id = ?
		ORDER BY tc.created_at DESC`

	rows := []travelerRow{}
	if err := a.client.Select(ctx, &rows, query, userID); err != nil {
		return nil, apperrors.NewInternalError("failed to list user connections", err)
	}

	connections := make([]*entities.TravelerConnection, 0, len(rows))
	for i := range rows {
		connections = append(connections, rows[i].toEntity())
	}
	return connections, nil
}
