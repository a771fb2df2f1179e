package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/infrastructure/db"
	apperrors "github.com/travelease/backend/pkg/errors"
)

// EnsureSchema creates the five tables in dependency order if they do not
// exist yet. It is safe to call on every boot; a failure here is surfaced to
// the caller, which treats it as fatal.
func EnsureSchema(ctx context.Context, client *db.Client) error {
	for _, stmt := range schemaStatements(client.Dialect()) {
		if _, err := client.Exec(ctx, stmt); err != nil {
			return apperrors.NewInternalError("schema migration failed", err)
		}
	}
	log.Info().Msg("database schema ready")
	return nil
}

// schemaStatements renders the DDL for the active engine. The engines differ
// in auto-increment spelling and JSON column type; everything else is shared.
func schemaStatements(dialect db.Dialect) []string {
	serial := "INT AUTO_INCREMENT PRIMARY KEY"
	jsonType := "JSON"
	if dialect == db.DialectPostgres {
		serial = "SERIAL PRIMARY KEY"
		jsonType = "JSONB"
	}

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255),
			full_name VARCHAR(255) NOT NULL,
			gender VARCHAR(20) NOT NULL CHECK (gender IN ('male', 'female', 'other')),
			age INTEGER NOT NULL,
			profile_photo VARCHAR(500),
			interests %s,
			google_id VARCHAR(255) UNIQUE,
			is_verified BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, serial, jsonType),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS accommodations (
			id %s,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			city VARCHAR(100) NOT NULL,
			address TEXT NOT NULL,
			latitude DECIMAL(10, 8),
			longitude DECIMAL(11, 8),
			price_per_night INTEGER NOT NULL,
			accommodation_type VARCHAR(50) NOT NULL CHECK (accommodation_type IN ('hostel', 'hotel', 'guesthouse', 'homestay')),
			amenities %s,
			photos %s,
			contact_info %s,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, serial, jsonType, jsonType, jsonType),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS reviews (
			id %s,
			user_id INTEGER NOT NULL,
			accommodation_id INTEGER NOT NULL,
			rating INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
			safety_rating INTEGER NOT NULL CHECK (safety_rating >= 1 AND safety_rating <= 5),
			review_text TEXT,
			is_female_review BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY (accommodation_id) REFERENCES accommodations(id) ON DELETE CASCADE
		)`, serial),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS traveler_connections (
			id %s,
			user_id INTEGER NOT NULL,
			accommodation_id INTEGER NOT NULL,
			travel_dates %s NOT NULL,
			is_looking_for_company BOOLEAN DEFAULT TRUE,
			message TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY (accommodation_id) REFERENCES accommodations(id) ON DELETE CASCADE
		)`, serial, jsonType),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS messages (
			id %s,
			sender_id INTEGER NOT NULL,
			receiver_id INTEGER NOT NULL,
			message TEXT NOT NULL,
			is_read BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (sender_id) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY (receiver_id) REFERENCES users(id) ON DELETE CASCADE
		)`, serial),
	}
}

type sampleAccommodation struct {
	name        string
	description string
	city        string
	address     string
	price       int
	accType     string
	amenities   []string
}

var sampleAccommodations = []sampleAccommodation{
	{
		name:        "Cozy Central Hostel",
		description: "A safe and clean hostel in the heart of the city with 24/7 security and female-only dorms available.",
		city:        "Bangalore",
		address:     "MG Road, Bangalore, Karnataka 560001",
		price:       2500,
		accType:     entities.AccommodationHostel,
		amenities:   []string{"WiFi", "24/7 Security", "Shared Kitchen", "Common Area"},
	},
	{
		name:        "Backpacker Paradise",
		description: "Budget-friendly hostel with a great kitchen and social atmosphere for meeting fellow travelers.",
		city:        "Pune",
		address:     "Koregaon Park, Pune, Maharashtra 411001",
		price:       1800,
		accType:     entities.AccommodationHostel,
		amenities:   []string{"WiFi", "Kitchen", "Common Room", "Lockers"},
	},
	{
		name:        "Urban Nomad Hub",
		description: "Premium accommodation perfect for digital nomads and business travelers seeking comfort and connectivity.",
		city:        "Mumbai",
		address:     "Bandra West, Mumbai, Maharashtra 400050",
		price:       3200,
		accType:     entities.AccommodationHotel,
		amenities:   []string{"High-Speed WiFi", "Workspace", "Gym", "Restaurant"},
	},
}

// EnsureSeedData inserts the fixed sample accommodations when the table is
// empty, so reruns on a populated database are no-ops. Errors are returned
// but the caller treats them as non-fatal.
func EnsureSeedData(ctx context.Context, client *db.Client) error {
	var count int
	if err := client.Get(ctx, &count, "SELECT COUNT(*) FROM accommodations"); err != nil {
		return apperrors.NewInternalError("failed to count accommodations", err)
	}
	if count > 0 {
		log.Debug().Int("existing", count).Msg("accommodations already present, skipping seed data")
		return nil
	}

	query := `INSERT INTO accommodations
		(name, description, city, address, price_per_night, accommodation_type, amenities, photos, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, acc := range sampleAccommodations {
		_, err := client.Exec(ctx, query,
			acc.name,
			acc.description,
			acc.city,
			acc.address,
			acc.price,
			acc.accType,
			encodeJSONList(acc.amenities),
			encodeJSONList(nil),
			true,
		)
		if err != nil {
			return apperrors.NewInternalError("failed to insert seed accommodation", err)
		}
	}

	log.Info().Int("count", len(sampleAccommodations)).Msg("sample accommodations seeded")
	return nil
}
