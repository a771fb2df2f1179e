package repositories

import (
	"context"

	"github.com/travelease/backend/internal/domain/entities"
)

// TravelerRepository defines the interface for traveler connection operations
type TravelerRepository interface {
	// CreateConnection inserts a new traveler connection and sets its
	// generated id
	CreateConnection(ctx context.Context, connection *entities.TravelerConnection) error

	// ListByAccommodation retrieves connections looking for company at an
	// accommodation, joined with the traveler's profile, newest first,
	// capped at 10 rows. When checkin and checkout are both set, only
	// connections whose stored dates overlap the range are returned.
	ListByAccommodation(ctx context.Context, accommodationID int64, checkin, checkout string) ([]*entities.TravelerConnection, error)

	// ListByUser retrieves a user's connections joined with accommodation
	// name and city, newest first
	ListByUser(ctx context.Context, userID int64) ([]*entities.TravelerConnection, error)
}

// MessageRepository defines the interface for direct messages
type MessageRepository interface {
	// Create inserts a new message and sets its generated id
	Create(ctx context.Context, message *entities.Message) error
}
