package repositories

import (
	"context"

	"github.com/travelease/backend/internal/domain/entities"
)

// ReviewRepository defines the interface for review operations
type ReviewRepository interface {
	// Create inserts a new review and sets its generated id
	Create(ctx context.Context, review *entities.Review) error

	// ExistsForUser reports whether the user already reviewed the accommodation
	ExistsForUser(ctx context.Context, userID, accommodationID int64) (bool, error)

	// ListByAccommodation retrieves reviews for an accommodation joined with
	// reviewer name and gender, newest first
	ListByAccommodation(ctx context.Context, accommodationID int64, femaleOnly bool) ([]*entities.Review, error)

	// ListByUser retrieves a user's reviews joined with accommodation name
	// and city, newest first
	ListByUser(ctx context.Context, userID int64) ([]*entities.Review, error)
}
