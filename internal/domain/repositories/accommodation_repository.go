package repositories

import (
	"context"

	"github.com/travelease/backend/internal/domain/entities"
)

// AccommodationFilter narrows a search. Zero values mean no filtering.
type AccommodationFilter struct {
	// City matches case-insensitively as a substring of city or name.
	City string

	// Type matches the accommodation type exactly.
	Type string
}

// AccommodationRepository defines the interface for accommodation reads
type AccommodationRepository interface {
	// Search lists active accommodations matching the filter, newest first,
	// capped at 50 rows
	Search(ctx context.Context, filter AccommodationFilter) ([]*entities.Accommodation, error)

	// GetByID retrieves an active accommodation by ID
	GetByID(ctx context.Context, id int64) (*entities.Accommodation, error)
}
