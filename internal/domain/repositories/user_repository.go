package repositories

import (
	"context"

	"github.com/travelease/backend/internal/domain/entities"
)

// ProfileUpdate carries the mutable profile columns.
type ProfileUpdate struct {
	FullName     string
	Interests    []string
	ProfilePhoto string
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create inserts a new user and sets its generated id
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*entities.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// EmailTaken reports whether a user with the email already exists
	EmailTaken(ctx context.Context, email string) (bool, error)

	// UpdateProfile updates the mutable profile columns
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) error
}
