package services

import (
	"context"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
)

// UserService serves the authenticated user's profile and authored rows.
type UserService struct {
	users     repositories.UserRepository
	reviews   repositories.ReviewRepository
	travelers repositories.TravelerRepository
}

// NewUserService creates a new user service
func NewUserService(
	users repositories.UserRepository,
	reviews repositories.ReviewRepository,
	travelers repositories.TravelerRepository,
) *UserService {
	return &UserService{
		users:     users,
		reviews:   reviews,
		travelers: travelers,
	}
}

// GetProfile retrieves the user's profile
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*entities.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile updates the user's mutable profile columns
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, update repositories.ProfileUpdate) error {
	if update.Interests == nil {
		update.Interests = []string{}
	}
	return s.users.UpdateProfile(ctx, userID, update)
}

// Reviews lists the user's authored reviews with accommodation names
func (s *UserService) Reviews(ctx context.Context, userID int64) ([]*entities.Review, error) {
	return s.reviews.ListByUser(ctx, userID)
}

// Connections lists the user's traveler connections with accommodation names
func (s *UserService) Connections(ctx context.Context, userID int64) ([]*entities.TravelerConnection, error) {
	return s.travelers.ListByUser(ctx, userID)
}
