package services

import (
	"context"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
	apperrors "github.com/travelease/backend/pkg/errors"
)

// CreateReviewInput carries a validated review payload.
type CreateReviewInput struct {
	AccommodationID int64
	Rating          int
	SafetyRating    int
	ReviewText      string
}

// ReviewService handles review creation and listing.
type ReviewService struct {
	reviews repositories.ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviews repositories.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Create inserts a review for the authenticated user. IsFemaleReview is
// derived from the user's gender at this moment and stored immutably.
// The duplicate check and insert are separate statements; concurrent
// submissions for the same pair can both pass the check.
func (s *ReviewService) Create(ctx context.Context, user *entities.User, input CreateReviewInput) (*entities.Review, error) {
	exists, err := s.reviews.ExistsForUser(ctx, user.ID, input.AccommodationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("You have already reviewed this accommodation")
	}

	review := &entities.Review{
		UserID:          user.ID,
		AccommodationID: input.AccommodationID,
		Rating:          input.Rating,
		SafetyRating:    input.SafetyRating,
		ReviewText:      input.ReviewText,
		IsFemaleReview:  user.Gender == entities.GenderFemale,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListForAccommodation lists reviews for an accommodation, optionally
// restricted to reviews written by female travelers
func (s *ReviewService) ListForAccommodation(ctx context.Context, accommodationID int64, femaleOnly bool) ([]*entities.Review, error) {
	return s.reviews.ListByAccommodation(ctx, accommodationID, femaleOnly)
}
