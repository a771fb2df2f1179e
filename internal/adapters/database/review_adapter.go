package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
	"github.com/travelease/backend/internal/infrastructure/db"
	apperrors "github.com/travelease/backend/pkg/errors"
)

// ReviewAdapter implements review persistence over the active engine.
type ReviewAdapter struct {
	client *db.Client
}

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(client *db.Client) repositories.ReviewRepository {
	return &ReviewAdapter{client: client}
}

type reviewRow struct {
	ID                int64          `db:"id"`
	UserID            int64          `db:"user_id"`
	AccommodationID   int64          `db:"accommodation_id"`
	Rating            int            `db:"rating"`
	SafetyRating      int            `db:"safety_rating"`
	ReviewText        sql.NullString `db:"review_text"`
	IsFemaleReview    bool           `db:"is_female_review"`
	CreatedAt         time.Time      `db:"created_at"`
	ReviewerName      sql.NullString `db:"full_name"`
	ReviewerGender    sql.NullString `db:"gender"`
	AccommodationName sql.NullString `db:"accommodation_name"`
	City              sql.NullString `db:"city"`
}

func (r *reviewRow) toEntity() *entities.Review {
	return &entities.Review{
		ID:                r.ID,
		UserID:            r.UserID,
		AccommodationID:   r.AccommodationID,
		Rating:            r.Rating,
		SafetyRating:      r.SafetyRating,
		ReviewText:        r.ReviewText.String,
		IsFemaleReview:    r.IsFemaleReview,
		CreatedAt:         r.CreatedAt,
		ReviewerName:      r.ReviewerName.String,
		ReviewerGender:    r.ReviewerGender.String,
		AccommodationName: r.AccommodationName.String,
		City:              r.City.String,
	}
}

// Create inserts a new review and sets its generated id
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	query := `INSERT INTO reviews
		(user_id, accommodation_id, rating, safety_rating, review_text, is_female_review)
		VALUES (?, ?, ?, ?, ?, ?)`

	id, err := a.client.Insert(ctx, query,
		review.UserID,
		review.AccommodationID,
		review.Rating,
		review.SafetyRating,
		review.ReviewText,
		review.IsFemaleReview,
	)
	if err != nil {
		return apperrors.NewInternalError("failed to create review", err)
	}

	review.ID = id
	return nil
}

// ExistsForUser reports whether the user already reviewed the accommodation.
// Callers combine this with Create as a read-then-insert; the pair is not
// atomic under concurrent submissions.
func (a *ReviewAdapter) ExistsForUser(ctx context.Context, userID, accommodationID int64) (bool, error) {
	var exists bool
	err := a.client.Get(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = ? AND accommodation_id = ?)",
		userID, accommodationID,
	)
	if err != nil {
		return false, apperrors.NewInternalError("failed to check existing review", err)
	}
	return exists, nil
}

// ListByAccommodation retrieves reviews for an accommodation joined with
// reviewer name and gender, newest first
func (a *ReviewAdapter) ListByAccommodation(ctx context.Context, accommodationID int64, femaleOnly bool) ([]*entities.Review, error) {
	query := `
		SELECT r.id, r.user_id, r.accommodation_id, r.rating, r.safety_rating,
			r.review_text, r.is_female_review, r.created_at, u.full_name, u.gender
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.accommodation_id = ?`
	args := []interface{}{accommodationID}

	if femaleOnly {
		query += " AND r.is_female_review = TRUE"
	}

	query += " ORDER BY r.created_at DESC"

	rows := []reviewRow{}
	if err := a.client.Select(ctx, &rows, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to list reviews", err)
	}

	reviews := make([]*entities.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, rows[i].toEntity())
	}
	return reviews, nil
}

// ListByUser retrieves a user's reviews joined with accommodation name and
// city, newest first
func (a *ReviewAdapter) ListByUser(ctx context.Context, userID int64) ([]*entities.Review, error) {
	query := `
		SELECT r.id, r.user_id, r.accommodation_id, r.rating, r.safety_rating,
			r.review_text, r.is_female_review, r.created_at,
			a.name AS accommodation_name, a.city
		FROM reviews r
		JOIN accommodations a ON r.accommodation_id = a.id
		WHERE r.user_id = ?
		ORDER BY r.created_at DESC`

	rows := []reviewRow{}
	if err := a.client.Select(ctx, &rows, query, userID); err != nil {
		return nil, apperrors.NewInternalError("failed to list user reviews", err)
	}

	reviews := make([]*entities.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, rows[i].toEntity())
	}
	return reviews, nil
}
