package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelease/backend/internal/domain/entities"
	apperrors "github.com/travelease/backend/pkg/errors"
)

type stubReviewRepo struct {
	existing map[[2]int64]bool
	created  []*entities.Review
	listed   []*entities.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{existing: map[[2]int64]bool{}}
}

func (r *stubReviewRepo) Create(_ context.Context, review *entities.Review) error {
	review.ID = int64(len(r.created) + 1)
	r.created = append(r.created, review)
	return nil
}

func (r *stubReviewRepo) ExistsForUser(_ context.Context, userID, accommodationID int64) (bool, error) {
	return r.existing[[2]int64{userID, accommodationID}], nil
}

func (r *stubReviewRepo) ListByAccommodation(_ context.Context, _ int64, _ bool) ([]*entities.Review, error) {
	return r.listed, nil
}

func (r *stubReviewRepo) ListByUser(_ context.Context, _ int64) ([]*entities.Review, error) {
	return r.listed, nil
}

func TestCreateReviewDerivesFemaleFlag(t *testing.T) {
	cases := []struct {
		gender string
		want   bool
	}{
		{entities.GenderFemale, true},
		{entities.GenderMale, false},
		{entities.GenderOther, false},
	}

	for _, tc := range cases {
		repo := newStubReviewRepo()
		svc := NewReviewService(repo)

		review, err := svc.Create(context.Background(), &entities.User{ID: 3, Gender: tc.gender}, CreateReviewInput{
			AccommodationID: 9,
			Rating:          5,
			SafetyRating:    4,
			ReviewText:      "Clean and central",
		})
		require.NoError(t, err)
		assert.Equal(t, tc.want, review.IsFemaleReview, "gender %s", tc.gender)
		assert.Equal(t, int64(3), review.UserID)
		assert.Equal(t, int64(9), review.AccommodationID)
		assert.Equal(t, int64(1), review.ID)
	}
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	repo := newStubReviewRepo()
	repo.existing[[2]int64{3, 9}] = true
	svc := NewReviewService(repo)

	_, err := svc.Create(context.Background(), &entities.User{ID: 3}, CreateReviewInput{
		AccommodationID: 9,
		Rating:          4,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	assert.Contains(t, err.Error(), "You have already reviewed this accommodation")
	assert.Empty(t, repo.created)
}
