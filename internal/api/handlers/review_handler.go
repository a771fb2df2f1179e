package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/travelease/backend/internal/api/middleware"
	"github.com/travelease/backend/internal/application/services"
	"github.com/travelease/backend/internal/domain/entities"
)

// ReviewService defines the review operations used by the handler.
type ReviewService interface {
	Create(ctx context.Context, user *entities.User, input services.CreateReviewInput) (*entities.Review, error)
	ListForAccommodation(ctx context.Context, accommodationID int64, femaleOnly bool) ([]*entities.Review, error)
}

// ReviewHandler handles review creation and listing.
type ReviewHandler struct {
	service ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	AccommodationID int64  `json:"accommodation_id" validate:"required,gt=0"`
	Rating          int    `json:"rating" validate:"required,gte=1,lte=5"`
	SafetyRating    int    `json:"safety_rating" validate:"required,gte=1,lte=5"`
	ReviewText      string `json:"review_text" validate:"max=1000"`
}

// Create handles POST /api/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var payload createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validatePayload(payload); err != nil {
		respondWithAppError(w, err)
		return
	}

	review, err := h.service.Create(r.Context(), user, services.CreateReviewInput{
		AccommodationID: payload.AccommodationID,
		Rating:          payload.Rating,
		SafetyRating:    payload.SafetyRating,
		ReviewText:      payload.ReviewText,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, review)
}

// ListForAccommodation handles GET /api/reviews/accommodation/{id}
func (h *ReviewHandler) ListForAccommodation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid accommodation id")
		return
	}

	femaleOnly := r.URL.Query().Get("female_only") == "true"

	reviews, err := h.service.ListForAccommodation(r.Context(), id, femaleOnly)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reviews)
}
