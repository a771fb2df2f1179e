package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/travelease/backend/internal/api/middleware"
	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
)

// UserService defines the profile operations used by the handler.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*entities.User, error)
	UpdateProfile(ctx context.Context, userID int64, update repositories.ProfileUpdate) error
	Reviews(ctx context.Context, userID int64) ([]*entities.Review, error)
	Connections(ctx context.Context, userID int64) ([]*entities.TravelerConnection, error)
}

// UserHandler serves the authenticated user's profile and authored rows.
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateProfileRequest struct {
	FullName     *string  `json:"full_name" validate:"omitempty,min=2"`
	Interests    []string `json:"interests"`
	ProfilePhoto *string  `json:"profile_photo" validate:"omitempty,url"`
}

// GetProfile handles GET /api/users/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), user.ID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/users/profile. Omitted fields keep their
// current values; all three columns are written in one statement.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var payload updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validatePayload(payload); err != nil {
		respondWithAppError(w, err)
		return
	}

	update := repositories.ProfileUpdate{
		FullName:     user.FullName,
		Interests:    user.Interests,
		ProfilePhoto: user.ProfilePhoto,
	}
	if payload.FullName != nil {
		update.FullName = *payload.FullName
	}
	if payload.Interests != nil {
		update.Interests = payload.Interests
	}
	if payload.ProfilePhoto != nil {
		update.ProfilePhoto = *payload.ProfilePhoto
	}

	if err := h.service.UpdateProfile(r.Context(), user.ID, update); err != nil {
		respondWithAppError(w, err)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), user.ID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// Reviews handles GET /api/users/reviews
func (h *UserHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	reviews, err := h.service.Reviews(r.Context(), user.ID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reviews)
}

// Connections handles GET /api/users/connections
func (h *UserHandler) Connections(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	connections, err := h.service.Connections(r.Context(), user.ID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, connections)
}
