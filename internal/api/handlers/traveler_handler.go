package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/travelease/backend/internal/api/middleware"
	"github.com/travelease/backend/internal/application/services"
	"github.com/travelease/backend/internal/domain/entities"
)

// TravelerService defines the traveler operations used by the handler.
type TravelerService interface {
	Connect(ctx context.Context, userID int64, input services.ConnectInput) (*entities.TravelerConnection, error)
	ListForAccommodation(ctx context.Context, accommodationID int64, checkin, checkout string) ([]*entities.TravelerConnection, error)
	SendMessage(ctx context.Context, senderID int64, input services.SendMessageInput) (*entities.Message, error)
}

// TravelerHandler handles traveler connections and direct messages.
type TravelerHandler struct {
	service TravelerService
}

// NewTravelerHandler creates a new traveler handler
func NewTravelerHandler(service TravelerService) *TravelerHandler {
	return &TravelerHandler{service: service}
}

type connectRequest struct {
	AccommodationID int64                `json:"accommodation_id" validate:"required,gt=0"`
	TravelDates     entities.TravelDates `json:"travel_dates"`
	Message         string               `json:"message" validate:"max=500"`
}

type sendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" validate:"required,gt=0"`
	Message    string `json:"message" validate:"required,min=1,max=1000"`
}

// Connect handles POST /api/travelers/connect
func (h *TravelerHandler) Connect(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var payload connectRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validatePayload(payload); err != nil {
		respondWithAppError(w, err)
		return
	}

	connection, err := h.service.Connect(r.Context(), user.ID, services.ConnectInput{
		AccommodationID: payload.AccommodationID,
		TravelDates:     payload.TravelDates,
		Message:         payload.Message,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, connection)
}

// ListForAccommodation handles GET /api/travelers/accommodation/{id}
func (h *TravelerHandler) ListForAccommodation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid accommodation id")
		return
	}

	query := r.URL.Query()
	travelers, err := h.service.ListForAccommodation(r.Context(), id, query.Get("checkin"), query.Get("checkout"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, travelers)
}

// SendMessage handles POST /api/travelers/message
func (h *TravelerHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var payload sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validatePayload(payload); err != nil {
		respondWithAppError(w, err)
		return
	}

	message, err := h.service.SendMessage(r.Context(), user.ID, services.SendMessageInput{
		ReceiverID: payload.ReceiverID,
		Body:       payload.Message,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, message)
}
