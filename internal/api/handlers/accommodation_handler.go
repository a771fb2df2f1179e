package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
)

// AccommodationService defines the accommodation reads used by the handler.
type AccommodationService interface {
	Search(ctx context.Context, filter repositories.AccommodationFilter) ([]*entities.Accommodation, error)
	Get(ctx context.Context, id int64) (*entities.Accommodation, error)
}

// AccommodationHandler handles accommodation search and detail reads.
type AccommodationHandler struct {
	service AccommodationService
}

// NewAccommodationHandler creates a new accommodation handler
func NewAccommodationHandler(service AccommodationService) *AccommodationHandler {
	return &AccommodationHandler{service: service}
}

// Search handles GET /api/accommodations/search
func (h *AccommodationHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repositories.AccommodationFilter{
		City: query.Get("city"),
	}
	// "all" is the frontend's no-filter sentinel.
	if t := query.Get("type"); t != "" && t != "all" {
		filter.Type = t
	}

	accommodations, err := h.service.Search(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, accommodations)
}

// Get handles GET /api/accommodations/{id}
func (h *AccommodationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid accommodation id")
		return
	}

	accommodation, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, accommodation)
}

// pathID parses the {id} path segment shared by detail routes.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
