package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/travelease/backend/pkg/errors"
)

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

var developmentMode bool

// SetDevelopmentMode controls whether internal error detail is echoed to
// clients. Called once at startup, before the server accepts traffic.
func SetDevelopmentMode(enabled bool) {
	developmentMode = enabled
}

// respondWithAppError maps the error taxonomy onto HTTP statuses. Validation
// and conflict failures both surface as 400, matching the API contract the
// frontend was written against. Internal detail is only echoed in
// development mode.
func respondWithAppError(w http.ResponseWriter, err error) {
	appType := apperrors.TypeOf(err)

	switch appType {
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, appErrorMessage(err))
	case apperrors.ErrorTypeValidation, apperrors.ErrorTypeConflict:
		respondWithError(w, http.StatusBadRequest, appErrorMessage(err))
	case apperrors.ErrorTypeUnauthorized:
		respondWithError(w, http.StatusUnauthorized, appErrorMessage(err))
	default:
		log.Error().Err(err).Msg("request failed")
		if developmentMode {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func appErrorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
