package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/travelease/backend/internal/application/services"
)

// AuthService defines the auth operations used by the handler.
type AuthService interface {
	Signup(ctx context.Context, input services.SignupInput) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

// AuthHandler handles signup and login.
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type signupRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=6"`
	FullName  string   `json:"full_name" validate:"required,min=2"`
	Age       int      `json:"age" validate:"required,gte=18,lte=100"`
	Gender    string   `json:"gender" validate:"required,oneof=male female other"`
	Interests []string `json:"interests"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload signupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validatePayload(payload); err != nil {
		respondWithAppError(w, err)
		return
	}

	result, err := h.service.Signup(r.Context(), services.SignupInput{
		Email:     payload.Email,
		Password:  payload.Password,
		FullName:  payload.FullName,
		Age:       payload.Age,
		Gender:    payload.Gender,
		Interests: payload.Interests,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"token": result.Token,
		"user":  result.User,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validatePayload(payload); err != nil {
		respondWithAppError(w, err)
		return
	}

	result, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"token": result.Token,
		"user":  result.User,
	})
}
