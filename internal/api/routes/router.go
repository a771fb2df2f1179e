package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/travelease/backend/internal/api/handlers"
	"github.com/travelease/backend/internal/api/middleware"
)

const maxRequestBody = 10 << 20 // 10MB

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler          *handlers.AuthHandler
	accommodationHandler *handlers.AccommodationHandler
	userHandler          *handlers.UserHandler
	reviewHandler        *handlers.ReviewHandler
	travelerHandler      *handlers.TravelerHandler

	auth      *middleware.AuthMiddleware
	rateLimit *middleware.RateLimitMiddleware

	engine         string
	environment    string
	allowedOrigins []string
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	accommodationHandler *handlers.AccommodationHandler,
	userHandler *handlers.UserHandler,
	reviewHandler *handlers.ReviewHandler,
	travelerHandler *handlers.TravelerHandler,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	engine string,
	environment string,
	allowedOrigins []string,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		authHandler:          authHandler,
		accommodationHandler: accommodationHandler,
		userHandler:          userHandler,
		reviewHandler:        reviewHandler,
		travelerHandler:      travelerHandler,

		auth:      auth,
		rateLimit: rateLimit,

		engine:         engine,
		environment:    environment,
		allowedOrigins: allowedOrigins,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /api/health", r.health)

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/signup", r.authHandler.Signup)
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)

	// Accommodation endpoints
	r.mux.HandleFunc("GET /api/accommodations/search", r.accommodationHandler.Search)
	r.mux.HandleFunc("GET /api/accommodations/{id}", r.accommodationHandler.Get)

	// Profile endpoints
	r.mux.HandleFunc("GET /api/users/profile", r.auth.RequireAuth(r.userHandler.GetProfile))
	r.mux.HandleFunc("PUT /api/users/profile", r.auth.RequireAuth(r.userHandler.UpdateProfile))
	r.mux.HandleFunc("GET /api/users/reviews", r.auth.RequireAuth(r.userHandler.Reviews))
	r.mux.HandleFunc("GET /api/users/connections", r.auth.RequireAuth(r.userHandler.Connections))

	// Review endpoints
	r.mux.HandleFunc("POST /api/reviews", r.auth.RequireAuth(r.reviewHandler.Create))
	r.mux.HandleFunc("GET /api/reviews/accommodation/{id}", r.reviewHandler.ListForAccommodation)

	// Traveler endpoints
	r.mux.HandleFunc("POST /api/travelers/connect", r.auth.RequireAuth(r.travelerHandler.Connect))
	r.mux.HandleFunc("GET /api/travelers/accommodation/{id}", r.travelerHandler.ListForAccommodation)
	r.mux.HandleFunc("POST /api/travelers/message", r.auth.RequireAuth(r.travelerHandler.SendMessage))

	// JSON 404 fallback
	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Route not found"})
	})

	var handler http.Handler = r.mux
	handler = limitRequestBody(handler)
	handler = r.rateLimit.Limit(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)
	handler = middleware.LoggingMiddleware(handler)
	return handler
}

func (r *Router) health(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":      "ok",
		"engine":      r.engine,
		"environment": r.environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

func limitRequestBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Body != nil {
			req.Body = http.MaxBytesReader(w, req.Body, maxRequestBody)
		}
		next.ServeHTTP(w, req)
	})
}
