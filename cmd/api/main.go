package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/travelease/backend/internal/adapters/database"
	"github.com/travelease/backend/internal/api/handlers"
	"github.com/travelease/backend/internal/api/middleware"
	"github.com/travelease/backend/internal/api/routes"
	"github.com/travelease/backend/internal/application/services"
	"github.com/travelease/backend/internal/infrastructure/db"
	"github.com/travelease/backend/internal/infrastructure/observability"
	"github.com/travelease/backend/pkg/config"
)

const (
	rateLimitRequests = 100
	rateLimitWindow   = 15 * time.Minute
	shutdownTimeout   = 10 * time.Second
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger("travelease-api", cfg.Environment)
	handlers.SetDevelopmentMode(cfg.IsDevelopment())

	client, err := db.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, client); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to ensure database schema")
	}
	if err := database.EnsureSeedData(ctx, client); err != nil {
		log.Warn().Err(err).Msg("failed to seed sample accommodations")
	}
	cancel()

	// Repositories
	userRepo := database.NewUserAdapter(client)
	accommodationRepo := database.NewAccommodationAdapter(client)
	reviewRepo := database.NewReviewAdapter(client)
	travelerRepo := database.NewTravelerAdapter(client)
	messageRepo := database.NewMessageAdapter(client)

	// Services
	authService := services.NewAuthService(userRepo, &cfg.Auth)
	userService := services.NewUserService(userRepo, reviewRepo, travelerRepo)
	accommodationService := services.NewAccommodationService(accommodationRepo)
	reviewService := services.NewReviewService(reviewRepo)
	travelerService := services.NewTravelerService(travelerRepo, messageRepo)

	// HTTP surface
	authMiddleware := middleware.NewAuthMiddleware(authService, userRepo)
	rateLimit := middleware.NewRateLimitMiddleware(rateLimitRequests, rateLimitWindow)

	router := routes.NewRouter(
		handlers.NewAuthHandler(authService),
		handlers.NewAccommodationHandler(accommodationService),
		handlers.NewUserHandler(userService),
		handlers.NewReviewHandler(reviewService),
		handlers.NewTravelerHandler(travelerService),
		authMiddleware,
		rateLimit,
		string(client.Dialect()),
		cfg.Environment,
		cfg.Server.AllowedOrigins,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("engine", string(client.Dialect())).
			Str("environment", cfg.Environment).
			Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
