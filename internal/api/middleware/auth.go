package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/travelease/backend/internal/application/services"
	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
	apperrors "github.com/travelease/backend/pkg/errors"
)

type contextKey string

const userContextKey contextKey = "authenticated_user"

// TokenVerifier validates a bearer token and returns its identity.
type TokenVerifier interface {
	VerifyToken(raw string) (*services.TokenClaims, error)
}

// AuthMiddleware authenticates requests with a bearer token and loads the
// full account row into the request context. The row load matters: review
// creation needs the user's gender, not just the token identity.
type AuthMiddleware struct {
	verifier TokenVerifier
	users    repositories.UserRepository
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier TokenVerifier, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, users: users}
}

// RequireAuth rejects requests without a valid bearer token
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := m.verifier.VerifyToken(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		user, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		next(w, r.WithContext(ContextWithUser(r.Context(), user)))
	}
}

// ContextWithUser stores the authenticated user on the context.
func ContextWithUser(ctx context.Context, user *entities.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user stored by RequireAuth.
func UserFromContext(ctx context.Context) (*entities.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entities.User)
	return user, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// writeJSONError is the package's error writer; middleware rejects requests
// before the handler layer's respond helpers are reachable.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
