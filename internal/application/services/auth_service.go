package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
	"github.com/travelease/backend/pkg/config"
	apperrors "github.com/travelease/backend/pkg/errors"
)

const bcryptCost = 12

// SignupInput carries a validated signup payload.
type SignupInput struct {
	Email     string
	Password  string
	FullName  string
	Age       int
	Gender    string
	Interests []string
}

// AuthResult is a signed token plus the account it belongs to.
type AuthResult struct {
	Token string
	User  *entities.User
}

// TokenClaims is the trusted identity extracted from a verified token.
type TokenClaims struct {
	UserID int64
	Email  string
}

// AuthService handles signup, login and token issuance.
type AuthService struct {
	users    repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository, cfg *config.AuthConfig) *AuthService {
	return &AuthService{
		users:    users,
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
	}
}

// Signup creates a new account and returns a signed token for it. The email
// existence check and the insert are separate statements, so concurrent
// signups for the same email can race; the unique column rejects the loser.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	taken, err := s.users.EmailTaken(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflictError("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user := &entities.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Gender:       input.Gender,
		Age:          input.Age,
		Interests:    input.Interests,
	}
	if user.Interests == nil {
		user.Interests = []string{}
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	log.Info().Str("email", user.Email).Int64("user_id", user.ID).Msg("new user created")
	return &AuthResult{Token: token, User: user}, nil
}

// Login verifies the credential and returns a signed token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid email or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	log.Info().Str("email", user.Email).Msg("user logged in")
	return &AuthResult{Token: token, User: user}, nil
}

// IssueToken signs a bearer token for the user, valid for the configured TTL.
func (s *AuthService) IssueToken(user *entities.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.NewInternalError("failed to sign token", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token and returns its identity.
func (s *AuthService) VerifyToken(raw string) (*TokenClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.NewUnauthorizedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.NewUnauthorizedError("Invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, apperrors.NewUnauthorizedError("Invalid token claims")
	}
	email, _ := claims["email"].(string)

	return &TokenClaims{UserID: int64(userID), Email: email}, nil
}
