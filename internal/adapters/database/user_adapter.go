package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
	"github.com/travelease/backend/internal/infrastructure/db"
	apperrors "github.com/travelease/backend/pkg/errors"
)

// UserAdapter implements user persistence over the active engine.
type UserAdapter struct {
	client  *db.Client
	builder goqu.DialectWrapper
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *db.Client) repositories.UserRepository {
	return &UserAdapter{
		client:  client,
		builder: goqu.Dialect(string(client.Dialect())),
	}
}

type userRow struct {
	ID           int64          `db:"id"`
	Email        string         `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"`
	FullName     string         `db:"full_name"`
	Gender       string         `db:"gender"`
	Age          int            `db:"age"`
	ProfilePhoto sql.NullString `db:"profile_photo"`
	Interests    []byte         `db:"interests"`
	IsVerified   bool           `db:"is_verified"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r *userRow) toEntity() *entities.User {
	return &entities.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash.String,
		FullName:     r.FullName,
		Gender:       r.Gender,
		Age:          r.Age,
		ProfilePhoto: r.ProfilePhoto.String,
		Interests:    decodeJSONList(r.Interests, "users", r.ID),
		IsVerified:   r.IsVerified,
		CreatedAt:    r.CreatedAt,
	}
}

const userColumns = `id, email, password_hash, full_name, gender, age, profile_photo, interests, is_verified, created_at`

// Create inserts a new user and sets its generated id
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	record := goqu.Record{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"full_name":     user.FullName,
		"gender":        user.Gender,
		"age":           user.Age,
		"interests":     encodeJSONList(user.Interests),
	}

	query, args, err := a.builder.Insert("users").Prepared(true).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build user insert query", err)
	}

	id, err := a.client.Insert(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create user", err)
	}

	user.ID = id
	return nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = ?", userColumns)

	var row userRow
	err := a.client.Get(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	return row.toEntity(), nil
}

// GetByEmail retrieves a user by email
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = ?", userColumns)

	var row userRow
	err := a.client.Get(ctx, &row, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with email %s not found", email))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user by email", err)
	}

	return row.toEntity(), nil
}

// EmailTaken reports whether a user with the email already exists
func (a *UserAdapter) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	err := a.client.Get(ctx, &taken, "SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", email)
	if err != nil {
		return false, apperrors.NewInternalError("failed to check email", err)
	}
	return taken, nil
}

// UpdateProfile updates the mutable profile columns
func (a *UserAdapter) UpdateProfile(ctx context.Context, id int64, update repositories.ProfileUpdate) error {
	record := goqu.Record{
		"full_name":     update.FullName,
		"interests":     encodeJSONList(update.Interests),
		"profile_photo": sql.NullString{String: update.ProfilePhoto, Valid: update.ProfilePhoto != ""},
		"updated_at":    time.Now(),
	}

	query, args, err := a.builder.Update("users").Prepared(true).Set(record).Where(goqu.C("id").Eq(id)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build profile update query", err)
	}

	if _, err := a.client.Exec(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to update profile", err)
	}

	return nil
}
