package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/db"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/sqlutil"
)

const (
	uniqueUsername = "users_username_key"
	uniqueEmail    = "users_email_key"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (db.User, error)
	GetUserByUsername(ctx context.Context, username string) (db.User, error)
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
}

// Repository implements user data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new users repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateUser stores a new organizer with an already hashed password
func (r *Repository) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	user, err := r.queries.CreateUser(ctx, db.CreateUserParams{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         string(models.UserRoleOrganizer),
	})
	if err != nil {
		switch {
		case sqlutil.IsUniqueViolation(err, uniqueUsername):
			return nil, apperr.New(apperr.KindConflict, apperr.ReasonUsernameTaken, "username %s is already taken", username)
		case sqlutil.IsUniqueViolation(err, uniqueEmail):
			return nil, apperr.New(apperr.KindConflict, apperr.ReasonEmailTaken, "email %s is already registered", email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := r.queries.GetUser(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "user", id)
	}
	return r.dbUserToModel(user), nil
}

// GetUserByUsername retrieves a user by username
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := r.queries.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, notFoundOr(err, "user", username)
	}
	return r.dbUserToModel(user), nil
}

// GetUserByEmail retrieves a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, notFoundOr(err, "user", email)
	}
	return r.dbUserToModel(user), nil
}

func notFoundOr(err error, entity string, key any) error {
	if sqlutil.IsNoRows(err) {
		return apperr.NotFound(entity, key)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

// dbUserToModel converts a database user to a domain model
func (r *Repository) dbUserToModel(dbUser db.User) *models.User {
	return &models.User{
		ID:           dbUser.ID,
		Username:     dbUser.Username,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Role:         models.UserRole(dbUser.Role),
		Active:       dbUser.Active,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
