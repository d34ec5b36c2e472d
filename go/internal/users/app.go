package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// App handles users business logic
type App struct {
	repo     UsersRepository
	hashCost int
}

// NewApp creates a new users App
func NewApp(repo UsersRepository) *App {
	return &App{
		repo:     repo,
		hashCost: bcrypt.DefaultCost,
	}
}

// Register creates a new organizer account
func (a *App) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := a.validateRegisterRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if user with same username already exists
	if _, err := a.repo.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, apperr.New(apperr.KindConflict, apperr.ReasonUsernameTaken, "username %s is already taken", req.Username)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	// Check if user with same email already exists
	if _, err := a.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, apperr.New(apperr.KindConflict, apperr.ReasonEmailTaken, "email %s is already registered", req.Email)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.repo.CreateUser(ctx, req.Username, req.Email, string(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Authenticate checks a username and password. Unknown users, inactive
// accounts and wrong passwords are reported the same way.
func (a *App) Authenticate(ctx context.Context, req AuthenticateRequest) (*models.User, error) {
	invalid := apperr.New(apperr.KindValidation, apperr.ReasonInvalidCredentials, "invalid credentials")

	user, err := a.repo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, invalid
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.Active {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Str("username", user.Username).Msg("password mismatch")
		return nil, invalid
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// validateRegisterRequest validates register request
func (a *App) validateRegisterRequest(req RegisterRequest) error {
	if req.Username == "" {
		return apperr.Validation("username is required")
	}
	if req.Email == "" {
		return apperr.Validation("email is required")
	}
	at := strings.Index(req.Email, "@")
	if at <= 0 || !strings.Contains(req.Email[at:], ".") {
		return apperr.Validation("email format is invalid")
	}
	if len(req.Password) < MinPasswordLength {
		return apperr.Validation("password must have at least %d characters", MinPasswordLength)
	}
	return nil
}
