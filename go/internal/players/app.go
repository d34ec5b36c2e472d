package players

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/rs/zerolog/log"
)

// PlayersRepository defines what the app layer needs from the repository
type PlayersRepository interface {
	CreatePlayer(ctx context.Context, player models.Player) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListPlayers(ctx context.Context, peladaID uuid.UUID, active *bool, page models.PageRequest) ([]models.Player, models.PageMeta, error)
	UpdatePlayer(ctx context.Context, player models.Player) (*models.Player, error)
}

// App handles players business logic
type App struct {
	repo PlayersRepository
}

// NewApp creates a new players App
func NewApp(repo PlayersRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreatePlayer adds an active player to a pelada
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	player := models.Player{
		PeladaID: req.PeladaID,
		FullName: strings.TrimSpace(req.FullName),
		Nickname: req.Nickname,
		Phone:    req.Phone,
		PhotoURL: req.PhotoURL,
		Active:   true,
	}
	if player.FullName == "" {
		return nil, apperr.Validation("full_name is required")
	}

	created, err := a.repo.CreatePlayer(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	log.Info().
		Str("player_id", created.ID.String()).
		Str("pelada_id", created.PeladaID.String()).
		Msg("player created")
	return created, nil
}

func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (a *App) ListPlayers(ctx context.Context, req ListPlayersRequest) (*ListPlayersResponse, error) {
	items, meta, err := a.repo.ListPlayers(ctx, req.PeladaID, req.Active, req.PageRequest.Normalize(DefaultPerPage))
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return &ListPlayersResponse{Items: items, Meta: meta}, nil
}

// UpdatePlayer applies the non-nil fields of req
func (a *App) UpdatePlayer(ctx context.Context, req UpdatePlayerRequest) (*models.Player, error) {
	player, err := a.repo.GetPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if req.FullName != nil {
		player.FullName = strings.TrimSpace(*req.FullName)
		if player.FullName == "" {
			return nil, apperr.Validation("full_name cannot be empty")
		}
	}
	if req.Nickname != nil {
		player.Nickname = req.Nickname
	}
	if req.Phone != nil {
		player.Phone = req.Phone
	}
	if req.PhotoURL != nil {
		player.PhotoURL = req.PhotoURL
	}
	if req.Active != nil {
		player.Active = *req.Active
	}

	updated, err := a.repo.UpdatePlayer(ctx, *player)
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	log.Info().Str("player_id", updated.ID.String()).Bool("active", updated.Active).Msg("player updated")
	return updated, nil
}
