// Package rounds schedules match days inside a season and lists who plays in them.
package rounds

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/clock"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/rs/zerolog/log"
)

// RoundsRepository defines what the app layer needs from the repository
type RoundsRepository interface {
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	CreateRound(ctx context.Context, seasonID uuid.UUID, date time.Time, teamCount, playersPerTeam int) (*models.Round, error)
	GetRound(ctx context.Context, id uuid.UUID) (*models.Round, error)
	ListRounds(ctx context.Context, seasonID uuid.UUID, page models.PageRequest) ([]models.Round, models.PageMeta, error)
	ListMatches(ctx context.Context, roundID uuid.UUID) ([]models.Match, error)
	ListRoundPlayers(ctx context.Context, roundID uuid.UUID, position *string, activeOnly bool) ([]models.RoundPlayer, error)
}

// App handles rounds business logic
type App struct {
	repo  RoundsRepository
	clock *clock.Clock
}

// NewApp creates a new rounds App
func NewApp(repo RoundsRepository, clk *clock.Clock) *App {
	return &App{
		repo:  repo,
		clock: clk,
	}
}

// CreateRound schedules a round in an active season
func (a *App) CreateRound(ctx context.Context, req CreateRoundRequest) (*models.Round, error) {
	if req.TeamCount <= 0 {
		return nil, apperr.Validation("team_count must be positive")
	}
	if req.PlayersPerTeam <= 0 {
		return nil, apperr.Validation("players_per_team must be positive")
	}
	date, err := a.clock.ParseDate(req.Date)
	if err != nil {
		return nil, apperr.Validation("date: %v", err)
	}

	season, err := a.repo.GetSeason(ctx, req.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	if !season.IsActive() {
		return nil, apperr.New(apperr.KindInvalidState, apperr.ReasonSeasonNotActive, "season %s is not active", season.ID)
	}

	round, err := a.repo.CreateRound(ctx, season.ID, date, req.TeamCount, req.PlayersPerTeam)
	if err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}

	log.Info().
		Str("round_id", round.ID.String()).
		Str("season_id", season.ID.String()).
		Time("date", round.Date).
		Msg("round created")
	return round, nil
}

// GetRound returns a round with its matches
func (a *App) GetRound(ctx context.Context, id uuid.UUID) (*models.RoundDetails, error) {
	round, err := a.repo.GetRound(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	matches, err := a.repo.ListMatches(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.RoundDetails{Round: *round, Matches: matches}, nil
}

func (a *App) ListRounds(ctx context.Context, req ListRoundsRequest) (*ListRoundsResponse, error) {
	items, meta, err := a.repo.ListRounds(ctx, req.SeasonID, req.PageRequest.Normalize(models.DefaultPerPage))
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	return &ListRoundsResponse{Items: items, Meta: meta}, nil
}

// ListRoundPlayers lists the players of the teams playing in the round.
// A round without matches has no players.
func (a *App) ListRoundPlayers(ctx context.Context, req RoundPlayersRequest) (*RoundPlayersResponse, error) {
	if _, err := a.repo.GetRound(ctx, req.RoundID); err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	activeOnly := true
	if req.ActiveOnly != nil {
		activeOnly = *req.ActiveOnly
	}
	players, err := a.repo.ListRoundPlayers(ctx, req.RoundID, req.Position, activeOnly)
	if err != nil {
		return nil, err
	}
	return &RoundPlayersResponse{RoundID: req.RoundID, Players: players}, nil
}
