package seasons

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

// SeasonsRepository defines what the app layer needs from the repository
type SeasonsRepository interface {
	CreateSeason(ctx context.Context, peladaID uuid.UUID, start, end time.Time) (*models.Season, error)
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	GetActiveSeason(ctx context.Context, peladaID uuid.UUID) (*models.Season, error)
	ListSeasons(ctx context.Context, peladaID uuid.UUID, page models.PageRequest) ([]models.Season, models.PageMeta, error)
	UpdateSeasonStatus(ctx context.Context, id uuid.UUID, status models.SeasonStatus) (*models.Season, error)
}

// App handles seasons business logic
type App struct {
	repo  SeasonsRepository
	clock *clock.Clock
}

// NewApp creates a new seasons App
func NewApp(repo SeasonsRepository, clk *clock.Clock) *App {
	return &App{
		repo:  repo,
		clock: clk,
	}
}

// CreateSeason opens a new active season. A pelada has at most one active
// season; the current one must be closed first.
func (a *App) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error) {
	start, err := a.clock.ParseDate(req.StartMonth)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, apperr.ReasonInvalidDates, "start_month: %v", err)
	}
	end, err := a.clock.ParseDate(req.EndMonth)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, apperr.ReasonInvalidDates, "end_month: %v", err)
	}
	if end.Before(start) {
		return nil, apperr.New(apperr.KindValidation, apperr.ReasonInvalidDates, "end_month must not be before start_month")
	}

	active, err := a.repo.GetActiveSeason(ctx, req.PeladaID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperr.New(apperr.KindConflict, apperr.ReasonActiveSeasonExists,
			"season %s is still active, close it before creating a new one", active.ID)
	}

	season, err := a.repo.CreateSeason(ctx, req.PeladaID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	log.Info().
		Str("season_id", season.ID.String()).
		Str("pelada_id", season.PeladaID.String()).
		Msg("season created")
	return season, nil
}

func (a *App) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	season, err := a.repo.GetSeason(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return season, nil
}

func (a *App) ListSeasons(ctx context.Context, req ListSeasonsRequest) (*ListSeasonsResponse, error) {
	items, meta, err := a.repo.ListSeasons(ctx, req.PeladaID, req.PageRequest.Normalize(models.DefaultPerPage))
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	return &ListSeasonsResponse{Items: items, Meta: meta}, nil
}

// CloseSeason marks a season closed. Closing a closed season is a no-op.
func (a *App) CloseSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	season, err := a.repo.GetSeason(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	if !season.IsActive() {
		return season, nil
	}

	closed, err := a.repo.UpdateSeasonStatus(ctx, id, models.SeasonStatusClosed)
	if err != nil {
		return nil, fmt.Errorf("failed to close season: %w", err)
	}
	log.Info().Str("season_id", id.String()).Msg("season closed")
	return closed, nil
}
