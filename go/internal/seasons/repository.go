package seasons

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/db"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/sqlutil"
)

const uniqueActiveSeason = "uq_seasons_active_per_pelada"

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateSeason(ctx context.Context, arg db.CreateSeasonParams) (db.Season, error)
	GetSeason(ctx context.Context, id uuid.UUID) (db.Season, error)
	GetActiveSeason(ctx context.Context, peladaID uuid.UUID) (db.Season, error)
	ListSeasons(ctx context.Context, arg db.ListSeasonsParams) ([]db.Season, error)
	CountSeasons(ctx context.Context, peladaID uuid.UUID) (int64, error)
	UpdateSeasonStatus(ctx context.Context, arg db.UpdateSeasonStatusParams) (db.Season, error)
}

// Repository implements season data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new seasons repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateSeason inserts an active season. The partial unique index on active
// seasons backs up the app-level check against concurrent creates.
func (r *Repository) CreateSeason(ctx context.Context, peladaID uuid.UUID, start, end time.Time) (*models.Season, error) {
	row, err := r.queries.CreateSeason(ctx, db.CreateSeasonParams{
		ID:         uuid.New(),
		PeladaID:   peladaID,
		StartMonth: start,
		EndMonth:   end,
	})
	if err != nil {
		switch {
		case sqlutil.IsUniqueViolation(err, uniqueActiveSeason):
			return nil, apperr.New(apperr.KindConflict, apperr.ReasonActiveSeasonExists, "pelada %s already has an active season", peladaID)
		case sqlutil.IsForeignKeyViolation(err):
			return nil, apperr.NotFound("pelada", peladaID)
		}
		return nil, fmt.Errorf("failed to create season: %w", err)
	}
	return dbSeasonToModel(row), nil
}

func (r *Repository) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	row, err := r.queries.GetSeason(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperr.NotFound("season", id)
		}
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return dbSeasonToModel(row), nil
}

// GetActiveSeason returns the pelada's active season, or nil when there is none
func (r *Repository) GetActiveSeason(ctx context.Context, peladaID uuid.UUID) (*models.Season, error) {
	row, err := r.queries.GetActiveSeason(ctx, peladaID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active season: %w", err)
	}
	return dbSeasonToModel(row), nil
}

func (r *Repository) ListSeasons(ctx context.Context, peladaID uuid.UUID, page models.PageRequest) ([]models.Season, models.PageMeta, error) {
	total, err := r.queries.CountSeasons(ctx, peladaID)
	if err != nil {
		return nil, models.PageMeta{}, fmt.Errorf("failed to count seasons: %w", err)
	}
	meta := models.NewPageMeta(total, page)

	rows, err := r.queries.ListSeasons(ctx, db.ListSeasonsParams{
		PeladaID: peladaID,
		Limit:    int32(meta.PerPage),
		Offset:   int32(meta.Offset()),
	})
	if err != nil {
		return nil, models.PageMeta{}, fmt.Errorf("failed to list seasons: %w", err)
	}

	seasons := make([]models.Season, 0, len(rows))
	for _, row := range rows {
		seasons = append(seasons, *dbSeasonToModel(row))
	}
	return seasons, meta, nil
}

func (r *Repository) UpdateSeasonStatus(ctx context.Context, id uuid.UUID, status models.SeasonStatus) (*models.Season, error) {
	row, err := r.queries.UpdateSeasonStatus(ctx, db.UpdateSeasonStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperr.NotFound("season", id)
		}
		return nil, fmt.Errorf("failed to update season status: %w", err)
	}
	return dbSeasonToModel(row), nil
}

func dbSeasonToModel(row db.Season) *models.Season {
	return &models.Season{
		ID:         row.ID,
		PeladaID:   row.PeladaID,
		StartMonth: row.StartMonth,
		EndMonth:   row.EndMonth,
		Status:     models.SeasonStatus(row.Status),
		CreatedAt:  row.CreatedAt,
	}
}
