package rankings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/db"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetSeason(ctx context.Context, id uuid.UUID) (db.Season, error)
	ListSeasonStandings(ctx context.Context, seasonID uuid.UUID) ([]db.Team, error)
	TopScorers(ctx context.Context, arg db.TopScorersParams) ([]db.TopScorersRow, error)
	TopAssists(ctx context.Context, arg db.TopAssistsParams) ([]db.TopAssistsRow, error)
}

// Repository implements read-only ranking projections
type Repository struct {
	queries Querier
}

// NewRepository creates a new rankings repository
func NewRepository(queries Querier) *Repository {
	return &Repository{queries: queries}
}

func (r *Repository) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	season, err := r.queries.GetSeason(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperr.NotFound("season", id)
		}
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return &models.Season{
		ID:         season.ID,
		PeladaID:   season.PeladaID,
		StartMonth: season.StartMonth,
		EndMonth:   season.EndMonth,
		Status:     models.SeasonStatus(season.Status),
		CreatedAt:  season.CreatedAt,
	}, nil
}

// ListStandings returns the teams of a season
func (r *Repository) ListStandings(ctx context.Context, seasonID uuid.UUID) ([]models.Team, error) {
	rows, err := r.queries.ListSeasonStandings(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings: %w", err)
	}
	teams := make([]models.Team, len(rows))
	for i, t := range rows {
		teams[i] = models.Team{
			ID:           t.ID,
			SeasonID:     t.SeasonID,
			Name:         t.Name,
			Color:        sqlutil.FromSqlStringPtr(t.Color),
			CrestURL:     sqlutil.FromSqlStringPtr(t.CrestUrl),
			Points:       int(t.Points),
			Wins:         int(t.Wins),
			Draws:        int(t.Draws),
			Losses:       int(t.Losses),
			GoalsFor:     int(t.GoalsFor),
			GoalsAgainst: int(t.GoalsAgainst),
			Version:      int(t.Version),
			CreatedAt:    t.CreatedAt,
		}
	}
	return teams, nil
}

// TopScorers counts non-own goals per scorer
func (r *Repository) TopScorers(ctx context.Context, seasonID uuid.UUID, limit int) ([]models.PlayerRankingRow, error) {
	rows, err := r.queries.TopScorers(ctx, db.TopScorersParams{SeasonID: seasonID, Limit: int32(limit)})
	if err != nil {
		return nil, fmt.Errorf("failed to get top scorers: %w", err)
	}
	players := make([]models.PlayerRankingRow, len(rows))
	for i, row := range rows {
		players[i] = models.PlayerRankingRow{
			PlayerID: row.PlayerID,
			FullName: row.FullName,
			Nickname: sqlutil.FromSqlStringPtr(row.Nickname),
			Total:    int(row.Total),
		}
	}
	return players, nil
}

// TopAssists counts assisted goals per assister
func (r *Repository) TopAssists(ctx context.Context, seasonID uuid.UUID, limit int) ([]models.PlayerRankingRow, error) {
	rows, err := r.queries.TopAssists(ctx, db.TopAssistsParams{SeasonID: seasonID, Limit: int32(limit)})
	if err != nil {
		return nil, fmt.Errorf("failed to get top assists: %w", err)
	}
	players := make([]models.PlayerRankingRow, len(rows))
	for i, row := range rows {
		players[i] = models.PlayerRankingRow{
			PlayerID: row.PlayerID,
			FullName: row.FullName,
			Nickname: sqlutil.FromSqlStringPtr(row.Nickname),
			Total:    int(row.Total),
		}
	}
	return players, nil
}
