package rounds

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

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetSeason(ctx context.Context, id uuid.UUID) (db.Season, error)

	CreateRound(ctx context.Context, arg db.CreateRoundParams) (db.Round, error)
	GetRound(ctx context.Context, id uuid.UUID) (db.Round, error)
	ListRounds(ctx context.Context, arg db.ListRoundsParams) ([]db.Round, error)
	CountRounds(ctx context.Context, seasonID uuid.UUID) (int64, error)
	ListRoundPlayers(ctx context.Context, arg db.ListRoundPlayersParams) ([]db.ListRoundPlayersRow, error)

	ListMatchesByRound(ctx context.Context, roundID uuid.UUID) ([]db.Match, error)
}

// Repository implements round data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new rounds repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

func (r *Repository) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	row, err := r.queries.GetSeason(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "season", id)
	}
	return &models.Season{
		ID:         row.ID,
		PeladaID:   row.PeladaID,
		StartMonth: row.StartMonth,
		EndMonth:   row.EndMonth,
		Status:     models.SeasonStatus(row.Status),
		CreatedAt:  row.CreatedAt,
	}, nil
}

func (r *Repository) CreateRound(ctx context.Context, seasonID uuid.UUID, date time.Time, teamCount, playersPerTeam int) (*models.Round, error) {
	row, err := r.queries.CreateRound(ctx, db.CreateRoundParams{
		ID:             uuid.New(),
		SeasonID:       seasonID,
		RoundDate:      date,
		TeamCount:      int32(teamCount),
		PlayersPerTeam: int32(playersPerTeam),
	})
	if err != nil {
		if sqlutil.IsCheckViolation(err) {
			return nil, apperr.Validation("team_count and players_per_team must be positive")
		}
		return nil, fmt.Errorf("failed to create round: %w", err)
	}
	return dbRoundToModel(row), nil
}

func (r *Repository) GetRound(ctx context.Context, id uuid.UUID) (*models.Round, error) {
	row, err := r.queries.GetRound(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "round", id)
	}
	return dbRoundToModel(row), nil
}

func (r *Repository) ListRounds(ctx context.Context, seasonID uuid.UUID, page models.PageRequest) ([]models.Round, models.PageMeta, error) {
	total, err := r.queries.CountRounds(ctx, seasonID)
	if err != nil {
		return nil, models.PageMeta{}, fmt.Errorf("failed to count rounds: %w", err)
	}
	meta := models.NewPageMeta(total, page)

	rows, err := r.queries.ListRounds(ctx, db.ListRoundsParams{
		SeasonID: seasonID,
		Limit:    int32(meta.PerPage),
		Offset:   int32(meta.Offset()),
	})
	if err != nil {
		return nil, models.PageMeta{}, fmt.Errorf("failed to list rounds: %w", err)
	}

	rounds := make([]models.Round, 0, len(rows))
	for _, row := range rows {
		rounds = append(rounds, *dbRoundToModel(row))
	}
	return rounds, meta, nil
}

func (r *Repository) ListMatches(ctx context.Context, roundID uuid.UUID) ([]models.Match, error) {
	rows, err := r.queries.ListMatchesByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	matches := make([]models.Match, 0, len(rows))
	for _, m := range rows {
		matches = append(matches, models.Match{
			ID:         m.ID,
			RoundID:    m.RoundID,
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
			HomeGoals:  sqlutil.FromSqlInt32OrZero(m.HomeGoals),
			AwayGoals:  sqlutil.FromSqlInt32OrZero(m.AwayGoals),
			Status:     models.MatchStatus(m.Status),
			StartedAt:  sqlutil.FromSqlTime(m.StartedAt),
			EndedAt:    sqlutil.FromSqlTime(m.EndedAt),
			Version:    int(m.Version),
			CreatedAt:  m.CreatedAt,
		})
	}
	return matches, nil
}

// ListRoundPlayers returns the roster entries of every team playing in the
// round, ordered by team, position with nulls last, then name. A blank
// position does not filter.
func (r *Repository) ListRoundPlayers(ctx context.Context, roundID uuid.UUID, position *string, activeOnly bool) ([]models.RoundPlayer, error) {
	rows, err := r.queries.ListRoundPlayers(ctx, db.ListRoundPlayersParams{
		RoundID:    roundID,
		Position:   sqlutil.ToSqlTrimmedString(position),
		ActiveOnly: activeOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list round players: %w", err)
	}

	players := make([]models.RoundPlayer, 0, len(rows))
	for _, row := range rows {
		players = append(players, models.RoundPlayer{
			TeamID:    row.TeamID,
			TeamName:  row.TeamName,
			TeamColor: sqlutil.FromSqlStringPtr(row.TeamColor),
			PlayerID:  row.PlayerID,
			FullName:  row.FullName,
			Nickname:  sqlutil.FromSqlStringPtr(row.Nickname),
			Active:    row.Active,
			Captain:   row.Captain,
			Position:  sqlutil.FromSqlStringPtr(row.Position),
		})
	}
	return players, nil
}

func notFoundOr(err error, entity string, id uuid.UUID) error {
	if sqlutil.IsNoRows(err) {
		return apperr.NotFound(entity, id)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

func dbRoundToModel(row db.Round) *models.Round {
	return &models.Round{
		ID:             row.ID,
		SeasonID:       row.SeasonID,
		Date:           row.RoundDate,
		TeamCount:      int(row.TeamCount),
		PlayersPerTeam: int(row.PlayersPerTeam),
		Status:         models.RoundStatus(row.Status),
		CreatedAt:      row.CreatedAt,
	}
}
