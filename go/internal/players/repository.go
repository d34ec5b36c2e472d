package players

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
	CreatePlayer(ctx context.Context, arg db.CreatePlayerParams) (db.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (db.Player, error)
	ListPlayers(ctx context.Context, arg db.ListPlayersParams) ([]db.Player, error)
	CountPlayers(ctx context.Context, arg db.CountPlayersParams) (int64, error)
	UpdatePlayer(ctx context.Context, arg db.UpdatePlayerParams) (db.Player, error)
}

// Repository implements player data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new players repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreatePlayer inserts a player. A missing pelada surfaces as NotFound.
func (r *Repository) CreatePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	row, err := r.queries.CreatePlayer(ctx, db.CreatePlayerParams{
		ID:       uuid.New(),
		PeladaID: player.PeladaID,
		FullName: player.FullName,
		Nickname: sqlutil.ToSqlTrimmedString(player.Nickname),
		Phone:    sqlutil.ToSqlTrimmedString(player.Phone),
		PhotoUrl: sqlutil.ToSqlTrimmedString(player.PhotoURL),
	})
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, apperr.NotFound("pelada", player.PeladaID)
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return dbPlayerToModel(row), nil
}

func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	row, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperr.NotFound("player", id)
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return dbPlayerToModel(row), nil
}

// ListPlayers returns one page of a pelada's players ordered by name
func (r *Repository) ListPlayers(ctx context.Context, peladaID uuid.UUID, active *bool, page models.PageRequest) ([]models.Player, models.PageMeta, error) {
	total, err := r.queries.CountPlayers(ctx, db.CountPlayersParams{
		PeladaID: peladaID,
		Active:   sqlutil.ToSqlBool(active),
	})
	if err != nil {
		return nil, models.PageMeta{}, fmt.Errorf("failed to count players: %w", err)
	}
	meta := models.NewPageMeta(total, page)

	rows, err := r.queries.ListPlayers(ctx, db.ListPlayersParams{
		PeladaID: peladaID,
		Active:   sqlutil.ToSqlBool(active),
		Limit:    int32(meta.PerPage),
		Offset:   int32(meta.Offset()),
	})
	if err != nil {
		return nil, models.PageMeta{}, fmt.Errorf("failed to list players: %w", err)
	}

	players := make([]models.Player, 0, len(rows))
	for _, row := range rows {
		players = append(players, *dbPlayerToModel(row))
	}
	return players, meta, nil
}

func (r *Repository) UpdatePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	row, err := r.queries.UpdatePlayer(ctx, db.UpdatePlayerParams{
		ID:       player.ID,
		FullName: player.FullName,
		Nickname: sqlutil.ToSqlTrimmedString(player.Nickname),
		Phone:    sqlutil.ToSqlTrimmedString(player.Phone),
		PhotoUrl: sqlutil.ToSqlTrimmedString(player.PhotoURL),
		Active:   player.Active,
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperr.NotFound("player", player.ID)
		}
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return dbPlayerToModel(row), nil
}

func dbPlayerToModel(row db.Player) *models.Player {
	return &models.Player{
		ID:        row.ID,
		PeladaID:  row.PeladaID,
		FullName:  row.FullName,
		Nickname:  sqlutil.FromSqlStringPtr(row.Nickname),
		Phone:     sqlutil.FromSqlStringPtr(row.Phone),
		PhotoURL:  sqlutil.FromSqlStringPtr(row.PhotoUrl),
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
	}
}
