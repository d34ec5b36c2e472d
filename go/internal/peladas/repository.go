package peladas

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
	CreatePelada(ctx context.Context, arg db.CreatePeladaParams) (db.Pelada, error)
	GetPelada(ctx context.Context, id uuid.UUID) (db.Pelada, error)
	ListPeladas(ctx context.Context, arg db.ListPeladasParams) ([]db.Pelada, error)
	CountPeladas(ctx context.Context, arg db.CountPeladasParams) (int64, error)
	UpdatePelada(ctx context.Context, arg db.UpdatePeladaParams) (db.Pelada, error)

	GetUser(ctx context.Context, id uuid.UUID) (db.User, error)
	CountPlayers(ctx context.Context, arg db.CountPlayersParams) (int64, error)
	ListPlayers(ctx context.Context, arg db.ListPlayersParams) ([]db.Player, error)
	CountSeasons(ctx context.Context, peladaID uuid.UUID) (int64, error)
	ListSeasons(ctx context.Context, arg db.ListSeasonsParams) ([]db.Season, error)
	GetActiveSeason(ctx context.Context, peladaID uuid.UUID) (db.Season, error)
	CountRounds(ctx context.Context, seasonID uuid.UUID) (int64, error)
	CountFinishedMatchesBySeason(ctx context.Context, seasonID uuid.UUID) (int64, error)
}

// Repository implements pelada data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new peladas repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

func (r *Repository) CreatePelada(ctx context.Context, pelada models.Pelada) (*models.Pelada, error) {
	row, err := r.queries.CreatePelada(ctx, db.CreatePeladaParams{
		ID:         uuid.New(),
		ManagerID:  pelada.ManagerID,
		Name:       pelada.Name,
		City:       pelada.City,
		Timezone:   pelada.Timezone,
		LogoUrl:    sqlutil.ToSqlTrimmedString(pelada.LogoURL),
		ProfileUrl: sqlutil.ToSqlTrimmedString(pelada.ProfileURL),
		Settings:   sqlutil.ToNullRawMessage(pelada.Settings),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pelada: %w", err)
	}
	return dbPeladaToModel(row), nil
}

func (r *Repository) GetPelada(ctx context.Context, id uuid.UUID) (*models.Pelada, error) {
	row, err := r.queries.GetPelada(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "pelada", id)
	}
	return dbPeladaToModel(row), nil
}

// ListPeladas returns one page of peladas plus the total matching the filters
func (r *Repository) ListPeladas(ctx context.Context, managerID *uuid.UUID, active *bool, page models.PageRequest) ([]models.Pelada, models.PageMeta, error) {
	total, err := r.queries.CountPeladas(ctx, db.CountPeladasParams{
		ManagerID: sqlutil.ToNullUUID(managerID),
		Active:    sqlutil.ToSqlBool(active),
	})
	if err != nil {
		return nil, models.PageMeta{}, fmt.Errorf("failed to count peladas: %w", err)
	}
	meta := models.NewPageMeta(total, page)

	rows, err := r.queries.ListPeladas(ctx, db.ListPeladasParams{
		ManagerID: sqlutil.ToNullUUID(managerID),
		Active:    sqlutil.ToSqlBool(active),
		Limit:     int32(meta.PerPage),
		Offset:    int32(meta.Offset()),
	})
	if err != nil {
		return nil, models.PageMeta{}, fmt.Errorf("failed to list peladas: %w", err)
	}

	peladas := make([]models.Pelada, 0, len(rows))
	for _, row := range rows {
		peladas = append(peladas, *dbPeladaToModel(row))
	}
	return peladas, meta, nil
}

func (r *Repository) UpdatePelada(ctx context.Context, pelada models.Pelada) (*models.Pelada, error) {
	row, err := r.queries.UpdatePelada(ctx, db.UpdatePeladaParams{
		ID:         pelada.ID,
		Name:       pelada.Name,
		City:       pelada.City,
		Timezone:   pelada.Timezone,
		LogoUrl:    sqlutil.ToSqlTrimmedString(pelada.LogoURL),
		ProfileUrl: sqlutil.ToSqlTrimmedString(pelada.ProfileURL),
		Active:     pelada.Active,
		Settings:   sqlutil.ToNullRawMessage(pelada.Settings),
	})
	if err != nil {
		return nil, notFoundOr(err, "pelada", pelada.ID)
	}
	return dbPeladaToModel(row), nil
}

func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row, err := r.queries.GetUser(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "user", id)
	}
	return &models.User{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		Role:      models.UserRole(row.Role),
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// ActivePlayers returns every active player of the pelada ordered by name
func (r *Repository) ActivePlayers(ctx context.Context, peladaID uuid.UUID) ([]models.Player, error) {
	active := true
	total, err := r.queries.CountPlayers(ctx, db.CountPlayersParams{
		PeladaID: peladaID,
		Active:   sqlutil.ToSqlBool(&active),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count players: %w", err)
	}
	players := make([]models.Player, 0, total)
	if total == 0 {
		return players, nil
	}

	rows, err := r.queries.ListPlayers(ctx, db.ListPlayersParams{
		PeladaID: peladaID,
		Active:   sqlutil.ToSqlBool(&active),
		Limit:    int32(total),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	for _, row := range rows {
		players = append(players, models.Player{
			ID:        row.ID,
			PeladaID:  row.PeladaID,
			FullName:  row.FullName,
			Nickname:  sqlutil.FromSqlStringPtr(row.Nickname),
			Phone:     sqlutil.FromSqlStringPtr(row.Phone),
			PhotoURL:  sqlutil.FromSqlStringPtr(row.PhotoUrl),
			Active:    row.Active,
			CreatedAt: row.CreatedAt,
		})
	}
	return players, nil
}

func (r *Repository) CountSeasons(ctx context.Context, peladaID uuid.UUID) (int64, error) {
	total, err := r.queries.CountSeasons(ctx, peladaID)
	if err != nil {
		return 0, fmt.Errorf("failed to count seasons: %w", err)
	}
	return total, nil
}

// RecentSeasons returns up to limit seasons, newest first
func (r *Repository) RecentSeasons(ctx context.Context, peladaID uuid.UUID, limit int) ([]models.Season, error) {
	rows, err := r.queries.ListSeasons(ctx, db.ListSeasonsParams{
		PeladaID: peladaID,
		Limit:    int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	seasons := make([]models.Season, 0, len(rows))
	for _, row := range rows {
		seasons = append(seasons, dbSeasonToModel(row))
	}
	return seasons, nil
}

// GetActiveSeason returns the active season, or nil when the pelada has none
func (r *Repository) GetActiveSeason(ctx context.Context, peladaID uuid.UUID) (*models.Season, error) {
	row, err := r.queries.GetActiveSeason(ctx, peladaID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active season: %w", err)
	}
	season := dbSeasonToModel(row)
	return &season, nil
}

func (r *Repository) CountRounds(ctx context.Context, seasonID uuid.UUID) (int64, error) {
	total, err := r.queries.CountRounds(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("failed to count rounds: %w", err)
	}
	return total, nil
}

func (r *Repository) CountFinishedMatches(ctx context.Context, seasonID uuid.UUID) (int64, error) {
	total, err := r.queries.CountFinishedMatchesBySeason(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("failed to count finished matches: %w", err)
	}
	return total, nil
}

func notFoundOr(err error, entity string, id any) error {
	if sqlutil.IsNoRows(err) {
		return apperr.NotFound(entity, id)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

func dbPeladaToModel(row db.Pelada) *models.Pelada {
	return &models.Pelada{
		ID:         row.ID,
		ManagerID:  row.ManagerID,
		Name:       row.Name,
		City:       row.City,
		Timezone:   row.Timezone,
		LogoURL:    sqlutil.FromSqlStringPtr(row.LogoUrl),
		ProfileURL: sqlutil.FromSqlStringPtr(row.ProfileUrl),
		Active:     row.Active,
		Settings:   sqlutil.FromNullRawMessage(row.Settings),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func dbSeasonToModel(row db.Season) models.Season {
	return models.Season{
		ID:         row.ID,
		PeladaID:   row.PeladaID,
		StartMonth: row.StartMonth,
		EndMonth:   row.EndMonth,
		Status:     models.SeasonStatus(row.Status),
		CreatedAt:  row.CreatedAt,
	}
}
