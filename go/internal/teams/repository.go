package teams

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/db"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/sqlutil"
)

const uniqueRosterEntry = "team_players_pkey"

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetSeason(ctx context.Context, id uuid.UUID) (db.Season, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (db.Player, error)

	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	ListTeams(ctx context.Context, arg db.ListTeamsParams) ([]db.Team, error)
	CountTeams(ctx context.Context, seasonID uuid.UUID) (int64, error)
	UpdateTeamDetails(ctx context.Context, arg db.UpdateTeamDetailsParams) (db.Team, error)

	AddTeamPlayer(ctx context.Context, arg db.AddTeamPlayerParams) (db.TeamPlayer, error)
	GetTeamPlayer(ctx context.Context, arg db.GetTeamPlayerParams) (db.TeamPlayer, error)
	ListTeamPlayers(ctx context.Context, teamID uuid.UUID) ([]db.ListTeamPlayersRow, error)
	RemoveTeamPlayer(ctx context.Context, arg db.RemoveTeamPlayerParams) (int64, error)
}

// Repository implements team and roster data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new teams repository
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

func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	row, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "player", id)
	}
	return &models.Player{
		ID:        row.ID,
		PeladaID:  row.PeladaID,
		FullName:  row.FullName,
		Nickname:  sqlutil.FromSqlStringPtr(row.Nickname),
		Phone:     sqlutil.FromSqlStringPtr(row.Phone),
		PhotoURL:  sqlutil.FromSqlStringPtr(row.PhotoUrl),
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
	}, nil
}

// CreateTeam creates a new team with zeroed standings
func (r *Repository) CreateTeam(ctx context.Context, seasonID uuid.UUID, name string, color, crestURL *string) (*models.Team, error) {
	row, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		ID:       uuid.New(),
		SeasonID: seasonID,
		Name:     name,
		Color:    sqlutil.ToSqlTrimmedString(color),
		CrestUrl: sqlutil.ToSqlTrimmedString(crestURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return r.dbTeamToModel(row), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	row, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "team", id)
	}
	return r.dbTeamToModel(row), nil
}

func (r *Repository) ListTeams(ctx context.Context, seasonID uuid.UUID, page models.PageRequest) ([]models.Team, models.PageMeta, error) {
	total, err := r.queries.CountTeams(ctx, seasonID)
	if err != nil {
		return nil, models.PageMeta{}, fmt.Errorf("failed to count teams: %w", err)
	}
	meta := models.NewPageMeta(total, page)

	rows, err := r.queries.ListTeams(ctx, db.ListTeamsParams{
		SeasonID: seasonID,
		Limit:    int32(meta.PerPage),
		Offset:   int32(meta.Offset()),
	})
	if err != nil {
		return nil, models.PageMeta{}, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]models.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, *r.dbTeamToModel(row))
	}
	return teams, meta, nil
}

// UpdateTeamDetails writes name, color and crest. Standings columns are untouched.
func (r *Repository) UpdateTeamDetails(ctx context.Context, team models.Team) (*models.Team, error) {
	row, err := r.queries.UpdateTeamDetails(ctx, db.UpdateTeamDetailsParams{
		ID:       team.ID,
		Name:     team.Name,
		Color:    sqlutil.ToSqlTrimmedString(team.Color),
		CrestUrl: sqlutil.ToSqlTrimmedString(team.CrestURL),
	})
	if err != nil {
		return nil, notFoundOr(err, "team", team.ID)
	}
	return r.dbTeamToModel(row), nil
}

// AddTeamPlayer inserts a roster entry. A second insert of the same pair
// reports AlreadyOnTeam.
func (r *Repository) AddTeamPlayer(ctx context.Context, entry models.RosterEntry) (*models.RosterEntry, error) {
	row, err := r.queries.AddTeamPlayer(ctx, db.AddTeamPlayerParams{
		TeamID:   entry.TeamID,
		PlayerID: entry.PlayerID,
		Captain:  entry.Captain,
		Position: sqlutil.ToSqlTrimmedString(entry.Position),
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err, uniqueRosterEntry) {
			return nil, alreadyOnTeam(entry.TeamID, entry.PlayerID)
		}
		return nil, fmt.Errorf("failed to add player to team: %w", err)
	}

	entry.Captain = row.Captain
	entry.Position = sqlutil.FromSqlStringPtr(row.Position)
	entry.CreatedAt = row.CreatedAt
	return &entry, nil
}

// IsOnTeam reports whether the player is on the team's roster
func (r *Repository) IsOnTeam(ctx context.Context, teamID, playerID uuid.UUID) (bool, error) {
	_, err := r.queries.GetTeamPlayer(ctx, db.GetTeamPlayerParams{TeamID: teamID, PlayerID: playerID})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get roster entry: %w", err)
	}
	return true, nil
}

func (r *Repository) ListRoster(ctx context.Context, teamID uuid.UUID) ([]models.RosterEntry, error) {
	rows, err := r.queries.ListTeamPlayers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	roster := make([]models.RosterEntry, 0, len(rows))
	for _, row := range rows {
		roster = append(roster, models.RosterEntry{
			TeamID:   row.TeamID,
			PlayerID: row.PlayerID,
			Captain:  row.Captain,
			Position: sqlutil.FromSqlStringPtr(row.Position),
			FullName: row.FullName,
			Nickname: sqlutil.FromSqlStringPtr(row.Nickname),
			Active:   row.Active,
		})
	}
	return roster, nil
}

// RemoveTeamPlayer deletes a roster entry, NotFound when there was none
func (r *Repository) RemoveTeamPlayer(ctx context.Context, teamID, playerID uuid.UUID) error {
	n, err := r.queries.RemoveTeamPlayer(ctx, db.RemoveTeamPlayerParams{TeamID: teamID, PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to remove player from team: %w", err)
	}
	if n == 0 {
		return apperr.New(apperr.KindNotFound, apperr.ReasonNone, "player %s is not on team %s", playerID, teamID)
	}
	return nil
}

func alreadyOnTeam(teamID, playerID uuid.UUID) error {
	return apperr.New(apperr.KindConflict, apperr.ReasonAlreadyOnTeam, "player %s is already on team %s", playerID, teamID)
}

func notFoundOr(err error, entity string, id uuid.UUID) error {
	if sqlutil.IsNoRows(err) {
		return apperr.NotFound(entity, id)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

// dbTeamToModel converts a database team to a domain model
func (r *Repository) dbTeamToModel(t db.Team) *models.Team {
	return &models.Team{
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
