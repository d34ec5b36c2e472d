package teams

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/rs/zerolog/log"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)

	CreateTeam(ctx context.Context, seasonID uuid.UUID, name string, color, crestURL *string) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context, seasonID uuid.UUID, page models.PageRequest) ([]models.Team, models.PageMeta, error)
	UpdateTeamDetails(ctx context.Context, team models.Team) (*models.Team, error)

	AddTeamPlayer(ctx context.Context, entry models.RosterEntry) (*models.RosterEntry, error)
	IsOnTeam(ctx context.Context, teamID, playerID uuid.UUID) (bool, error)
	ListRoster(ctx context.Context, teamID uuid.UUID) ([]models.RosterEntry, error)
	RemoveTeamPlayer(ctx context.Context, teamID, playerID uuid.UUID) error
}

// App handles teams business logic
type App struct {
	repo TeamsRepository
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateTeam creates a team in an active season
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	season, err := a.repo.GetSeason(ctx, req.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	if !season.IsActive() {
		return nil, apperr.New(apperr.KindInvalidState, apperr.ReasonSeasonNotActive, "season %s is not active", season.ID)
	}

	team, err := a.repo.CreateTeam(ctx, season.ID, name, req.Color, req.CrestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Info().
		Str("team_id", team.ID.String()).
		Str("season_id", season.ID.String()).
		Str("name", team.Name).
		Msg("team created")
	return team, nil
}

// GetTeam retrieves a team with its roster
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.TeamWithRoster, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	roster, err := a.repo.ListRoster(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.TeamWithRoster{Team: *team, Roster: roster}, nil
}

func (a *App) ListTeams(ctx context.Context, req ListTeamsRequest) (*ListTeamsResponse, error) {
	items, meta, err := a.repo.ListTeams(ctx, req.SeasonID, req.PageRequest.Normalize(DefaultPerPage))
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return &ListTeamsResponse{Items: items, Meta: meta}, nil
}

// UpdateTeam applies the non-nil fields of req
func (a *App) UpdateTeam(ctx context.Context, req UpdateTeamRequest) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil {
		team.Name = strings.TrimSpace(*req.Name)
		if team.Name == "" {
			return nil, apperr.Validation("name cannot be empty")
		}
	}
	if req.Color != nil {
		team.Color = req.Color
	}
	if req.CrestURL != nil {
		team.CrestURL = req.CrestURL
	}

	updated, err := a.repo.UpdateTeamDetails(ctx, *team)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	log.Info().Str("team_id", updated.ID.String()).Msg("team updated")
	return updated, nil
}

// AddPlayerToTeam puts a player of the team's pelada on its roster
func (a *App) AddPlayerToTeam(ctx context.Context, req AddPlayerRequest) (*models.RosterEntry, error) {
	team, err := a.repo.GetTeam(ctx, req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	player, err := a.repo.GetPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	season, err := a.repo.GetSeason(ctx, team.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	if player.PeladaID != season.PeladaID {
		return nil, apperr.Validation("player %s does not belong to the team's pelada", player.ID)
	}

	onTeam, err := a.repo.IsOnTeam(ctx, team.ID, player.ID)
	if err != nil {
		return nil, err
	}
	if onTeam {
		return nil, alreadyOnTeam(team.ID, player.ID)
	}

	entry, err := a.repo.AddTeamPlayer(ctx, models.RosterEntry{
		TeamID:   team.ID,
		PlayerID: player.ID,
		Captain:  req.Captain,
		Position: req.Position,
		FullName: player.FullName,
		Nickname: player.Nickname,
		Active:   player.Active,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add player to team: %w", err)
	}

	log.Info().
		Str("team_id", team.ID.String()).
		Str("player_id", player.ID.String()).
		Bool("captain", entry.Captain).
		Msg("player added to team")
	return entry, nil
}

// RemovePlayerFromTeam takes a player off the roster
func (a *App) RemovePlayerFromTeam(ctx context.Context, req RemovePlayerRequest) error {
	if err := a.repo.RemoveTeamPlayer(ctx, req.TeamID, req.PlayerID); err != nil {
		return err
	}
	log.Info().
		Str("team_id", req.TeamID.String()).
		Str("player_id", req.PlayerID.String()).
		Msg("player removed from team")
	return nil
}
