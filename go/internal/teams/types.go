package teams

import (
	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/models"
)

// DefaultPerPage is the team listing page size when none is given
const DefaultPerPage = 20

// CreateTeamRequest represents the data needed to create a team in a season
type CreateTeamRequest struct {
	SeasonID uuid.UUID `json:"season_id"`
	Name     string    `json:"name"`
	Color    *string   `json:"color,omitempty"`
	CrestURL *string   `json:"crest_url,omitempty"`
}

// UpdateTeamRequest represents the data that can be updated for a team.
// Standings are never updated here.
type UpdateTeamRequest struct {
	TeamID   uuid.UUID `json:"team_id"`
	Name     *string   `json:"name,omitempty"`
	Color    *string   `json:"color,omitempty"`
	CrestURL *string   `json:"crest_url,omitempty"`
}

// ListTeamsRequest lists a season's teams
type ListTeamsRequest struct {
	SeasonID uuid.UUID `json:"season_id"`
	models.PageRequest
}

// TeamIDRequest addresses a single team
type TeamIDRequest struct {
	TeamID uuid.UUID `json:"team_id"`
}

// AddPlayerRequest puts a player on a team's roster
type AddPlayerRequest struct {
	TeamID   uuid.UUID `json:"team_id"`
	PlayerID uuid.UUID `json:"player_id"`
	Captain  bool      `json:"captain"`
	Position *string   `json:"position,omitempty"`
}

// RemovePlayerRequest takes a player off a team's roster
type RemovePlayerRequest struct {
	TeamID   uuid.UUID `json:"team_id"`
	PlayerID uuid.UUID `json:"player_id"`
}

// RemovePlayerResponse confirms a roster removal
type RemovePlayerResponse struct {
	TeamID   uuid.UUID `json:"team_id"`
	PlayerID uuid.UUID `json:"player_id"`
}

// ListTeamsResponse is a page of teams
type ListTeamsResponse = models.Page[models.Team]
