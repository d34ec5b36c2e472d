package rounds

import (
	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/models"
)

// CreateRoundRequest schedules a match day. Date is YYYY-MM-DD.
type CreateRoundRequest struct {
	SeasonID       uuid.UUID `json:"season_id"`
	Date           string    `json:"date"`
	TeamCount      int       `json:"team_count"`
	PlayersPerTeam int       `json:"players_per_team"`
}

// ListRoundsRequest lists a season's rounds, latest date first
type ListRoundsRequest struct {
	SeasonID uuid.UUID `json:"season_id"`
	models.PageRequest
}

// RoundIDRequest addresses a single round
type RoundIDRequest struct {
	RoundID uuid.UUID `json:"round_id"`
}

// RoundPlayersRequest lists the players lined up for a round. ActiveOnly
// defaults to true.
type RoundPlayersRequest struct {
	RoundID    uuid.UUID `json:"round_id"`
	Position   *string   `json:"position,omitempty"`
	ActiveOnly *bool     `json:"active_only,omitempty"`
}

// ListRoundsResponse is a page of rounds
type ListRoundsResponse = models.Page[models.Round]

// RoundPlayersResponse lists the players of a round
type RoundPlayersResponse struct {
	RoundID uuid.UUID            `json:"round_id"`
	Players []models.RoundPlayer `json:"players"`
}
