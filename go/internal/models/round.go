package models

import (
	"time"

	"github.com/google/uuid"
)

type RoundStatus string

const (
	RoundStatusPending  RoundStatus = "pending"
	RoundStatusFinished RoundStatus = "finished"
)

// Round is a single match day inside a season
type Round struct {
	ID             uuid.UUID   `json:"id"`
	SeasonID       uuid.UUID   `json:"season_id"`
	Date           time.Time   `json:"date"`
	TeamCount      int         `json:"team_count"`
	PlayersPerTeam int         `json:"players_per_team"`
	Status         RoundStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}

// RoundPlayer is a player lined up for a round through one of the teams
// playing in it
type RoundPlayer struct {
	TeamID    uuid.UUID `json:"team_id"`
	TeamName  string    `json:"team_name"`
	TeamColor *string   `json:"team_color,omitempty"`
	PlayerID  uuid.UUID `json:"player_id"`
	FullName  string    `json:"full_name"`
	Nickname  *string   `json:"nickname,omitempty"`
	Active    bool      `json:"active"`
	Captain   bool      `json:"captain"`
	Position  *string   `json:"position,omitempty"`
}

// RoundDetails is a round with its matches
type RoundDetails struct {
	Round
	Matches []Match `json:"matches"`
}
