package models

import (
	"time"

	"github.com/google/uuid"
)

// RosterEntry links a player to a team. Position is free text.
type RosterEntry struct {
	TeamID    uuid.UUID `json:"team_id"`
	PlayerID  uuid.UUID `json:"player_id"`
	Captain   bool      `json:"captain"`
	Position  *string   `json:"position,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	Nickname  *string   `json:"nickname,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamWithRoster is a team plus its current roster
type TeamWithRoster struct {
	Team
	Roster []RosterEntry `json:"roster"`
}
