package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DefaultTimezone is used when a pelada is created without one
const DefaultTimezone = "America/Sao_Paulo"

// Pelada represents a club that organizes recurring informal matches
type Pelada struct {
	ID         uuid.UUID       `json:"id"`
	ManagerID  uuid.UUID       `json:"manager_id"`
	Name       string          `json:"name"`
	City       string          `json:"city"`
	Timezone   string          `json:"timezone"`
	LogoURL    *string         `json:"logo_url,omitempty"`
	ProfileURL *string         `json:"profile_url,omitempty"`
	Active     bool            `json:"active"`
	Settings   json.RawMessage `json:"settings,omitempty"` // JSONB
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// PeladaProfile is the summary page of a pelada
type PeladaProfile struct {
	Pelada               Pelada   `json:"pelada"`
	Manager              *User    `json:"manager,omitempty"`
	TotalPlayers         int64    `json:"total_players"`
	TotalSeasons         int64    `json:"total_seasons"`
	ActiveSeason         *Season  `json:"active_season,omitempty"`
	RoundsPlayed         int64    `json:"rounds_played"`
	FinishedMatches      int64    `json:"finished_matches"`
	RecentSeasons        []Season `json:"recent_seasons"`
	ActivePlayersPreview []Player `json:"active_players"`
}
