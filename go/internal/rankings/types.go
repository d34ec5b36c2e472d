package rankings

import (
	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/models"
)

// Limits bounds the size of player ranking tables
type Limits struct {
	Default int `yaml:"default_limit"`
	Max     int `yaml:"max_limit"`
}

// DefaultLimits is used when no limits are configured
var DefaultLimits = Limits{Default: 10, Max: 100}

// normalize returns the effective limit for a requested one
func (l Limits) normalize(requested int) int {
	if requested <= 0 {
		requested = l.Default
	}
	if requested > l.Max {
		requested = l.Max
	}
	return requested
}

// StandingsRequest asks for a season's table
type StandingsRequest struct {
	SeasonID uuid.UUID `json:"season_id"`
}

// StandingsResponse is a season's table, best team first
type StandingsResponse struct {
	Standings []models.StandingRow `json:"standings"`
}

// PlayerRankingRequest asks for the top scorers or assisters of a season
type PlayerRankingRequest struct {
	SeasonID uuid.UUID `json:"season_id"`
	Limit    int       `json:"limit"`
}

// PlayerRankingResponse is a ranked list of players
type PlayerRankingResponse struct {
	Players []models.PlayerRankingRow `json:"players"`
}
