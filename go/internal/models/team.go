package models

import (
	"time"

	"github.com/google/uuid"
)

// Team is a season-scoped team with its accumulated standings
type Team struct {
	ID           uuid.UUID `json:"id"`
	SeasonID     uuid.UUID `json:"season_id"`
	Name         string    `json:"name"`
	Color        *string   `json:"color,omitempty"`
	CrestURL     *string   `json:"crest_url,omitempty"`
	Points       int       `json:"points"`
	Wins         int       `json:"wins"`
	Draws        int       `json:"draws"`
	Losses       int       `json:"losses"`
	GoalsFor     int       `json:"goals_for"`
	GoalsAgainst int       `json:"goals_against"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
}

// GoalDifference is goals for minus goals against
func (t Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// GamesPlayed is wins plus draws plus losses
func (t Team) GamesPlayed() int {
	return t.Wins + t.Draws + t.Losses
}

// TeamResult is the standings delta produced by one finished match
type TeamResult struct {
	GoalsFor     int
	GoalsAgainst int
	Points       int
	Wins         int
	Draws        int
	Losses       int
}

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// MatchResults returns the standings deltas for home and away given a final score
func MatchResults(homeGoals, awayGoals int) (home TeamResult, away TeamResult) {
	home = TeamResult{GoalsFor: homeGoals, GoalsAgainst: awayGoals}
	away = TeamResult{GoalsFor: awayGoals, GoalsAgainst: homeGoals}

	switch {
	case homeGoals > awayGoals:
		home.Points, home.Wins = PointsWin, 1
		away.Points, away.Losses = PointsLoss, 1
	case homeGoals < awayGoals:
		away.Points, away.Wins = PointsWin, 1
		home.Points, home.Losses = PointsLoss, 1
	default:
		home.Points, home.Draws = PointsDraw, 1
		away.Points, away.Draws = PointsDraw, 1
	}
	return home, away
}
