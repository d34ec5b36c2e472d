package models

import "github.com/google/uuid"

// StandingRow is a team's line in the season table
type StandingRow struct {
	Rank           int       `json:"rank"`
	TeamID         uuid.UUID `json:"team_id"`
	Name           string    `json:"name"`
	Color          *string   `json:"color,omitempty"`
	Points         int       `json:"points"`
	Wins           int       `json:"wins"`
	Draws          int       `json:"draws"`
	Losses         int       `json:"losses"`
	GoalsFor       int       `json:"goals_for"`
	GoalsAgainst   int       `json:"goals_against"`
	GoalDifference int       `json:"goal_difference"`
	GamesPlayed    int       `json:"games_played"`
}

// PlayerRankingRow is a player's line in the scorers or assists table
type PlayerRankingRow struct {
	Rank     int       `json:"rank"`
	PlayerID uuid.UUID `json:"player_id"`
	FullName string    `json:"full_name"`
	Nickname *string   `json:"nickname,omitempty"`
	Total    int       `json:"total"`
}
