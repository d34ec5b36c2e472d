package models

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusFinished   MatchStatus = "finished"
)

// Match is a game between two teams of the same season inside a round.
// HomeGoals and AwayGoals are running tallies maintained by goal registration.
type Match struct {
	ID         uuid.UUID   `json:"id"`
	RoundID    uuid.UUID   `json:"round_id"`
	HomeTeamID uuid.UUID   `json:"home_team_id"`
	AwayTeamID uuid.UUID   `json:"away_team_id"`
	HomeGoals  int         `json:"home_goals"`
	AwayGoals  int         `json:"away_goals"`
	Status     MatchStatus `json:"status"`
	StartedAt  *time.Time  `json:"started_at,omitempty"`
	EndedAt    *time.Time  `json:"ended_at,omitempty"`
	Version    int         `json:"version"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (m Match) IsFinished() bool {
	return m.Status == MatchStatusFinished
}

// Side reports whether teamID is the home or away team
func (m Match) Side(teamID uuid.UUID) (home bool, ok bool) {
	switch teamID {
	case m.HomeTeamID:
		return true, true
	case m.AwayTeamID:
		return false, true
	}
	return false, false
}

// CreditGoal adjusts the running tally for a goal scored by a player of the
// home (or away) team. Own goals count for the opponent. A negative delta
// reverses a previous credit and never drops a tally below zero.
func (m *Match) CreditGoal(scorerIsHome, ownGoal bool, delta int) {
	homeScores := scorerIsHome != ownGoal
	if homeScores {
		m.HomeGoals = max(m.HomeGoals+delta, 0)
	} else {
		m.AwayGoals = max(m.AwayGoals+delta, 0)
	}
}

// Goal is a single goal event
type Goal struct {
	ID             uuid.UUID  `json:"id"`
	MatchID        uuid.UUID  `json:"match_id"`
	TeamID         uuid.UUID  `json:"team_id"`
	PlayerID       uuid.UUID  `json:"player_id"`
	AssistPlayerID *uuid.UUID `json:"assist_player_id,omitempty"`
	Minute         *int       `json:"minute,omitempty"`
	OwnGoal        bool       `json:"own_goal"`
	CreatedAt      time.Time  `json:"created_at"`
}

// MatchDetails is a match with both teams and its goals
type MatchDetails struct {
	Match
	HomeTeam *Team  `json:"home_team,omitempty"`
	AwayTeam *Team  `json:"away_team,omitempty"`
	Goals    []Goal `json:"goals"`
}
