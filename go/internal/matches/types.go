package matches

import (
	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/models"
)

// CreateMatchRequest represents the data needed to schedule a match
type CreateMatchRequest struct {
	RoundID    uuid.UUID `json:"round_id"`
	HomeTeamID uuid.UUID `json:"home_team_id"`
	AwayTeamID uuid.UUID `json:"away_team_id"`
}

// RegisterGoalRequest represents a goal scored in a match in progress.
// TeamID is the team of the scorer; an own goal counts for the opponent.
type RegisterGoalRequest struct {
	MatchID        uuid.UUID  `json:"match_id"`
	TeamID         uuid.UUID  `json:"team_id"`
	PlayerID       uuid.UUID  `json:"player_id"`
	AssistPlayerID *uuid.UUID `json:"assist_player_id,omitempty"`
	Minute         *int       `json:"minute,omitempty"`
	OwnGoal        bool       `json:"own_goal"`
}

// GoalResult is the created goal plus the match with its updated tally
type GoalResult struct {
	Goal  models.Goal  `json:"goal"`
	Match models.Match `json:"match"`
}

// MatchIDRequest addresses a single match
type MatchIDRequest struct {
	MatchID uuid.UUID `json:"match_id"`
}

// RemoveGoalRequest addresses a single goal
type RemoveGoalRequest struct {
	GoalID uuid.UUID `json:"goal_id"`
}

// ListMatchesRequest lists the matches of a round
type ListMatchesRequest struct {
	RoundID uuid.UUID `json:"round_id"`
}

// ListMatchesResponse wraps the matches of a round
type ListMatchesResponse struct {
	Matches []models.Match `json:"matches"`
}
