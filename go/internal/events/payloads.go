package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Aggregate types
const (
	AggregateMatch = "match"
	AggregatePoll  = "poll"
)

// Event types published through the outbox
const (
	TypeMatchStarted   = "MatchStarted"
	TypeMatchFinalized = "MatchFinalized"
	TypeGoalRegistered = "GoalRegistered"
	TypeGoalRemoved    = "GoalRemoved"
	TypeVoteCast       = "VoteCast"
	TypePollClosed     = "PollClosed"
)

// Event is a domain event ready to be written to the outbox
type Event struct {
	AggregateType string
	AggregateID   uuid.UUID
	Type          string
	Payload       json.RawMessage
}

// New marshals payload into an Event
func New(aggregateType string, aggregateID uuid.UUID, eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Type:          eventType,
		Payload:       data,
	}, nil
}

// MatchStartedPayload is the payload for a MatchStarted event
type MatchStartedPayload struct {
	MatchID    string    `json:"match_id"`
	RoundID    string    `json:"round_id"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	StartedAt  time.Time `json:"started_at"`
}

// MatchFinalizedPayload is the payload for a MatchFinalized event
type MatchFinalizedPayload struct {
	MatchID    string    `json:"match_id"`
	RoundID    string    `json:"round_id"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	HomeGoals  int       `json:"home_goals"`
	AwayGoals  int       `json:"away_goals"`
	EndedAt    time.Time `json:"ended_at"`
}

// GoalPayload is the payload for GoalRegistered and GoalRemoved events
type GoalPayload struct {
	GoalID         string  `json:"goal_id"`
	MatchID        string  `json:"match_id"`
	TeamID         string  `json:"team_id"`
	PlayerID       string  `json:"player_id"`
	AssistPlayerID *string `json:"assist_player_id,omitempty"`
	Minute         *int    `json:"minute,omitempty"`
	OwnGoal        bool    `json:"own_goal"`
	HomeGoals      int     `json:"home_goals"`
	AwayGoals      int     `json:"away_goals"`
}

// VoteCastPayload is the payload for a VoteCast event
type VoteCastPayload struct {
	VoteID   string    `json:"vote_id"`
	PollID   string    `json:"poll_id"`
	VoterID  string    `json:"voter_id"`
	TargetID string    `json:"target_id"`
	Points   int       `json:"points"`
	CastAt   time.Time `json:"cast_at"`
}

// PollClosedPayload is the payload for a PollClosed event
type PollClosedPayload struct {
	PollID   string    `json:"poll_id"`
	RoundID  string    `json:"round_id"`
	ClosedAt time.Time `json:"closed_at"`
}
