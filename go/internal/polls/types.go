package polls

import (
	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/models"
)

// CreatePollRequest represents the data needed to open a poll for a round.
// OpensAt and ClosesAt accept a local timestamp in the canonical zone
// ("2006-01-02 15:04:05" and variants) or RFC 3339 with an offset.
type CreatePollRequest struct {
	RoundID  uuid.UUID `json:"round_id"`
	OpensAt  string    `json:"opens_at"`
	ClosesAt string    `json:"closes_at"`
	Type     string    `json:"type"`
}

// CastVoteRequest is one ballot entry
type CastVoteRequest struct {
	PollID   uuid.UUID `json:"poll_id"`
	VoterID  uuid.UUID `json:"voter_id"`
	TargetID uuid.UUID `json:"target_id"`
	Points   int       `json:"points"`
}

// PollIDRequest addresses a single poll
type PollIDRequest struct {
	PollID uuid.UUID `json:"poll_id"`
}

// RoundPollsRequest selects the polls of a round, optionally of one type
type RoundPollsRequest struct {
	RoundID uuid.UUID `json:"round_id"`
	Type    *string   `json:"type,omitempty"`
}

// ListPollsResponse wraps the polls of a round
type ListPollsResponse struct {
	Polls []models.Poll `json:"polls"`
}

// RoundPollResultsResponse carries every poll of a round with its result
type RoundPollResultsResponse struct {
	RoundID uuid.UUID           `json:"round_id"`
	Type    *string             `json:"type,omitempty"`
	Results []models.PollResult `json:"polls"`
}
