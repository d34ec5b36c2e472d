package models

import (
	"time"

	"github.com/google/uuid"
)

type PollStatus string

const (
	PollStatusPending PollStatus = "pending"
	PollStatusOpen    PollStatus = "open"
	PollStatusClosed  PollStatus = "closed"
)

// MaxVotesPerVoter is how many votes one player may cast in a single poll
const MaxVotesPerVoter = 3

// Poll is a time-windowed vote attached to a round (best player, best goal...)
type Poll struct {
	ID        uuid.UUID  `json:"id"`
	RoundID   uuid.UUID  `json:"round_id"`
	OpensAt   time.Time  `json:"opens_at"`
	ClosesAt  time.Time  `json:"closes_at"`
	Type      string     `json:"type"`
	Status    PollStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// PollStatusAt derives the status of a poll window at instant now.
// Both bounds are inclusive.
func PollStatusAt(opensAt, closesAt, now time.Time) PollStatus {
	switch {
	case now.Before(opensAt):
		return PollStatusPending
	case now.After(closesAt):
		return PollStatusClosed
	default:
		return PollStatusOpen
	}
}

// StatusAt is PollStatusAt for this poll's window
func (p Poll) StatusAt(now time.Time) PollStatus {
	return PollStatusAt(p.OpensAt, p.ClosesAt, now)
}

// Vote is an immutable ballot entry
type Vote struct {
	ID        uuid.UUID `json:"id"`
	PollID    uuid.UUID `json:"poll_id"`
	VoterID   uuid.UUID `json:"voter_id"`
	TargetID  uuid.UUID `json:"target_id"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// PollTally is the raw per-target aggregate of a poll's votes
type PollTally struct {
	TargetID uuid.UUID
	FullName string
	Nickname *string
	Votes    int
	Points   int
}

// PollResultEntry is one ranked line of a poll result
type PollResultEntry struct {
	PlayerID   uuid.UUID `json:"player_id"`
	FullName   string    `json:"full_name"`
	Nickname   *string   `json:"nickname,omitempty"`
	Votes      int       `json:"votes"`
	Percentage float64   `json:"percentage"`
	Points     int       `json:"total_points"`
}

// PollResult is the aggregated outcome of a poll
type PollResult struct {
	Poll       Poll              `json:"poll"`
	TotalVotes int               `json:"total_votes"`
	Entries    []PollResultEntry `json:"results"`
	Winner     *PollResultEntry  `json:"winner,omitempty"`
}
