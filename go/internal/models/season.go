package models

import (
	"time"

	"github.com/google/uuid"
)

type SeasonStatus string

const (
	SeasonStatusActive SeasonStatus = "active"
	SeasonStatusClosed SeasonStatus = "closed"
)

// Season groups rounds and teams of a pelada over a date range.
// At most one season per pelada is active at a time.
type Season struct {
	ID         uuid.UUID    `json:"id"`
	PeladaID   uuid.UUID    `json:"pelada_id"`
	StartMonth time.Time    `json:"start_month"`
	EndMonth   time.Time    `json:"end_month"`
	Status     SeasonStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
}

func (s Season) IsActive() bool {
	return s.Status == SeasonStatusActive
}
