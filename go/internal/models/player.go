package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a member of a pelada
type Player struct {
	ID        uuid.UUID `json:"id"`
	PeladaID  uuid.UUID `json:"pelada_id"`
	FullName  string    `json:"full_name"`
	Nickname  *string   `json:"nickname,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
