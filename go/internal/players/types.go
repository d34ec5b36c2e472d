package players

import (
	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/models"
)

// DefaultPerPage is the player listing page size when none is given
const DefaultPerPage = 20

// CreatePlayerRequest represents the data needed to add a player to a pelada
type CreatePlayerRequest struct {
	PeladaID uuid.UUID `json:"pelada_id"`
	FullName string    `json:"full_name"`
	Nickname *string   `json:"nickname,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	PhotoURL *string   `json:"photo_url,omitempty"`
}

// UpdatePlayerRequest carries a partial update. Nil fields are left as they are.
type UpdatePlayerRequest struct {
	PlayerID uuid.UUID `json:"player_id"`
	FullName *string   `json:"full_name,omitempty"`
	Nickname *string   `json:"nickname,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	PhotoURL *string   `json:"photo_url,omitempty"`
	Active   *bool     `json:"active,omitempty"`
}

// ListPlayersRequest lists the players of a pelada
type ListPlayersRequest struct {
	PeladaID uuid.UUID `json:"pelada_id"`
	Active   *bool     `json:"active,omitempty"`
	models.PageRequest
}

// PlayerIDRequest addresses a single player
type PlayerIDRequest struct {
	PlayerID uuid.UUID `json:"player_id"`
}

// ListPlayersResponse is a page of players
type ListPlayersResponse = models.Page[models.Player]
