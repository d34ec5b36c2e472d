package peladas

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/models"
)

// CreatePeladaRequest represents the data needed to create a pelada. The
// manager is the calling user.
type CreatePeladaRequest struct {
	Name       string          `json:"name"`
	City       string          `json:"city"`
	Timezone   string          `json:"timezone,omitempty"`
	LogoURL    *string         `json:"logo_url,omitempty"`
	ProfileURL *string         `json:"profile_url,omitempty"`
	Settings   json.RawMessage `json:"settings,omitempty"`
}

// UpdatePeladaRequest carries a partial update. Nil fields are left as they are.
type UpdatePeladaRequest struct {
	PeladaID   uuid.UUID       `json:"pelada_id"`
	Name       *string         `json:"name,omitempty"`
	City       *string         `json:"city,omitempty"`
	Timezone   *string         `json:"timezone,omitempty"`
	LogoURL    *string         `json:"logo_url,omitempty"`
	ProfileURL *string         `json:"profile_url,omitempty"`
	Active     *bool           `json:"active,omitempty"`
	Settings   json.RawMessage `json:"settings,omitempty"`
}

// ListPeladasRequest filters the pelada listing
type ListPeladasRequest struct {
	ManagerID *uuid.UUID `json:"manager_id,omitempty"`
	Active    *bool      `json:"active,omitempty"`
	models.PageRequest
}

// PeladaIDRequest addresses a single pelada
type PeladaIDRequest struct {
	PeladaID uuid.UUID `json:"pelada_id"`
}

// ListPeladasResponse is a page of peladas
type ListPeladasResponse = models.Page[models.Pelada]
