package seasons

import (
	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/models"
)

// CreateSeasonRequest opens a season. Dates are YYYY-MM-DD.
type CreateSeasonRequest struct {
	PeladaID   uuid.UUID `json:"pelada_id"`
	StartMonth string    `json:"start_month"`
	EndMonth   string    `json:"end_month"`
}

// ListSeasonsRequest lists a pelada's seasons, newest first
type ListSeasonsRequest struct {
	PeladaID uuid.UUID `json:"pelada_id"`
	models.PageRequest
}

// SeasonIDRequest addresses a single season
type SeasonIDRequest struct {
	SeasonID uuid.UUID `json:"season_id"`
}

// ListSeasonsResponse is a page of seasons
type ListSeasonsResponse = models.Page[models.Season]
