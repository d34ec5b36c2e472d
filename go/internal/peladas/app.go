// Package peladas manages the clubs that own players, seasons and rounds.
package peladas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/clock"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/rs/zerolog/log"
)

// recentSeasonsLimit is how many seasons the profile lists
const recentSeasonsLimit = 5

// PeladasRepository defines what the app layer needs from the repository
type PeladasRepository interface {
	CreatePelada(ctx context.Context, pelada models.Pelada) (*models.Pelada, error)
	GetPelada(ctx context.Context, id uuid.UUID) (*models.Pelada, error)
	ListPeladas(ctx context.Context, managerID *uuid.UUID, active *bool, page models.PageRequest) ([]models.Pelada, models.PageMeta, error)
	UpdatePelada(ctx context.Context, pelada models.Pelada) (*models.Pelada, error)

	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ActivePlayers(ctx context.Context, peladaID uuid.UUID) ([]models.Player, error)
	CountSeasons(ctx context.Context, peladaID uuid.UUID) (int64, error)
	RecentSeasons(ctx context.Context, peladaID uuid.UUID, limit int) ([]models.Season, error)
	GetActiveSeason(ctx context.Context, peladaID uuid.UUID) (*models.Season, error)
	CountRounds(ctx context.Context, seasonID uuid.UUID) (int64, error)
	CountFinishedMatches(ctx context.Context, seasonID uuid.UUID) (int64, error)
}

// App handles peladas business logic
type App struct {
	repo PeladasRepository
}

// NewApp creates a new peladas App
func NewApp(repo PeladasRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreatePelada creates a pelada managed by managerID
func (a *App) CreatePelada(ctx context.Context, managerID uuid.UUID, req CreatePeladaRequest) (*models.Pelada, error) {
	pelada := models.Pelada{
		ManagerID:  managerID,
		Name:       strings.TrimSpace(req.Name),
		City:       strings.TrimSpace(req.City),
		Timezone:   strings.TrimSpace(req.Timezone),
		LogoURL:    req.LogoURL,
		ProfileURL: req.ProfileURL,
		Active:     true,
		Settings:   req.Settings,
	}
	if pelada.Timezone == "" {
		pelada.Timezone = models.DefaultTimezone
	}
	if err := validatePelada(pelada); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	created, err := a.repo.CreatePelada(ctx, pelada)
	if err != nil {
		return nil, fmt.Errorf("failed to create pelada: %w", err)
	}

	log.Info().
		Str("pelada_id", created.ID.String()).
		Str("manager_id", managerID.String()).
		Str("name", created.Name).
		Msg("pelada created")
	return created, nil
}

// GetPelada retrieves a pelada by ID
func (a *App) GetPelada(ctx context.Context, id uuid.UUID) (*models.Pelada, error) {
	pelada, err := a.repo.GetPelada(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pelada: %w", err)
	}
	return pelada, nil
}

// GetPeladaProfile assembles the public summary of a pelada. Round and
// match counts refer to the active season and are zero without one.
func (a *App) GetPeladaProfile(ctx context.Context, id uuid.UUID) (*models.PeladaProfile, error) {
	pelada, err := a.repo.GetPelada(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pelada: %w", err)
	}
	profile := &models.PeladaProfile{Pelada: *pelada}

	manager, err := a.repo.GetUser(ctx, pelada.ManagerID)
	switch {
	case err == nil:
		profile.Manager = manager
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, fmt.Errorf("failed to get manager: %w", err)
	}

	if profile.ActivePlayersPreview, err = a.repo.ActivePlayers(ctx, id); err != nil {
		return nil, err
	}
	profile.TotalPlayers = int64(len(profile.ActivePlayersPreview))

	if profile.TotalSeasons, err = a.repo.CountSeasons(ctx, id); err != nil {
		return nil, err
	}
	if profile.RecentSeasons, err = a.repo.RecentSeasons(ctx, id, recentSeasonsLimit); err != nil {
		return nil, err
	}

	if profile.ActiveSeason, err = a.repo.GetActiveSeason(ctx, id); err != nil {
		return nil, err
	}
	if profile.ActiveSeason != nil {
		if profile.RoundsPlayed, err = a.repo.CountRounds(ctx, profile.ActiveSeason.ID); err != nil {
			return nil, err
		}
		if profile.FinishedMatches, err = a.repo.CountFinishedMatches(ctx, profile.ActiveSeason.ID); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// ListPeladas returns a page of peladas, optionally filtered by manager and active flag
func (a *App) ListPeladas(ctx context.Context, req ListPeladasRequest) (*ListPeladasResponse, error) {
	items, meta, err := a.repo.ListPeladas(ctx, req.ManagerID, req.Active, req.PageRequest.Normalize(models.DefaultPerPage))
	if err != nil {
		return nil, fmt.Errorf("failed to list peladas: %w", err)
	}
	return &ListPeladasResponse{Items: items, Meta: meta}, nil
}

// UpdatePelada applies the non-nil fields of req
func (a *App) UpdatePelada(ctx context.Context, req UpdatePeladaRequest) (*models.Pelada, error) {
	pelada, err := a.repo.GetPelada(ctx, req.PeladaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pelada: %w", err)
	}

	if req.Name != nil {
		pelada.Name = strings.TrimSpace(*req.Name)
	}
	if req.City != nil {
		pelada.City = strings.TrimSpace(*req.City)
	}
	if req.Timezone != nil {
		pelada.Timezone = strings.TrimSpace(*req.Timezone)
	}
	if req.LogoURL != nil {
		pelada.LogoURL = req.LogoURL
	}
	if req.ProfileURL != nil {
		pelada.ProfileURL = req.ProfileURL
	}
	if req.Active != nil {
		pelada.Active = *req.Active
	}
	if req.Settings != nil {
		pelada.Settings = req.Settings
	}
	if err := validatePelada(*pelada); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updated, err := a.repo.UpdatePelada(ctx, *pelada)
	if err != nil {
		return nil, fmt.Errorf("failed to update pelada: %w", err)
	}

	log.Info().Str("pelada_id", updated.ID.String()).Msg("pelada updated")
	return updated, nil
}

func validatePelada(p models.Pelada) error {
	if p.Name == "" {
		return apperr.Validation("name is required")
	}
	if p.City == "" {
		return apperr.Validation("city is required")
	}
	if p.Timezone == "" {
		return apperr.Validation("timezone is required")
	}
	if _, err := clock.LoadLocation(p.Timezone); err != nil {
		return apperr.Validation("unknown timezone %q", p.Timezone)
	}
	if len(p.Settings) > 0 && !json.Valid(p.Settings) {
		return apperr.Validation("settings must be valid JSON")
	}
	return nil
}
