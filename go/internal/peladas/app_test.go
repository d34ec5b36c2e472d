package peladas

import (
	"context"
	"encoding/json"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	peladas  []models.Pelada
	users    map[uuid.UUID]models.User
	players  []models.Player
	seasons  []models.Season
	rounds   map[uuid.UUID]int64
	finished map[uuid.UUID]int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[uuid.UUID]models.User{},
		rounds:   map[uuid.UUID]int64{},
		finished: map[uuid.UUID]int64{},
	}
}

func (f *fakeRepo) CreatePelada(_ context.Context, p models.Pelada) (*models.Pelada, error) {
	p.ID = uuid.New()
	f.peladas = append(f.peladas, p)
	return &p, nil
}

func (f *fakeRepo) GetPelada(_ context.Context, id uuid.UUID) (*models.Pelada, error) {
	for _, p := range f.peladas {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperr.NotFound("pelada", id)
}

func (f *fakeRepo) ListPeladas(_ context.Context, managerID *uuid.UUID, active *bool, page models.PageRequest) ([]models.Pelada, models.PageMeta, error) {
	var matched []models.Pelada
	for _, p := range f.peladas {
		if managerID != nil && p.ManagerID != *managerID {
			continue
		}
		if active != nil && p.Active != *active {
			continue
		}
		matched = append(matched, p)
	}
	meta := models.NewPageMeta(int64(len(matched)), page)
	start := min(meta.Offset(), len(matched))
	end := min(start+meta.PerPage, len(matched))
	return slices.Clone(matched[start:end]), meta, nil
}

func (f *fakeRepo) UpdatePelada(_ context.Context, p models.Pelada) (*models.Pelada, error) {
	for i := range f.peladas {
		if f.peladas[i].ID == p.ID {
			f.peladas[i] = p
			return &p, nil
		}
	}
	return nil, apperr.NotFound("pelada", p.ID)
}

func (f *fakeRepo) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.NotFound("user", id)
	}
	return &u, nil
}

func (f *fakeRepo) ActivePlayers(_ context.Context, peladaID uuid.UUID) ([]models.Player, error) {
	out := []models.Player{}
	for _, p := range f.players {
		if p.PeladaID == peladaID && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountSeasons(_ context.Context, peladaID uuid.UUID) (int64, error) {
	var n int64
	for _, s := range f.seasons {
		if s.PeladaID == peladaID {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) RecentSeasons(_ context.Context, peladaID uuid.UUID, limit int) ([]models.Season, error) {
	out := []models.Season{}
	for i := len(f.seasons) - 1; i >= 0 && len(out) < limit; i-- {
		if f.seasons[i].PeladaID == peladaID {
			out = append(out, f.seasons[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) GetActiveSeason(_ context.Context, peladaID uuid.UUID) (*models.Season, error) {
	for _, s := range f.seasons {
		if s.PeladaID == peladaID && s.IsActive() {
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CountRounds(_ context.Context, seasonID uuid.UUID) (int64, error) {
	return f.rounds[seasonID], nil
}

func (f *fakeRepo) CountFinishedMatches(_ context.Context, seasonID uuid.UUID) (int64, error) {
	return f.finished[seasonID], nil
}

func TestCreatePelada(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()
	managerID := uuid.New()

	pelada, err := app.CreatePelada(ctx, managerID, CreatePeladaRequest{Name: " Pelada do Parque ", City: "Recife"})
	require.NoError(t, err)
	assert.Equal(t, "Pelada do Parque", pelada.Name)
	assert.Equal(t, models.DefaultTimezone, pelada.Timezone)
	assert.Equal(t, managerID, pelada.ManagerID)
	assert.True(t, pelada.Active)

	tests := []struct {
		name string
		req  CreatePeladaRequest
	}{
		{"missing name", CreatePeladaRequest{City: "Recife"}},
		{"missing city", CreatePeladaRequest{Name: "Racha"}},
		{"unknown timezone", CreatePeladaRequest{Name: "Racha", City: "Recife", Timezone: "America/Atlantida"}},
		{"bad settings", CreatePeladaRequest{Name: "Racha", City: "Recife", Settings: json.RawMessage(`{"x":`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.CreatePelada(ctx, managerID, tt.req)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestUpdatePelada_Partial(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	pelada, err := app.CreatePelada(ctx, uuid.New(), CreatePeladaRequest{Name: "Racha", City: "Natal"})
	require.NoError(t, err)

	inactive := false
	city := "Fortaleza"
	updated, err := app.UpdatePelada(ctx, UpdatePeladaRequest{PeladaID: pelada.ID, City: &city, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Racha", updated.Name)
	assert.Equal(t, "Fortaleza", updated.City)
	assert.False(t, updated.Active)

	empty := ""
	_, err = app.UpdatePelada(ctx, UpdatePeladaRequest{PeladaID: pelada.ID, Name: &empty})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = app.UpdatePelada(ctx, UpdatePeladaRequest{PeladaID: uuid.New(), City: &city})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListPeladas_Pagination(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)
	ctx := context.Background()
	managerID := uuid.New()

	for range 12 {
		_, err := app.CreatePelada(ctx, managerID, CreatePeladaRequest{Name: "Racha", City: "Natal"})
		require.NoError(t, err)
	}
	_, err := app.CreatePelada(ctx, uuid.New(), CreatePeladaRequest{Name: "Outra", City: "Natal"})
	require.NoError(t, err)

	page, err := app.ListPeladas(ctx, ListPeladasRequest{ManagerID: &managerID, PageRequest: models.PageRequest{Page: 9}})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, models.PageMeta{
		Total:           12,
		Page:            2,
		PerPage:         models.DefaultPerPage,
		TotalPages:      2,
		HasNextPage:     false,
		HasPreviousPage: true,
	}, page.Meta)

	all, err := app.ListPeladas(ctx, ListPeladasRequest{PageRequest: models.PageRequest{PerPage: 500}})
	require.NoError(t, err)
	assert.Len(t, all.Items, 13)
	assert.Equal(t, models.MaxPerPage, all.Meta.PerPage)
}

func TestGetPeladaProfile(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)
	ctx := context.Background()

	manager := models.User{ID: uuid.New(), Username: "gerente"}
	repo.users[manager.ID] = manager
	pelada, err := app.CreatePelada(ctx, manager.ID, CreatePeladaRequest{Name: "Racha", City: "Natal"})
	require.NoError(t, err)

	repo.players = []models.Player{
		{ID: uuid.New(), PeladaID: pelada.ID, FullName: "Ativo", Active: true},
		{ID: uuid.New(), PeladaID: pelada.ID, FullName: "Parado", Active: false},
	}
	for i := range 6 {
		status := models.SeasonStatusClosed
		if i == 5 {
			status = models.SeasonStatusActive
		}
		repo.seasons = append(repo.seasons, models.Season{
			ID:         uuid.New(),
			PeladaID:   pelada.ID,
			StartMonth: time.Date(2020+i, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:     status,
		})
	}
	active := repo.seasons[5]
	repo.rounds[active.ID] = 4
	repo.finished[active.ID] = 9

	profile, err := app.GetPeladaProfile(ctx, pelada.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.Manager)
	assert.Equal(t, "gerente", profile.Manager.Username)
	assert.EqualValues(t, 1, profile.TotalPlayers)
	assert.EqualValues(t, 6, profile.TotalSeasons)
	assert.Len(t, profile.RecentSeasons, recentSeasonsLimit)
	assert.Equal(t, active.ID, profile.RecentSeasons[0].ID)
	require.NotNil(t, profile.ActiveSeason)
	assert.EqualValues(t, 4, profile.RoundsPlayed)
	assert.EqualValues(t, 9, profile.FinishedMatches)
}

func TestGetPeladaProfile_NoActiveSeason(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)
	ctx := context.Background()

	pelada, err := app.CreatePelada(ctx, uuid.New(), CreatePeladaRequest{Name: "Racha", City: "Natal"})
	require.NoError(t, err)

	profile, err := app.GetPeladaProfile(ctx, pelada.ID)
	require.NoError(t, err)
	assert.Nil(t, profile.Manager)
	assert.Nil(t, profile.ActiveSeason)
	assert.Zero(t, profile.RoundsPlayed)
	assert.Empty(t, profile.ActivePlayersPreview)

	_, err = app.GetPeladaProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
