package seasons

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/clock"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	seasons []models.Season
}

func (f *fakeRepo) CreateSeason(_ context.Context, peladaID uuid.UUID, start, end time.Time) (*models.Season, error) {
	s := models.Season{ID: uuid.New(), PeladaID: peladaID, StartMonth: start, EndMonth: end, Status: models.SeasonStatusActive}
	f.seasons = append(f.seasons, s)
	return &s, nil
}

func (f *fakeRepo) GetSeason(_ context.Context, id uuid.UUID) (*models.Season, error) {
	for _, s := range f.seasons {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, apperr.NotFound("season", id)
}

func (f *fakeRepo) GetActiveSeason(_ context.Context, peladaID uuid.UUID) (*models.Season, error) {
	for _, s := range f.seasons {
		if s.PeladaID == peladaID && s.IsActive() {
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListSeasons(_ context.Context, peladaID uuid.UUID, page models.PageRequest) ([]models.Season, models.PageMeta, error) {
	var matched []models.Season
	for i := len(f.seasons) - 1; i >= 0; i-- {
		if f.seasons[i].PeladaID == peladaID {
			matched = append(matched, f.seasons[i])
		}
	}
	meta := models.NewPageMeta(int64(len(matched)), page)
	start := min(meta.Offset(), len(matched))
	end := min(start+meta.PerPage, len(matched))
	return matched[start:end], meta, nil
}

func (f *fakeRepo) UpdateSeasonStatus(_ context.Context, id uuid.UUID, status models.SeasonStatus) (*models.Season, error) {
	for i := range f.seasons {
		if f.seasons[i].ID == id {
			f.seasons[i].Status = status
			s := f.seasons[i]
			return &s, nil
		}
	}
	return nil, apperr.NotFound("season", id)
}

func newTestApp(t *testing.T) (*App, *fakeRepo) {
	t.Helper()
	loc, err := clock.LoadLocation(clock.DefaultZone)
	require.NoError(t, err)
	repo := &fakeRepo{}
	clk := clock.New(clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 22, 30, 0, 0, loc)), loc)
	return NewApp(repo, clk), repo
}

func TestCreateSeason(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	peladaID := uuid.New()

	season, err := app.CreateSeason(ctx, CreateSeasonRequest{PeladaID: peladaID, StartMonth: "2025-01-01", EndMonth: "2025-06-30"})
	require.NoError(t, err)
	assert.True(t, season.IsActive())
	assert.Equal(t, time.January, season.StartMonth.Month())
	assert.Equal(t, "America/Sao_Paulo", season.StartMonth.Location().String())

	_, err = app.CreateSeason(ctx, CreateSeasonRequest{PeladaID: peladaID, StartMonth: "2025-07-01", EndMonth: "2025-12-31"})
	assert.ErrorIs(t, err, apperr.ErrActiveSeasonExists)

	_, err = app.CloseSeason(ctx, season.ID)
	require.NoError(t, err)
	next, err := app.CreateSeason(ctx, CreateSeasonRequest{PeladaID: peladaID, StartMonth: "2025-07-01", EndMonth: "2025-12-31"})
	require.NoError(t, err)

	page, err := app.ListSeasons(ctx, ListSeasonsRequest{PeladaID: peladaID})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, next.ID, page.Items[0].ID)
}

func TestCreateSeason_InvalidDates(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2025-06-01", "2025-05-31"},
		{"unparseable start", "01/01/2025", "2025-06-30"},
		{"missing end", "2025-01-01", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.CreateSeason(ctx, CreateSeasonRequest{PeladaID: uuid.New(), StartMonth: tt.start, EndMonth: tt.end})
			assert.ErrorIs(t, err, apperr.ErrInvalidDates)
		})
	}

	single, err := app.CreateSeason(ctx, CreateSeasonRequest{PeladaID: uuid.New(), StartMonth: "2025-03-01", EndMonth: "2025-03-01"})
	require.NoError(t, err)
	assert.Equal(t, single.StartMonth, single.EndMonth)
}

func TestCloseSeason(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	season, err := app.CreateSeason(ctx, CreateSeasonRequest{PeladaID: uuid.New(), StartMonth: "2025-01-01", EndMonth: "2025-06-30"})
	require.NoError(t, err)

	closed, err := app.CloseSeason(ctx, season.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SeasonStatusClosed, closed.Status)

	again, err := app.CloseSeason(ctx, season.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SeasonStatusClosed, again.Status)

	_, err = app.CloseSeason(ctx, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
