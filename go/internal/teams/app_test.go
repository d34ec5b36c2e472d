package teams

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rosterKey struct{ team, player uuid.UUID }

type fakeRepo struct {
	seasons map[uuid.UUID]models.Season
	players map[uuid.UUID]models.Player
	teams   map[uuid.UUID]models.Team
	roster  map[rosterKey]models.RosterEntry
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		seasons: map[uuid.UUID]models.Season{},
		players: map[uuid.UUID]models.Player{},
		teams:   map[uuid.UUID]models.Team{},
		roster:  map[rosterKey]models.RosterEntry{},
	}
}

func (f *fakeRepo) GetSeason(_ context.Context, id uuid.UUID) (*models.Season, error) {
	s, ok := f.seasons[id]
	if !ok {
		return nil, apperr.NotFound("season", id)
	}
	return &s, nil
}

func (f *fakeRepo) GetPlayer(_ context.Context, id uuid.UUID) (*models.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, apperr.NotFound("player", id)
	}
	return &p, nil
}

func (f *fakeRepo) CreateTeam(_ context.Context, seasonID uuid.UUID, name string, color, crestURL *string) (*models.Team, error) {
	t := models.Team{ID: uuid.New(), SeasonID: seasonID, Name: name, Color: color, CrestURL: crestURL}
	f.teams[t.ID] = t
	return &t, nil
}

func (f *fakeRepo) GetTeam(_ context.Context, id uuid.UUID) (*models.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, apperr.NotFound("team", id)
	}
	return &t, nil
}

func (f *fakeRepo) ListTeams(_ context.Context, seasonID uuid.UUID, page models.PageRequest) ([]models.Team, models.PageMeta, error) {
	var matched []models.Team
	for _, t := range f.teams {
		if t.SeasonID == seasonID {
			matched = append(matched, t)
		}
	}
	meta := models.NewPageMeta(int64(len(matched)), page)
	start := min(meta.Offset(), len(matched))
	end := min(start+meta.PerPage, len(matched))
	return matched[start:end], meta, nil
}

func (f *fakeRepo) UpdateTeamDetails(_ context.Context, team models.Team) (*models.Team, error) {
	current, ok := f.teams[team.ID]
	if !ok {
		return nil, apperr.NotFound("team", team.ID)
	}
	current.Name, current.Color, current.CrestURL = team.Name, team.Color, team.CrestURL
	f.teams[team.ID] = current
	return &current, nil
}

func (f *fakeRepo) AddTeamPlayer(_ context.Context, entry models.RosterEntry) (*models.RosterEntry, error) {
	key := rosterKey{entry.TeamID, entry.PlayerID}
	if _, ok := f.roster[key]; ok {
		return nil, alreadyOnTeam(entry.TeamID, entry.PlayerID)
	}
	f.roster[key] = entry
	return &entry, nil
}

func (f *fakeRepo) IsOnTeam(_ context.Context, teamID, playerID uuid.UUID) (bool, error) {
	_, ok := f.roster[rosterKey{teamID, playerID}]
	return ok, nil
}

func (f *fakeRepo) ListRoster(_ context.Context, teamID uuid.UUID) ([]models.RosterEntry, error) {
	out := []models.RosterEntry{}
	for k, e := range f.roster {
		if k.team == teamID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) RemoveTeamPlayer(_ context.Context, teamID, playerID uuid.UUID) error {
	key := rosterKey{teamID, playerID}
	if _, ok := f.roster[key]; !ok {
		return apperr.NotFound("roster entry", playerID)
	}
	delete(f.roster, key)
	return nil
}

type fixture struct {
	repo   *fakeRepo
	app    *App
	season models.Season
	player models.Player
}

func newFixture() *fixture {
	repo := newFakeRepo()
	season := models.Season{ID: uuid.New(), PeladaID: uuid.New(), Status: models.SeasonStatusActive}
	repo.seasons[season.ID] = season
	player := models.Player{ID: uuid.New(), PeladaID: season.PeladaID, FullName: "Dunga", Active: true}
	repo.players[player.ID] = player
	return &fixture{repo: repo, app: NewApp(repo), season: season, player: player}
}

func TestCreateTeam(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	team, err := f.app.CreateTeam(ctx, CreateTeamRequest{SeasonID: f.season.ID, Name: " Amarelo "})
	require.NoError(t, err)
	assert.Equal(t, "Amarelo", team.Name)
	assert.Zero(t, team.Points)

	closed := models.Season{ID: uuid.New(), Status: models.SeasonStatusClosed}
	f.repo.seasons[closed.ID] = closed
	_, err = f.app.CreateTeam(ctx, CreateTeamRequest{SeasonID: closed.ID, Name: "Azul"})
	assert.ErrorIs(t, err, apperr.ErrSeasonNotActive)

	_, err = f.app.CreateTeam(ctx, CreateTeamRequest{SeasonID: f.season.ID})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.app.CreateTeam(ctx, CreateTeamRequest{SeasonID: uuid.New(), Name: "Verde"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRoster(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	team, err := f.app.CreateTeam(ctx, CreateTeamRequest{SeasonID: f.season.ID, Name: "Amarelo"})
	require.NoError(t, err)

	volante := "volante"
	entry, err := f.app.AddPlayerToTeam(ctx, AddPlayerRequest{TeamID: team.ID, PlayerID: f.player.ID, Captain: true, Position: &volante})
	require.NoError(t, err)
	assert.True(t, entry.Captain)
	assert.Equal(t, "Dunga", entry.FullName)

	_, err = f.app.AddPlayerToTeam(ctx, AddPlayerRequest{TeamID: team.ID, PlayerID: f.player.ID})
	assert.ErrorIs(t, err, apperr.ErrAlreadyOnTeam)

	outsider := models.Player{ID: uuid.New(), PeladaID: uuid.New(), FullName: "Maradona"}
	f.repo.players[outsider.ID] = outsider
	_, err = f.app.AddPlayerToTeam(ctx, AddPlayerRequest{TeamID: team.ID, PlayerID: outsider.ID})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.app.AddPlayerToTeam(ctx, AddPlayerRequest{TeamID: team.ID, PlayerID: uuid.New()})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	withRoster, err := f.app.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, withRoster.Roster, 1)
	assert.Equal(t, f.player.ID, withRoster.Roster[0].PlayerID)

	require.NoError(t, f.app.RemovePlayerFromTeam(ctx, RemovePlayerRequest{TeamID: team.ID, PlayerID: f.player.ID}))
	err = f.app.RemovePlayerFromTeam(ctx, RemovePlayerRequest{TeamID: team.ID, PlayerID: f.player.ID})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateTeam_KeepsStandings(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	team, err := f.app.CreateTeam(ctx, CreateTeamRequest{SeasonID: f.season.ID, Name: "Amarelo"})
	require.NoError(t, err)
	stored := f.repo.teams[team.ID]
	stored.Points, stored.Wins = 9, 3
	f.repo.teams[team.ID] = stored

	color := "#ffdf00"
	updated, err := f.app.UpdateTeam(ctx, UpdateTeamRequest{TeamID: team.ID, Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "Amarelo", updated.Name)
	assert.Equal(t, &color, updated.Color)
	assert.Equal(t, 9, updated.Points)

	blank := " "
	_, err = f.app.UpdateTeam(ctx, UpdateTeamRequest{TeamID: team.ID, Name: &blank})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	page, err := f.app.ListTeams(ctx, ListTeamsRequest{SeasonID: f.season.ID})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, DefaultPerPage, page.Meta.PerPage)
}
