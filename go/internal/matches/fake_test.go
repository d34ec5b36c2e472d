package matches

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/events"
	"github.com/mcdev12/pelada/go/internal/models"
)

// fakeRepo is an in-memory MatchesRepository. InTx restores the previous
// state when fn fails, like a rolled back transaction.
type fakeRepo struct {
	rounds  map[uuid.UUID]models.Round
	teams   map[uuid.UUID]models.Team
	players map[uuid.UUID]models.Player
	matches map[uuid.UUID]models.Match
	goals   map[uuid.UUID]models.Goal
	events  []events.Event

	// roundPeladas maps a round to the pelada owning its season
	roundPeladas map[uuid.UUID]uuid.UUID

	// failApplyFor makes ApplyTeamResult report a concurrent update for that team
	failApplyFor uuid.UUID
	seq          int
}

var _ MatchesRepository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		rounds:  map[uuid.UUID]models.Round{},
		teams:   map[uuid.UUID]models.Team{},
		players: map[uuid.UUID]models.Player{},
		matches: map[uuid.UUID]models.Match{},
		goals:   map[uuid.UUID]models.Goal{},

		roundPeladas: map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakeRepo) createdAt() time.Time {
	f.seq++
	return time.Date(2025, 3, 1, 9, 0, f.seq, 0, time.UTC)
}

func (f *fakeRepo) InTx(ctx context.Context, fn func(repo MatchesRepository) error) error {
	rounds, teams, players := maps.Clone(f.rounds), maps.Clone(f.teams), maps.Clone(f.players)
	matches, goals, evts := maps.Clone(f.matches), maps.Clone(f.goals), slices.Clone(f.events)
	if err := fn(f); err != nil {
		f.rounds, f.teams, f.players = rounds, teams, players
		f.matches, f.goals, f.events = matches, goals, evts
		return err
	}
	return nil
}

func (f *fakeRepo) GetRound(_ context.Context, id uuid.UUID) (*models.Round, error) {
	round, ok := f.rounds[id]
	if !ok {
		return nil, apperr.NotFound("round", id)
	}
	return &round, nil
}

func (f *fakeRepo) GetTeam(_ context.Context, id uuid.UUID) (*models.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, apperr.NotFound("team", id)
	}
	return &team, nil
}

func (f *fakeRepo) LockTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return f.GetTeam(ctx, id)
}

func (f *fakeRepo) ApplyTeamResult(_ context.Context, team *models.Team, result models.TeamResult) error {
	stored, ok := f.teams[team.ID]
	if !ok || stored.Version != team.Version || team.ID == f.failApplyFor {
		return apperr.ErrConcurrentUpdate
	}
	stored.Points += result.Points
	stored.Wins += result.Wins
	stored.Draws += result.Draws
	stored.Losses += result.Losses
	stored.GoalsFor += result.GoalsFor
	stored.GoalsAgainst += result.GoalsAgainst
	stored.Version++
	f.teams[team.ID] = stored
	team.Version = stored.Version
	return nil
}

func (f *fakeRepo) GetPlayer(_ context.Context, id uuid.UUID) (*models.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, apperr.NotFound("player", id)
	}
	return &player, nil
}

func (f *fakeRepo) PeladaOfRound(_ context.Context, roundID uuid.UUID) (uuid.UUID, error) {
	peladaID, ok := f.roundPeladas[roundID]
	if !ok {
		return uuid.Nil, apperr.NotFound("round", roundID)
	}
	return peladaID, nil
}

func (f *fakeRepo) CreateMatch(_ context.Context, req CreateMatchRequest) (*models.Match, error) {
	match := models.Match{
		ID:         uuid.New(),
		RoundID:    req.RoundID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Status:     models.MatchStatusScheduled,
		CreatedAt:  f.createdAt(),
	}
	f.matches[match.ID] = match
	return &match, nil
}

func (f *fakeRepo) GetMatch(_ context.Context, id uuid.UUID) (*models.Match, error) {
	match, ok := f.matches[id]
	if !ok {
		return nil, apperr.NotFound("match", id)
	}
	return &match, nil
}

func (f *fakeRepo) LockMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	return f.GetMatch(ctx, id)
}

func (f *fakeRepo) ListMatches(_ context.Context, roundID uuid.UUID) ([]models.Match, error) {
	var out []models.Match
	for _, m := range f.matches {
		if m.RoundID == roundID {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b models.Match) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

func (f *fakeRepo) UpdateMatchState(_ context.Context, match *models.Match) error {
	stored, ok := f.matches[match.ID]
	if !ok || stored.Version != match.Version {
		return apperr.ErrConcurrentUpdate
	}
	match.Version++
	f.matches[match.ID] = *match
	return nil
}

func (f *fakeRepo) CreateGoal(_ context.Context, req RegisterGoalRequest) (*models.Goal, error) {
	goal := models.Goal{
		ID:             uuid.New(),
		MatchID:        req.MatchID,
		TeamID:         req.TeamID,
		PlayerID:       req.PlayerID,
		AssistPlayerID: req.AssistPlayerID,
		Minute:         req.Minute,
		OwnGoal:        req.OwnGoal,
		CreatedAt:      f.createdAt(),
	}
	f.goals[goal.ID] = goal
	return &goal, nil
}

func (f *fakeRepo) GetGoal(_ context.Context, id uuid.UUID) (*models.Goal, error) {
	goal, ok := f.goals[id]
	if !ok {
		return nil, apperr.NotFound("goal", id)
	}
	return &goal, nil
}

func (f *fakeRepo) DeleteGoal(_ context.Context, id uuid.UUID) error {
	delete(f.goals, id)
	return nil
}

func (f *fakeRepo) ListGoals(_ context.Context, matchID uuid.UUID) ([]models.Goal, error) {
	var out []models.Goal
	for _, g := range f.goals {
		if g.MatchID == matchID {
			out = append(out, g)
		}
	}
	slices.SortFunc(out, func(a, b models.Goal) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

func (f *fakeRepo) AppendEvent(_ context.Context, event events.Event) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeRepo) eventTypes() []string {
	types := make([]string, len(f.events))
	for i, e := range f.events {
		types[i] = e.Type
	}
	return types
}

// fixture is one season with a round, two teams and a player on each side
type fixture struct {
	repo     *fakeRepo
	seasonID uuid.UUID
	round    models.Round
	home     models.Team
	away     models.Team
	homeStar models.Player
	awayStar models.Player
}

func newFixture() *fixture {
	repo := newFakeRepo()
	seasonID := uuid.New()
	peladaID := uuid.New()

	fx := &fixture{
		repo:     repo,
		seasonID: seasonID,
		round:    models.Round{ID: uuid.New(), SeasonID: seasonID, TeamCount: 2, PlayersPerTeam: 5},
		home:     models.Team{ID: uuid.New(), SeasonID: seasonID, Name: "Amarelo"},
		away:     models.Team{ID: uuid.New(), SeasonID: seasonID, Name: "Azul"},
		homeStar: models.Player{ID: uuid.New(), PeladaID: peladaID, FullName: "Arthur Antunes", Active: true},
		awayStar: models.Player{ID: uuid.New(), PeladaID: peladaID, FullName: "Romario Faria", Active: true},
	}
	repo.rounds[fx.round.ID] = fx.round
	repo.roundPeladas[fx.round.ID] = peladaID
	repo.teams[fx.home.ID] = fx.home
	repo.teams[fx.away.ID] = fx.away
	repo.players[fx.homeStar.ID] = fx.homeStar
	repo.players[fx.awayStar.ID] = fx.awayStar
	return fx
}

// addMatch stores a match in the given state with a preset score
func (fx *fixture) addMatch(status models.MatchStatus, homeGoals, awayGoals int) models.Match {
	match := models.Match{
		ID:         uuid.New(),
		RoundID:    fx.round.ID,
		HomeTeamID: fx.home.ID,
		AwayTeamID: fx.away.ID,
		HomeGoals:  homeGoals,
		AwayGoals:  awayGoals,
		Status:     status,
		CreatedAt:  fx.repo.createdAt(),
	}
	fx.repo.matches[match.ID] = match
	return match
}

func (fx *fixture) team(id uuid.UUID) models.Team {
	return fx.repo.teams[id]
}
