package matches

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/clock"
	"github.com/mcdev12/pelada/go/internal/events"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, repo MatchesRepository) (*App, *clock.Clock) {
	t.Helper()
	loc, err := clock.LoadLocation(clock.DefaultZone)
	require.NoError(t, err)
	clk := clock.New(clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 22, 30, 0, 0, loc)), loc)
	return NewApp(repo, clk), clk
}

func intPtr(v int) *int { return &v }

func TestFinalizeMatch_AppliesResult(t *testing.T) {
	tests := []struct {
		name                 string
		homeGoals, awayGoals int
		wantHome, wantAway   models.Team
	}{
		{
			name: "home win", homeGoals: 2, awayGoals: 1,
			wantHome: models.Team{Points: 3, Wins: 1, GoalsFor: 2, GoalsAgainst: 1},
			wantAway: models.Team{Losses: 1, GoalsFor: 1, GoalsAgainst: 2},
		},
		{
			name: "goalless draw", homeGoals: 0, awayGoals: 0,
			wantHome: models.Team{Points: 1, Draws: 1},
			wantAway: models.Team{Points: 1, Draws: 1},
		},
		{
			name: "away win", homeGoals: 1, awayGoals: 3,
			wantHome: models.Team{Losses: 1, GoalsFor: 1, GoalsAgainst: 3},
			wantAway: models.Team{Points: 3, Wins: 1, GoalsFor: 3, GoalsAgainst: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture()
			app, clk := newTestApp(t, fx.repo)
			match := fx.addMatch(models.MatchStatusInProgress, tt.homeGoals, tt.awayGoals)

			got, err := app.FinalizeMatch(context.Background(), match.ID)
			require.NoError(t, err)

			assert.Equal(t, models.MatchStatusFinished, got.Status)
			require.NotNil(t, got.EndedAt)
			assert.True(t, clk.Now().Equal(*got.EndedAt))

			for _, pair := range []struct{ got, want models.Team }{
				{fx.team(fx.home.ID), tt.wantHome},
				{fx.team(fx.away.ID), tt.wantAway},
			} {
				assert.Equal(t, pair.want.Points, pair.got.Points, pair.got.Name)
				assert.Equal(t, pair.want.Wins, pair.got.Wins, pair.got.Name)
				assert.Equal(t, pair.want.Draws, pair.got.Draws, pair.got.Name)
				assert.Equal(t, pair.want.Losses, pair.got.Losses, pair.got.Name)
				assert.Equal(t, pair.want.GoalsFor, pair.got.GoalsFor, pair.got.Name)
				assert.Equal(t, pair.want.GoalsAgainst, pair.got.GoalsAgainst, pair.got.Name)
			}
			assert.Equal(t, []string{events.TypeMatchFinalized}, fx.repo.eventTypes())
		})
	}
}

func TestFinalizeMatch_Twice(t *testing.T) {
	fx := newFixture()
	app, _ := newTestApp(t, fx.repo)
	match := fx.addMatch(models.MatchStatusInProgress, 1, 0)

	_, err := app.FinalizeMatch(context.Background(), match.ID)
	require.NoError(t, err)
	before := fx.team(fx.home.ID)

	_, err = app.FinalizeMatch(context.Background(), match.ID)
	assert.ErrorIs(t, err, apperr.ErrAlreadyFinalized)
	assert.Equal(t, before, fx.team(fx.home.ID))
	assert.Len(t, fx.repo.events, 1)
}

func TestFinalizeMatch_NotFound(t *testing.T) {
	fx := newFixture()
	app, _ := newTestApp(t, fx.repo)

	_, err := app.FinalizeMatch(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFinalizeMatch_FromScheduledCountsAsGoallessDraw(t *testing.T) {
	fx := newFixture()
	app, _ := newTestApp(t, fx.repo)
	match := fx.addMatch(models.MatchStatusScheduled, 0, 0)

	_, err := app.FinalizeMatch(context.Background(), match.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.team(fx.home.ID).Draws)
	assert.Equal(t, 1, fx.team(fx.away.ID).Draws)
}

func TestFinalizeMatch_RollsBackOnConcurrentTeamUpdate(t *testing.T) {
	fx := newFixture()
	app, _ := newTestApp(t, fx.repo)
	match := fx.addMatch(models.MatchStatusInProgress, 2, 0)
	fx.repo.failApplyFor = fx.away.ID

	_, err := app.FinalizeMatch(context.Background(), match.ID)
	assert.ErrorIs(t, err, apperr.ErrConcurrentUpdate)

	stored := fx.repo.matches[match.ID]
	assert.Equal(t, models.MatchStatusInProgress, stored.Status)
	assert.Nil(t, stored.EndedAt)
	assert.Equal(t, fx.home, fx.team(fx.home.ID))
	assert.Equal(t, fx.away, fx.team(fx.away.ID))
	assert.Empty(t, fx.repo.events)
}

func TestStartMatch(t *testing.T) {
	fx := newFixture()
	app, clk := newTestApp(t, fx.repo)
	match := fx.addMatch(models.MatchStatusScheduled, 0, 0)

	started, err := app.StartMatch(context.Background(), match.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusInProgress, started.Status)
	require.NotNil(t, started.StartedAt)
	assert.True(t, clk.Now().Equal(*started.StartedAt))

	_, err = app.StartMatch(context.Background(), match.ID)
	assert.ErrorIs(t, err, apperr.ErrMatchAlreadyStarted)

	finished := fx.addMatch(models.MatchStatusFinished, 1, 1)
	_, err = app.StartMatch(context.Background(), finished.ID)
	assert.ErrorIs(t, err, apperr.ErrAlreadyFinalized)
}

func TestRegisterGoal_CreditsTally(t *testing.T) {
	fx := newFixture()
	app, _ := newTestApp(t, fx.repo)
	match := fx.addMatch(models.MatchStatusInProgress, 0, 0)

	result, err := app.RegisterGoal(context.Background(), RegisterGoalRequest{
		MatchID:        match.ID,
		TeamID:         fx.away.ID,
		PlayerID:       fx.awayStar.ID,
		AssistPlayerID: &fx.homeStar.ID,
		Minute:         intPtr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Match.HomeGoals)
	assert.Equal(t, 1, result.Match.AwayGoals)
	assert.Equal(t, intPtr(12), result.Goal.Minute)
	assert.Equal(t, []string{events.TypeGoalRegistered}, fx.repo.eventTypes())
}

func TestRegisterGoal_OwnGoalRoundTrip(t *testing.T) {
	fx := newFixture()
	app, _ := newTestApp(t, fx.repo)
	match := fx.addMatch(models.MatchStatusInProgress, 0, 0)

	result, err := app.RegisterGoal(context.Background(), RegisterGoalRequest{
		MatchID:  match.ID,
		TeamID:   fx.home.ID,
		PlayerID: fx.homeStar.ID,
		OwnGoal:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Match.HomeGoals)
	assert.Equal(t, 1, result.Match.AwayGoals)

	updated, err := app.RemoveGoal(context.Background(), result.Goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.HomeGoals)
	assert.Equal(t, 0, updated.AwayGoals)
	assert.Empty(t, fx.repo.goals)
	assert.Equal(t, []string{events.TypeGoalRegistered, events.TypeGoalRemoved}, fx.repo.eventTypes())
}

func TestRegisterGoal_Rejections(t *testing.T) {
	fx := newFixture()
	app, _ := newTestApp(t, fx.repo)
	live := fx.addMatch(models.MatchStatusInProgress, 0, 0)
	scheduled := fx.addMatch(models.MatchStatusScheduled, 0, 0)
	finished := fx.addMatch(models.MatchStatusFinished, 1, 0)
	outsider := models.Team{ID: uuid.New(), SeasonID: fx.seasonID, Name: "Verde"}
	fx.repo.teams[outsider.ID] = outsider
	guest := models.Player{ID: uuid.New(), PeladaID: uuid.New(), FullName: "Convidado", Active: true}
	fx.repo.players[guest.ID] = guest

	tests := []struct {
		name    string
		req     RegisterGoalRequest
		wantErr error
	}{
		{
			name:    "unknown match",
			req:     RegisterGoalRequest{MatchID: uuid.New(), TeamID: fx.home.ID, PlayerID: fx.homeStar.ID},
			wantErr: apperr.ErrNotFound,
		},
		{
			name:    "scheduled match",
			req:     RegisterGoalRequest{MatchID: scheduled.ID, TeamID: fx.home.ID, PlayerID: fx.homeStar.ID},
			wantErr: apperr.ErrMatchNotInProgress,
		},
		{
			name:    "finished match",
			req:     RegisterGoalRequest{MatchID: finished.ID, TeamID: fx.home.ID, PlayerID: fx.homeStar.ID},
			wantErr: apperr.ErrMatchNotInProgress,
		},
		{
			name:    "unknown team",
			req:     RegisterGoalRequest{MatchID: live.ID, TeamID: uuid.New(), PlayerID: fx.homeStar.ID},
			wantErr: apperr.ErrNotFound,
		},
		{
			name:    "team not playing",
			req:     RegisterGoalRequest{MatchID: live.ID, TeamID: outsider.ID, PlayerID: fx.homeStar.ID},
			wantErr: apperr.ErrTeamNotInMatch,
		},
		{
			name:    "unknown scorer",
			req:     RegisterGoalRequest{MatchID: live.ID, TeamID: fx.home.ID, PlayerID: uuid.New()},
			wantErr: apperr.ErrNotFound,
		},
		{
			name: "unknown assist",
			req: RegisterGoalRequest{
				MatchID: live.ID, TeamID: fx.home.ID, PlayerID: fx.homeStar.ID, AssistPlayerID: ptr(uuid.New()),
			},
			wantErr: apperr.ErrNotFound,
		},
		{
			name:    "scorer from another pelada",
			req:     RegisterGoalRequest{MatchID: live.ID, TeamID: fx.home.ID, PlayerID: guest.ID},
			wantErr: apperr.ErrPlayerOutsidePelada,
		},
		{
			name: "assist from another pelada",
			req: RegisterGoalRequest{
				MatchID: live.ID, TeamID: fx.home.ID, PlayerID: fx.homeStar.ID, AssistPlayerID: &guest.ID,
			},
			wantErr: apperr.ErrPlayerOutsidePelada,
		},
		{
			name:    "negative minute",
			req:     RegisterGoalRequest{MatchID: live.ID, TeamID: fx.home.ID, PlayerID: fx.homeStar.ID, Minute: intPtr(-1)},
			wantErr: apperr.ErrInvalidMinute,
		},
		{
			name: "self assist",
			req: RegisterGoalRequest{
				MatchID: live.ID, TeamID: fx.home.ID, PlayerID: fx.homeStar.ID, AssistPlayerID: &fx.homeStar.ID,
			},
			wantErr: apperr.ErrAssistIsScorer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.RegisterGoal(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, fx.repo.goals)
	assert.Equal(t, 0, fx.repo.matches[live.ID].HomeGoals)
	assert.Empty(t, fx.repo.events)
}

func TestRemoveGoal_AfterFinalize(t *testing.T) {
	fx := newFixture()
	app, _ := newTestApp(t, fx.repo)
	match := fx.addMatch(models.MatchStatusInProgress, 0, 0)

	result, err := app.RegisterGoal(context.Background(), RegisterGoalRequest{
		MatchID: match.ID, TeamID: fx.home.ID, PlayerID: fx.homeStar.ID,
	})
	require.NoError(t, err)
	_, err = app.FinalizeMatch(context.Background(), match.ID)
	require.NoError(t, err)

	_, err = app.RemoveGoal(context.Background(), result.Goal.ID)
	assert.ErrorIs(t, err, apperr.ErrMatchFinalized)
	assert.Len(t, fx.repo.goals, 1)
	assert.Equal(t, 1, fx.repo.matches[match.ID].HomeGoals)

	_, err = app.RemoveGoal(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateMatch(t *testing.T) {
	fx := newFixture()
	app, _ := newTestApp(t, fx.repo)
	otherSeason := models.Team{ID: uuid.New(), SeasonID: uuid.New(), Name: "Preto"}
	fx.repo.teams[otherSeason.ID] = otherSeason

	_, err := app.CreateMatch(context.Background(), CreateMatchRequest{
		RoundID: fx.round.ID, HomeTeamID: fx.home.ID, AwayTeamID: fx.home.ID,
	})
	assert.ErrorIs(t, err, apperr.ErrSameTeam)

	_, err = app.CreateMatch(context.Background(), CreateMatchRequest{
		RoundID: fx.round.ID, HomeTeamID: fx.home.ID, AwayTeamID: otherSeason.ID,
	})
	assert.ErrorIs(t, err, apperr.ErrTeamOutsideSeason)

	_, err = app.CreateMatch(context.Background(), CreateMatchRequest{
		RoundID: uuid.New(), HomeTeamID: fx.home.ID, AwayTeamID: fx.away.ID,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	match, err := app.CreateMatch(context.Background(), CreateMatchRequest{
		RoundID: fx.round.ID, HomeTeamID: fx.home.ID, AwayTeamID: fx.away.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusScheduled, match.Status)
	assert.Zero(t, match.HomeGoals)
	assert.Zero(t, match.AwayGoals)
}

func TestMatchday(t *testing.T) {
	fx := newFixture()
	app, _ := newTestApp(t, fx.repo)
	ctx := context.Background()

	match, err := app.CreateMatch(ctx, CreateMatchRequest{
		RoundID: fx.round.ID, HomeTeamID: fx.home.ID, AwayTeamID: fx.away.ID,
	})
	require.NoError(t, err)
	_, err = app.StartMatch(ctx, match.ID)
	require.NoError(t, err)

	goals := []RegisterGoalRequest{
		{MatchID: match.ID, TeamID: fx.home.ID, PlayerID: fx.homeStar.ID, Minute: intPtr(3)},
		{MatchID: match.ID, TeamID: fx.away.ID, PlayerID: fx.awayStar.ID, Minute: intPtr(9)},
		{MatchID: match.ID, TeamID: fx.home.ID, PlayerID: fx.homeStar.ID, Minute: intPtr(17)},
		{MatchID: match.ID, TeamID: fx.away.ID, PlayerID: fx.awayStar.ID, Minute: intPtr(18), OwnGoal: true},
	}
	var last *GoalResult
	for _, req := range goals {
		last, err = app.RegisterGoal(ctx, req)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, last.Match.HomeGoals)
	assert.Equal(t, 1, last.Match.AwayGoals)

	_, err = app.FinalizeMatch(ctx, match.ID)
	require.NoError(t, err)

	home, away := fx.team(fx.home.ID), fx.team(fx.away.ID)
	assert.Equal(t, 3, home.Points)
	assert.Equal(t, 3, home.GoalsFor)
	assert.Equal(t, 1, home.GoalsAgainst)
	assert.Equal(t, 0, away.Points)
	assert.Equal(t, 1, away.Losses)

	details, err := app.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Len(t, details.Goals, 4)
	assert.Equal(t, "Amarelo", details.HomeTeam.Name)
	assert.Equal(t, "Azul", details.AwayTeam.Name)

	listed, err := app.ListMatches(ctx, fx.round.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, models.MatchStatusFinished, listed[0].Status)

	assert.Equal(t, []string{
		events.TypeMatchStarted,
		events.TypeGoalRegistered,
		events.TypeGoalRegistered,
		events.TypeGoalRegistered,
		events.TypeGoalRegistered,
		events.TypeMatchFinalized,
	}, fx.repo.eventTypes())
}

func ptr[T any](v T) *T { return &v }
