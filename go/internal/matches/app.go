package matches

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/clock"
	"github.com/mcdev12/pelada/go/internal/events"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/rs/zerolog/log"
)

// MatchesRepository defines what the matches app layer needs from the repository
type MatchesRepository interface {
	// InTx runs fn against a repository bound to one transaction. Any error
	// returned by fn rolls back every write made through that repository.
	InTx(ctx context.Context, fn func(repo MatchesRepository) error) error

	GetRound(ctx context.Context, id uuid.UUID) (*models.Round, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	LockTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ApplyTeamResult(ctx context.Context, team *models.Team, result models.TeamResult) error
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	PeladaOfRound(ctx context.Context, roundID uuid.UUID) (uuid.UUID, error)

	CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	LockMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatches(ctx context.Context, roundID uuid.UUID) ([]models.Match, error)
	UpdateMatchState(ctx context.Context, match *models.Match) error

	CreateGoal(ctx context.Context, req RegisterGoalRequest) (*models.Goal, error)
	GetGoal(ctx context.Context, id uuid.UUID) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id uuid.UUID) error
	ListGoals(ctx context.Context, matchID uuid.UUID) ([]models.Goal, error)

	AppendEvent(ctx context.Context, event events.Event) error
}

// App handles match lifecycle and standings business logic
type App struct {
	repo  MatchesRepository
	clock *clock.Clock
}

// NewApp creates a new matches App
func NewApp(repo MatchesRepository, clk *clock.Clock) *App {
	return &App{
		repo:  repo,
		clock: clk,
	}
}

// CreateMatch schedules a match between two teams of the round's season
func (a *App) CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	if req.HomeTeamID == req.AwayTeamID {
		return nil, apperr.New(apperr.KindValidation, apperr.ReasonSameTeam, "a team cannot play against itself")
	}

	round, err := a.repo.GetRound(ctx, req.RoundID)
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	for _, teamID := range []uuid.UUID{req.HomeTeamID, req.AwayTeamID} {
		team, err := a.repo.GetTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("failed to get team: %w", err)
		}
		if team.SeasonID != round.SeasonID {
			return nil, apperr.New(apperr.KindValidation, apperr.ReasonTeamOutsideSeason,
				"team %s does not belong to season %s", teamID, round.SeasonID)
		}
	}

	match, err := a.repo.CreateMatch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info().
		Str("match_id", match.ID.String()).
		Str("round_id", match.RoundID.String()).
		Msg("match scheduled")
	return match, nil
}

// StartMatch moves a scheduled match to in progress
func (a *App) StartMatch(ctx context.Context, matchID uuid.UUID) (*models.Match, error) {
	var started *models.Match
	err := a.repo.InTx(ctx, func(repo MatchesRepository) error {
		match, err := repo.LockMatch(ctx, matchID)
		if err != nil {
			return err
		}
		switch match.Status {
		case models.MatchStatusFinished:
			return apperr.New(apperr.KindInvalidState, apperr.ReasonAlreadyFinalized, "match %s is already finalized", matchID)
		case models.MatchStatusInProgress:
			return apperr.New(apperr.KindInvalidState, apperr.ReasonMatchAlreadyStarted, "match %s has already started", matchID)
		}

		now := a.clock.Now()
		match.Status = models.MatchStatusInProgress
		match.StartedAt = &now
		if err := repo.UpdateMatchState(ctx, match); err != nil {
			return err
		}

		event, err := events.New(events.AggregateMatch, match.ID, events.TypeMatchStarted, events.MatchStartedPayload{
			MatchID:    match.ID.String(),
			RoundID:    match.RoundID.String(),
			HomeTeamID: match.HomeTeamID.String(),
			AwayTeamID: match.AwayTeamID.String(),
			StartedAt:  now,
		})
		if err != nil {
			return err
		}
		if err := repo.AppendEvent(ctx, event); err != nil {
			return err
		}

		started = match
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	log.Info().Str("match_id", matchID.String()).Msg("match started")
	return started, nil
}

// FinalizeMatch closes a match and applies its result to both teams'
// standings. The status change and both standings updates commit together.
func (a *App) FinalizeMatch(ctx context.Context, matchID uuid.UUID) (*models.Match, error) {
	var finalized *models.Match
	err := a.repo.InTx(ctx, func(repo MatchesRepository) error {
		match, err := repo.LockMatch(ctx, matchID)
		if err != nil {
			return err
		}
		if match.IsFinished() {
			return apperr.New(apperr.KindInvalidState, apperr.ReasonAlreadyFinalized, "match %s is already finalized", matchID)
		}

		now := a.clock.Now()
		match.Status = models.MatchStatusFinished
		match.EndedAt = &now
		if err := repo.UpdateMatchState(ctx, match); err != nil {
			return err
		}

		homeResult, awayResult := models.MatchResults(match.HomeGoals, match.AwayGoals)
		results := map[uuid.UUID]models.TeamResult{
			match.HomeTeamID: homeResult,
			match.AwayTeamID: awayResult,
		}
		// lock order is fixed so two finalizations sharing a team cannot deadlock
		first, second := match.HomeTeamID, match.AwayTeamID
		if second.String() < first.String() {
			first, second = second, first
		}
		for _, teamID := range []uuid.UUID{first, second} {
			team, err := repo.LockTeam(ctx, teamID)
			if err != nil {
				return err
			}
			if err := repo.ApplyTeamResult(ctx, team, results[teamID]); err != nil {
				return err
			}
		}

		event, err := events.New(events.AggregateMatch, match.ID, events.TypeMatchFinalized, events.MatchFinalizedPayload{
			MatchID:    match.ID.String(),
			RoundID:    match.RoundID.String(),
			HomeTeamID: match.HomeTeamID.String(),
			AwayTeamID: match.AwayTeamID.String(),
			HomeGoals:  match.HomeGoals,
			AwayGoals:  match.AwayGoals,
			EndedAt:    now,
		})
		if err != nil {
			return err
		}
		if err := repo.AppendEvent(ctx, event); err != nil {
			return err
		}

		finalized = match
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to finalize match: %w", err)
	}

	log.Info().
		Str("match_id", finalized.ID.String()).
		Int("home_goals", finalized.HomeGoals).
		Int("away_goals", finalized.AwayGoals).
		Msg("match finalized")
	return finalized, nil
}

// RegisterGoal records a goal in a match in progress and updates the tally
func (a *App) RegisterGoal(ctx context.Context, req RegisterGoalRequest) (*GoalResult, error) {
	if err := a.validateRegisterGoalRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var result *GoalResult
	err := a.repo.InTx(ctx, func(repo MatchesRepository) error {
		match, err := repo.LockMatch(ctx, req.MatchID)
		if err != nil {
			return err
		}
		if match.Status != models.MatchStatusInProgress {
			return apperr.New(apperr.KindInvalidState, apperr.ReasonMatchNotInProgress,
				"match %s is %s, goals can only be registered while in progress", match.ID, match.Status)
		}

		if _, err := repo.GetTeam(ctx, req.TeamID); err != nil {
			return err
		}
		scorerIsHome, ok := match.Side(req.TeamID)
		if !ok {
			return apperr.New(apperr.KindValidation, apperr.ReasonTeamNotInMatch,
				"team %s is not playing match %s", req.TeamID, match.ID)
		}
		peladaID, err := repo.PeladaOfRound(ctx, match.RoundID)
		if err != nil {
			return err
		}
		playerIDs := []uuid.UUID{req.PlayerID}
		if req.AssistPlayerID != nil {
			playerIDs = append(playerIDs, *req.AssistPlayerID)
		}
		for _, playerID := range playerIDs {
			player, err := repo.GetPlayer(ctx, playerID)
			if err != nil {
				return err
			}
			if player.PeladaID != peladaID {
				return apperr.New(apperr.KindValidation, apperr.ReasonPlayerOutsidePelada,
					"player %s does not belong to the pelada of match %s", player.ID, match.ID)
			}
		}

		goal, err := repo.CreateGoal(ctx, req)
		if err != nil {
			return err
		}
		match.CreditGoal(scorerIsHome, req.OwnGoal, 1)
		if err := repo.UpdateMatchState(ctx, match); err != nil {
			return err
		}
		if err := a.appendGoalEvent(ctx, repo, events.TypeGoalRegistered, goal, match); err != nil {
			return err
		}

		result = &GoalResult{Goal: *goal, Match: *match}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register goal: %w", err)
	}

	log.Info().
		Str("match_id", result.Match.ID.String()).
		Str("goal_id", result.Goal.ID.String()).
		Bool("own_goal", result.Goal.OwnGoal).
		Msg("goal registered")
	return result, nil
}

// RemoveGoal deletes a goal and reverses its effect on the tally
func (a *App) RemoveGoal(ctx context.Context, goalID uuid.UUID) (*models.Match, error) {
	var updated *models.Match
	err := a.repo.InTx(ctx, func(repo MatchesRepository) error {
		goal, err := repo.GetGoal(ctx, goalID)
		if err != nil {
			return err
		}
		match, err := repo.LockMatch(ctx, goal.MatchID)
		if err != nil {
			return err
		}
		if match.IsFinished() {
			return apperr.New(apperr.KindInvalidState, apperr.ReasonMatchFinalized,
				"match %s is finalized, its goals can no longer change", match.ID)
		}

		scorerIsHome, ok := match.Side(goal.TeamID)
		if !ok {
			return apperr.Internal(nil, fmt.Sprintf("goal %s belongs to a team outside match %s", goal.ID, match.ID))
		}
		if err := repo.DeleteGoal(ctx, goal.ID); err != nil {
			return err
		}
		match.CreditGoal(scorerIsHome, goal.OwnGoal, -1)
		if err := repo.UpdateMatchState(ctx, match); err != nil {
			return err
		}
		if err := a.appendGoalEvent(ctx, repo, events.TypeGoalRemoved, goal, match); err != nil {
			return err
		}

		updated = match
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove goal: %w", err)
	}

	log.Info().
		Str("match_id", updated.ID.String()).
		Str("goal_id", goalID.String()).
		Msg("goal removed")
	return updated, nil
}

// GetMatch retrieves a match with both teams and its goals
func (a *App) GetMatch(ctx context.Context, id uuid.UUID) (*models.MatchDetails, error) {
	match, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	home, err := a.repo.GetTeam(ctx, match.HomeTeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get home team: %w", err)
	}
	away, err := a.repo.GetTeam(ctx, match.AwayTeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get away team: %w", err)
	}
	goals, err := a.repo.ListGoals(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return &models.MatchDetails{
		Match:    *match,
		HomeTeam: home,
		AwayTeam: away,
		Goals:    goals,
	}, nil
}

// ListMatches lists the matches of a round
func (a *App) ListMatches(ctx context.Context, roundID uuid.UUID) ([]models.Match, error) {
	if _, err := a.repo.GetRound(ctx, roundID); err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	matches, err := a.repo.ListMatches(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (a *App) appendGoalEvent(ctx context.Context, repo MatchesRepository, eventType string, goal *models.Goal, match *models.Match) error {
	payload := events.GoalPayload{
		GoalID:    goal.ID.String(),
		MatchID:   match.ID.String(),
		TeamID:    goal.TeamID.String(),
		PlayerID:  goal.PlayerID.String(),
		Minute:    goal.Minute,
		OwnGoal:   goal.OwnGoal,
		HomeGoals: match.HomeGoals,
		AwayGoals: match.AwayGoals,
	}
	if goal.AssistPlayerID != nil {
		assist := goal.AssistPlayerID.String()
		payload.AssistPlayerID = &assist
	}
	event, err := events.New(events.AggregateMatch, match.ID, eventType, payload)
	if err != nil {
		return err
	}
	return repo.AppendEvent(ctx, event)
}

func (a *App) validateRegisterGoalRequest(req RegisterGoalRequest) error {
	if req.Minute != nil && *req.Minute < 0 {
		return apperr.New(apperr.KindValidation, apperr.ReasonInvalidMinute, "minute must not be negative")
	}
	if req.AssistPlayerID != nil && *req.AssistPlayerID == req.PlayerID {
		return apperr.New(apperr.KindValidation, apperr.ReasonAssistIsScorer, "a player cannot assist their own goal")
	}
	return nil
}
