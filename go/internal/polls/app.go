// Package polls is the voting engine: time-windowed polls attached to a
// round, ballot validation and result tallies.
package polls

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/clock"
	"github.com/mcdev12/pelada/go/internal/events"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/rs/zerolog/log"
)

// PollsRepository defines what the polls app layer needs from the repository
type PollsRepository interface {
	InTx(ctx context.Context, fn func(repo PollsRepository) error) error

	GetRound(ctx context.Context, id uuid.UUID) (*models.Round, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	PeladaOfRound(ctx context.Context, roundID uuid.UUID) (uuid.UUID, error)

	CreatePoll(ctx context.Context, poll models.Poll) (*models.Poll, error)
	GetPoll(ctx context.Context, id uuid.UUID) (*models.Poll, error)
	LockPoll(ctx context.Context, id uuid.UUID) (*models.Poll, error)
	ListPolls(ctx context.Context, roundID uuid.UUID, pollType *string) ([]models.Poll, error)
	UpdatePollStatus(ctx context.Context, id uuid.UUID, status models.PollStatus) error
	ClosePoll(ctx context.Context, id uuid.UUID, closesAt time.Time) (*models.Poll, error)

	CreateVote(ctx context.Context, req CastVoteRequest) (*models.Vote, error)
	CountVotesByVoter(ctx context.Context, pollID, voterID uuid.UUID) (int, error)
	HasVoteForTarget(ctx context.Context, pollID, voterID, targetID uuid.UUID) (bool, error)
	Tally(ctx context.Context, pollID uuid.UUID) ([]models.PollTally, error)

	AppendEvent(ctx context.Context, event events.Event) error
}

// App handles poll and vote business logic
type App struct {
	repo  PollsRepository
	clock *clock.Clock
}

// NewApp creates a new polls App
func NewApp(repo PollsRepository, clk *clock.Clock) *App {
	return &App{
		repo:  repo,
		clock: clk,
	}
}

// CreatePoll creates a poll with its status derived from the current time
func (a *App) CreatePoll(ctx context.Context, req CreatePollRequest) (*models.Poll, error) {
	pollType := strings.TrimSpace(req.Type)
	if pollType == "" {
		return nil, apperr.New(apperr.KindValidation, apperr.ReasonMissingPollType, "poll type is required")
	}

	if _, err := a.repo.GetRound(ctx, req.RoundID); err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	opensAt, err := a.clock.ParseTimestamp(req.OpensAt)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, apperr.ReasonInvalidWindow, "invalid opens_at: %v", err)
	}
	closesAt, err := a.clock.ParseTimestamp(req.ClosesAt)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, apperr.ReasonInvalidWindow, "invalid closes_at: %v", err)
	}
	if !closesAt.After(opensAt) {
		return nil, apperr.New(apperr.KindValidation, apperr.ReasonInvalidWindow, "closes_at must be after opens_at")
	}

	poll, err := a.repo.CreatePoll(ctx, models.Poll{
		RoundID:  req.RoundID,
		OpensAt:  opensAt,
		ClosesAt: closesAt,
		Type:     pollType,
		Status:   models.PollStatusAt(opensAt, closesAt, a.clock.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create poll: %w", err)
	}

	log.Info().
		Str("poll_id", poll.ID.String()).
		Str("round_id", poll.RoundID.String()).
		Str("type", poll.Type).
		Str("status", string(poll.Status)).
		Msg("poll created")
	return poll, nil
}

// GetPoll retrieves a poll, persisting its status if it went stale
func (a *App) GetPoll(ctx context.Context, id uuid.UUID) (*models.Poll, error) {
	poll, err := a.repo.GetPoll(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}
	if err := a.syncStatus(ctx, a.repo, poll); err != nil {
		return nil, err
	}
	return poll, nil
}

// ListPolls lists the polls of a round, newest first
func (a *App) ListPolls(ctx context.Context, roundID uuid.UUID, pollType *string) ([]models.Poll, error) {
	if _, err := a.repo.GetRound(ctx, roundID); err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	polls, err := a.repo.ListPolls(ctx, roundID, pollType)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	for i := range polls {
		if err := a.syncStatus(ctx, a.repo, &polls[i]); err != nil {
			return nil, err
		}
	}
	return polls, nil
}

// CastVote records one vote. Checks run in this order: poll, voter and
// target exist; the poll is open; no self vote; the voter is under the
// vote limit; the target is new for this voter; points are positive.
func (a *App) CastVote(ctx context.Context, req CastVoteRequest) (*models.Vote, error) {
	var (
		vote     *models.Vote
		rejected error
	)
	err := a.repo.InTx(ctx, func(repo PollsRepository) error {
		poll, err := repo.LockPoll(ctx, req.PollID)
		if err != nil {
			return err
		}
		peladaID, err := repo.PeladaOfRound(ctx, poll.RoundID)
		if err != nil {
			return err
		}
		for _, playerID := range []uuid.UUID{req.VoterID, req.TargetID} {
			player, err := repo.GetPlayer(ctx, playerID)
			if err != nil {
				return err
			}
			if player.PeladaID != peladaID {
				return apperr.New(apperr.KindValidation, apperr.ReasonPlayerOutsidePelada,
					"player %s does not belong to the pelada of poll %s", player.ID, poll.ID)
			}
		}

		if err := a.syncStatus(ctx, repo, poll); err != nil {
			return err
		}
		if poll.Status != models.PollStatusOpen {
			// commit the refreshed status, then report the rejection
			rejected = apperr.New(apperr.KindInvalidState, apperr.ReasonPollNotOpen,
				"poll %s is %s", poll.ID, poll.Status)
			return nil
		}

		if err := a.validateBallot(ctx, repo, req); err != nil {
			return err
		}

		vote, err = repo.CreateVote(ctx, req)
		if err != nil {
			return err
		}

		event, err := events.New(events.AggregatePoll, poll.ID, events.TypeVoteCast, events.VoteCastPayload{
			VoteID:   vote.ID.String(),
			PollID:   poll.ID.String(),
			VoterID:  vote.VoterID.String(),
			TargetID: vote.TargetID.String(),
			Points:   vote.Points,
			CastAt:   a.clock.Now(),
		})
		if err != nil {
			return err
		}
		return repo.AppendEvent(ctx, event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cast vote: %w", err)
	}
	if rejected != nil {
		return nil, fmt.Errorf("failed to cast vote: %w", rejected)
	}

	log.Info().
		Str("poll_id", vote.PollID.String()).
		Str("vote_id", vote.ID.String()).
		Msg("vote cast")
	return vote, nil
}

// PollResult aggregates the votes of a poll
func (a *App) PollResult(ctx context.Context, pollID uuid.UUID) (*models.PollResult, error) {
	poll, err := a.GetPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}
	tallies, err := a.repo.Tally(ctx, poll.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to tally poll: %w", err)
	}
	result := BuildResult(*poll, tallies)
	return &result, nil
}

// RoundPollResults returns every poll of a round with its result, newest first
func (a *App) RoundPollResults(ctx context.Context, roundID uuid.UUID, pollType *string) ([]models.PollResult, error) {
	polls, err := a.ListPolls(ctx, roundID, pollType)
	if err != nil {
		return nil, err
	}
	results := make([]models.PollResult, 0, len(polls))
	for _, poll := range polls {
		tallies, err := a.repo.Tally(ctx, poll.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to tally poll %s: %w", poll.ID, err)
		}
		results = append(results, BuildResult(poll, tallies))
	}
	return results, nil
}

// ClosePoll ends a poll early. A poll still inside its window gets its
// closing time moved to now; a closed poll cannot be closed again.
func (a *App) ClosePoll(ctx context.Context, pollID uuid.UUID) (*models.Poll, error) {
	var closed *models.Poll
	err := a.repo.InTx(ctx, func(repo PollsRepository) error {
		poll, err := repo.LockPoll(ctx, pollID)
		if err != nil {
			return err
		}
		now := a.clock.Now()
		if effectiveStatus(*poll, now) == models.PollStatusClosed {
			return apperr.New(apperr.KindInvalidState, apperr.ReasonPollAlreadyClosed, "poll %s is already closed", pollID)
		}

		closesAt := poll.ClosesAt
		if now.After(poll.OpensAt) && now.Before(closesAt) {
			closesAt = now
		}
		closed, err = repo.ClosePoll(ctx, poll.ID, closesAt)
		if err != nil {
			return err
		}

		event, err := events.New(events.AggregatePoll, poll.ID, events.TypePollClosed, events.PollClosedPayload{
			PollID:   poll.ID.String(),
			RoundID:  poll.RoundID.String(),
			ClosedAt: now,
		})
		if err != nil {
			return err
		}
		return repo.AppendEvent(ctx, event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to close poll: %w", err)
	}

	log.Info().Str("poll_id", pollID.String()).Msg("poll closed")
	return closed, nil
}

// BuildResult ranks tallies by points, then votes, then name. Percentages
// are shares of all votes cast, rounded to two decimals.
func BuildResult(poll models.Poll, tallies []models.PollTally) models.PollResult {
	total := 0
	for _, t := range tallies {
		total += t.Votes
	}

	entries := make([]models.PollResultEntry, len(tallies))
	for i, t := range tallies {
		entries[i] = models.PollResultEntry{
			PlayerID:   t.TargetID,
			FullName:   t.FullName,
			Nickname:   t.Nickname,
			Votes:      t.Votes,
			Percentage: percentage(t.Votes, total),
			Points:     t.Points,
		}
	}
	slices.SortStableFunc(entries, func(a, b models.PollResultEntry) int {
		return cmp.Or(
			cmp.Compare(b.Points, a.Points),
			cmp.Compare(b.Votes, a.Votes),
			strings.Compare(a.FullName, b.FullName),
		)
	})

	result := models.PollResult{
		Poll:       poll,
		TotalVotes: total,
		Entries:    entries,
	}
	if len(entries) > 0 {
		winner := entries[0]
		result.Winner = &winner
	}
	return result
}

func percentage(votes, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(votes)/float64(total)*100*100) / 100
}

// effectiveStatus derives the status from the window. Closing is terminal:
// a poll closed early stays closed even at its new closing instant.
func effectiveStatus(poll models.Poll, now time.Time) models.PollStatus {
	if poll.Status == models.PollStatusClosed {
		return models.PollStatusClosed
	}
	return poll.StatusAt(now)
}

// syncStatus writes back the derived status when the stored one is stale
func (a *App) syncStatus(ctx context.Context, repo PollsRepository, poll *models.Poll) error {
	status := effectiveStatus(*poll, a.clock.Now())
	if status == poll.Status {
		return nil
	}
	if err := repo.UpdatePollStatus(ctx, poll.ID, status); err != nil {
		return err
	}
	log.Debug().
		Str("poll_id", poll.ID.String()).
		Str("from", string(poll.Status)).
		Str("to", string(status)).
		Msg("poll status refreshed")
	poll.Status = status
	return nil
}

func (a *App) validateBallot(ctx context.Context, repo PollsRepository, req CastVoteRequest) error {
	if req.VoterID == req.TargetID {
		return apperr.New(apperr.KindValidation, apperr.ReasonSelfVote, "players cannot vote for themselves")
	}

	count, err := repo.CountVotesByVoter(ctx, req.PollID, req.VoterID)
	if err != nil {
		return err
	}
	if count >= models.MaxVotesPerVoter {
		return apperr.New(apperr.KindValidation, apperr.ReasonVoteLimitReached,
			"player %s already cast %d votes in this poll", req.VoterID, models.MaxVotesPerVoter)
	}

	duplicate, err := repo.HasVoteForTarget(ctx, req.PollID, req.VoterID, req.TargetID)
	if err != nil {
		return err
	}
	if duplicate {
		return apperr.New(apperr.KindValidation, apperr.ReasonDuplicateTarget,
			"player %s already voted for %s in this poll", req.VoterID, req.TargetID)
	}

	if req.Points <= 0 {
		return apperr.New(apperr.KindValidation, apperr.ReasonInvalidPoints, "points must be positive")
	}
	return nil
}
