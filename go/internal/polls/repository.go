package polls

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/db"
	"github.com/mcdev12/pelada/go/internal/events"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/sqlutil"
)

const uniqueVotePerTarget = "votes_poll_id_voter_id_target_id_key"

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetRound(ctx context.Context, id uuid.UUID) (db.Round, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (db.Player, error)
	PeladaOfRound(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

	CreatePoll(ctx context.Context, arg db.CreatePollParams) (db.Poll, error)
	GetPoll(ctx context.Context, id uuid.UUID) (db.Poll, error)
	LockPoll(ctx context.Context, id uuid.UUID) (db.Poll, error)
	ListPollsByRound(ctx context.Context, arg db.ListPollsByRoundParams) ([]db.Poll, error)
	UpdatePollStatus(ctx context.Context, arg db.UpdatePollStatusParams) error
	ClosePoll(ctx context.Context, arg db.ClosePollParams) (db.Poll, error)

	CreateVote(ctx context.Context, arg db.CreateVoteParams) (db.Vote, error)
	CountVotesByVoter(ctx context.Context, arg db.CountVotesByVoterParams) (int64, error)
	HasVoteForTarget(ctx context.Context, arg db.HasVoteForTargetParams) (bool, error)
	PollTally(ctx context.Context, pollID uuid.UUID) ([]db.PollTallyRow, error)

	InsertOutboxEvent(ctx context.Context, arg db.InsertOutboxEventParams) error
}

// Repository implements poll and vote data access operations
type Repository struct {
	queries Querier
	sqlDB   *sql.DB
}

// NewRepository creates a new polls repository
func NewRepository(queries Querier, sqlDB *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		sqlDB:   sqlDB,
	}
}

// InTx runs fn with a repository bound to a single transaction
func (r *Repository) InTx(ctx context.Context, fn func(repo PollsRepository) error) error {
	if r.sqlDB == nil {
		return fn(r)
	}
	return sqlutil.Run(ctx, r.sqlDB,
		func(tx *sql.Tx) *db.Queries { return db.New(tx) },
		func(q *db.Queries) error {
			return fn(&Repository{queries: q})
		},
	)
}

func (r *Repository) GetRound(ctx context.Context, id uuid.UUID) (*models.Round, error) {
	round, err := r.queries.GetRound(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "round", id)
	}
	return &models.Round{
		ID:             round.ID,
		SeasonID:       round.SeasonID,
		Date:           round.RoundDate,
		TeamCount:      int(round.TeamCount),
		PlayersPerTeam: int(round.PlayersPerTeam),
		Status:         models.RoundStatus(round.Status),
		CreatedAt:      round.CreatedAt,
	}, nil
}

// PeladaOfRound returns the pelada that owns a round
func (r *Repository) PeladaOfRound(ctx context.Context, roundID uuid.UUID) (uuid.UUID, error) {
	peladaID, err := r.queries.PeladaOfRound(ctx, roundID)
	if err != nil {
		return uuid.Nil, notFoundOr(err, "round", roundID)
	}
	return peladaID, nil
}

func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "player", id)
	}
	return &models.Player{
		ID:        player.ID,
		PeladaID:  player.PeladaID,
		FullName:  player.FullName,
		Nickname:  sqlutil.FromSqlStringPtr(player.Nickname),
		Phone:     sqlutil.FromSqlStringPtr(player.Phone),
		PhotoURL:  sqlutil.FromSqlStringPtr(player.PhotoUrl),
		Active:    player.Active,
		CreatedAt: player.CreatedAt,
	}, nil
}

func (r *Repository) CreatePoll(ctx context.Context, poll models.Poll) (*models.Poll, error) {
	created, err := r.queries.CreatePoll(ctx, db.CreatePollParams{
		ID:       uuid.New(),
		RoundID:  poll.RoundID,
		OpensAt:  poll.OpensAt,
		ClosesAt: poll.ClosesAt,
		PollType: poll.Type,
		Status:   string(poll.Status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create poll: %w", err)
	}
	return dbPollToModel(created), nil
}

func (r *Repository) GetPoll(ctx context.Context, id uuid.UUID) (*models.Poll, error) {
	poll, err := r.queries.GetPoll(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "poll", id)
	}
	return dbPollToModel(poll), nil
}

// LockPoll reads a poll row with FOR UPDATE, serializing votes on the poll
func (r *Repository) LockPoll(ctx context.Context, id uuid.UUID) (*models.Poll, error) {
	poll, err := r.queries.LockPoll(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "poll", id)
	}
	return dbPollToModel(poll), nil
}

// ListPolls returns the polls of a round, newest first
func (r *Repository) ListPolls(ctx context.Context, roundID uuid.UUID, pollType *string) ([]models.Poll, error) {
	rows, err := r.queries.ListPollsByRound(ctx, db.ListPollsByRoundParams{
		RoundID:  roundID,
		PollType: sqlutil.ToSqlTrimmedString(pollType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	polls := make([]models.Poll, len(rows))
	for i, row := range rows {
		polls[i] = *dbPollToModel(row)
	}
	return polls, nil
}

func (r *Repository) UpdatePollStatus(ctx context.Context, id uuid.UUID, status models.PollStatus) error {
	err := r.queries.UpdatePollStatus(ctx, db.UpdatePollStatusParams{ID: id, Status: string(status)})
	if err != nil {
		return fmt.Errorf("failed to update poll status: %w", err)
	}
	return nil
}

// ClosePoll marks a poll closed with the given closing time
func (r *Repository) ClosePoll(ctx context.Context, id uuid.UUID, closesAt time.Time) (*models.Poll, error) {
	poll, err := r.queries.ClosePoll(ctx, db.ClosePollParams{ID: id, ClosesAt: closesAt})
	if err != nil {
		return nil, notFoundOr(err, "poll", id)
	}
	return dbPollToModel(poll), nil
}

func (r *Repository) CreateVote(ctx context.Context, req CastVoteRequest) (*models.Vote, error) {
	vote, err := r.queries.CreateVote(ctx, db.CreateVoteParams{
		ID:       uuid.New(),
		PollID:   req.PollID,
		VoterID:  req.VoterID,
		TargetID: req.TargetID,
		Points:   int32(req.Points),
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err, uniqueVotePerTarget) {
			return nil, apperr.New(apperr.KindValidation, apperr.ReasonDuplicateTarget,
				"player %s already voted for %s in this poll", req.VoterID, req.TargetID)
		}
		return nil, fmt.Errorf("failed to create vote: %w", err)
	}
	return &models.Vote{
		ID:        vote.ID,
		PollID:    vote.PollID,
		VoterID:   vote.VoterID,
		TargetID:  vote.TargetID,
		Points:    int(vote.Points),
		CreatedAt: vote.CreatedAt,
	}, nil
}

func (r *Repository) CountVotesByVoter(ctx context.Context, pollID, voterID uuid.UUID) (int, error) {
	count, err := r.queries.CountVotesByVoter(ctx, db.CountVotesByVoterParams{PollID: pollID, VoterID: voterID})
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return int(count), nil
}

func (r *Repository) HasVoteForTarget(ctx context.Context, pollID, voterID, targetID uuid.UUID) (bool, error) {
	exists, err := r.queries.HasVoteForTarget(ctx, db.HasVoteForTargetParams{
		PollID:   pollID,
		VoterID:  voterID,
		TargetID: targetID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check vote: %w", err)
	}
	return exists, nil
}

// Tally aggregates the votes of a poll per target
func (r *Repository) Tally(ctx context.Context, pollID uuid.UUID) ([]models.PollTally, error) {
	rows, err := r.queries.PollTally(ctx, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to tally poll: %w", err)
	}
	tallies := make([]models.PollTally, len(rows))
	for i, row := range rows {
		tallies[i] = models.PollTally{
			TargetID: row.TargetID,
			FullName: row.FullName,
			Nickname: sqlutil.FromSqlStringPtr(row.Nickname),
			Votes:    int(row.Votes),
			Points:   int(row.Points),
		}
	}
	return tallies, nil
}

// AppendEvent writes a domain event to the outbox
func (r *Repository) AppendEvent(ctx context.Context, event events.Event) error {
	err := r.queries.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		ID:            uuid.New(),
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.Type,
		Payload:       event.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to insert %s outbox event: %w", event.Type, err)
	}
	return nil
}

func notFoundOr(err error, entity string, id uuid.UUID) error {
	if sqlutil.IsNoRows(err) {
		return apperr.NotFound(entity, id)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

func dbPollToModel(p db.Poll) *models.Poll {
	return &models.Poll{
		ID:        p.ID,
		RoundID:   p.RoundID,
		OpensAt:   p.OpensAt,
		ClosesAt:  p.ClosesAt,
		Type:      p.PollType,
		Status:    models.PollStatus(p.Status),
		CreatedAt: p.CreatedAt,
	}
}
