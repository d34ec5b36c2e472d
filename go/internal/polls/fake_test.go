package polls

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

// fakeRepo is an in-memory PollsRepository with rollback on failed InTx
type fakeRepo struct {
	rounds  map[uuid.UUID]models.Round
	players map[uuid.UUID]models.Player
	polls   map[uuid.UUID]models.Poll
	votes   []models.Vote
	events  []events.Event
	seq     int

	// peladaID owns every round and player added through the helpers
	peladaID uuid.UUID
}

var _ PollsRepository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		rounds:  map[uuid.UUID]models.Round{},
		players: map[uuid.UUID]models.Player{},
		polls:   map[uuid.UUID]models.Poll{},

		peladaID: uuid.New(),
	}
}

func (f *fakeRepo) createdAt() time.Time {
	f.seq++
	return time.Date(2025, 3, 1, 9, 0, f.seq, 0, time.UTC)
}

func (f *fakeRepo) InTx(ctx context.Context, fn func(repo PollsRepository) error) error {
	polls, votes, evts := maps.Clone(f.polls), slices.Clone(f.votes), slices.Clone(f.events)
	if err := fn(f); err != nil {
		f.polls, f.votes, f.events = polls, votes, evts
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

func (f *fakeRepo) GetPlayer(_ context.Context, id uuid.UUID) (*models.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, apperr.NotFound("player", id)
	}
	return &player, nil
}

func (f *fakeRepo) PeladaOfRound(_ context.Context, roundID uuid.UUID) (uuid.UUID, error) {
	if _, ok := f.rounds[roundID]; !ok {
		return uuid.Nil, apperr.NotFound("round", roundID)
	}
	return f.peladaID, nil
}

func (f *fakeRepo) CreatePoll(_ context.Context, poll models.Poll) (*models.Poll, error) {
	poll.ID = uuid.New()
	poll.CreatedAt = f.createdAt()
	f.polls[poll.ID] = poll
	return &poll, nil
}

func (f *fakeRepo) GetPoll(_ context.Context, id uuid.UUID) (*models.Poll, error) {
	poll, ok := f.polls[id]
	if !ok {
		return nil, apperr.NotFound("poll", id)
	}
	return &poll, nil
}

func (f *fakeRepo) LockPoll(ctx context.Context, id uuid.UUID) (*models.Poll, error) {
	return f.GetPoll(ctx, id)
}

func (f *fakeRepo) ListPolls(_ context.Context, roundID uuid.UUID, pollType *string) ([]models.Poll, error) {
	var out []models.Poll
	for _, p := range f.polls {
		if p.RoundID != roundID || (pollType != nil && p.Type != *pollType) {
			continue
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b models.Poll) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (f *fakeRepo) UpdatePollStatus(_ context.Context, id uuid.UUID, status models.PollStatus) error {
	poll := f.polls[id]
	poll.Status = status
	f.polls[id] = poll
	return nil
}

func (f *fakeRepo) ClosePoll(_ context.Context, id uuid.UUID, closesAt time.Time) (*models.Poll, error) {
	poll, ok := f.polls[id]
	if !ok {
		return nil, apperr.NotFound("poll", id)
	}
	poll.ClosesAt = closesAt
	poll.Status = models.PollStatusClosed
	f.polls[id] = poll
	return &poll, nil
}

func (f *fakeRepo) CreateVote(_ context.Context, req CastVoteRequest) (*models.Vote, error) {
	vote := models.Vote{
		ID:        uuid.New(),
		PollID:    req.PollID,
		VoterID:   req.VoterID,
		TargetID:  req.TargetID,
		Points:    req.Points,
		CreatedAt: f.createdAt(),
	}
	f.votes = append(f.votes, vote)
	return &vote, nil
}

func (f *fakeRepo) CountVotesByVoter(_ context.Context, pollID, voterID uuid.UUID) (int, error) {
	count := 0
	for _, v := range f.votes {
		if v.PollID == pollID && v.VoterID == voterID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) HasVoteForTarget(_ context.Context, pollID, voterID, targetID uuid.UUID) (bool, error) {
	return slices.ContainsFunc(f.votes, func(v models.Vote) bool {
		return v.PollID == pollID && v.VoterID == voterID && v.TargetID == targetID
	}), nil
}

func (f *fakeRepo) Tally(_ context.Context, pollID uuid.UUID) ([]models.PollTally, error) {
	byTarget := map[uuid.UUID]*models.PollTally{}
	var order []uuid.UUID
	for _, v := range f.votes {
		if v.PollID != pollID {
			continue
		}
		t, ok := byTarget[v.TargetID]
		if !ok {
			player := f.players[v.TargetID]
			t = &models.PollTally{TargetID: v.TargetID, FullName: player.FullName, Nickname: player.Nickname}
			byTarget[v.TargetID] = t
			order = append(order, v.TargetID)
		}
		t.Votes++
		t.Points += v.Points
	}
	tallies := make([]models.PollTally, 0, len(order))
	for _, id := range order {
		tallies = append(tallies, *byTarget[id])
	}
	return tallies, nil
}

func (f *fakeRepo) AppendEvent(_ context.Context, event events.Event) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeRepo) addPlayer(name string) models.Player {
	player := models.Player{ID: uuid.New(), PeladaID: f.peladaID, FullName: name, Active: true}
	f.players[player.ID] = player
	return player
}

func (f *fakeRepo) addRound() models.Round {
	round := models.Round{ID: uuid.New(), SeasonID: uuid.New(), TeamCount: 2, PlayersPerTeam: 5}
	f.rounds[round.ID] = round
	return round
}

// addOutsider stores a player of another pelada
func (f *fakeRepo) addOutsider(name string) models.Player {
	player := models.Player{ID: uuid.New(), PeladaID: uuid.New(), FullName: name, Active: true}
	f.players[player.ID] = player
	return player
}
