package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	events []Event
	sent   map[uuid.UUID]bool
}

func newFakeStore(events ...Event) *fakeStore {
	return &fakeStore{events: events, sent: map[uuid.UUID]bool{}}
}

func (s *fakeStore) FetchUnsent(ctx context.Context, limit int) ([]Event, error) {
	var out []Event
	for _, e := range s.events {
		if !s.sent[e.ID] && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeStore) FetchPending(ctx context.Context, id uuid.UUID) (*Event, error) {
	for _, e := range s.events {
		if e.ID == id && !s.sent[id] {
			e := e
			return &e, nil
		}
	}
	return nil, ErrNotPending
}

func (s *fakeStore) MarkSent(ctx context.Context, id uuid.UUID) error {
	s.sent[id] = true
	return nil
}

type fakePublisher struct {
	published []uuid.UUID
	failures  map[uuid.UUID]int // remaining failures per event, -1 fails forever
	attempts  int
}

func (p *fakePublisher) Publish(ctx context.Context, event Event) error {
	p.attempts++
	if n := p.failures[event.ID]; n != 0 {
		if n > 0 {
			p.failures[event.ID] = n - 1
		}
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, event.ID)
	return nil
}

func testRelayConfig() RelayConfig {
	return RelayConfig{BatchSize: 10, MaxRetries: 2, RetryDelay: time.Millisecond}
}

func newEvent(eventType string) Event {
	return Event{
		ID:            uuid.New(),
		AggregateType: "match",
		AggregateID:   uuid.New(),
		EventType:     eventType,
		Payload:       json.RawMessage(`{"home_score":2}`),
		CreatedAt:     time.Date(2025, 3, 1, 22, 30, 0, 0, time.UTC),
	}
}

func TestSweep_PublishesInOrder(t *testing.T) {
	first, second := newEvent("MatchStarted"), newEvent("GoalRegistered")
	store := newFakeStore(first, second)
	pub := &fakePublisher{failures: map[uuid.UUID]int{}}
	relay := NewRelay(store, pub, testRelayConfig())

	n, err := relay.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, pub.published)
	assert.True(t, store.sent[first.ID])
	assert.True(t, store.sent[second.ID])

	n, err = relay.Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSweep_RetriesThenLeavesFailedEventUnsent(t *testing.T) {
	flaky, broken := newEvent("MatchFinalized"), newEvent("GoalRemoved")
	store := newFakeStore(flaky, broken)
	pub := &fakePublisher{failures: map[uuid.UUID]int{flaky.ID: 1, broken.ID: -1}}
	relay := NewRelay(store, pub, testRelayConfig())

	n, err := relay.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, store.sent[flaky.ID])
	assert.False(t, store.sent[broken.ID])
	// 2 for the flaky event, 3 for the broken one
	assert.Equal(t, 5, pub.attempts)
}

func TestDeliver(t *testing.T) {
	event := newEvent("VoteCast")
	store := newFakeStore(event)
	pub := &fakePublisher{failures: map[uuid.UUID]int{}}
	relay := NewRelay(store, pub, testRelayConfig())

	require.NoError(t, relay.Deliver(context.Background(), event.ID))
	assert.True(t, store.sent[event.ID])

	// a second notification for the same event is a no-op
	require.NoError(t, relay.Deliver(context.Background(), event.ID))
	assert.Len(t, pub.published, 1)
}

func TestDeliver_PublishFailureKeepsEventPending(t *testing.T) {
	event := newEvent("PollClosed")
	store := newFakeStore(event)
	pub := &fakePublisher{failures: map[uuid.UUID]int{event.ID: -1}}
	relay := NewRelay(store, pub, testRelayConfig())

	err := relay.Deliver(context.Background(), event.ID)
	require.Error(t, err)
	assert.False(t, store.sent[event.ID])
}

func TestMarshalEnvelope(t *testing.T) {
	event := newEvent("MatchFinalized")

	data, err := marshalEnvelope(event)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, event.ID.String(), got["eventId"])
	assert.Equal(t, "MatchFinalized", got["eventType"])
	assert.Equal(t, "match", got["aggregateType"])
	assert.Equal(t, event.AggregateID.String(), got["aggregateId"])
	assert.Equal(t, map[string]any{"home_score": float64(2)}, got["payload"])
	assert.Equal(t, "pelada.events.match.MatchFinalized", subject("pelada.events", event))
}
