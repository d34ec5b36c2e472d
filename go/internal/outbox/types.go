// Package outbox relays domain events written to the outbox table to a
// message broker. Events are delivered at least once; consumers dedupe on the
// event ID.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is an outbox row awaiting delivery
type Event struct {
	ID            uuid.UUID       `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   uuid.UUID       `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Publisher is an interface that defines our publisher.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// envelope is the message body every publisher sends
type envelope struct {
	EventID       string          `json:"eventId"`
	EventType     string          `json:"eventType"`
	AggregateType string          `json:"aggregateType"`
	AggregateID   string          `json:"aggregateId"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Payload       json.RawMessage `json:"payload"`
}

func marshalEnvelope(event Event) ([]byte, error) {
	data, err := json.Marshal(envelope{
		EventID:       event.ID.String(),
		EventType:     event.EventType,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID.String(),
		OccurredAt:    event.CreatedAt.UTC(),
		Payload:       event.Payload,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// subject is the broker subject or routing key for an event, for example
// "pelada.events.match.MatchFinalized"
func subject(prefix string, event Event) string {
	return fmt.Sprintf("%s.%s.%s", prefix, event.AggregateType, event.EventType)
}
