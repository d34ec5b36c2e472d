package outbox

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogPublisher writes events to the log instead of a broker. Used for local
// development.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, event Event) error {
	log.Info().
		Str("subject", subject("pelada.events", event)).
		Str("event_id", event.ID.String()).
		Str("aggregate_id", event.AggregateID.String()).
		RawJSON("payload", event.Payload).
		Msg("event")
	return nil
}
