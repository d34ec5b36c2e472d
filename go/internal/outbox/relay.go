package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store is the outbox table as seen by the relay
type Store interface {
	FetchUnsent(ctx context.Context, limit int) ([]Event, error)
	FetchPending(ctx context.Context, id uuid.UUID) (*Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

type RelayConfig struct {
	BatchSize  int           // Max events to fetch per sweep
	MaxRetries int           // Publish attempts after the first
	RetryDelay time.Duration // Multiplied by the attempt number
}

func DefaultRelayConfig() RelayConfig {
	return RelayConfig{
		BatchSize:  100,
		MaxRetries: 5,
		RetryDelay: 200 * time.Millisecond,
	}
}

// Relay publishes outbox events and marks them sent
type Relay struct {
	store     Store
	publisher Publisher
	cfg       RelayConfig
}

func NewRelay(store Store, publisher Publisher, cfg RelayConfig) *Relay {
	return &Relay{
		store:     store,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Deliver publishes the event with the given ID. An event that was already
// delivered by a sweep is skipped.
func (r *Relay) Deliver(ctx context.Context, id uuid.UUID) error {
	event, err := r.store.FetchPending(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotPending) {
			log.Debug().Str("event_id", id.String()).Msg("outbox event already delivered")
			return nil
		}
		return err
	}

	if err := r.publishWithRetry(ctx, *event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	if err := r.store.MarkSent(ctx, id); err != nil {
		return err
	}

	log.Info().Str("event_id", id.String()).Str("event_type", event.EventType).Msg("published and marked event as sent")
	return nil
}

// Sweep publishes a batch of unsent events in creation order and returns
// how many were delivered. A failing event is left for the next sweep.
func (r *Relay) Sweep(ctx context.Context) (int, error) {
	unsent, err := r.store.FetchUnsent(ctx, r.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, event := range unsent {
		if err := r.publishWithRetry(ctx, event); err != nil {
			if ctx.Err() != nil {
				return delivered, ctx.Err()
			}
			log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to publish event")
			continue
		}
		if err := r.store.MarkSent(ctx, event.ID); err != nil {
			log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to mark outbox event as sent")
			continue
		}
		delivered++
	}

	if len(unsent) > 0 {
		log.Info().Int("total", len(unsent)).Int("delivered", delivered).Msg("processed outbox events")
	}
	return delivered, nil
}

// publishWithRetry attempts to publish an outbox event with a linear backoff.
func (r *Relay) publishWithRetry(ctx context.Context, event Event) error {
	var lastErr error

	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.cfg.RetryDelay * time.Duration(attempt)):
			}
		}

		if err := r.publisher.Publish(ctx, event); err != nil {
			lastErr = err
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("failed to publish, retrying")
			continue
		}

		if attempt > 0 {
			log.Info().
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("publish succeeded after retry")
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d attempts: %w", r.cfg.MaxRetries+1, lastErr)
}
