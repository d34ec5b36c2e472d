package outbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/db"
	"github.com/mcdev12/pelada/go/internal/sqlutil"
)

// ErrNotPending is returned when an event is missing or already sent
var ErrNotPending = errors.New("outbox event not found or already sent")

// Querier defines what the repository needs from the database layer
type Querier interface {
	FetchUnsentOutbox(ctx context.Context, limit int32) ([]db.Outbox, error)
	FetchOutboxByID(ctx context.Context, id uuid.UUID) (db.Outbox, error)
	MarkOutboxSent(ctx context.Context, id uuid.UUID) error
}

type Repository struct {
	queries Querier
}

func NewRepository(queries Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// FetchUnsent returns up to limit unsent events, oldest first
func (r *Repository) FetchUnsent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := r.queries.FetchUnsentOutbox(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	events := make([]Event, len(rows))
	for i, row := range rows {
		events[i] = dbOutboxToEvent(row)
	}
	return events, nil
}

// FetchPending returns an unsent event by ID
func (r *Repository) FetchPending(ctx context.Context, id uuid.UUID) (*Event, error) {
	row, err := r.queries.FetchOutboxByID(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, ErrNotPending
		}
		return nil, fmt.Errorf("failed to fetch outbox event by ID: %w", err)
	}
	event := dbOutboxToEvent(row)
	return &event, nil
}

func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkOutboxSent(ctx, id); err != nil {
		return fmt.Errorf("failed to mark outbox event as sent: %w", err)
	}
	return nil
}

func dbOutboxToEvent(row db.Outbox) Event {
	return Event{
		ID:            row.ID,
		AggregateType: row.AggregateType,
		AggregateID:   row.AggregateID,
		EventType:     row.EventType,
		Payload:       row.Payload,
		CreatedAt:     row.CreatedAt,
	}
}
