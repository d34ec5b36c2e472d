// Package access checks that the caller manages the pelada that owns a
// resource before a mutating operation runs.
package access

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/sqlutil"
	"github.com/rs/zerolog/log"
)

// Resource names an entity whose ownership can be checked
type Resource string

const (
	ResourcePelada Resource = "pelada"
	ResourcePlayer Resource = "player"
	ResourceSeason Resource = "season"
	ResourceRound  Resource = "round"
	ResourceTeam   Resource = "team"
	ResourceMatch  Resource = "match"
	ResourceGoal   Resource = "goal"
	ResourcePoll   Resource = "poll"
)

// Querier resolves the manager of the pelada owning each kind of resource
type Querier interface {
	ManagerOfPelada(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ManagerOfPlayer(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ManagerOfSeason(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ManagerOfRound(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ManagerOfTeam(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ManagerOfMatch(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ManagerOfGoal(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ManagerOfPoll(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// Guard authorizes mutations against resource ownership
type Guard struct {
	queries Querier
}

// NewGuard creates a new Guard
func NewGuard(queries Querier) *Guard {
	return &Guard{queries: queries}
}

// Authorize returns nil when the caller in ctx manages the pelada owning
// the resource. A missing caller is Unauthenticated, a missing resource is
// NotFound and any other caller is PermissionDenied.
func (g *Guard) Authorize(ctx context.Context, resource Resource, id uuid.UUID) error {
	userID, err := RequireUser(ctx)
	if err != nil {
		return err
	}

	managerID, err := g.managerOf(ctx, resource, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return apperr.NotFound(string(resource), id)
		}
		return fmt.Errorf("failed to resolve owner of %s %s: %w", resource, id, err)
	}

	if managerID != userID {
		log.Warn().
			Str("user_id", userID.String()).
			Str("resource", string(resource)).
			Str("resource_id", id.String()).
			Msg("access denied")
		return apperr.New(apperr.KindPermissionDenied, apperr.ReasonNone,
			"only the pelada manager can modify this %s", resource)
	}
	return nil
}

func (g *Guard) managerOf(ctx context.Context, resource Resource, id uuid.UUID) (uuid.UUID, error) {
	switch resource {
	case ResourcePelada:
		return g.queries.ManagerOfPelada(ctx, id)
	case ResourcePlayer:
		return g.queries.ManagerOfPlayer(ctx, id)
	case ResourceSeason:
		return g.queries.ManagerOfSeason(ctx, id)
	case ResourceRound:
		return g.queries.ManagerOfRound(ctx, id)
	case ResourceTeam:
		return g.queries.ManagerOfTeam(ctx, id)
	case ResourceMatch:
		return g.queries.ManagerOfMatch(ctx, id)
	case ResourceGoal:
		return g.queries.ManagerOfGoal(ctx, id)
	case ResourcePoll:
		return g.queries.ManagerOfPoll(ctx, id)
	}
	return uuid.Nil, fmt.Errorf("unknown resource %q", resource)
}
