package access

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
)

type userIDKey struct{}

// WithUserID returns a context carrying the authenticated caller
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFrom returns the caller stored by WithUserID
func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// RequireUser returns the caller or an Unauthenticated error
func RequireUser(ctx context.Context) (uuid.UUID, error) {
	id, ok := UserIDFrom(ctx)
	if !ok {
		return uuid.Nil, apperr.New(apperr.KindUnauthenticated, apperr.ReasonNone, "authentication required")
	}
	return id, nil
}
