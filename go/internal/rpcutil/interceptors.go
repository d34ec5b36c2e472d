package rpcutil

import (
	"context"
	"fmt"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/access"
	"github.com/rs/zerolog/log"
)

// UserIDHeader identifies the caller. Requests without it are anonymous.
const UserIDHeader = "X-User-ID"

// NewIdentityInterceptor stores the caller from UserIDHeader in the context
func NewIdentityInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			raw := req.Header().Get(UserIDHeader)
			if raw == "" {
				return next(ctx, req)
			}
			userID, err := uuid.Parse(raw)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("invalid %s header", UserIDHeader))
			}
			return next(access.WithUserID(ctx, userID), req)
		}
	}
}

// NewLoggingInterceptor logs every unary call with its outcome
func NewLoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			res, err := next(ctx, req)

			event := log.Debug()
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
				event = log.Info()
			}
			event.
				Str("procedure", req.Spec().Procedure).
				Str("code", code).
				Dur("duration", time.Since(start)).
				Msg("rpc")
			return res, err
		}
	}
}
