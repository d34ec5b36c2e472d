package rpcutil

import (
	"errors"

	"connectrpc.com/connect"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/rs/zerolog/log"
)

// ReasonHeader carries the apperr.Reason of a failed call
const ReasonHeader = "Pelada-Error-Reason"

// CodeOf maps an application error kind to a connect code
func CodeOf(err error) connect.Code {
	e := apperr.As(err)
	switch e.Kind {
	case apperr.KindNotFound:
		return connect.CodeNotFound
	case apperr.KindInvalidState:
		return connect.CodeFailedPrecondition
	case apperr.KindValidation:
		return connect.CodeInvalidArgument
	case apperr.KindConflict:
		if e.Reason == apperr.ReasonConcurrentUpdate {
			return connect.CodeAborted
		}
		return connect.CodeAlreadyExists
	case apperr.KindPermissionDenied:
		return connect.CodePermissionDenied
	case apperr.KindUnauthenticated:
		return connect.CodeUnauthenticated
	}
	return connect.CodeInternal
}

// ToConnectError converts an app layer error into a *connect.Error.
// Internal failures are logged and their details hidden from the caller.
func ToConnectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	code := CodeOf(err)
	if code == connect.CodeInternal {
		log.Error().Err(err).Msg("request failed")
		return connect.NewError(code, errors.New("internal error"))
	}

	connectErr = connect.NewError(code, err)
	if reason := apperr.As(err).Reason; reason != apperr.ReasonNone {
		connectErr.Meta().Set(ReasonHeader, string(reason))
	}
	return connectErr
}
