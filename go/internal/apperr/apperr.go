// Package apperr defines the tagged error values returned by the app layer.
// Transport code maps a Kind to a status code; callers that need finer
// control match on the Reason with errors.Is against the exported sentinels.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the broad error category.
type Kind string

const (
	KindNotFound         Kind = "NOT_FOUND"
	KindInvalidState     Kind = "INVALID_STATE"
	KindValidation       Kind = "VALIDATION"
	KindConflict         Kind = "CONFLICT"
	KindPermissionDenied Kind = "PERMISSION_DENIED"
	KindUnauthenticated  Kind = "UNAUTHENTICATED"
	KindInternal         Kind = "INTERNAL"
)

// Reason narrows a Kind to a specific rule.
type Reason string

const (
	ReasonNone Reason = ""

	// match lifecycle
	ReasonMatchNotInProgress  Reason = "MATCH_NOT_IN_PROGRESS"
	ReasonAlreadyFinalized    Reason = "MATCH_ALREADY_FINALIZED"
	ReasonMatchFinalized      Reason = "MATCH_FINALIZED"
	ReasonMatchAlreadyStarted Reason = "MATCH_ALREADY_STARTED"
	ReasonTeamNotInMatch      Reason = "TEAM_NOT_IN_MATCH"
	ReasonTeamOutsideSeason   Reason = "TEAM_OUTSIDE_SEASON"
	ReasonSameTeam            Reason = "SAME_TEAM"
	ReasonInvalidMinute       Reason = "INVALID_MINUTE"
	ReasonAssistIsScorer      Reason = "ASSIST_IS_SCORER"

	// polls
	ReasonPollNotOpen       Reason = "POLL_NOT_OPEN"
	ReasonPollAlreadyClosed Reason = "POLL_ALREADY_CLOSED"
	ReasonInvalidWindow     Reason = "INVALID_WINDOW"
	ReasonMissingPollType   Reason = "MISSING_POLL_TYPE"
	ReasonSelfVote          Reason = "SELF_VOTE"
	ReasonVoteLimitReached  Reason = "VOTE_LIMIT_REACHED"
	ReasonDuplicateTarget   Reason = "DUPLICATE_TARGET"
	ReasonInvalidPoints     Reason = "INVALID_POINTS"

	// seasons, rounds, rosters
	ReasonActiveSeasonExists  Reason = "ACTIVE_SEASON_EXISTS"
	ReasonSeasonNotActive     Reason = "SEASON_NOT_ACTIVE"
	ReasonInvalidDates        Reason = "INVALID_DATES"
	ReasonAlreadyOnTeam       Reason = "ALREADY_ON_TEAM"
	ReasonPlayerOutsidePelada Reason = "PLAYER_OUTSIDE_PELADA"

	// accounts
	ReasonUsernameTaken      Reason = "USERNAME_TAKEN"
	ReasonEmailTaken         Reason = "EMAIL_TAKEN"
	ReasonInvalidCredentials Reason = "INVALID_CREDENTIALS"

	ReasonConcurrentUpdate Reason = "CONCURRENT_UPDATE"
)

// Error is a tagged application error.
type Error struct {
	Kind    Kind
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
		if e.Reason != ReasonNone {
			msg += ": " + string(e.Reason)
		}
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind, and on Reason when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == ReasonNone || t.Reason == e.Reason
}

// Sentinels for errors.Is.
var (
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrInvalidState     = &Error{Kind: KindInvalidState}
	ErrValidation       = &Error{Kind: KindValidation}
	ErrConflict         = &Error{Kind: KindConflict}
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied}
	ErrUnauthenticated  = &Error{Kind: KindUnauthenticated}
	ErrInternal         = &Error{Kind: KindInternal}

	ErrMatchNotInProgress  = &Error{Kind: KindInvalidState, Reason: ReasonMatchNotInProgress}
	ErrAlreadyFinalized    = &Error{Kind: KindInvalidState, Reason: ReasonAlreadyFinalized}
	ErrMatchFinalized      = &Error{Kind: KindInvalidState, Reason: ReasonMatchFinalized}
	ErrMatchAlreadyStarted = &Error{Kind: KindInvalidState, Reason: ReasonMatchAlreadyStarted}
	ErrPollNotOpen         = &Error{Kind: KindInvalidState, Reason: ReasonPollNotOpen}
	ErrPollAlreadyClosed   = &Error{Kind: KindInvalidState, Reason: ReasonPollAlreadyClosed}
	ErrSeasonNotActive     = &Error{Kind: KindInvalidState, Reason: ReasonSeasonNotActive}

	ErrTeamNotInMatch      = &Error{Kind: KindValidation, Reason: ReasonTeamNotInMatch}
	ErrTeamOutsideSeason   = &Error{Kind: KindValidation, Reason: ReasonTeamOutsideSeason}
	ErrSameTeam            = &Error{Kind: KindValidation, Reason: ReasonSameTeam}
	ErrInvalidMinute       = &Error{Kind: KindValidation, Reason: ReasonInvalidMinute}
	ErrAssistIsScorer      = &Error{Kind: KindValidation, Reason: ReasonAssistIsScorer}
	ErrInvalidWindow       = &Error{Kind: KindValidation, Reason: ReasonInvalidWindow}
	ErrMissingPollType     = &Error{Kind: KindValidation, Reason: ReasonMissingPollType}
	ErrSelfVote            = &Error{Kind: KindValidation, Reason: ReasonSelfVote}
	ErrVoteLimitReached    = &Error{Kind: KindValidation, Reason: ReasonVoteLimitReached}
	ErrDuplicateTarget     = &Error{Kind: KindValidation, Reason: ReasonDuplicateTarget}
	ErrInvalidPoints       = &Error{Kind: KindValidation, Reason: ReasonInvalidPoints}
	ErrInvalidDates        = &Error{Kind: KindValidation, Reason: ReasonInvalidDates}
	ErrInvalidCredentials  = &Error{Kind: KindValidation, Reason: ReasonInvalidCredentials}
	ErrPlayerOutsidePelada = &Error{Kind: KindValidation, Reason: ReasonPlayerOutsidePelada}

	ErrActiveSeasonExists = &Error{Kind: KindConflict, Reason: ReasonActiveSeasonExists}
	ErrAlreadyOnTeam      = &Error{Kind: KindConflict, Reason: ReasonAlreadyOnTeam}
	ErrUsernameTaken      = &Error{Kind: KindConflict, Reason: ReasonUsernameTaken}
	ErrEmailTaken         = &Error{Kind: KindConflict, Reason: ReasonEmailTaken}
	ErrConcurrentUpdate   = &Error{Kind: KindConflict, Reason: ReasonConcurrentUpdate}
)

// New builds an error with a formatted message.
func New(kind Kind, reason Reason, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing entity.
func NotFound(entity string, id any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %v not found", entity, id)}
}

// Validation reports a malformed input without a specific reason.
func Validation(format string, args ...any) *Error {
	return New(KindValidation, ReasonNone, format, args...)
}

// Internal wraps a store or infrastructure failure.
func Internal(err error, msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// As extracts the first *Error in the chain. Untagged errors are reported as
// Internal.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf returns the Kind of err, or KindInternal for untagged errors.
func KindOf(err error) Kind {
	return As(err).Kind
}
