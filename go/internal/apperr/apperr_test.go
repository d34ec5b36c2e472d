package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKindAndReason(t *testing.T) {
	err := fmt.Errorf("failed to finalize match: %w", &Error{
		Kind:    KindInvalidState,
		Reason:  ReasonAlreadyFinalized,
		Message: "match already finalized",
	})

	assert.True(t, errors.Is(err, ErrAlreadyFinalized))
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.False(t, errors.Is(err, ErrMatchNotInProgress))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestAs_UntaggedIsInternal(t *testing.T) {
	cause := errors.New("connection reset")
	got := As(fmt.Errorf("failed to get team: %w", cause))

	assert.Equal(t, KindInternal, got.Kind)
	assert.ErrorIs(t, got, cause)
	assert.Nil(t, As(nil))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("match", "abc"), KindNotFound},
		{"wrapped validation", fmt.Errorf("ctx: %w", Validation("name is required")), KindValidation},
		{"conflict sentinel", ErrConcurrentUpdate, KindConflict},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "match 42 not found", NotFound("match", 42).Error())
	assert.Equal(t, "INVALID_STATE: POLL_NOT_OPEN", ErrPollNotOpen.Error())
	assert.Equal(t, "store failed: disk full", Internal(errors.New("disk full"), "store failed").Error())
}
