package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		kind     Kind
	}{
		{"validation", Validation("op", "bad"), ErrValidation, KindValidation},
		{"invalid state", InvalidState("op", "bad"), ErrInvalidState, KindInvalidState},
		{"range", Range("op", "rating", "bad"), ErrRange, KindRange},
		{"not found", NotFound("op", "missing"), ErrNotFound, KindNotFound},
		{"unavailable", Unavailable("op", "closed"), ErrUnavailable, KindUnavailable},
		{"capacity", CapacityExceeded("op", "full"), ErrCapacityExceeded, KindCapacityExceeded},
		{"conflict", Conflict("op", "stale"), ErrConflict, KindConflict},
		{"forbidden", Forbidden("op", "nope"), ErrForbidden, KindForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.True(t, IsKind(tt.err, tt.kind))

			wrapped := fmt.Errorf("service: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			kind, ok := KindOf(wrapped)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestError_DoesNotMatchOtherKinds(t *testing.T) {
	err := Validation("facility.create", "name is required")
	assert.False(t, errors.Is(err, ErrInvalidState))
	assert.False(t, IsKind(err, KindNotFound))
}

func TestError_Message(t *testing.T) {
	err := ValidationField("rating.create", "comment", "comment is too long")
	assert.Equal(t, "rating.create: comment is too long (field=comment)", err.Error())

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestKindOf_PlainError(t *testing.T) {
	_, ok := KindOf(errors.New("boom"))
	assert.False(t, ok)
}
