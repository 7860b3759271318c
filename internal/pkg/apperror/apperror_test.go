package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"not found", NotFound("session %s not found", "s1"), ErrNotFound},
		{"forbidden", Forbidden("token does not match"), ErrForbidden},
		{"conflict", Conflict("transition %s -> %s not allowed", "ACTIVE", "ACCEPTED"), ErrConflict},
		{"validation", Validation("lat out of range"), ErrValidation},
		{"upstream", Upstream(errors.New("dial tcp"), "database unavailable"), ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.kind, Kind(tt.err))

			wrapped := fmt.Errorf("failed to do thing: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.kind)
			assert.Equal(t, tt.kind, Kind(wrapped))
		})
	}
}

func TestKind_Unclassified(t *testing.T) {
	assert.Nil(t, Kind(errors.New("plain")))
	assert.Equal(t, "internal server error", PublicMessage(errors.New("plain")))
}

func TestUpstream_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream(cause, "redis unavailable")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "redis unavailable: connection refused", err.Error())
	assert.Equal(t, "redis unavailable", PublicMessage(err))
}

func TestMessage(t *testing.T) {
	err := Conflict("user %s already has an active session", "u1")
	assert.Equal(t, "user u1 already has an active session", PublicMessage(err))
}
