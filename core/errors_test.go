package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapConfigError(t *testing.T) {
	err := WrapConfigError("missing smtp relay", nil)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "missing smtp relay")

	wrapped := WrapConfigError("recipients file", errors.New("no such file"))
	assert.ErrorIs(t, wrapped, ErrConfig)
	assert.Contains(t, wrapped.Error(), "no such file")
}

func TestWrapProtocolError(t *testing.T) {
	err := WrapProtocolError("restart", "500 Internal Server Error")
	assert.ErrorIs(t, err, ErrProtocol)
	assert.Contains(t, err.Error(), "restart")
	assert.Contains(t, err.Error(), "500 Internal Server Error")
}

func TestWrapStreamClosedError(t *testing.T) {
	err := WrapStreamClosedError("ipc:///var/run/docker.sock")
	assert.ErrorIs(t, err, ErrStreamClosed)
	assert.Contains(t, err.Error(), "ipc:///var/run/docker.sock")
}

func TestWrapNotifierError(t *testing.T) {
	assert.NoError(t, WrapNotifierError(nil))

	err := WrapNotifierError(errors.New("dial tcp: connection refused"))
	assert.ErrorIs(t, err, ErrTransientNotifier)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWrapMalformedEventError(t *testing.T) {
	assert.NoError(t, WrapMalformedEventError(nil))

	err := WrapMalformedEventError(errors.New("unexpected end of JSON input"))
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"config", ErrConfig, true},
		{"protocol", ErrProtocol, true},
		{"stream closed", ErrStreamClosed, true},
		{"notifier", ErrTransientNotifier, false},
		{"malformed event", ErrMalformedEvent, false},
		{"other", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFatal(tt.err))
		})
	}
}
