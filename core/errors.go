package core

import (
	"errors"
	"fmt"
)

// Error kinds produced by the watchdog pipeline. See spec section 7
// ("Error Handling Design") for the recovery philosophy behind each one.
var (
	// ErrConfig covers a missing required setting, an unreadable
	// recipients file, or an unknown socket scheme. Fatal at startup.
	ErrConfig = errors.New("config error")

	// ErrProtocol covers an unexpected HTTP status from the engine,
	// either on stream open (fatal) or on a restart call (logged,
	// treated as a failed restart, no occasions append).
	ErrProtocol = errors.New("protocol error")

	// ErrStreamClosed means the peer closed the event stream mid-read;
	// the supervising loop exits on this error.
	ErrStreamClosed = errors.New("stream closed")

	// ErrTransientNotifier covers SMTP delivery failures. Logged, never
	// surfaced to the policy engine.
	ErrTransientNotifier = errors.New("notifier error")

	// ErrMalformedEvent covers a JSON decode failure on one frame. The
	// event is discarded and the pipeline continues.
	ErrMalformedEvent = errors.New("malformed event")
)

// WrapConfigError wraps ErrConfig with the offending setting or file.
func WrapConfigError(what string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrConfig, what)
	}
	return fmt.Errorf("%w: %s: %w", ErrConfig, what, err)
}

// WrapProtocolError wraps ErrProtocol with the operation and the status
// line observed from the engine.
func WrapProtocolError(op, status string) error {
	return fmt.Errorf("%w: %s: unexpected status %q", ErrProtocol, op, status)
}

// WrapStreamClosedError wraps ErrStreamClosed with the socket URL that closed.
func WrapStreamClosedError(socketURL string) error {
	return fmt.Errorf("%w: %s", ErrStreamClosed, socketURL)
}

// WrapNotifierError wraps ErrTransientNotifier with the underlying SMTP error.
func WrapNotifierError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrTransientNotifier, err)
}

// WrapMalformedEventError wraps ErrMalformedEvent with the decode error.
func WrapMalformedEventError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrMalformedEvent, err)
}

// IsFatal reports whether err should terminate the supervising loop:
// ErrConfig at startup, ErrProtocol on the main stream, or ErrStreamClosed
// at any time.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfig) || errors.Is(err, ErrProtocol) || errors.Is(err, ErrStreamClosed)
}
