package event

import "errors"

var (
	// ErrNoHandlers is returned in strict mode when no handlers are registered for an event.
	ErrNoHandlers = errors.New("no handlers registered for event")

	// ErrNilPayload is returned when Publish is called without a payload.
	ErrNilPayload = errors.New("event payload is nil")

	// ErrHandlerPanic wraps a panic recovered from a handler.
	ErrHandlerPanic = errors.New("event handler panicked")
)
