package event

import (
	"context"
	"fmt"
)

// HandlerFunc is a type-safe function signature for processing events of type T.
type HandlerFunc[T any] func(context.Context, T) error

// Handler processes events.
// Implementations are subscribed to a Bus to handle specific event types.
type Handler interface {
	// EventName returns the event name this handler processes.
	EventName() string

	// Handle executes the handler with the given event payload.
	Handle(ctx context.Context, payload any) error
}

// NewHandlerFunc creates a new type-safe handler from a function.
// The event name is derived from the type parameter.
//
// Example:
//
//	handler := event.NewHandlerFunc(func(ctx context.Context, evt i18n.LanguageChanged) error {
//	    return refreshLabels(ctx, evt.Lang)
//	})
func NewHandlerFunc[T any](fn HandlerFunc[T]) Handler {
	var zero T
	return &handlerFuncWrapper[T]{
		name: getEventName(zero),
		fn:   fn,
	}
}

type handlerFuncWrapper[T any] struct {
	name string
	fn   HandlerFunc[T]
}

func (h *handlerFuncWrapper[T]) EventName() string {
	return h.name
}

func (h *handlerFuncWrapper[T]) Handle(ctx context.Context, payload any) error {
	typed, err := unmarshalPayload[T](payload)
	if err != nil {
		return err
	}
	return h.fn(ctx, typed)
}

// safeHandle runs the handler and converts a panic into an error so one
// misbehaving listener cannot take down the publisher.
func safeHandle(ctx context.Context, h Handler, payload any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return h.Handle(ctx, payload)
}
