package event

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Bus delivers events to subscribed handlers synchronously, in the
// publisher's goroutine and in subscription order. Publish returns only
// after every handler has run.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	strict   bool
	logger   *slog.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger for the bus.
// If not set, logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithStrict makes Publish fail with ErrNoHandlers when nobody listens.
func WithStrict() Option {
	return func(b *Bus) {
		b.strict = true
	}
}

// NewBus creates an empty synchronous event bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		handlers: make(map[string][]Handler),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers one or more handlers.
// Multiple handlers can be registered for the same event type.
func (b *Bus) Subscribe(handlers ...Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, h := range handlers {
		if h == nil {
			continue
		}
		name := h.EventName()
		b.handlers[name] = append(b.handlers[name], h)
	}
}

// Publish wraps payload in an Event and runs every handler registered for
// its name. Handler errors are aggregated with errors.Join; a failing
// handler does not stop the remaining ones.
func (b *Bus) Publish(ctx context.Context, payload any) error {
	if payload == nil {
		return ErrNilPayload
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	evt := NewEvent(payload)

	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[evt.Name]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.DebugContext(ctx, "event has no handlers",
			slog.String("event_id", evt.ID),
			slog.String("event_name", evt.Name))
		if b.strict {
			return fmt.Errorf("%w: %s", ErrNoHandlers, evt.Name)
		}
		return nil
	}

	ctx = withEventMeta(ctx, evt)

	var errs []error
	for _, h := range handlers {
		if err := safeHandle(ctx, h, evt.Payload); err != nil {
			b.logger.ErrorContext(ctx, "event handler failed",
				slog.String("event_id", evt.ID),
				slog.String("event_name", evt.Name),
				slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("handler %s failed: %w", h.EventName(), err))
		}
	}

	return errors.Join(errs...)
}

// Handlers returns the number of handlers registered for the event name.
func (b *Bus) Handlers(eventName string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventName])
}
