// Package event provides a small, type-safe, synchronous event bus.
//
// Payloads are plain structs; the event name is the payload's type name.
// Handlers are registered on a Bus and run in the publisher's goroutine,
// so by the time Publish returns every listener has observed the event.
//
// # Usage
//
//	type LanguageChanged struct {
//		Lang     string
//		Previous string
//	}
//
//	bus := event.NewBus(event.WithLogger(log))
//	bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, evt LanguageChanged) error {
//		log.Info("language changed", "lang", evt.Lang)
//		return nil
//	}))
//
//	if err := bus.Publish(ctx, LanguageChanged{Lang: "sw", Previous: "en"}); err != nil {
//		// one or more handlers failed; errors are joined
//	}
//
// # Error Handling
//
// Handler errors are collected with errors.Join and returned from Publish.
// Panics are recovered and reported as ErrHandlerPanic. In strict mode
// (WithStrict) publishing an event nobody listens to returns ErrNoHandlers.
package event
