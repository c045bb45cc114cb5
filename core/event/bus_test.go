package event_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherstationary/website/core/event"
)

type LanguageChanged struct {
	Lang string
}

type Unrelated struct{}

func TestBus_Publish(t *testing.T) {
	t.Parallel()

	t.Run("delivers payload to typed handlers in order", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus()

		var got []string
		bus.Subscribe(
			event.NewHandlerFunc(func(ctx context.Context, evt LanguageChanged) error {
				got = append(got, "first:"+evt.Lang)
				return nil
			}),
			event.NewHandlerFunc(func(ctx context.Context, evt LanguageChanged) error {
				got = append(got, "second:"+evt.Lang)
				return nil
			}),
		)

		require.NoError(t, bus.Publish(context.Background(), LanguageChanged{Lang: "sw"}))
		assert.Equal(t, []string{"first:sw", "second:sw"}, got)
	})

	t.Run("accepts pointer payloads", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus()

		var got string
		bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, evt LanguageChanged) error {
			got = evt.Lang
			return nil
		}))

		require.NoError(t, bus.Publish(context.Background(), &LanguageChanged{Lang: "en"}))
		assert.Equal(t, "en", got)
	})

	t.Run("does not deliver other event types", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus()

		called := false
		bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, evt LanguageChanged) error {
			called = true
			return nil
		}))

		require.NoError(t, bus.Publish(context.Background(), Unrelated{}))
		assert.False(t, called)
	})

	t.Run("joins handler errors and keeps going", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus()
		boom := errors.New("boom")

		secondRan := false
		bus.Subscribe(
			event.NewHandlerFunc(func(ctx context.Context, evt LanguageChanged) error {
				return boom
			}),
			event.NewHandlerFunc(func(ctx context.Context, evt LanguageChanged) error {
				secondRan = true
				return nil
			}),
		)

		err := bus.Publish(context.Background(), LanguageChanged{Lang: "sw"})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.True(t, secondRan)
	})

	t.Run("recovers handler panics", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus()
		bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, evt LanguageChanged) error {
			panic("listener exploded")
		}))

		err := bus.Publish(context.Background(), LanguageChanged{Lang: "sw"})
		assert.ErrorIs(t, err, event.ErrHandlerPanic)
	})

	t.Run("strict mode requires handlers", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus(event.WithStrict())

		err := bus.Publish(context.Background(), LanguageChanged{Lang: "sw"})
		assert.ErrorIs(t, err, event.ErrNoHandlers)
	})

	t.Run("rejects nil payload", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus()
		assert.ErrorIs(t, bus.Publish(context.Background(), nil), event.ErrNilPayload)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, bus.Publish(ctx, LanguageChanged{}), context.Canceled)
	})

	t.Run("exposes event metadata to handlers", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus()

		var meta event.Meta
		bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, evt LanguageChanged) error {
			var ok bool
			meta, ok = event.MetaFromContext(ctx)
			require.True(t, ok)
			return nil
		}))

		require.NoError(t, bus.Publish(context.Background(), LanguageChanged{Lang: "sw"}))
		assert.Equal(t, "LanguageChanged", meta.Name)
		assert.NotEmpty(t, meta.ID)
		assert.False(t, meta.CreatedAt.IsZero())
	})
}

func TestBus_Handlers(t *testing.T) {
	t.Parallel()

	bus := event.NewBus()
	bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, evt LanguageChanged) error { return nil }), nil)
	assert.Equal(t, 1, bus.Handlers("LanguageChanged"))
	assert.Equal(t, 0, bus.Handlers("Unrelated"))
}
