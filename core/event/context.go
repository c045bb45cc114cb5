package event

import (
	"context"
	"time"
)

type eventMetaKey struct{}

// Meta carries the delivery metadata of the event being handled.
type Meta struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func withEventMeta(ctx context.Context, evt Event) context.Context {
	return context.WithValue(ctx, eventMetaKey{}, Meta{
		ID:        evt.ID,
		Name:      evt.Name,
		CreatedAt: evt.CreatedAt,
	})
}

// MetaFromContext returns the metadata of the event currently being handled.
func MetaFromContext(ctx context.Context) (Meta, bool) {
	meta, ok := ctx.Value(eventMetaKey{}).(Meta)
	return meta, ok
}
