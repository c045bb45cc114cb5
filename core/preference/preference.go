package preference

import (
	"context"
	"errors"
)

// LanguageKey is the entry under which the selected language is stored.
const LanguageKey = "preferredLang"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("preference not found")

// Store is a durable key/value store for user preferences.
type Store interface {
	// Get returns the stored value or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
