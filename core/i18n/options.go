package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/christopherstationary/website/core/preference"
)

const (
	// DefaultLang is the language used when no preference is stored.
	DefaultLang = "sw"

	// SecondaryLang is the other language bundled with the site.
	SecondaryLang = "en"
)

// Publisher broadcasts notifications to interested listeners.
type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// Option configures the Store during construction.
type Option func(*Store) error

// WithDefaultLanguage sets the fallback selection used when no valid preference exists.
func WithDefaultLanguage(lang string) Option {
	return func(s *Store) error {
		code := normalizeLanguage(lang)
		if code == "" {
			return fmt.Errorf("language cannot be empty")
		}
		s.defaultLang = code
		return nil
	}
}

// WithLanguages sets the recognised language codes. Load fetches one
// dictionary per language. The default language is always included.
func WithLanguages(langs ...string) Option {
	return func(s *Store) error {
		var codes []string
		for _, lang := range langs {
			code := normalizeLanguage(lang)
			if code != "" && !slices.Contains(codes, code) {
				codes = append(codes, code)
			}
		}
		if len(codes) == 0 {
			return fmt.Errorf("at least one language is required")
		}
		s.languages = codes
		return nil
	}
}

// WithSource sets where Load fetches dictionaries from.
func WithSource(src Source) Option {
	return func(s *Store) error {
		if src == nil {
			return fmt.Errorf("source cannot be nil")
		}
		s.source = src
		return nil
	}
}

// WithDictionary installs an already built dictionary, skipping the fetch.
func WithDictionary(dict *Dictionary) Option {
	return func(s *Store) error {
		if dict == nil {
			return fmt.Errorf("dictionary cannot be nil")
		}
		s.dict = dict
		return nil
	}
}

// WithPreferences sets the durable store holding the selected language.
func WithPreferences(store preference.Store) Option {
	return func(s *Store) error {
		s.prefs = store
		return nil
	}
}

// WithPreferenceKey overrides the key under which the selection is stored.
func WithPreferenceKey(key string) Option {
	return func(s *Store) error {
		if key == "" {
			return fmt.Errorf("preference key cannot be empty")
		}
		s.prefKey = key
		return nil
	}
}

// WithPublisher sets where LanguageChanged notifications are sent.
func WithPublisher(p Publisher) Option {
	return func(s *Store) error {
		s.publisher = p
		return nil
	}
}

// WithLogger sets the logger. Logs are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithMissingKeyHandler sets a function called whenever a key falls back.
// Useful for reporting untranslated text during development.
func WithMissingKeyHandler(handler func(lang, key string)) Option {
	return func(s *Store) error {
		s.missingKeyHandler = handler
		return nil
	}
}
