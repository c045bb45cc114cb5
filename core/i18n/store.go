package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/christopherstationary/website/core/event"
	"github.com/christopherstationary/website/core/logger"
	"github.com/christopherstationary/website/core/preference"
	"github.com/christopherstationary/website/pkg/async"
)

// ResolveFunc resolves a dotted key path in a fixed language.
type ResolveFunc func(key string) Result

// Target holds text bound to dictionary keys. Localize rewrites every bound
// element for lang and returns the number of element writes performed.
type Target interface {
	Localize(resolve ResolveFunc, lang string) int
}

// Store resolves dotted key paths in the selected language, persists the
// selection and re-localizes bound targets when it changes.
//
// The dictionary is immutable once loaded. The selection is guarded by a
// mutex, so a Store may be shared between goroutines.
type Store struct {
	mu      sync.RWMutex
	dict    *Dictionary
	current string
	targets []Target

	defaultLang       string
	languages         []string
	source            Source
	prefs             preference.Store
	prefKey           string
	publisher         Publisher
	logger            *slog.Logger
	missingKeyHandler func(lang, key string)
}

// NewStore creates a Store. The selection starts at the default language
// until Load restores the persisted preference.
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{
		defaultLang: DefaultLang,
		languages:   []string{DefaultLang, SecondaryLang},
		prefKey:     preference.LanguageKey,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if !slices.Contains(s.languages, s.defaultLang) {
		s.languages = append([]string{s.defaultLang}, s.languages...)
	}
	s.current = s.defaultLang

	return s, nil
}

// Load restores the persisted selection and fetches every configured
// language concurrently. On failure the store is left without a dictionary
// and every lookup falls back to its key; the error is returned wrapped in
// ErrLoadFailed for the caller to log or ignore.
func (s *Store) Load(ctx context.Context) error {
	start := time.Now()
	s.restore(ctx)

	dict, err := s.fetch(ctx)
	if err != nil {
		s.mu.Lock()
		s.dict = nil
		s.mu.Unlock()
		s.logger.WarnContext(ctx, "dictionaries unavailable, keys will be shown as-is",
			logger.Component("i18n"),
			logger.Error(err))
		return errors.Join(ErrLoadFailed, err)
	}

	s.mu.Lock()
	s.dict = dict
	s.mu.Unlock()

	for _, lang := range s.languages {
		for _, other := range s.languages {
			if other == lang {
				continue
			}
			if missing := dict.Missing(lang, other); len(missing) > 0 {
				s.logger.DebugContext(ctx, "dictionary keys missing",
					logger.Component("i18n"),
					logger.Lang(other),
					logger.Key("from", lang),
					logger.Count("missing", len(missing)))
			}
		}
	}

	n := s.Apply()
	s.logger.InfoContext(ctx, "dictionaries loaded",
		logger.Component("i18n"),
		logger.Lang(s.Current()),
		logger.Count("mutations", n),
		logger.Elapsed(start))
	return nil
}

func (s *Store) fetch(ctx context.Context) (*Dictionary, error) {
	if s.source == nil {
		if dict := s.Dictionary(); dict != nil {
			return dict, nil
		}
		return nil, ErrNoSource
	}

	futures := make([]*async.Future[map[string]any], len(s.languages))
	for i, lang := range s.languages {
		futures[i] = async.Async(ctx, lang, s.source.Fetch)
	}

	docs, err := async.WaitAll(futures...)
	if err != nil {
		return nil, err
	}

	byLang := make(map[string]map[string]any, len(docs))
	for i, doc := range docs {
		byLang[s.languages[i]] = doc
	}
	return NewDictionary(byLang), nil
}

// restore reads the persisted selection once. Absent, unreadable or
// unrecognised values leave the default in place.
func (s *Store) restore(ctx context.Context) {
	if s.prefs == nil {
		return
	}

	stored, err := s.prefs.Get(ctx, s.prefKey)
	switch {
	case errors.Is(err, preference.ErrNotFound):
		return
	case err != nil:
		s.logger.WarnContext(ctx, "failed to read language preference",
			logger.Component("i18n"),
			logger.Error(err))
		return
	}

	code, ok := s.recognize(stored)
	if !ok {
		s.logger.WarnContext(ctx, "ignoring unrecognised language preference",
			logger.Component("i18n"),
			logger.Key("stored", stored))
		return
	}

	s.mu.Lock()
	s.current = code
	s.mu.Unlock()
}

// Resolve walks key's segments in the current language's dictionary. A
// missing segment, a non-string value or a missing dictionary yields a
// Fallback carrying key unchanged. Resolve never fails.
func (s *Store) Resolve(key string) Result {
	s.mu.RLock()
	dict, lang := s.dict, s.current
	s.mu.RUnlock()

	return s.resolveIn(dict, lang, key)
}

func (s *Store) resolveIn(dict *Dictionary, lang, key string) Result {
	if text, ok := dict.Lookup(lang, key); ok {
		return Found(text)
	}
	if s.missingKeyHandler != nil && dict != nil {
		s.missingKeyHandler(lang, key)
	}
	return Fallback(key)
}

// Text is Resolve(key).String().
func (s *Store) Text(key string) string {
	return s.Resolve(key).String()
}

// Switch selects lang. Selecting the current language does nothing and
// returns false. Otherwise every bound target is re-localized before
// Switch returns, the selection is persisted and LanguageChanged is
// published. Unknown codes return ErrUnknownLanguage and change nothing.
//
// Persistence and notification failures are logged; they never undo the switch.
func (s *Store) Switch(ctx context.Context, lang string) (bool, error) {
	code, ok := s.recognize(lang)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	s.mu.Lock()
	previous := s.current
	if code == previous {
		s.mu.Unlock()
		return false, nil
	}
	s.current = code
	s.mu.Unlock()

	n := s.Apply()
	s.persist(ctx, code)

	s.logger.InfoContext(ctx, "language switched",
		logger.Component("i18n"),
		logger.Lang(code),
		logger.Key("previous", previous),
		logger.Count("mutations", n))

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, LanguageChanged{Lang: code, Previous: previous}); err != nil {
			s.logger.WarnContext(ctx, "language change listeners failed",
				logger.Component("i18n"),
				logger.Event("LanguageChanged"),
				logger.Error(err))
		}
	}

	return true, nil
}

// Listener returns a handler adopting LanguageChanged notifications sent by
// other components. A notification for the current language is ignored,
// which also absorbs the store's own broadcasts. Adopting a language
// re-localizes targets and persists it but does not re-broadcast.
func (s *Store) Listener() event.Handler {
	return event.NewHandlerFunc(func(ctx context.Context, evt LanguageChanged) error {
		code, ok := s.recognize(evt.Lang)
		if !ok {
			s.logger.WarnContext(ctx, "ignoring notification for unknown language",
				logger.Component("i18n"),
				logger.Key("requested", evt.Lang))
			return nil
		}

		s.mu.Lock()
		if code == s.current {
			s.mu.Unlock()
			return nil
		}
		s.current = code
		s.mu.Unlock()

		s.Apply()
		s.persist(ctx, code)
		return nil
	})
}

// Bind registers targets and localizes them immediately.
// It returns the number of element writes performed.
func (s *Store) Bind(targets ...Target) int {
	s.mu.Lock()
	s.targets = append(s.targets, targets...)
	dict, lang := s.dict, s.current
	s.mu.Unlock()

	if dict == nil {
		return 0
	}
	n := 0
	for _, t := range targets {
		n += t.Localize(s.resolver(dict, lang), lang)
	}
	return n
}

// Apply re-localizes every bound target in the current language and
// returns the number of element writes. Without a dictionary it does nothing.
func (s *Store) Apply() int {
	s.mu.RLock()
	dict, lang := s.dict, s.current
	targets := slices.Clone(s.targets)
	s.mu.RUnlock()

	if dict == nil {
		return 0
	}
	n := 0
	for _, t := range targets {
		n += t.Localize(s.resolver(dict, lang), lang)
	}
	return n
}

func (s *Store) resolver(dict *Dictionary, lang string) ResolveFunc {
	return func(key string) Result {
		return s.resolveIn(dict, lang, key)
	}
}

// persist writes the selection. Failures are logged only.
func (s *Store) persist(ctx context.Context, code string) {
	if s.prefs == nil {
		return
	}
	if err := s.prefs.Set(ctx, s.prefKey, code); err != nil {
		s.logger.WarnContext(ctx, "failed to persist language preference",
			logger.Component("i18n"),
			logger.Lang(code),
			logger.Error(err))
	}
}

func (s *Store) recognize(lang string) (string, bool) {
	code := normalizeLanguage(lang)
	return code, code != "" && slices.Contains(s.languages, code)
}

// Current returns the selected language code.
func (s *Store) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Languages returns the recognised language codes, default first.
func (s *Store) Languages() []string {
	return slices.Clone(s.languages)
}

// DefaultLanguage returns the configured default language.
func (s *Store) DefaultLanguage() string {
	return s.defaultLang
}

// Loaded reports whether a dictionary is available.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dict != nil
}

// Dictionary returns the loaded dictionary, or nil.
func (s *Store) Dictionary() *Dictionary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dict
}
