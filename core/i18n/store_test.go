package i18n_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherstationary/website/core/event"
	"github.com/christopherstationary/website/core/i18n"
	"github.com/christopherstationary/website/core/i18n/locales"
	"github.com/christopherstationary/website/core/preference"
)

// element is a single marked text node.
type element struct {
	key  string
	text string
}

// fakePage records every text write performed by the store.
type fakePage struct {
	elements []*element
	lang     string
	writes   int
}

func newFakePage(keys ...string) *fakePage {
	p := &fakePage{}
	for _, k := range keys {
		p.elements = append(p.elements, &element{key: k, text: "original:" + k})
	}
	return p
}

func (p *fakePage) Localize(resolve i18n.ResolveFunc, lang string) int {
	n := 0
	for _, el := range p.elements {
		res := resolve(el.key)
		if !res.Translated() {
			continue
		}
		el.text = res.String()
		n++
	}
	p.lang = lang
	p.writes += n
	return n
}

func (p *fakePage) text(key string) string {
	for _, el := range p.elements {
		if el.key == key {
			return el.text
		}
	}
	return ""
}

type failingPrefs struct{}

func (failingPrefs) Get(context.Context, string) (string, error) { return "", errors.New("disk gone") }
func (failingPrefs) Set(context.Context, string, string) error   { return errors.New("disk gone") }

func bundledStore(t *testing.T, opts ...i18n.Option) *i18n.Store {
	t.Helper()
	opts = append([]i18n.Option{i18n.WithSource(i18n.NewFSSource(locales.FS, locales.Pattern))}, opts...)
	store, err := i18n.NewStore(opts...)
	require.NoError(t, err)
	require.NoError(t, store.Load(context.Background()))
	return store
}

func TestStore_Resolve(t *testing.T) {
	t.Parallel()

	dict := i18n.NewDictionary(map[string]map[string]any{
		"sw": {"contact": map[string]any{"required": "Inahitajika", "count": 3}, "hero.title": "Flat"},
		"en": {"contact": map[string]any{"required": "Required"}},
	})
	store, err := i18n.NewStore(i18n.WithDictionary(dict))
	require.NoError(t, err)

	tests := []struct {
		name       string
		key        string
		want       string
		translated bool
	}{
		{"nested string leaf", "contact.required", "Inahitajika", true},
		{"missing leaf", "contact.missing", "contact.missing", false},
		{"missing branch", "footer.copyright", "footer.copyright", false},
		{"intermediate map", "contact", "contact", false},
		{"non-string leaf", "contact.count", "contact.count", false},
		{"dotted document key", "hero.title", "hero.title", false},
		{"leaf has no children", "contact.required.extra", "contact.required.extra", false},
		{"empty key", "", "", false},
		{"odd characters kept verbatim", "contact..required ", "contact..required ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := store.Resolve(tt.key)
			assert.Equal(t, tt.want, res.String())
			assert.Equal(t, tt.translated, res.Translated())
			assert.Equal(t, res, store.Resolve(tt.key), "lookups are idempotent")
		})
	}
}

func TestStore_NoDictionary(t *testing.T) {
	t.Parallel()

	store, err := i18n.NewStore()
	require.NoError(t, err)

	assert.False(t, store.Loaded())
	assert.Equal(t, "contact.required", store.Text("contact.required"))

	page := newFakePage("nav.home")
	assert.Zero(t, store.Bind(page))
	assert.Equal(t, "original:nav.home", page.text("nav.home"))
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("defaults to Swahili", func(t *testing.T) {
		t.Parallel()
		store := bundledStore(t)

		assert.True(t, store.Loaded())
		assert.Equal(t, "sw", store.Current())
		assert.Equal(t, "Sehemu hii inahitajika", store.Text("contact.required"))
	})

	t.Run("restores stored preference", func(t *testing.T) {
		t.Parallel()
		prefs := preference.NewMemoryStore()
		require.NoError(t, prefs.Set(context.Background(), preference.LanguageKey, "en"))

		store := bundledStore(t, i18n.WithPreferences(prefs))

		assert.Equal(t, "en", store.Current())
		assert.Equal(t, "This field is required", store.Text("contact.required"))
	})

	t.Run("ignores unrecognised preference", func(t *testing.T) {
		t.Parallel()
		prefs := preference.NewMemoryStore()
		require.NoError(t, prefs.Set(context.Background(), preference.LanguageKey, "fr"))

		store := bundledStore(t, i18n.WithPreferences(prefs))

		assert.Equal(t, "sw", store.Current())
	})

	t.Run("unreadable preference falls back to default", func(t *testing.T) {
		t.Parallel()
		store := bundledStore(t, i18n.WithPreferences(failingPrefs{}))

		assert.Equal(t, "sw", store.Current())
	})

	t.Run("one failing language leaves no dictionary", func(t *testing.T) {
		t.Parallel()
		src := i18n.SourceFunc(func(ctx context.Context, lang string) (map[string]any, error) {
			if lang == "en" {
				return nil, errors.New("404")
			}
			return map[string]any{"nav": map[string]any{"home": "Nyumbani"}}, nil
		})
		store, err := i18n.NewStore(i18n.WithSource(src))
		require.NoError(t, err)

		err = store.Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, i18n.ErrLoadFailed)
		assert.False(t, store.Loaded())
		assert.Equal(t, "nav.home", store.Text("nav.home"))
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.NewStore()
		require.NoError(t, err)

		err = store.Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrLoadFailed)
		assert.ErrorIs(t, err, i18n.ErrNoSource)
	})

	t.Run("applies bound targets", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.NewStore(i18n.WithSource(i18n.NewFSSource(locales.FS, locales.Pattern)))
		require.NoError(t, err)

		page := newFakePage("nav.home", "contact.submit")
		assert.Zero(t, store.Bind(page))

		require.NoError(t, store.Load(context.Background()))
		assert.Equal(t, "Nyumbani", page.text("nav.home"))
		assert.Equal(t, "Tuma Ujumbe", page.text("contact.submit"))
	})
}

func TestStore_Switch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("switches, applies, persists and notifies", func(t *testing.T) {
		t.Parallel()
		prefs := preference.NewMemoryStore()
		bus := event.NewBus()
		var got []i18n.LanguageChanged
		bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, evt i18n.LanguageChanged) error {
			got = append(got, evt)
			return nil
		}))

		store := bundledStore(t, i18n.WithPreferences(prefs), i18n.WithPublisher(bus))
		page := newFakePage("nav.home", "footer.unknown")
		store.Bind(page)

		changed, err := store.Switch(ctx, "en")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "en", store.Current())
		assert.Equal(t, "Home", page.text("nav.home"))
		assert.Equal(t, "original:footer.unknown", page.text("footer.unknown"))
		assert.Equal(t, "en", page.lang)

		stored, err := prefs.Get(ctx, preference.LanguageKey)
		require.NoError(t, err)
		assert.Equal(t, "en", stored)

		assert.Equal(t, []i18n.LanguageChanged{{Lang: "en", Previous: "sw"}}, got)
	})

	t.Run("same language is a no-op", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus()
		notified := 0
		bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, evt i18n.LanguageChanged) error {
			notified++
			return nil
		}))

		store := bundledStore(t, i18n.WithPublisher(bus))
		page := newFakePage("nav.home", "nav.about")
		store.Bind(page)
		before := page.writes

		changed, err := store.Switch(ctx, "sw")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, before, page.writes)
		assert.Zero(t, notified)
	})

	t.Run("normalises region tags", func(t *testing.T) {
		t.Parallel()
		store := bundledStore(t)

		changed, err := store.Switch(ctx, "EN-gb")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "en", store.Current())
	})

	t.Run("unknown language changes nothing", func(t *testing.T) {
		t.Parallel()
		prefs := preference.NewMemoryStore()
		store := bundledStore(t, i18n.WithPreferences(prefs))

		changed, err := store.Switch(ctx, "fr")
		assert.ErrorIs(t, err, i18n.ErrUnknownLanguage)
		assert.False(t, changed)
		assert.Equal(t, "sw", store.Current())

		_, err = prefs.Get(ctx, preference.LanguageKey)
		assert.ErrorIs(t, err, preference.ErrNotFound)
	})

	t.Run("persistence failure does not undo the switch", func(t *testing.T) {
		t.Parallel()
		store := bundledStore(t, i18n.WithPreferences(failingPrefs{}))

		changed, err := store.Switch(ctx, "en")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "en", store.Current())
	})

	t.Run("switch without dictionary still persists", func(t *testing.T) {
		t.Parallel()
		prefs := preference.NewMemoryStore()
		store, err := i18n.NewStore(i18n.WithPreferences(prefs))
		require.NoError(t, err)

		changed, err := store.Switch(ctx, "en")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "contact.required", store.Text("contact.required"))

		stored, err := prefs.Get(ctx, preference.LanguageKey)
		require.NoError(t, err)
		assert.Equal(t, "en", stored)
	})
}

func TestStore_Listener(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("adopts a change from another component", func(t *testing.T) {
		t.Parallel()
		prefs := preference.NewMemoryStore()
		bus := event.NewBus()
		store := bundledStore(t, i18n.WithPreferences(prefs), i18n.WithPublisher(bus))
		bus.Subscribe(store.Listener())

		page := newFakePage("nav.contact")
		store.Bind(page)

		require.NoError(t, bus.Publish(ctx, i18n.LanguageChanged{Lang: "en"}))
		assert.Equal(t, "en", store.Current())
		assert.Equal(t, "Contact", page.text("nav.contact"))

		stored, err := prefs.Get(ctx, preference.LanguageKey)
		require.NoError(t, err)
		assert.Equal(t, "en", stored)
	})

	t.Run("own broadcast is absorbed", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus()
		store := bundledStore(t, i18n.WithPublisher(bus))
		bus.Subscribe(store.Listener())

		page := newFakePage("nav.home")
		store.Bind(page)
		before := page.writes

		changed, err := store.Switch(ctx, "en")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, before+1, page.writes, "listener must not apply a second time")
	})

	t.Run("unknown language is ignored", func(t *testing.T) {
		t.Parallel()
		bus := event.NewBus()
		store := bundledStore(t)
		bus.Subscribe(store.Listener())

		require.NoError(t, bus.Publish(ctx, i18n.LanguageChanged{Lang: "de"}))
		assert.Equal(t, "sw", store.Current())
	})
}

func TestNewStore_Options(t *testing.T) {
	t.Parallel()

	t.Run("default language joins the set", func(t *testing.T) {
		store, err := i18n.NewStore(i18n.WithLanguages("en"), i18n.WithDefaultLanguage("sw"))
		require.NoError(t, err)
		assert.Equal(t, []string{"sw", "en"}, store.Languages())
		assert.Equal(t, "sw", store.DefaultLanguage())
	})

	t.Run("languages are normalised and deduplicated", func(t *testing.T) {
		store, err := i18n.NewStore(i18n.WithLanguages("SW", "sw-TZ", "en-US"))
		require.NoError(t, err)
		assert.Equal(t, []string{"sw", "en"}, store.Languages())
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := i18n.NewStore(i18n.WithLanguages())
		assert.Error(t, err)
		_, err = i18n.NewStore(i18n.WithDefaultLanguage(" "))
		assert.Error(t, err)
		_, err = i18n.NewStore(i18n.WithSource(nil))
		assert.Error(t, err)
		_, err = i18n.NewStore(i18n.WithPreferenceKey(""))
		assert.Error(t, err)
	})

	t.Run("missing key handler", func(t *testing.T) {
		var missing []string
		store := bundledStore(t, i18n.WithMissingKeyHandler(func(lang, key string) {
			missing = append(missing, lang+":"+key)
		}))

		store.Text("nav.home")
		store.Text("nav.blog")
		assert.Equal(t, []string{"sw:nav.blog"}, missing)
	})
}
