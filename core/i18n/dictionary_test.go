package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherstationary/website/core/i18n"
	"github.com/christopherstationary/website/core/i18n/locales"
)

func TestDictionary(t *testing.T) {
	t.Parallel()

	dict := i18n.NewDictionary(map[string]map[string]any{
		"SW": {"nav": map[string]any{"home": "Nyumbani", "about": "Kuhusu"}, "flag": true},
		"en": {"nav": map[string]any{"home": "Home"}},
	})

	assert.Equal(t, []string{"en", "sw"}, dict.Languages())
	assert.Equal(t, []string{"nav.about", "nav.home"}, dict.Keys("sw"))
	assert.Equal(t, []string{"nav.about"}, dict.Missing("sw", "en"))
	assert.Empty(t, dict.Missing("en", "sw"))

	text, ok := dict.Lookup("sw", "nav.home")
	assert.True(t, ok)
	assert.Equal(t, "Nyumbani", text)

	_, ok = dict.Lookup("sw", "flag")
	assert.False(t, ok)

	var empty *i18n.Dictionary
	_, ok = empty.Lookup("sw", "nav.home")
	assert.False(t, ok)
	assert.Nil(t, empty.Languages())
}

func TestDictionary_DottedDocumentKeys(t *testing.T) {
	t.Parallel()

	t.Run("literal dotted key is not addressable", func(t *testing.T) {
		dict := i18n.NewDictionary(map[string]map[string]any{
			"en": {"contact.required": "Flat"},
		})
		_, ok := dict.Lookup("en", "contact.required")
		assert.False(t, ok)
		assert.Empty(t, dict.Keys("en"))
	})

	t.Run("nested path wins over a colliding dotted key", func(t *testing.T) {
		for range 50 {
			dict := i18n.NewDictionary(map[string]map[string]any{
				"en": {
					"contact":          map[string]any{"required": "Nested"},
					"contact.required": "Flat",
				},
			})
			text, ok := dict.Lookup("en", "contact.required")
			require.True(t, ok)
			require.Equal(t, "Nested", text)
		}
	})

	t.Run("dotted key below the root is skipped", func(t *testing.T) {
		dict := i18n.NewDictionary(map[string]map[string]any{
			"en": {"nav": map[string]any{"home.link": "Home", "about": "About"}},
		})
		assert.Equal(t, []string{"nav.about"}, dict.Keys("en"))
	})

	t.Run("empty segments stay distinct", func(t *testing.T) {
		dict := i18n.NewDictionary(map[string]map[string]any{
			"en": {"": map[string]any{"home": "Root"}, "home": "Home"},
		})
		text, ok := dict.Lookup("en", "home")
		require.True(t, ok)
		assert.Equal(t, "Home", text)
		text, ok = dict.Lookup("en", ".home")
		require.True(t, ok)
		assert.Equal(t, "Root", text)
	})
}

func TestBundledLocales(t *testing.T) {
	t.Parallel()

	src := i18n.NewFSSource(locales.FS, locales.Pattern)
	docs := make(map[string]map[string]any)
	for _, lang := range []string{"sw", "en"} {
		doc, err := src.Fetch(context.Background(), lang)
		require.NoError(t, err)
		docs[lang] = doc
	}
	dict := i18n.NewDictionary(docs)

	assert.Empty(t, dict.Missing("en", "sw"), "sw must define every en key")
	assert.Empty(t, dict.Missing("sw", "en"), "en must define every sw key")
}
