package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Dictionary is an immutable two-level mapping: language code to dotted key
// path to text. Only string leaves of the source documents are addressable.
// It is safe for concurrent use.
type Dictionary struct {
	entries map[string]map[string]string
}

// NewDictionary builds a Dictionary from one nested document per language.
// Nested maps are flattened into dot-notation keys; non-string leaves are
// dropped, so resolving them falls back to the key.
func NewDictionary(docs map[string]map[string]any) *Dictionary {
	d := &Dictionary{entries: make(map[string]map[string]string, len(docs))}
	for lang, doc := range docs {
		d.entries[normalizeLanguage(lang)] = flattenTranslations(doc, "")
	}
	return d
}

// Lookup returns the text stored under key for lang.
func (d *Dictionary) Lookup(lang, key string) (string, bool) {
	if d == nil || key == "" {
		return "", false
	}
	entries, ok := d.entries[lang]
	if !ok {
		return "", false
	}
	text, ok := entries[key]
	return text, ok
}

// Languages returns the language codes present, sorted.
func (d *Dictionary) Languages() []string {
	if d == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(d.entries))
}

// Keys returns every key path defined for lang, sorted.
func (d *Dictionary) Keys(lang string) []string {
	if d == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(d.entries[lang]))
}

// Missing lists the keys defined for from that to does not define.
// Both languages are expected to expose the same key set, but nothing
// enforces it; this is a report, not a check.
func (d *Dictionary) Missing(from, to string) []string {
	var missing []string
	for _, key := range d.Keys(from) {
		if _, ok := d.Lookup(to, key); !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// flattenTranslations flattens a nested map into dot-notation keys. A key
// that itself contains a dot cannot be reached by walking path segments, so
// it is skipped rather than allowed to shadow a nested entry.
func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		if strings.Contains(key, ".") {
			continue
		}
		fullKey := prefix + key

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey+"."))
		case map[string]string:
			for subKey, subVal := range v {
				if !strings.Contains(subKey, ".") {
					result[fullKey+"."+subKey] = subVal
				}
			}
		}
	}

	return result
}

func (d *Dictionary) String() string {
	if d == nil {
		return "i18n.Dictionary(empty)"
	}
	return fmt.Sprintf("i18n.Dictionary(%v)", d.Languages())
}
