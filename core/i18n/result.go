package i18n

// Result is the outcome of resolving a key path: either the translated
// text, or a fallback carrying the key itself.
type Result struct {
	text       string
	translated bool
}

// Found returns a Result holding a translation.
func Found(text string) Result {
	return Result{text: text, translated: true}
}

// Fallback returns a Result echoing the unresolved key.
func Fallback(key string) Result {
	return Result{text: key}
}

// Translated reports whether a translation was found.
func (r Result) Translated() bool {
	return r.translated
}

// String returns the translation, or the key verbatim for a fallback.
func (r Result) String() string {
	return r.text
}
