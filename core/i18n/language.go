package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLanguage reduces a BCP 47 tag to its lowercase base language,
// so "SW", "sw-TZ" and "sw" all map to "sw". Strings that do not parse
// are only trimmed and lowercased.
func normalizeLanguage(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	base, _ := tag.Base()
	return base.String()
}
