// Package locales bundles the site's dictionaries.
package locales

import "embed"

// FS holds one JSON dictionary per language, named <lang>.json.
//
//go:embed *.json
var FS embed.FS

// Pattern locates a language's dictionary inside FS.
const Pattern = "%s.json"
