package i18n

// LanguageChanged is broadcast after the selected language changes.
type LanguageChanged struct {
	Lang     string `json:"lang"`
	Previous string `json:"previous,omitempty"`
}
