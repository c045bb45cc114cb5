package i18n

import "errors"

var (
	// ErrLoadFailed wraps any failure while fetching or decoding dictionaries.
	// The store keeps working and resolves every key to itself.
	ErrLoadFailed = errors.New("i18n: dictionary load failed")

	// ErrNoSource is returned by Load when no Source was configured.
	ErrNoSource = errors.New("i18n: no dictionary source configured")

	// ErrUnknownLanguage is returned when a language code is not configured.
	ErrUnknownLanguage = errors.New("i18n: unknown language")

	// ErrUnsupportedFormat is returned when a dictionary file extension is not recognised.
	ErrUnsupportedFormat = errors.New("i18n: unsupported dictionary format")
)
