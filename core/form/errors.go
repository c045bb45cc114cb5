package form

import "errors"

var (
	ErrUnknownField     = errors.New("form: unknown field")
	ErrInvalidForm      = errors.New("form: validation failed")
	ErrSubmitInProgress = errors.New("form: submission already in progress")
	ErrSubmitFailed     = errors.New("form: submission failed")
	ErrNilForm          = errors.New("form: form is required")
)
