package page

import "errors"

var (
	ErrParse        = errors.New("page: failed to parse markup")
	ErrFormNotFound = errors.New("page: form not found")
)
