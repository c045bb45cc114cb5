package form

import "github.com/christopherstationary/website/core/validator"

// Reason names the rule a field failed.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonRequired     Reason = "required"
	ReasonInvalidEmail Reason = "invalidEmail"
	ReasonInvalidPhone Reason = "invalidPhone"
)

// Key returns the dictionary key holding the message for r.
func (r Reason) Key() string {
	return "contact." + string(r)
}

func reasonFromKey(key string) Reason {
	switch key {
	case validator.KeyRequired:
		return ReasonRequired
	case validator.KeyInvalidEmail:
		return ReasonInvalidEmail
	case validator.KeyInvalidPhone:
		return ReasonInvalidPhone
	default:
		return ReasonNone
	}
}

// FieldResult is the outcome of validating one field.
type FieldResult struct {
	Field   string
	Valid   bool
	Reason  Reason
	Message string
}

// Result is the outcome of validating a whole form.
type Result struct {
	Fields []FieldResult
}

// Valid reports whether every field passed. An empty form is valid.
func (r Result) Valid() bool {
	for _, f := range r.Fields {
		if !f.Valid {
			return false
		}
	}
	return true
}

// Invalid returns the failing fields in form order.
func (r Result) Invalid() []FieldResult {
	var out []FieldResult
	for _, f := range r.Fields {
		if !f.Valid {
			out = append(out, f)
		}
	}
	return out
}

// Errors converts the failures to validator errors, or nil when valid.
func (r Result) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, f := range r.Invalid() {
		errs.Add(validator.ValidationError{
			Field:          f.Field,
			Message:        f.Message,
			TranslationKey: f.Reason.Key(),
		})
	}
	return errs
}
