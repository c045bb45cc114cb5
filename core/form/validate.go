package form

import (
	"github.com/christopherstationary/website/core/validator"
)

// Validator checks fields by kind and required-ness and words the failures.
type Validator struct {
	translator Translator
}

// NewValidator returns a Validator. translator may be nil, in which case
// messages come from FallbackMessages.
func NewValidator(translator Translator) *Validator {
	return &Validator{translator: translator}
}

// ValidateField applies, in order, the required rule, the email rule and
// the phone rule to the trimmed value. Only the first failure is reported.
func (v *Validator) ValidateField(f Field) FieldResult {
	value := validator.TrimSpace(f.Value)

	var rules []validator.Rule
	if f.Required {
		rules = append(rules, validator.Required(f.Name, value))
	}
	if value != "" {
		switch f.Kind {
		case KindEmail:
			rules = append(rules, validator.ValidEmail(f.Name, value))
		case KindTel:
			rules = append(rules, validator.ValidPhone(f.Name, value))
		}
	}

	verr, failed := validator.First(rules...)
	if !failed {
		return FieldResult{Field: f.Name, Valid: true}
	}

	reason := reasonFromKey(verr.TranslationKey)
	return FieldResult{
		Field:   f.Name,
		Reason:  reason,
		Message: v.Message(reason),
	}
}

// ValidateForm validates every field. Nothing is cached between calls.
func (v *Validator) ValidateForm(f Form) Result {
	res := Result{Fields: make([]FieldResult, 0, len(f.Fields))}
	for _, field := range f.Fields {
		res.Fields = append(res.Fields, v.ValidateField(field))
	}
	return res
}

// Message words reason. With a translator the "contact.<reason>" entry is
// used as resolved, otherwise the English fallback table.
func (v *Validator) Message(reason Reason) string {
	if v.translator != nil && reason != ReasonNone {
		return v.translator.Text(reason.Key())
	}
	return fallbackMessage(reason)
}

// Text resolves key through the translator, or returns it unchanged.
func (v *Validator) Text(key string) string {
	if v.translator != nil {
		return v.translator.Text(key)
	}
	return key
}
