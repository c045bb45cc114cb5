package form

import (
	"fmt"
	"strings"
)

// Identifiers of the forms present on the site.
const (
	ContactFormID        = "contactForm"
	ServiceInquiryFormID = "serviceInquiryForm"
)

// Kind selects the format rule applied to a field.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindTel
)

// ParseKind maps an HTML input type to a Kind. Everything other than
// "email" and "tel" is validated as plain text.
func ParseKind(inputType string) Kind {
	switch strings.ToLower(strings.TrimSpace(inputType)) {
	case "email":
		return KindEmail
	case "tel":
		return KindTel
	default:
		return KindText
	}
}

func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindTel:
		return "tel"
	default:
		return "text"
	}
}

// Field is one input of a form.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Value    string
}

// Form is an identified, ordered set of fields.
type Form struct {
	ID     string
	Fields []Field
}

// Field returns a pointer to the named field.
func (f *Form) Field(name string) (*Field, bool) {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i], true
		}
	}
	return nil, false
}

// Set stores value in the named field.
func (f *Form) Set(name, value string) error {
	field, ok := f.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q in form %q", ErrUnknownField, name, f.ID)
	}
	field.Value = value
	return nil
}

// Values returns the field values keyed by name.
func (f Form) Values() map[string]string {
	out := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		out[field.Name] = field.Value
	}
	return out
}

// Clone returns a deep copy of f.
func (f Form) Clone() Form {
	out := Form{ID: f.ID, Fields: make([]Field, len(f.Fields))}
	copy(out.Fields, f.Fields)
	return out
}
