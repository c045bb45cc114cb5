package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// ValidatorFunc builds the Rule for one tag entry.
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"email":    emailValidator,
		"phone":    phoneValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"in":       inValidator,
	}
)

// RegisterValidator adds a custom validator function to the registry.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates a struct based on its `validate` field tags.
// Rules are separated by semicolons and parameters follow a colon:
//
//	Email string `validate:"required;email"`
//	Name  string `validate:"required;max:100"`
//
// Field paths use the `json` tag name when present. Optional rules
// (email, phone, in) skip empty values so they combine with required.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	var errs ValidationErrors
	validateStructRecursive(rv, "", &errs)

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStructRecursive(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		structField := rt.Field(i)
		if !structField.IsExported() {
			continue
		}

		tag := structField.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		fieldPath := fieldName(structField)
		if prefix != "" {
			fieldPath = prefix + "." + fieldPath
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				if tag != "" {
					validateField(fieldPath, field, tag, errs)
				}
				continue
			}
			field = field.Elem()
		}

		if field.Kind() == reflect.Struct && tag == "" {
			validateStructRecursive(field, fieldPath, errs)
			continue
		}

		if tag != "" {
			validateField(fieldPath, field, tag, errs)
		}
	}
}

func fieldName(sf reflect.StructField) string {
	if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return sf.Name
}

func validateField(fieldPath string, field reflect.Value, tag string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for ruleStr := range strings.SplitSeq(tag, ";") {
		ruleStr = strings.TrimSpace(ruleStr)
		if ruleStr == "" {
			continue
		}

		name, paramStr, _ := strings.Cut(ruleStr, ":")
		name = strings.TrimSpace(name)

		var params []string
		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			params = strings.Split(paramStr, ",")
			for i := range params {
				params[i] = strings.TrimSpace(params[i])
			}
		}

		if validatorFn, ok := registry[name]; ok {
			rule := validatorFn(fieldPath, field, params)
			if !rule.Check() {
				errs.Add(rule.Error)
			}
		}
	}
}

func pass() Rule {
	return Rule{Check: func() bool { return true }}
}

func stringValue(value reflect.Value) (string, bool) {
	if value.Kind() != reflect.String {
		return "", false
	}
	return strings.TrimSpace(value.String()), true
}

func requiredValidator(field string, value reflect.Value, _ []string) Rule {
	rule := Required(field, "")
	rule.Check = func() bool {
		switch value.Kind() {
		case reflect.Invalid:
			return false
		case reflect.String:
			return strings.TrimSpace(value.String()) != ""
		case reflect.Slice, reflect.Map, reflect.Array:
			return value.Len() > 0
		case reflect.Pointer, reflect.Interface:
			return !value.IsNil()
		default:
			return !value.IsZero()
		}
	}
	return rule
}

func emailValidator(field string, value reflect.Value, _ []string) Rule {
	s, ok := stringValue(value)
	if !ok || s == "" {
		return pass()
	}
	return ValidEmail(field, s)
}

func phoneValidator(field string, value reflect.Value, _ []string) Rule {
	s, ok := stringValue(value)
	if !ok || s == "" {
		return pass()
	}
	return ValidPhone(field, s)
}

func inValidator(field string, value reflect.Value, params []string) Rule {
	s, ok := stringValue(value)
	if !ok || s == "" || len(params) == 0 {
		return pass()
	}
	return OneOf(field, s, params...)
}

func minValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}
	n, err := strconv.Atoi(params[0])
	if err != nil {
		return pass()
	}

	switch value.Kind() {
	case reflect.String:
		return MinLenString(field, value.String(), n)
	case reflect.Slice, reflect.Array, reflect.Map:
		return Rule{
			Check: func() bool { return value.Len() >= n },
			Error: ValidationError{
				Field:             field,
				Message:           fmt.Sprintf("must have at least %d items", n),
				TranslationKey:    "validation.min_items",
				TranslationValues: map[string]any{"min": n},
			},
		}
	default:
		return pass()
	}
}

func maxValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}
	n, err := strconv.Atoi(params[0])
	if err != nil {
		return pass()
	}

	switch value.Kind() {
	case reflect.String:
		return MaxLenString(field, value.String(), n)
	case reflect.Slice, reflect.Array, reflect.Map:
		return Rule{
			Check: func() bool { return value.Len() <= n },
			Error: ValidationError{
				Field:             field,
				Message:           fmt.Sprintf("must have at most %d items", n),
				TranslationKey:    "validation.max_items",
				TranslationValues: map[string]any{"max": n},
			},
		}
	default:
		return pass()
	}
}
