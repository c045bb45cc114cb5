package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Translation keys reported by the contact form rules.
const (
	KeyRequired     = "contact.required"
	KeyInvalidEmail = "contact.invalidEmail"
	KeyInvalidPhone = "contact.invalidPhone"
)

// MinPhoneDigits is the fewest digits a phone number may contain.
const MinPhoneDigits = 9

// space widens RE2's ASCII \s to the whitespace set browsers match with \s.
const space = `\s\x0B\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	emailRegex = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	phoneRegex = regexp.MustCompile(`^[\+]?[0-9` + space + `\-\(\)]+$`)
)

// IsSpace reports whether r counts as whitespace for the contact form rules.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// TrimSpace removes leading and trailing IsSpace runes.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// Required fails when value is empty after TrimSpace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "This field is required",
			TranslationKey: KeyRequired,
		},
	}
}

// ValidEmail fails when value does not look like local@domain.tld.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Please enter a valid email address",
			TranslationKey: KeyInvalidEmail,
		},
	}
}

// ValidPhone fails unless value holds only digits, spaces, dashes and
// parentheses (with an optional leading plus) and at least MinPhoneDigits digits.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsPhone(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Please enter a valid phone number",
			TranslationKey: KeyInvalidPhone,
			TranslationValues: map[string]any{
				"min_digits": MinPhoneDigits,
			},
		},
	}
}

// MinLenString fails when value has fewer than min characters.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"min": min,
			},
		},
	}
}

// MaxLenString fails when value has more than max characters.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"max": max,
			},
		},
	}
}

// OneOf fails when value is not among allowed.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
			TranslationKey: "validation.in",
			TranslationValues: map[string]any{
				"values": allowed,
			},
		},
	}
}

// IsEmail reports whether s matches the contact form's email pattern.
// Surrounding whitespace is not trimmed.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsPhone reports whether s is an acceptable phone number.
func IsPhone(s string) bool {
	return phoneRegex.MatchString(s) && CountDigits(s) >= MinPhoneDigits
}

// CountDigits returns the number of ASCII digits in s.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
