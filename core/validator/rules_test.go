package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherstationary/website/core/validator"
)

func TestIsEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"a@b.co", true},
		{"first.last+tag@mail.example.org", true},
		{"a@b", false},
		{"@b.co", false},
		{"a@.co", false},
		{"a b@c.de", false},
		{"a@@b.co", false},
		{"a\u00a0b@c.com", false},
		{"a@c\u3000d.com", false},
		{"a\ufeff@c.com", false},
		{"a@c.co\u2028m", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsEmail(tt.input))
		})
	}
}

func TestIsPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"+255 712 345 678", true},
		{"(0712) 345-678", true},
		{"123456789", true},
		{"12345678", false},
		{"+1 (555) 12", false},
		{"0712abc456789", false},
		{"++255712345678", false},
		{"+255\u00a0712\u00a0345\u00a0678", true},
		{"0712\u2009345\u2009678", true},
		{"0712\v345\v678", true},
		{"0712\u0085345678", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsPhone(tt.input))
		})
	}
}

func TestTrimSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"  Asha \t\n", "Asha"},
		{"\ufeff", ""},
		{"\u00a0Asha\u3000", "Asha"},
		{"\u2028\u2029\v", ""},
		{"\u0085Asha", "\u0085Asha"},
		{"a b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.TrimSpace(tt.input))
		})
	}
}

func TestRequired_UnicodeBlank(t *testing.T) {
	t.Parallel()

	for _, blank := range []string{"\ufeff", "\u00a0", " \u2003 ", "\u2028"} {
		_, failed := validator.First(validator.Required("name", blank))
		assert.True(t, failed, "%q", blank)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "  "),
			validator.ValidEmail("email", "nope"),
			validator.ValidPhone("phone", "+255 712 345 678"),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		assert.Len(t, errs, 2)
		assert.True(t, errs.Has("name"))
		assert.True(t, errs.Has("email"))
		assert.False(t, errs.Has("phone"))
		assert.Equal(t, validator.KeyRequired, errs.Get("name")[0].TranslationKey)
		assert.Equal(t, map[string][]string{
			"name":  {"This field is required"},
			"email": {"Please enter a valid email address"},
		}, errs.GetErrors())
	})

	t.Run("nil when all pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.Required("name", "Asha")))
	})

	t.Run("first failure wins", func(t *testing.T) {
		verr, failed := validator.First(
			validator.Required("email", ""),
			validator.ValidEmail("email", ""),
		)
		assert.True(t, failed)
		assert.Equal(t, validator.KeyRequired, verr.TranslationKey)
	})

	t.Run("plain errors are not validation errors", func(t *testing.T) {
		assert.False(t, validator.IsValidationError(assert.AnError))
		assert.Nil(t, validator.ExtractValidationErrors(assert.AnError))
	})
}
