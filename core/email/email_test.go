package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherstationary/website/core/email"
	"github.com/christopherstationary/website/core/validator"
)

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	valid := email.SendEmailParams{
		SendTo:   "info@example.com",
		Subject:  "New inquiry",
		BodyHTML: "<p>hi</p>",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*email.SendEmailParams)
		field  string
	}{
		{"missing recipient", func(p *email.SendEmailParams) { p.SendTo = "" }, "send_to"},
		{"bad recipient", func(p *email.SendEmailParams) { p.SendTo = "info" }, "send_to"},
		{"bad reply-to", func(p *email.SendEmailParams) { p.ReplyTo = "visitor@" }, "reply_to"},
		{"missing subject", func(p *email.SendEmailParams) { p.Subject = " " }, "subject"},
		{"missing body", func(p *email.SendEmailParams) { p.BodyHTML = "" }, "body_html"},
		{"long tag", func(p *email.SendEmailParams) { p.Tag = strings.Repeat("x", 51) }, "tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			err := p.Validate()
			require.ErrorIs(t, err, email.ErrInvalidParams)
			assert.True(t, validator.ExtractValidationErrors(err).Has(tt.field))
		})
	}
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "mail")
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "info@example.com",
		ReplyTo:  "asha@example.com",
		Subject:  "New inquiry",
		BodyHTML: "<p>Hello</p>",
		Tag:      "Contact Form!",
	})
	require.NoError(t, err)

	htmlFiles, err := filepath.Glob(filepath.Join(dir, "*_contact_form.html"))
	require.NoError(t, err)
	require.Len(t, htmlFiles, 1)

	body, err := os.ReadFile(htmlFiles[0])
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello</p>", string(body))

	raw, err := os.ReadFile(strings.TrimSuffix(htmlFiles[0], ".html") + ".json")
	require.NoError(t, err)
	var meta map[string]string
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "info@example.com", meta["send_to"])
	assert.Equal(t, "asha@example.com", meta["reply_to"])

	t.Run("rejects invalid params", func(t *testing.T) {
		err := sender.SendEmail(context.Background(), email.SendEmailParams{})
		assert.ErrorIs(t, err, email.ErrInvalidParams)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := sender.SendEmail(ctx, email.SendEmailParams{
			SendTo: "info@example.com", Subject: "x", BodyHTML: "y",
		})
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
