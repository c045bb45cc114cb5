package postmark_test

import (
	"context"
	"errors"
	"testing"

	pm "github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherstationary/website/core/email"
	"github.com/christopherstationary/website/integration/email/postmark"
)

type fakeAPI struct {
	sent []pm.Email
	resp pm.EmailResponse
	err  error
}

func (f *fakeAPI) SendEmail(ctx context.Context, e pm.Email) (pm.EmailResponse, error) {
	f.sent = append(f.sent, e)
	return f.resp, f.err
}

var cfg = postmark.Config{
	PostmarkServerToken:  "server",
	PostmarkAccountToken: "account",
	SenderEmail:          "site@example.com",
	SupportEmail:         "info@example.com",
}

var params = email.SendEmailParams{
	SendTo:   "info@example.com",
	ReplyTo:  "asha@example.com",
	Subject:  "New inquiry",
	BodyHTML: "<p>Hello</p>",
	Tag:      "contact",
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := postmark.New(cfg)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*postmark.Config)
	}{
		{"missing server token", func(c *postmark.Config) { c.PostmarkServerToken = "" }},
		{"missing account token", func(c *postmark.Config) { c.PostmarkAccountToken = "" }},
		{"bad sender", func(c *postmark.Config) { c.SenderEmail = "site" }},
		{"missing support", func(c *postmark.Config) { c.SupportEmail = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			tt.mutate(&c)
			_, err := postmark.New(c)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
		})
	}

	assert.Panics(t, func() { postmark.MustNewClient(postmark.Config{}) })
}

func TestClient_SendEmail(t *testing.T) {
	t.Parallel()

	t.Run("maps params", func(t *testing.T) {
		api := &fakeAPI{}
		client, err := postmark.NewWithAPI(api, cfg)
		require.NoError(t, err)

		require.NoError(t, client.SendEmail(context.Background(), params))
		require.Len(t, api.sent, 1)
		got := api.sent[0]
		assert.Equal(t, "site@example.com", got.From)
		assert.Equal(t, "asha@example.com", got.ReplyTo)
		assert.Equal(t, "info@example.com", got.To)
		assert.Equal(t, "contact", got.Tag)
		assert.Equal(t, "<p>Hello</p>", got.HTMLBody)
		assert.True(t, got.TrackOpens)
	})

	t.Run("reply-to defaults to support inbox", func(t *testing.T) {
		api := &fakeAPI{}
		client, err := postmark.NewWithAPI(api, cfg)
		require.NoError(t, err)

		p := params
		p.ReplyTo = ""
		require.NoError(t, client.SendEmail(context.Background(), p))
		assert.Equal(t, "info@example.com", api.sent[0].ReplyTo)
	})

	t.Run("transport error", func(t *testing.T) {
		client, err := postmark.NewWithAPI(&fakeAPI{err: errors.New("timeout")}, cfg)
		require.NoError(t, err)
		assert.ErrorIs(t, client.SendEmail(context.Background(), params), email.ErrFailedToSendEmail)
	})

	t.Run("api error code", func(t *testing.T) {
		client, err := postmark.NewWithAPI(&fakeAPI{resp: pm.EmailResponse{ErrorCode: 300, Message: "Invalid email request"}}, cfg)
		require.NoError(t, err)

		err = client.SendEmail(context.Background(), params)
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "300")
	})

	t.Run("invalid params never reach the API", func(t *testing.T) {
		api := &fakeAPI{}
		client, err := postmark.NewWithAPI(api, cfg)
		require.NoError(t, err)

		assert.ErrorIs(t, client.SendEmail(context.Background(), email.SendEmailParams{}), email.ErrInvalidParams)
		assert.Empty(t, api.sent)
	})
}
