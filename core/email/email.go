package email

import (
	"context"
	"errors"

	"github.com/christopherstationary/website/core/validator"
)

// EmailSender delivers a single HTML e-mail.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams describes one message.
type SendEmailParams struct {
	SendTo   string `json:"send_to" validate:"required;email"`
	ReplyTo  string `json:"reply_to,omitempty" validate:"email"`
	Subject  string `json:"subject" validate:"required;max:200"`
	BodyHTML string `json:"body_html" validate:"required"`
	Tag      string `json:"tag,omitempty" validate:"max:50"`
}

// Validate reports missing or malformed parameters wrapped in ErrInvalidParams.
func (p SendEmailParams) Validate() error {
	if err := validator.ValidateStruct(&p); err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}
