package form

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/christopherstationary/website/core/email"
	"github.com/christopherstationary/website/core/validator"
)

// DefaultSubmitDelay is how long SimulatedSubmitter waits by default.
const DefaultSubmitDelay = 2 * time.Second

// Submission is a validated form ready for delivery.
type Submission struct {
	FormID string
	Lang   string
	Fields []Field
}

// Values returns the submitted values keyed by field name.
func (s Submission) Values() map[string]string {
	return Form{ID: s.FormID, Fields: s.Fields}.Values()
}

// Submitter delivers a submission.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, s Submission) error

func (f SubmitterFunc) Submit(ctx context.Context, s Submission) error {
	return f(ctx, s)
}

// SimulatedSubmitter pretends to deliver a submission by waiting Delay.
// It fails only when ctx ends first.
type SimulatedSubmitter struct {
	Delay time.Duration
}

// NewSimulatedSubmitter returns a SimulatedSubmitter waiting DefaultSubmitDelay.
func NewSimulatedSubmitter() *SimulatedSubmitter {
	return &SimulatedSubmitter{Delay: DefaultSubmitDelay}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, _ Submission) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// EmailSubmitter delivers submissions as HTML e-mail to a fixed inbox.
type EmailSubmitter struct {
	sender email.EmailSender
	to     string
}

// NewEmailSubmitter returns a submitter mailing every submission to inbox.
func NewEmailSubmitter(sender email.EmailSender, inbox string) (*EmailSubmitter, error) {
	if sender == nil {
		return nil, fmt.Errorf("%w: sender is required", email.ErrInvalidConfig)
	}
	if !validator.IsEmail(inbox) {
		return nil, fmt.Errorf("%w: inbox must be a valid email address", email.ErrInvalidConfig)
	}
	return &EmailSubmitter{sender: sender, to: inbox}, nil
}

var submissionTemplate = template.Must(template.New("submission").Parse(`<h2>{{.Title}}</h2>
<table>
{{- range .Fields}}
<tr><th align="left">{{.Name}}</th><td>{{.Value}}</td></tr>
{{- end}}
</table>
<p><small>Language: {{.Lang}}</small></p>
`))

func (s *EmailSubmitter) Submit(ctx context.Context, sub Submission) error {
	title := "New message from the website"
	if sub.FormID == ServiceInquiryFormID {
		title = "New service inquiry from the website"
	}

	var body bytes.Buffer
	if err := submissionTemplate.Execute(&body, struct {
		Title  string
		Lang   string
		Fields []Field
	}{title, sub.Lang, sub.Fields}); err != nil {
		return fmt.Errorf("render submission: %w", err)
	}

	return s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   s.to,
		ReplyTo:  replyAddress(sub.Fields),
		Subject:  subject(title, sub.Fields),
		BodyHTML: body.String(),
		Tag:      sub.FormID,
	})
}

// replyAddress returns the first valid email field value.
func replyAddress(fields []Field) string {
	for _, f := range fields {
		if f.Kind == KindEmail && validator.IsEmail(f.Value) {
			return f.Value
		}
	}
	return ""
}

// maxSubjectLength keeps subjects within the e-mail parameter limit.
const maxSubjectLength = 200

func subject(title string, fields []Field) string {
	for _, f := range fields {
		if name := strings.TrimSpace(f.Value); f.Name == "name" && name != "" {
			s := []rune(fmt.Sprintf("%s: %s", title, name))
			if len(s) > maxSubjectLength {
				s = s[:maxSubjectLength]
			}
			return string(s)
		}
	}
	return title
}
