package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/christopherstationary/website/core/logger"
	"github.com/christopherstationary/website/pkg/async"
)

// Dictionary keys used while submitting.
const (
	KeySubmit  = "contact.submit"
	KeyLoading = "common.loading"
	KeySuccess = "contact.success"
	KeyError   = "contact.error"
)

// Publisher broadcasts notifications to interested listeners.
type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithTranslator sets where messages and labels are resolved.
func WithTranslator(t Translator) Option {
	return func(c *Controller) {
		c.translator = t
	}
}

// WithSubmitter sets how valid submissions are delivered.
// The default is a SimulatedSubmitter with DefaultSubmitDelay.
func WithSubmitter(s Submitter) Option {
	return func(c *Controller) {
		if s != nil {
			c.submitter = s
		}
	}
}

// WithSink sets where effects are forwarded as they are produced.
func WithSink(s Sink) Option {
	return func(c *Controller) {
		c.sink = s
	}
}

// WithSubmitLabel fixes the submit button text restored after submitting.
// By default the contact.submit entry is used.
func WithSubmitLabel(label string) Option {
	return func(c *Controller) {
		c.submitLabel = label
	}
}

// WithPublisher sets where FormSubmitted notifications are sent.
func WithPublisher(p Publisher) Option {
	return func(c *Controller) {
		c.publisher = p
	}
}

// WithLogger sets the logger. Logs are discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller binds a form to validation and submission. Each handler
// returns the effects it produced, in order, and forwards them to the sink.
type Controller struct {
	mu      sync.Mutex
	form    Form
	initial Form

	validator   *Validator
	translator  Translator
	submitter   Submitter
	sink        Sink
	publisher   Publisher
	submitLabel string
	logger      *slog.Logger

	submitting atomic.Bool
}

// NewController returns a controller working on a copy of f. The values of
// f are what ResetForm restores.
func NewController(f *Form, opts ...Option) (*Controller, error) {
	if f == nil {
		return nil, ErrNilForm
	}

	c := &Controller{
		form:      f.Clone(),
		initial:   f.Clone(),
		submitter: NewSimulatedSubmitter(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.validator = NewValidator(c.translator)

	return c, nil
}

// Form returns a snapshot of the current field values.
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Clone()
}

// Validate runs full-form validation on the current values without producing effects.
func (c *Controller) Validate() Result {
	return c.validator.ValidateForm(c.Form())
}

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool {
	return c.submitting.Load()
}

// Blur validates the named field.
func (c *Controller) Blur(name string) []Effect {
	c.mu.Lock()
	field, ok := c.form.Field(name)
	var snapshot Field
	if ok {
		snapshot = *field
	}
	c.mu.Unlock()

	if !ok {
		return nil
	}
	return c.emit(c.fieldEffects(c.validator.ValidateField(snapshot))...)
}

// Focus clears the named field's error.
func (c *Controller) Focus(name string) []Effect {
	c.mu.Lock()
	_, ok := c.form.Field(name)
	c.mu.Unlock()

	if !ok {
		return nil
	}
	return c.emit(ClearError{Field: name})
}

// Input stores value in the named field. Email and telephone fields are
// re-validated on every keystroke; other kinds wait for Blur.
func (c *Controller) Input(name, value string) []Effect {
	c.mu.Lock()
	field, ok := c.form.Field(name)
	var snapshot Field
	if ok {
		field.Value = value
		snapshot = *field
	}
	c.mu.Unlock()

	if !ok || (snapshot.Kind != KindEmail && snapshot.Kind != KindTel) {
		return nil
	}
	return c.emit(c.fieldEffects(c.validator.ValidateField(snapshot))...)
}

// Reset restores the initial values and clears every error.
func (c *Controller) Reset() []Effect {
	c.mu.Lock()
	c.form = c.initial.Clone()
	c.mu.Unlock()

	return c.emit(c.resetEffects()...)
}

// Submit validates the whole form and, when it passes, delivers it.
//
// An invalid form yields only error effects and ErrInvalidForm. A valid
// one disables the submit button and shows the loading label, runs the
// submitter, then notifies success (resetting the form) or failure
// (keeping the values). The button is always re-enabled and relabelled.
// Calling Submit while a submission is in flight returns ErrSubmitInProgress.
func (c *Controller) Submit(ctx context.Context) ([]Effect, error) {
	if !c.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitInProgress
	}
	defer c.submitting.Store(false)

	snapshot := c.Form()
	res := c.validator.ValidateForm(snapshot)

	var effects []Effect
	for _, fr := range res.Fields {
		effects = append(effects, c.fieldEffects(fr)...)
	}
	if !res.Valid() {
		c.logger.DebugContext(ctx, "form submission rejected",
			logger.Component("form"),
			logger.Form(snapshot.ID),
			logger.Count("invalid_fields", len(res.Invalid())))
		return c.emit(effects...), errors.Join(ErrInvalidForm, res.Errors())
	}
	effects = c.emit(effects...)

	sent, err := c.send(ctx, snapshot)
	effects = append(effects, sent...)

	c.publish(ctx, FormSubmitted{FormID: snapshot.ID, Lang: c.lang(), Success: err == nil})

	return effects, err
}

// send hands a validated snapshot to the submitter. The submit control is
// re-enabled and relabelled on every way out, including a panicking submitter.
func (c *Controller) send(ctx context.Context, snapshot Form) (effects []Effect, err error) {
	label := c.label()
	effects = c.emit(
		SetSubmitEnabled{Enabled: false},
		SetSubmitLabel{Label: c.validator.Text(KeyLoading)},
	)
	defer func() {
		effects = append(effects, c.emit(
			SetSubmitEnabled{Enabled: true},
			SetSubmitLabel{Label: label},
		)...)
	}()

	start := time.Now()
	err = c.submitter.Submit(ctx, Submission{
		FormID: snapshot.ID,
		Lang:   c.lang(),
		Fields: snapshot.Fields,
	})
	if err != nil {
		effects = append(effects, c.emit(Notify{Level: LevelError, Message: c.validator.Text(KeyError)})...)
		c.logger.ErrorContext(ctx, "form submission failed",
			logger.Component("form"),
			logger.Form(snapshot.ID),
			logger.Result("failure"),
			logger.Elapsed(start),
			logger.Error(err))
		return effects, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	c.mu.Lock()
	c.form = c.initial.Clone()
	c.mu.Unlock()

	effects = append(effects, c.emit(Notify{Level: LevelSuccess, Message: c.validator.Text(KeySuccess)})...)
	effects = append(effects, c.emit(c.resetEffects()...)...)
	c.logger.InfoContext(ctx, "form submitted",
		logger.Component("form"),
		logger.Form(snapshot.ID),
		logger.Result("success"),
		logger.Elapsed(start))
	return effects, nil
}

// SubmitAsync runs Submit on its own goroutine.
func (c *Controller) SubmitAsync(ctx context.Context) *async.Future[[]Effect] {
	return async.Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) ([]Effect, error) {
		return c.Submit(ctx)
	})
}

// fieldEffects mirrors a field result: the previous error is always
// cleared and a failure shows its message.
func (c *Controller) fieldEffects(fr FieldResult) []Effect {
	if fr.Valid {
		return []Effect{ClearError{Field: fr.Field}}
	}
	return []Effect{ClearError{Field: fr.Field}, ShowError{Field: fr.Field, Message: fr.Message}}
}

func (c *Controller) resetEffects() []Effect {
	effects := []Effect{ResetForm{}}
	for _, f := range c.initial.Fields {
		effects = append(effects, ClearError{Field: f.Name})
	}
	return effects
}

func (c *Controller) emit(effects ...Effect) []Effect {
	if c.sink != nil {
		for _, e := range effects {
			c.sink.Emit(e)
		}
	}
	return effects
}

func (c *Controller) publish(ctx context.Context, evt FormSubmitted) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(context.WithoutCancel(ctx), evt); err != nil {
		c.logger.WarnContext(ctx, "form submitted listeners failed",
			logger.Component("form"),
			logger.Event("FormSubmitted"),
			logger.Error(err))
	}
}

func (c *Controller) label() string {
	if c.submitLabel != "" {
		return c.submitLabel
	}
	return c.validator.Text(KeySubmit)
}

// lang reports the translator's current language when it exposes one.
func (c *Controller) lang() string {
	if l, ok := c.translator.(interface{ Current() string }); ok {
		return l.Current()
	}
	return ""
}
