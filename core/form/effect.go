package form

// Effect describes a change the page must make in response to a handler.
// The concrete types are ShowError, ClearError, SetSubmitEnabled,
// SetSubmitLabel, Notify and ResetForm.
type Effect interface {
	effect()
}

// ShowError attaches Message to the field, replacing any previous error.
type ShowError struct {
	Field   string
	Message string
}

// ClearError removes the field's error marker and message.
type ClearError struct {
	Field string
}

// SetSubmitEnabled toggles the submit button.
type SetSubmitEnabled struct {
	Enabled bool
}

// SetSubmitLabel replaces the submit button text.
type SetSubmitLabel struct {
	Label string
}

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notify shows a transient message to the user.
type Notify struct {
	Level   Level
	Message string
}

// ResetForm restores every field to its initial value.
type ResetForm struct{}

func (ShowError) effect()        {}
func (ClearError) effect()       {}
func (SetSubmitEnabled) effect() {}
func (SetSubmitLabel) effect()   {}
func (Notify) effect()           {}
func (ResetForm) effect()        {}

// Sink receives effects as soon as they are produced.
type Sink interface {
	Emit(Effect)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Effect)

func (f SinkFunc) Emit(e Effect) { f(e) }
