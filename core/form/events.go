package form

// FormSubmitted is published after every submission attempt that passed validation.
type FormSubmitted struct {
	FormID  string `json:"form_id"`
	Lang    string `json:"lang,omitempty"`
	Success bool   `json:"success"`
}
