package form

// DefaultMessage is shown for a failure without a dedicated message.
const DefaultMessage = "Please check this field"

// FallbackMessages is used when no translator is configured. It mirrors
// the English dictionary entries for the same keys.
var FallbackMessages = map[Reason]string{
	ReasonRequired:     "This field is required",
	ReasonInvalidEmail: "Please enter a valid email address",
	ReasonInvalidPhone: "Please enter a valid phone number",
}

// Translator resolves dictionary keys to text in the current language.
// *i18n.Store implements it.
type Translator interface {
	Text(key string) string
}

// fallbackMessage returns the fixed English message for reason.
func fallbackMessage(reason Reason) string {
	if msg, ok := FallbackMessages[reason]; ok {
		return msg
	}
	return DefaultMessage
}
