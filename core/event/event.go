package event

import (
	"time"

	"github.com/google/uuid"
)

// Event wraps a published payload with delivery metadata.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Payload   any       `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEvent creates a new Event with auto-generated ID and timestamp.
// The event name is derived from the payload type, so a LanguageChanged
// payload produces an event named "LanguageChanged".
func NewEvent(payload any) Event {
	return Event{
		ID:        uuid.New().String(),
		Name:      getEventName(payload),
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}
