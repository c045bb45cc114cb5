package event

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// getEventName extracts the type name from an event value, unwrapping any pointer types.
// Only the bare type name is used, so event type names must be unique across packages.
func getEventName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Name()
}

func unmarshalPayload[T any](payload any) (T, error) {
	var zero T

	if v, ok := payload.(T); ok {
		return v, nil
	}

	// Pointer payloads are accepted for value handlers.
	if p, ok := payload.(*T); ok && p != nil {
		return *p, nil
	}

	if data, ok := payload.([]byte); ok {
		var evt T
		if err := json.Unmarshal(data, &evt); err != nil {
			return zero, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		return evt, nil
	}

	return zero, fmt.Errorf("unexpected payload type: %T", payload)
}
