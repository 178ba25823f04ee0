package urlquery

import (
	"encoding/json"
	"fmt"
)

// As maps an open response value into a typed struct using a JSON round-trip.
// Struct fields should be tagged with the wire field names, for example:
// `json:"urlquery_alert_count"`.
func As[T any](v map[string]any) (T, error) {
	var t T
	b, err := json.Marshal(v)
	if err != nil {
		return t, err
	}
	if err := json.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("response decoding failed: %w", err)
	}
	return t, nil
}
