package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayout is the storage format of updated_at. It is fixed width so
// that ORDER BY on the text column is chronological.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// parseTimestamp returns the zero time for empty or unparseable values.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func encodeValue(what string, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", what, err)
	}
	return data, nil
}

func decodeValue(what string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", what, err)
	}
	return nil
}
