package shared

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// SplitBatch normalizes a raw payload that may be a single resource or
// an array of resources into a slice of raw items. Anything unusable
// yields an empty slice.
func SplitBatch(raw json.RawMessage) []json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil
		}
		return items
	}
	return []json.RawMessage{trimmed}
}

// wireDateLayouts are the date shapes drifting backends emit.
var wireDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseWireTime coerces a wire date string into a time.Time; an empty
// or unparseable value yields the zero time for the assembler to
// default.
func ParseWireTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range wireDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FirstDate returns the first candidate that parses, resolving the
// alternate field-name spellings some resources use for the same date.
func FirstDate(candidates ...string) time.Time {
	for _, c := range candidates {
		if t := ParseWireTime(c); !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}
