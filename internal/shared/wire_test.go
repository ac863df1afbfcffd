package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBatch(t *testing.T) {
	items := SplitBatch(json.RawMessage(`[{"id":1},{"id":2}]`))
	require.Len(t, items, 2)

	items = SplitBatch(json.RawMessage(`{"id":1}`))
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"id":1}`, string(items[0]))

	assert.Empty(t, SplitBatch(json.RawMessage(`null`)))
	assert.Empty(t, SplitBatch(json.RawMessage(``)))
	assert.Empty(t, SplitBatch(json.RawMessage(`[broken`)))
}

func TestParseWireTime(t *testing.T) {
	got := ParseWireTime("2025-03-15T10:30:00Z")
	assert.Equal(t, time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC), got)

	got = ParseWireTime("2025-03-15")
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)

	assert.True(t, ParseWireTime("").IsZero())
	assert.True(t, ParseWireTime("yesterday").IsZero())
}

func TestFirstDateResolvesAlternateSpellings(t *testing.T) {
	want := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, want, FirstDate("2025-04-01", ""))
	assert.Equal(t, want, FirstDate("", "2025-04-01"))
	assert.Equal(t, want, FirstDate("not-a-date", "2025-04-01"))
	assert.True(t, FirstDate("", "").IsZero())
}
