package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDZeroValueIsNil(t *testing.T) {
	var id ID
	assert.True(t, id.IsNil())
	assert.Equal(t, "null", id.String())

	_, assigned := id.Value()
	assert.False(t, assigned)
}

func TestIDEquality(t *testing.T) {
	assert.True(t, NewID(7).Equals(NewID(7)))
	assert.False(t, NewID(7).Equals(NewID(8)))

	// Unsaved entities have no identity to collide on.
	var a, b ID
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(NewID(0)))
}

func TestIDMarshal(t *testing.T) {
	data, err := json.Marshal(NewID(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(data))

	data, err = json.Marshal(ID{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestIDUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ID
	}{
		{"number", `42`, NewID(42)},
		{"numeric string", `"42"`, NewID(42)},
		{"null", `null`, ID{}},
		{"empty string", `""`, ID{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tc.in), &id))
			assert.Equal(t, tc.want, id)
		})
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &id))
}

func TestParseID(t *testing.T) {
	id, err := ParseID(float64(9))
	require.NoError(t, err)
	assert.Equal(t, NewID(9), id)

	id, err = ParseID("15")
	require.NoError(t, err)
	assert.Equal(t, NewID(15), id)

	id, err = ParseID(nil)
	require.NoError(t, err)
	assert.True(t, id.IsNil())

	_, err = ParseID("not-a-number")
	assert.Error(t, err)
}

func TestNewRefUnique(t *testing.T) {
	assert.NotEqual(t, NewRef(), NewRef())
}
