package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ID is the surrogate key an aggregate receives from the backend.
// It is exactly one of {null, number}: the zero value is null and stays
// null until the backend assigns a key. It always serializes to a bare
// number or JSON null, never to a wrapped object.
type ID struct {
	value    int64
	assigned bool
}

// NewID wraps a backend-assigned numeric key.
func NewID(value int64) ID {
	return ID{value: value, assigned: true}
}

// Value returns the numeric key and whether one has been assigned.
func (id ID) Value() (int64, bool) {
	return id.value, id.assigned
}

// IsNil reports whether no key has been assigned yet.
func (id ID) IsNil() bool {
	return !id.assigned
}

// Equals compares by content. Two unassigned IDs are never equal: an
// entity awaiting persistence has no identity to collide on.
func (id ID) Equals(other ID) bool {
	return id.assigned && other.assigned && id.value == other.value
}

func (id ID) String() string {
	if !id.assigned {
		return "null"
	}
	return strconv.FormatInt(id.value, 10)
}

// MarshalJSON serializes to the bare scalar the backend expects.
func (id ID) MarshalJSON() ([]byte, error) {
	if !id.assigned {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(id.value, 10)), nil
}

// UnmarshalJSON accepts null, a number, or a numeric string. json-server
// style backends are not consistent about which one they return.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*id = ID{}
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("id %q is not numeric", s)
		}
		*id = NewID(n)
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("id %s is not numeric", data)
	}
	*id = NewID(n)
	return nil
}

// ParseID coerces the loose id representations seen on the wire
// (float64 from generic JSON decoding, numeric strings, null) into an ID.
func ParseID(raw any) (ID, error) {
	switch v := raw.(type) {
	case nil:
		return ID{}, nil
	case float64:
		return NewID(int64(v)), nil
	case int64:
		return NewID(v), nil
	case int:
		return NewID(int64(v)), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return ID{}, fmt.Errorf("id %s is not an integer", v)
		}
		return NewID(n), nil
	case string:
		if v == "" {
			return ID{}, nil
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return ID{}, fmt.Errorf("id %q is not numeric", v)
		}
		return NewID(n), nil
	default:
		return ID{}, fmt.Errorf("unsupported id type %T", raw)
	}
}

// Ref is a client-generated opaque token identifying an entity that has
// not been persisted yet. It exists so aggregate collections can tell
// unsaved elements apart; it is never sent to the backend as the final id.
type Ref string

// NewRef generates a fresh token.
func NewRef() Ref {
	return Ref(uuid.NewString())
}

func (r Ref) String() string {
	return string(r)
}
