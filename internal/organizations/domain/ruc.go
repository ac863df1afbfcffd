package domain

import (
	"encoding/json"
	"regexp"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

var rucDigits = regexp.MustCompile(`^\d{11}$`)

// rucPrefixes are the SUNAT taxpayer-class prefixes accepted for a RUC.
var rucPrefixes = map[string]bool{
	"10": true, "15": true, "16": true, "17": true, "20": true,
}

// Ruc is the Peruvian tax id of an organization. Validation is exposed
// as a query instead of failing construction so callers can surface the
// reason before submitting a form.
type Ruc struct {
	value string
}

// NewRuc wraps a candidate tax id without validating it.
func NewRuc(value string) Ruc {
	return Ruc{value: value}
}

// Value returns the raw tax id string.
func (r Ruc) Value() string {
	return r.value
}

// IsValid reports whether the tax id passes the format check.
func (r Ruc) IsValid() bool {
	return r.Validate() == nil
}

// Validate returns a human-readable reason the tax id is rejected, or
// nil when it is well formed.
func (r Ruc) Validate() error {
	if !rucDigits.MatchString(r.value) {
		return shared.NewValidationError("ruc", "RUC must be exactly 11 digits")
	}
	if !rucPrefixes[r.value[:2]] {
		return shared.NewValidationError("ruc",
			"RUC must start with a valid SUNAT prefix (10, 15, 16, 17, 20)")
	}
	return nil
}

// MarshalJSON serializes to the bare string the backend stores.
func (r Ruc) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

func (r *Ruc) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	r.value = s
	return nil
}
