package domain

import (
	"encoding/json"
	"regexp"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// ProfessionalIDType names the issuing professional college.
type ProfessionalIDType string

const (
	// ProfessionalCIP is the engineers' college registry.
	ProfessionalCIP ProfessionalIDType = "CIP"
	// ProfessionalCAP is the architects' college registry.
	ProfessionalCAP ProfessionalIDType = "CAP"
)

// ParseProfessionalIDType falls back to CIP on unknown wire values.
func ParseProfessionalIDType(raw string) ProfessionalIDType {
	switch ProfessionalIDType(raw) {
	case ProfessionalCIP, ProfessionalCAP:
		return ProfessionalIDType(raw)
	default:
		return ProfessionalCIP
	}
}

var (
	cipPattern = regexp.MustCompile(`^\d{6,8}$`)
	capPattern = regexp.MustCompile(`^\d{5,7}$`)
)

// ProfessionalID is a jurisdiction-specific professional license number.
// Like Ruc it reports validity as a query rather than failing
// construction.
type ProfessionalID struct {
	value  string
	idType ProfessionalIDType
}

// NewProfessionalID wraps a candidate license number.
func NewProfessionalID(value string, idType ProfessionalIDType) ProfessionalID {
	if idType == "" {
		idType = ProfessionalCIP
	}
	return ProfessionalID{value: value, idType: idType}
}

func (p ProfessionalID) Value() string            { return p.value }
func (p ProfessionalID) Type() ProfessionalIDType { return p.idType }

// IsEmpty reports whether no license was provided at all.
func (p ProfessionalID) IsEmpty() bool { return p.value == "" }

// IsValid reports whether the license matches its registry's pattern.
func (p ProfessionalID) IsValid() bool {
	return p.Validate() == nil
}

// Validate returns a human-readable reason the license is rejected, or
// nil when it is well formed.
func (p ProfessionalID) Validate() error {
	switch p.idType {
	case ProfessionalCIP:
		if !cipPattern.MatchString(p.value) {
			return shared.NewValidationError("professionalId", "CIP id must be 6 to 8 numeric digits")
		}
	case ProfessionalCAP:
		if !capPattern.MatchString(p.value) {
			return shared.NewValidationError("professionalId", "CAP id must be 5 to 7 numeric digits")
		}
	default:
		return shared.NewValidationError("professionalId", "invalid professional id type")
	}
	return nil
}

// MarshalJSON serializes to the bare license string.
func (p ProfessionalID) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

func (p *ProfessionalID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	p.value = s
	if p.idType == "" {
		p.idType = ProfessionalCIP
	}
	return nil
}
