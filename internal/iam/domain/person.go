package domain

import (
	"encoding/json"
	"strings"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// Person is the identity record behind accounts, members and
// responsibles. Its id is assigned by the backend.
type Person struct {
	id             shared.ID
	name           string
	lastName       string
	email          string
	phone          string
	profession     string
	professionalID ProfessionalID
	profilePicture string
}

// PersonConfig carries the named, defaulted construction fields.
type PersonConfig struct {
	ID             shared.ID
	Name           string
	LastName       string
	Email          string
	Phone          string
	Profession     string
	ProfessionalID ProfessionalID
	ProfilePicture string
}

// NewPerson validates and builds a person. The professional license is
// optional, but when present it must match its registry pattern.
func NewPerson(cfg PersonConfig) (*Person, error) {
	if cfg.Name == "" {
		return nil, shared.NewValidationError("name", "name is required and must be a non-empty string")
	}
	if cfg.LastName == "" {
		return nil, shared.NewValidationError("lastName", "last name is required and must be a non-empty string")
	}
	if !strings.Contains(cfg.Email, "@") {
		return nil, shared.NewValidationError("email", "email must be a valid address")
	}
	if !cfg.ProfessionalID.IsEmpty() {
		if err := cfg.ProfessionalID.Validate(); err != nil {
			return nil, err
		}
	}
	return &Person{
		id:             cfg.ID,
		name:           cfg.Name,
		lastName:       cfg.LastName,
		email:          cfg.Email,
		phone:          cfg.Phone,
		profession:     cfg.Profession,
		professionalID: cfg.ProfessionalID,
		profilePicture: cfg.ProfilePicture,
	}, nil
}

func (p *Person) ID() shared.ID                  { return p.id }
func (p *Person) Name() string                   { return p.name }
func (p *Person) LastName() string               { return p.lastName }
func (p *Person) Email() string                  { return p.email }
func (p *Person) Phone() string                  { return p.phone }
func (p *Person) Profession() string             { return p.profession }
func (p *Person) ProfessionalID() ProfessionalID { return p.professionalID }
func (p *Person) ProfilePicture() string         { return p.profilePicture }

// FullName joins name and last name for display.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.name + " " + p.lastName)
}

// UpdateProfilePicture replaces the picture URL.
func (p *Person) UpdateProfilePicture(url string) {
	p.profilePicture = url
}

type personJSON struct {
	ID                 shared.ID          `json:"id"`
	Name               string             `json:"name"`
	LastName           string             `json:"lastName"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	Profession         string             `json:"profession"`
	ProfessionalID     ProfessionalID     `json:"professionalId"`
	ProfessionalIDType ProfessionalIDType `json:"professionalIdType"`
	ProfilePicture     string             `json:"profilePicture"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (p *Person) MarshalJSON() ([]byte, error) {
	return json.Marshal(personJSON{
		ID:                 p.id,
		Name:               p.name,
		LastName:           p.lastName,
		Email:              p.email,
		Phone:              p.phone,
		Profession:         p.profession,
		ProfessionalID:     p.professionalID,
		ProfessionalIDType: p.professionalID.Type(),
		ProfilePicture:     p.profilePicture,
	})
}
