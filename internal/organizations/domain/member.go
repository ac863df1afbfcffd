package domain

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// OrganizationMember links a person to an organization with a mutable
// member type.
type OrganizationMember struct {
	id             shared.ID
	personID       shared.ID
	organizationID shared.ID
	memberType     MemberType
	joinedAt       time.Time
}

// MemberConfig carries the named, defaulted construction fields.
type MemberConfig struct {
	ID             shared.ID
	PersonID       shared.ID
	OrganizationID shared.ID
	Type           MemberType
	JoinedAt       time.Time
}

// NewOrganizationMember validates and builds a member.
func NewOrganizationMember(cfg MemberConfig) (*OrganizationMember, error) {
	if cfg.PersonID.IsNil() {
		return nil, shared.NewValidationError("personId", "person id is required")
	}
	if cfg.Type == "" {
		cfg.Type = MemberContractor
	}
	switch cfg.Type {
	case MemberWorker, MemberContractor:
	default:
		return nil, shared.NewValidationError("type", "unknown member type "+string(cfg.Type))
	}
	if cfg.JoinedAt.IsZero() {
		cfg.JoinedAt = time.Now()
	}
	return &OrganizationMember{
		id:             cfg.ID,
		personID:       cfg.PersonID,
		organizationID: cfg.OrganizationID,
		memberType:     cfg.Type,
		joinedAt:       cfg.JoinedAt,
	}, nil
}

func (m *OrganizationMember) ID() shared.ID             { return m.id }
func (m *OrganizationMember) PersonID() shared.ID       { return m.personID }
func (m *OrganizationMember) OrganizationID() shared.ID { return m.organizationID }
func (m *OrganizationMember) Type() MemberType          { return m.memberType }
func (m *OrganizationMember) JoinedAt() time.Time       { return m.joinedAt }

// ChangeType switches the member classification.
func (m *OrganizationMember) ChangeType(t MemberType) error {
	switch t {
	case MemberWorker, MemberContractor:
		m.memberType = t
		return nil
	default:
		return shared.NewValidationError("type", "unknown member type "+string(t))
	}
}

func (m *OrganizationMember) IsWorker() bool     { return m.memberType == MemberWorker }
func (m *OrganizationMember) IsContractor() bool { return m.memberType == MemberContractor }

type memberJSON struct {
	ID             shared.ID  `json:"id"`
	PersonID       shared.ID  `json:"personId"`
	OrganizationID shared.ID  `json:"organizationId"`
	Type           MemberType `json:"type"`
	JoinedAt       time.Time  `json:"joinedAt"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (m *OrganizationMember) MarshalJSON() ([]byte, error) {
	return json.Marshal(memberJSON{
		ID:             m.id,
		PersonID:       m.personID,
		OrganizationID: m.organizationID,
		Type:           m.memberType,
		JoinedAt:       m.joinedAt,
	})
}
