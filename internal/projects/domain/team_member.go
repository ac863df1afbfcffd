package domain

import (
	"encoding/json"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// ProjectTeamMember assigns an organization member a role on a project.
// A specialty is required if and only if the role is SPECIALIST.
type ProjectTeamMember struct {
	id        shared.ID
	ref       shared.Ref
	role      TeamMemberRole
	specialty Specialty
	memberID  shared.ID
}

// TeamMemberConfig carries the named, defaulted construction fields.
type TeamMemberConfig struct {
	ID        shared.ID
	Role      TeamMemberRole
	Specialty Specialty
	MemberID  shared.ID
}

// NewProjectTeamMember validates and builds a team member.
func NewProjectTeamMember(cfg TeamMemberConfig) (*ProjectTeamMember, error) {
	switch cfg.Role {
	case RoleCoordinator, RoleSpecialist:
	case "":
		return nil, shared.NewValidationError("role", "role is required")
	default:
		return nil, shared.NewValidationError("role", "unknown team member role "+string(cfg.Role))
	}
	if cfg.Role == RoleSpecialist {
		if cfg.Specialty == "" {
			return nil, shared.NewValidationError("specialty", "specialty is required for specialists")
		}
		if !KnownSpecialty(cfg.Specialty) {
			return nil, shared.NewValidationError("specialty", "unknown specialty "+string(cfg.Specialty))
		}
	} else if cfg.Specialty != "" {
		return nil, shared.NewValidationError("specialty", "specialty is only allowed for specialists")
	}
	if cfg.MemberID.IsNil() {
		return nil, shared.NewValidationError("memberId", "organization member id is required")
	}
	return &ProjectTeamMember{
		id:        cfg.ID,
		ref:       shared.NewRef(),
		role:      cfg.Role,
		specialty: cfg.Specialty,
		memberID:  cfg.MemberID,
	}, nil
}

func (m *ProjectTeamMember) ID() shared.ID        { return m.id }
func (m *ProjectTeamMember) Ref() shared.Ref      { return m.ref }
func (m *ProjectTeamMember) Role() TeamMemberRole { return m.role }
func (m *ProjectTeamMember) Specialty() Specialty { return m.specialty }
func (m *ProjectTeamMember) MemberID() shared.ID  { return m.memberID }

// sameIdentity compares by persisted id when both sides have one and by
// local ref otherwise, never by pointer.
func (m *ProjectTeamMember) sameIdentity(other *ProjectTeamMember) bool {
	if m.id.Equals(other.id) {
		return true
	}
	return m.ref == other.ref
}

type teamMemberJSON struct {
	ID        shared.ID      `json:"id"`
	Role      TeamMemberRole `json:"role"`
	Specialty Specialty      `json:"specialty,omitempty"`
	MemberID  shared.ID      `json:"memberId"`
}

// MarshalJSON emits the flat, backend-shaped record. The local ref is
// client-side only and never serialized.
func (m *ProjectTeamMember) MarshalJSON() ([]byte, error) {
	return json.Marshal(teamMemberJSON{
		ID:        m.id,
		Role:      m.role,
		Specialty: m.specialty,
		MemberID:  m.memberID,
	})
}
