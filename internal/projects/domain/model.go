package domain

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// Project is the aggregate a contracting organization runs a design
// process under. It owns its team list.
type Project struct {
	id             shared.ID
	name           string
	description    string
	status         ProjectStatus
	budget         shared.Money
	startingDate   time.Time
	endingDate     time.Time
	organizationID shared.ID
	contractorID   shared.ID
	team           []*ProjectTeamMember
}

// ProjectConfig carries the named, defaulted construction fields.
type ProjectConfig struct {
	ID             shared.ID
	Name           string
	Description    string
	Status         ProjectStatus
	Budget         shared.Money
	StartingDate   time.Time
	EndingDate     time.Time
	OrganizationID shared.ID
	ContractorID   shared.ID
	Team           []*ProjectTeamMember
}

// NewProject validates and builds a project.
func NewProject(cfg ProjectConfig) (*Project, error) {
	if cfg.Name == "" {
		return nil, shared.NewValidationError("name", "name is required and must be a non-empty string")
	}
	if cfg.Description == "" {
		return nil, shared.NewValidationError("description", "description is required and must be a non-empty string")
	}
	if !cfg.Budget.IsPositive() {
		return nil, shared.NewValidationError("budget", "budget must be greater than zero")
	}
	if cfg.Status == "" {
		cfg.Status = ProjectBasicStudies
	}
	if !KnownProjectStatus(cfg.Status) {
		return nil, shared.NewValidationError("status", "unknown project status "+string(cfg.Status))
	}
	if !cfg.EndingDate.IsZero() && cfg.EndingDate.Before(cfg.StartingDate) {
		return nil, shared.NewValidationError("endingDate", "ending date cannot be earlier than starting date")
	}
	return &Project{
		id:             cfg.ID,
		name:           cfg.Name,
		description:    cfg.Description,
		status:         cfg.Status,
		budget:         cfg.Budget,
		startingDate:   cfg.StartingDate,
		endingDate:     cfg.EndingDate,
		organizationID: cfg.OrganizationID,
		contractorID:   cfg.ContractorID,
		team:           cfg.Team,
	}, nil
}

func (p *Project) ID() shared.ID              { return p.id }
func (p *Project) Name() string               { return p.name }
func (p *Project) Description() string        { return p.description }
func (p *Project) Status() ProjectStatus      { return p.status }
func (p *Project) Budget() shared.Money       { return p.budget }
func (p *Project) StartingDate() time.Time    { return p.startingDate }
func (p *Project) EndingDate() time.Time      { return p.endingDate }
func (p *Project) OrganizationID() shared.ID  { return p.organizationID }
func (p *Project) ContractorID() shared.ID    { return p.contractorID }
func (p *Project) Team() []*ProjectTeamMember { return p.team }

// UpdateStatus moves the project to any known status.
func (p *Project) UpdateStatus(status ProjectStatus) error {
	if !KnownProjectStatus(status) {
		return shared.NewValidationError("status", "unknown project status "+string(status))
	}
	p.status = status
	return nil
}

// UpdateDescription replaces the description.
func (p *Project) UpdateDescription(description string) error {
	if description == "" {
		return shared.NewValidationError("description", "description is required and must be a non-empty string")
	}
	p.description = description
	return nil
}

// AddTeamMember appends a member, rejecting duplicates by identity.
func (p *Project) AddTeamMember(member *ProjectTeamMember) error {
	if member == nil {
		return shared.NewValidationError("member", "team member is required")
	}
	for _, existing := range p.team {
		if existing.sameIdentity(member) {
			return shared.NewValidationError("member", "team member already belongs to the project")
		}
		if existing.MemberID().Equals(member.MemberID()) {
			return shared.NewValidationError("member", "organization member is already on the team")
		}
	}
	p.team = append(p.team, member)
	return nil
}

// RemoveTeamMember filters a member out by persisted identity.
func (p *Project) RemoveTeamMember(memberID shared.ID) error {
	if memberID.IsNil() {
		return shared.NewValidationError("memberId", "team member id is required")
	}
	kept := p.team[:0]
	for _, m := range p.team {
		if !m.ID().Equals(memberID) {
			kept = append(kept, m)
		}
	}
	p.team = kept
	return nil
}

type projectJSON struct {
	ID             shared.ID            `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Status         ProjectStatus        `json:"status"`
	Budget         shared.Money         `json:"budget"`
	StartingDate   time.Time            `json:"startingDate"`
	EndingDate     time.Time            `json:"endingDate"`
	OrganizationID shared.ID            `json:"organizationId"`
	Contractor     shared.ID            `json:"contractor"`
	Team           []*ProjectTeamMember `json:"team"`
}

// MarshalJSON emits the flat, backend-shaped record with the team as an
// array of the members' own canonical forms.
func (p *Project) MarshalJSON() ([]byte, error) {
	team := p.team
	if team == nil {
		team = []*ProjectTeamMember{}
	}
	return json.Marshal(projectJSON{
		ID:             p.id,
		Name:           p.name,
		Description:    p.description,
		Status:         p.status,
		Budget:         p.budget,
		StartingDate:   p.startingDate,
		EndingDate:     p.endingDate,
		OrganizationID: p.organizationID,
		Contractor:     p.contractorID,
		Team:           team,
	})
}
