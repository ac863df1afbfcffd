package domain

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// Organization is the aggregate owning its members and pending
// invitations. A person may hold at most one PENDING invitation per
// organization at a time.
type Organization struct {
	id             shared.ID
	legalName      string
	commercialName string
	ruc            Ruc
	createdBy      shared.ID
	createdAt      time.Time
	status         OrganizationStatus
	members        []*OrganizationMember
	invitations    []*OrganizationInvitation
}

// OrganizationConfig carries the named, defaulted construction fields.
type OrganizationConfig struct {
	ID             shared.ID
	LegalName      string
	CommercialName string
	Ruc            Ruc
	CreatedBy      shared.ID
	CreatedAt      time.Time
	Status         OrganizationStatus
	Members        []*OrganizationMember
	Invitations    []*OrganizationInvitation
}

// NewOrganization validates and builds an organization.
func NewOrganization(cfg OrganizationConfig) (*Organization, error) {
	if cfg.LegalName == "" {
		return nil, shared.NewValidationError("legalName", "legal name is required and must be a non-empty string")
	}
	if err := cfg.Ruc.Validate(); err != nil {
		return nil, err
	}
	if cfg.CreatedBy.IsNil() {
		return nil, shared.NewValidationError("createdBy", "creator must be a valid person id")
	}
	if cfg.Status == "" {
		cfg.Status = OrganizationActive
	}
	switch cfg.Status {
	case OrganizationActive, OrganizationInactive:
	default:
		return nil, shared.NewValidationError("status", "unknown organization status "+string(cfg.Status))
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = time.Now()
	}
	return &Organization{
		id:             cfg.ID,
		legalName:      cfg.LegalName,
		commercialName: cfg.CommercialName,
		ruc:            cfg.Ruc,
		createdBy:      cfg.CreatedBy,
		createdAt:      cfg.CreatedAt,
		status:         cfg.Status,
		members:        cfg.Members,
		invitations:    cfg.Invitations,
	}, nil
}

func (o *Organization) ID() shared.ID              { return o.id }
func (o *Organization) LegalName() string          { return o.legalName }
func (o *Organization) CommercialName() string     { return o.commercialName }
func (o *Organization) Ruc() Ruc                   { return o.ruc }
func (o *Organization) CreatedBy() shared.ID       { return o.createdBy }
func (o *Organization) CreatedAt() time.Time       { return o.createdAt }
func (o *Organization) Status() OrganizationStatus { return o.status }

// Members returns the owned member list.
func (o *Organization) Members() []*OrganizationMember { return o.members }

// Invitations returns the owned invitation list.
func (o *Organization) Invitations() []*OrganizationInvitation { return o.invitations }

// UpdateLegalName replaces the legal name.
func (o *Organization) UpdateLegalName(name string) error {
	if name == "" {
		return shared.NewValidationError("legalName", "legal name must be a non-empty string")
	}
	o.legalName = name
	return nil
}

// UpdateCommercialName replaces the commercial name.
func (o *Organization) UpdateCommercialName(name string) error {
	if name == "" {
		return shared.NewValidationError("commercialName", "commercial name must be a non-empty string")
	}
	o.commercialName = name
	return nil
}

// AddMember appends a member, rejecting duplicates by person identity.
func (o *Organization) AddMember(member *OrganizationMember) error {
	if member == nil {
		return shared.NewValidationError("member", "member is required")
	}
	for _, existing := range o.members {
		if existing.PersonID().Equals(member.PersonID()) {
			return shared.NewValidationError("member", "person is already a member of the organization")
		}
	}
	o.members = append(o.members, member)
	return nil
}

// RemoveMemberByPersonID filters the member out by person identity.
func (o *Organization) RemoveMemberByPersonID(personID shared.ID) {
	kept := o.members[:0]
	for _, m := range o.members {
		if !m.PersonID().Equals(personID) {
			kept = append(kept, m)
		}
	}
	o.members = kept
}

// InvitePerson creates and owns a new PENDING invitation. It fails while
// the person already has a pending one; after that invitation is
// accepted or rejected, inviting again succeeds.
func (o *Organization) InvitePerson(personID, invitedBy shared.ID) (*OrganizationInvitation, error) {
	for _, inv := range o.invitations {
		if inv.PersonID().Equals(personID) && inv.IsPending() {
			return nil, shared.NewValidationError("invitation", "person already has a pending invitation")
		}
	}
	invitation, err := NewOrganizationInvitation(InvitationConfig{
		OrganizationID: o.id,
		PersonID:       personID,
		InvitedBy:      invitedBy,
	})
	if err != nil {
		return nil, err
	}
	o.invitations = append(o.invitations, invitation)
	return invitation, nil
}

// Deactivate moves the organization to INACTIVE. There is no
// reactivation path.
func (o *Organization) Deactivate() {
	o.status = OrganizationInactive
}

// IsActive reports whether the organization is usable.
func (o *Organization) IsActive() bool {
	return o.status == OrganizationActive
}

type organizationJSON struct {
	ID             shared.ID          `json:"id"`
	LegalName      string             `json:"legalName"`
	CommercialName string             `json:"commercialName"`
	Ruc            Ruc                `json:"ruc"`
	CreatedBy      shared.ID          `json:"createdBy"`
	CreatedAt      time.Time          `json:"createdAt"`
	Status         OrganizationStatus `json:"status"`
}

// MarshalJSON emits the flat, backend-shaped record. Members and
// invitations travel through their own resources, not nested here.
func (o *Organization) MarshalJSON() ([]byte, error) {
	return json.Marshal(organizationJSON{
		ID:             o.id,
		LegalName:      o.legalName,
		CommercialName: o.commercialName,
		Ruc:            o.ruc,
		CreatedBy:      o.createdBy,
		CreatedAt:      o.createdAt,
		Status:         o.status,
	})
}
