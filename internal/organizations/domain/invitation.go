package domain

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// OrganizationInvitation links a person to an organization while the
// person decides. Only a PENDING invitation can move; both transitions
// are terminal.
type OrganizationInvitation struct {
	id             shared.ID
	organizationID shared.ID
	personID       shared.ID
	invitedBy      shared.ID
	status         InvitationStatus
	invitedAt      time.Time
	acceptedAt     *time.Time
}

// InvitationConfig carries the named, defaulted construction fields.
type InvitationConfig struct {
	ID             shared.ID
	OrganizationID shared.ID
	PersonID       shared.ID
	InvitedBy      shared.ID
	Status         InvitationStatus
	InvitedAt      time.Time
	AcceptedAt     *time.Time
}

// NewOrganizationInvitation validates and builds an invitation.
func NewOrganizationInvitation(cfg InvitationConfig) (*OrganizationInvitation, error) {
	if cfg.PersonID.IsNil() {
		return nil, shared.NewValidationError("personId", "invitee person id is required")
	}
	if cfg.Status == "" {
		cfg.Status = InvitationPending
	}
	switch cfg.Status {
	case InvitationPending, InvitationAccepted, InvitationRejected:
	default:
		return nil, shared.NewValidationError("status", "unknown invitation status "+string(cfg.Status))
	}
	if cfg.InvitedAt.IsZero() {
		cfg.InvitedAt = time.Now()
	}
	return &OrganizationInvitation{
		id:             cfg.ID,
		organizationID: cfg.OrganizationID,
		personID:       cfg.PersonID,
		invitedBy:      cfg.InvitedBy,
		status:         cfg.Status,
		invitedAt:      cfg.InvitedAt,
		acceptedAt:     cfg.AcceptedAt,
	}, nil
}

func (i *OrganizationInvitation) ID() shared.ID               { return i.id }
func (i *OrganizationInvitation) OrganizationID() shared.ID   { return i.organizationID }
func (i *OrganizationInvitation) PersonID() shared.ID         { return i.personID }
func (i *OrganizationInvitation) InvitedBy() shared.ID        { return i.invitedBy }
func (i *OrganizationInvitation) Status() InvitationStatus    { return i.status }
func (i *OrganizationInvitation) InvitedAt() time.Time        { return i.invitedAt }
func (i *OrganizationInvitation) AcceptedAt() *time.Time      { return i.acceptedAt }

// IsPending reports whether the invitation can still be answered.
func (i *OrganizationInvitation) IsPending() bool {
	return i.status == InvitationPending
}

// Accept moves PENDING to ACCEPTED and stamps acceptedAt.
func (i *OrganizationInvitation) Accept(at time.Time) error {
	if !i.IsPending() {
		return shared.NewValidationError("status", "invitation cannot be accepted")
	}
	i.status = InvitationAccepted
	i.acceptedAt = &at
	return nil
}

// Reject moves PENDING to REJECTED and clears acceptedAt.
func (i *OrganizationInvitation) Reject() error {
	if !i.IsPending() {
		return shared.NewValidationError("status", "invitation cannot be rejected")
	}
	i.status = InvitationRejected
	i.acceptedAt = nil
	return nil
}

type invitationJSON struct {
	ID             shared.ID        `json:"id"`
	OrganizationID shared.ID        `json:"organizationId"`
	PersonID       shared.ID        `json:"personId"`
	InvitedBy      shared.ID        `json:"invitedBy"`
	Status         InvitationStatus `json:"status"`
	InvitedAt      time.Time        `json:"invitedAt"`
	AcceptedAt     *time.Time       `json:"acceptedAt"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (i *OrganizationInvitation) MarshalJSON() ([]byte, error) {
	return json.Marshal(invitationJSON{
		ID:             i.id,
		OrganizationID: i.organizationID,
		PersonID:       i.personID,
		InvitedBy:      i.invitedBy,
		Status:         i.status,
		InvitedAt:      i.invitedAt,
		AcceptedAt:     i.acceptedAt,
	})
}
