package organizations

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/organizations/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// Wire shapes are deliberately loose: ids may arrive as numeric
// strings, dates under alternate spellings, enum values unknown. The
// assembler coerces what it can and lets the domain constructors
// enforce the rest.

type organizationResource struct {
	ID             shared.ID `json:"id"`
	LegalName      string    `json:"legalName"`
	CommercialName string    `json:"commercialName"`
	Ruc            string    `json:"ruc"`
	CreatedBy      shared.ID `json:"createdBy"`
	CreatedAt      string    `json:"createdAt"`
	Status         string    `json:"status"`
}

type invitationResource struct {
	ID             shared.ID `json:"id"`
	OrganizationID shared.ID `json:"organizationId"`
	PersonID       shared.ID `json:"personId"`
	InvitedBy      shared.ID `json:"invitedBy"`
	Status         string    `json:"status"`
	InvitedAt      string    `json:"invitedAt"`
	AcceptedAt     string    `json:"acceptedAt"`
}

type memberResource struct {
	ID             shared.ID `json:"id"`
	OrganizationID shared.ID `json:"organizationId"`
	PersonID       shared.ID `json:"personId"`
	Type           string    `json:"type"`
	JoinedAt       string    `json:"joinedAt"`
}

// Assembler builds organization-context entities from raw responses.
type Assembler struct {
	log *logging.Logger
}

func NewAssembler(log *logging.Logger) *Assembler {
	if log == nil {
		log = logging.Nop()
	}
	return &Assembler{log: log}
}

func (a *Assembler) ToOrganization(raw json.RawMessage) (*domain.Organization, error) {
	var res organizationResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	createdAt := shared.ParseWireTime(res.CreatedAt)
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return domain.NewOrganization(domain.OrganizationConfig{
		ID:             res.ID,
		LegalName:      res.LegalName,
		CommercialName: res.CommercialName,
		Ruc:            domain.NewRuc(res.Ruc),
		CreatedBy:      res.CreatedBy,
		CreatedAt:      createdAt,
		Status:         domain.ParseOrganizationStatus(res.Status),
	})
}

// ToOrganizations assembles a batch, dropping items that fail to
// validate so one malformed record does not sink the page.
func (a *Assembler) ToOrganizations(raw json.RawMessage) []*domain.Organization {
	items := shared.SplitBatch(raw)
	out := make([]*domain.Organization, 0, len(items))
	for _, item := range items {
		org, err := a.ToOrganization(item)
		if err != nil {
			a.log.Warnw("dropping malformed organization", "error", err)
			continue
		}
		out = append(out, org)
	}
	return out
}

func (a *Assembler) ToInvitation(raw json.RawMessage) (*domain.OrganizationInvitation, error) {
	var res invitationResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	invitedAt := shared.ParseWireTime(res.InvitedAt)
	if invitedAt.IsZero() {
		invitedAt = time.Now()
	}
	cfg := domain.InvitationConfig{
		ID:             res.ID,
		OrganizationID: res.OrganizationID,
		PersonID:       res.PersonID,
		InvitedBy:      res.InvitedBy,
		Status:         domain.ParseInvitationStatus(res.Status),
		InvitedAt:      invitedAt,
	}
	if t := shared.ParseWireTime(res.AcceptedAt); !t.IsZero() {
		cfg.AcceptedAt = &t
	}
	return domain.NewOrganizationInvitation(cfg)
}

func (a *Assembler) ToInvitations(raw json.RawMessage) []*domain.OrganizationInvitation {
	items := shared.SplitBatch(raw)
	out := make([]*domain.OrganizationInvitation, 0, len(items))
	for _, item := range items {
		inv, err := a.ToInvitation(item)
		if err != nil {
			a.log.Warnw("dropping malformed invitation", "error", err)
			continue
		}
		out = append(out, inv)
	}
	return out
}

func (a *Assembler) ToMember(raw json.RawMessage) (*domain.OrganizationMember, error) {
	var res memberResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	joinedAt := shared.ParseWireTime(res.JoinedAt)
	if joinedAt.IsZero() {
		joinedAt = time.Now()
	}
	return domain.NewOrganizationMember(domain.MemberConfig{
		ID:             res.ID,
		OrganizationID: res.OrganizationID,
		PersonID:       res.PersonID,
		Type:           domain.ParseMemberType(res.Type),
		JoinedAt:       joinedAt,
	})
}

func (a *Assembler) ToMembers(raw json.RawMessage) []*domain.OrganizationMember {
	items := shared.SplitBatch(raw)
	out := make([]*domain.OrganizationMember, 0, len(items))
	for _, item := range items {
		m, err := a.ToMember(item)
		if err != nil {
			a.log.Warnw("dropping malformed member", "error", err)
			continue
		}
		out = append(out, m)
	}
	return out
}
