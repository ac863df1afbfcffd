package organizations

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/organizations/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/cache"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/rest"
)

const cachePrefix = "organizations:"

// Service exposes the organization resource operations.
type Service struct {
	svc   *rest.Service
	asm   *Assembler
	cache *cache.Cache
	log   *logging.Logger
}

func NewService(client *rest.Client, c *cache.Cache, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		svc: rest.NewService(client, "/organizations", rest.Definition{
			"getAll":        {Verb: rest.GET},
			"getById":       {Verb: rest.GET, Path: ":id"},
			"getByPersonId": {Verb: rest.GET, Path: "persons/:personId/organizations", FullPath: true},
			"getMembers":    {Verb: rest.GET, Path: ":id/members"},
			"create":        {Verb: rest.POST},
			"update":        {Verb: rest.PATCH, Path: ":id"},
			"delete":        {Verb: rest.DELETE, Path: ":id"},
		}),
		asm:   NewAssembler(log),
		cache: c,
		log:   log,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]*domain.Organization, error) {
	raw, err := s.cache.GetOrPopulate(ctx, cachePrefix+"all", func(ctx context.Context) ([]byte, error) {
		return s.svc.Call(ctx, "getAll", nil, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.asm.ToOrganizations(raw), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	key := fmt.Sprintf("%sid:%d", cachePrefix, id)
	raw, err := s.cache.GetOrPopulate(ctx, key, func(ctx context.Context) ([]byte, error) {
		return s.svc.Call(ctx, "getById", id, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.asm.ToOrganization(raw)
}

func (s *Service) GetByPersonID(ctx context.Context, personID int64) ([]*domain.Organization, error) {
	raw, err := s.svc.Call(ctx, "getByPersonId", map[string]any{"personId": personID}, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToOrganizations(raw), nil
}

func (s *Service) GetMembers(ctx context.Context, organizationID int64) ([]*domain.OrganizationMember, error) {
	raw, err := s.svc.Call(ctx, "getMembers", organizationID, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToMembers(raw), nil
}

func (s *Service) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	raw, err := s.svc.Call(ctx, "create", org, nil)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.asm.ToOrganization(raw)
}

func (s *Service) Update(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	raw, err := s.svc.Call(ctx, "update", org, nil)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.asm.ToOrganization(raw)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.svc.Call(ctx, "delete", id, nil); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cachePrefix); err != nil {
		s.log.Warnw("cache invalidation failed", "prefix", cachePrefix, "error", err)
	}
}

// MemberService exposes the organization-member resource operations.
// Membership queries filter on organizationId the way the backend's
// collection filtering expects.
type MemberService struct {
	svc *rest.Service
	asm *Assembler
	log *logging.Logger
}

func NewMemberService(client *rest.Client, log *logging.Logger) *MemberService {
	if log == nil {
		log = logging.Nop()
	}
	return &MemberService{
		svc: rest.NewService(client, "/members", rest.Definition{
			"getAll":     {Verb: rest.GET},
			"getById":    {Verb: rest.GET, Path: ":id"},
			"create":     {Verb: rest.POST},
			"changeType": {Verb: rest.PATCH, Path: ":id"},
			"delete":     {Verb: rest.DELETE, Path: ":id"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *MemberService) GetByOrganizationID(ctx context.Context, organizationID int64) ([]*domain.OrganizationMember, error) {
	query := url.Values{"organizationId": {strconv.FormatInt(organizationID, 10)}}
	raw, err := s.svc.Call(ctx, "getAll", nil, query)
	if err != nil {
		return nil, err
	}
	return s.asm.ToMembers(raw), nil
}

func (s *MemberService) Create(ctx context.Context, member *domain.OrganizationMember) (*domain.OrganizationMember, error) {
	raw, err := s.svc.Call(ctx, "create", member, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToMember(raw)
}

func (s *MemberService) ChangeType(ctx context.Context, memberID int64, memberType domain.MemberType) (*domain.OrganizationMember, error) {
	payload := map[string]any{"id": memberID, "type": string(memberType)}
	raw, err := s.svc.Call(ctx, "changeType", payload, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToMember(raw)
}

func (s *MemberService) Delete(ctx context.Context, memberID int64) error {
	_, err := s.svc.Call(ctx, "delete", memberID, nil)
	return err
}

// InvitationService exposes the invitation resource operations,
// including the accept/reject intent routes.
type InvitationService struct {
	svc *rest.Service
	asm *Assembler
	log *logging.Logger
}

func NewInvitationService(client *rest.Client, log *logging.Logger) *InvitationService {
	if log == nil {
		log = logging.Nop()
	}
	return &InvitationService{
		svc: rest.NewService(client, "/invitations", rest.Definition{
			"getByPersonId":       {Verb: rest.GET, Path: "persons/:personId/invitations", FullPath: true},
			"getByOrganizationId": {Verb: rest.GET},
			"invite":              {Verb: rest.POST},
			"accept":              {Verb: rest.POST, Path: ":id/accept"},
			"reject":              {Verb: rest.POST, Path: ":id/reject"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *InvitationService) GetByPersonID(ctx context.Context, personID int64) ([]*domain.OrganizationInvitation, error) {
	raw, err := s.svc.Call(ctx, "getByPersonId", map[string]any{"personId": personID}, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToInvitations(raw), nil
}

func (s *InvitationService) GetByOrganizationID(ctx context.Context, organizationID int64) ([]*domain.OrganizationInvitation, error) {
	query := url.Values{"organizationId": {strconv.FormatInt(organizationID, 10)}}
	raw, err := s.svc.Call(ctx, "getByOrganizationId", nil, query)
	if err != nil {
		return nil, err
	}
	return s.asm.ToInvitations(raw), nil
}

func (s *InvitationService) Invite(ctx context.Context, invitation *domain.OrganizationInvitation) (*domain.OrganizationInvitation, error) {
	raw, err := s.svc.Call(ctx, "invite", invitation, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToInvitation(raw)
}

func (s *InvitationService) Accept(ctx context.Context, invitationID int64) (*domain.OrganizationInvitation, error) {
	raw, err := s.svc.Call(ctx, "accept", map[string]any{"id": invitationID}, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToInvitation(raw)
}

func (s *InvitationService) Reject(ctx context.Context, invitationID int64) (*domain.OrganizationInvitation, error) {
	raw, err := s.svc.Call(ctx, "reject", map[string]any{"id": invitationID}, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToInvitation(raw)
}
