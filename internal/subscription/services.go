package subscription

import (
	"context"
	"net/url"
	"strconv"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/rest"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/subscription/domain"
)

func intQuery(field string, value int64) url.Values {
	return url.Values{field: {strconv.FormatInt(value, 10)}}
}

// Service exposes the subscription resource operations.
type Service struct {
	svc *rest.Service
	asm *Assembler
	log *logging.Logger
}

func NewService(client *rest.Client, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		svc: rest.NewService(client, "/subscriptions", rest.Definition{
			"getAll":  {Verb: rest.GET},
			"getById": {Verb: rest.GET, Path: ":id"},
			"create":  {Verb: rest.POST},
			"update":  {Verb: rest.PATCH, Path: ":id"},
			"cancel":  {Verb: rest.POST, Path: ":id/cancel"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *Service) GetByPersonID(ctx context.Context, personID int64) ([]*domain.Subscription, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, intQuery("personId", personID))
	if err != nil {
		return nil, err
	}
	return s.asm.ToSubscriptions(raw), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	raw, err := s.svc.Call(ctx, "getById", id, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToSubscription(raw)
}

func (s *Service) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	raw, err := s.svc.Call(ctx, "create", sub, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToSubscription(raw)
}

func (s *Service) Update(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	raw, err := s.svc.Call(ctx, "update", sub, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToSubscription(raw)
}

func (s *Service) Cancel(ctx context.Context, subscriptionID int64) (*domain.Subscription, error) {
	raw, err := s.svc.Call(ctx, "cancel", map[string]any{"id": subscriptionID}, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToSubscription(raw)
}

// PlanService exposes the read-mostly plan catalog.
type PlanService struct {
	svc *rest.Service
	asm *Assembler
	log *logging.Logger
}

func NewPlanService(client *rest.Client, log *logging.Logger) *PlanService {
	if log == nil {
		log = logging.Nop()
	}
	return &PlanService{
		svc: rest.NewService(client, "/plans", rest.Definition{
			"getAll":  {Verb: rest.GET},
			"getById": {Verb: rest.GET, Path: ":id"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *PlanService) GetAll(ctx context.Context) ([]*domain.SubscriptionPlan, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToPlans(raw), nil
}

func (s *PlanService) GetByID(ctx context.Context, id int64) (*domain.SubscriptionPlan, error) {
	raw, err := s.svc.Call(ctx, "getById", id, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToPlan(raw)
}

// WorkspaceService exposes the workspace resource operations,
// including the partial limit override.
type WorkspaceService struct {
	svc *rest.Service
	asm *Assembler
	log *logging.Logger
}

func NewWorkspaceService(client *rest.Client, log *logging.Logger) *WorkspaceService {
	if log == nil {
		log = logging.Nop()
	}
	return &WorkspaceService{
		svc: rest.NewService(client, "/workspaces", rest.Definition{
			"getAll":    {Verb: rest.GET},
			"getById":   {Verb: rest.GET, Path: ":id"},
			"create":    {Verb: rest.POST},
			"update":    {Verb: rest.PATCH, Path: ":id"},
			"setLimits": {Verb: rest.PATCH, Path: ":id/limits"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *WorkspaceService) GetByOrganizationID(ctx context.Context, organizationID int64) ([]*domain.Workspace, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, intQuery("organizationId", organizationID))
	if err != nil {
		return nil, err
	}
	return s.asm.ToWorkspaces(raw), nil
}

func (s *WorkspaceService) Create(ctx context.Context, ws *domain.Workspace) (*domain.Workspace, error) {
	raw, err := s.svc.Call(ctx, "create", ws, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToWorkspace(raw)
}

func (s *WorkspaceService) Update(ctx context.Context, ws *domain.Workspace) (*domain.Workspace, error) {
	raw, err := s.svc.Call(ctx, "update", ws, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToWorkspace(raw)
}

// SetLimits sends only the overrides the caller provides; nil keeps
// the current value.
func (s *WorkspaceService) SetLimits(ctx context.Context, workspaceID int64, members *int, storage *int64, projects *int) (*domain.Workspace, error) {
	payload := map[string]any{"id": workspaceID}
	if members != nil {
		payload["maxMembers"] = *members
	}
	if storage != nil {
		payload["maxStorageSizeInBytes"] = *storage
	}
	if projects != nil {
		payload["maxProjects"] = *projects
	}
	raw, err := s.svc.Call(ctx, "setLimits", payload, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToWorkspace(raw)
}
