package subscription

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/subscription/domain"
)

type subscriptionResource struct {
	ID        shared.ID `json:"id"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Status    string    `json:"status"`
	PersonID  shared.ID `json:"personId"`
	PlanID    shared.ID `json:"subscriptionPlan"`
	AutoRenew bool      `json:"isAutoRenew"`
}

type planResource struct {
	ID             shared.ID    `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	DurationInDays int          `json:"durationInDays"`
	Price          shared.Money `json:"price"`
	Features       []string     `json:"features"`
	PlanType       string       `json:"planType"`
	MaxMembers     int          `json:"maxMembers"`
	MaxStorage     int64        `json:"maxStorageSizeInBytes"`
	MaxProjects    int          `json:"maxProjects"`
}

type workspaceResource struct {
	ID             shared.ID `json:"id"`
	OrganizationID shared.ID `json:"organizationId"`
	CreatedBy      shared.ID `json:"createdBy"`
	CreatedAt      string    `json:"createdAt"`
	SubscriptionID shared.ID `json:"subscriptionId"`
	MaxMembers     int       `json:"maxMembers"`
	MaxStorage     int64     `json:"maxStorageSizeInBytes"`
	MaxProjects    int       `json:"maxProjects"`
}

// Assembler builds subscription entities from raw responses.
type Assembler struct {
	log *logging.Logger
}

func NewAssembler(log *logging.Logger) *Assembler {
	if log == nil {
		log = logging.Nop()
	}
	return &Assembler{log: log}
}

func (a *Assembler) ToSubscription(raw json.RawMessage) (*domain.Subscription, error) {
	var res subscriptionResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	return domain.NewSubscription(domain.SubscriptionConfig{
		ID:        res.ID,
		StartDate: shared.ParseWireTime(res.StartDate),
		EndDate:   shared.ParseWireTime(res.EndDate),
		Status:    domain.ParseSubscriptionStatus(res.Status),
		PersonID:  res.PersonID,
		PlanID:    res.PlanID,
		AutoRenew: res.AutoRenew,
	})
}

func (a *Assembler) ToSubscriptions(raw json.RawMessage) []*domain.Subscription {
	items := shared.SplitBatch(raw)
	out := make([]*domain.Subscription, 0, len(items))
	for _, item := range items {
		sub, err := a.ToSubscription(item)
		if err != nil {
			a.log.Warnw("dropping malformed subscription", "error", err)
			continue
		}
		out = append(out, sub)
	}
	return out
}

func (a *Assembler) ToPlan(raw json.RawMessage) (*domain.SubscriptionPlan, error) {
	var res planResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	return domain.NewSubscriptionPlan(domain.PlanConfig{
		ID:             res.ID,
		Name:           res.Name,
		Description:    res.Description,
		DurationInDays: res.DurationInDays,
		Price:          res.Price,
		Features:       res.Features,
		PlanType:       res.PlanType,
		Limits: domain.PlanLimits{
			MaxMembers:            res.MaxMembers,
			MaxStorageSizeInBytes: res.MaxStorage,
			MaxProjects:           res.MaxProjects,
		},
	})
}

func (a *Assembler) ToPlans(raw json.RawMessage) []*domain.SubscriptionPlan {
	items := shared.SplitBatch(raw)
	out := make([]*domain.SubscriptionPlan, 0, len(items))
	for _, item := range items {
		plan, err := a.ToPlan(item)
		if err != nil {
			a.log.Warnw("dropping malformed plan", "error", err)
			continue
		}
		out = append(out, plan)
	}
	return out
}

func (a *Assembler) ToWorkspace(raw json.RawMessage) (*domain.Workspace, error) {
	var res workspaceResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	createdAt := shared.ParseWireTime(res.CreatedAt)
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return domain.NewWorkspace(domain.WorkspaceConfig{
		ID:             res.ID,
		OrganizationID: res.OrganizationID,
		CreatedBy:      res.CreatedBy,
		CreatedAt:      createdAt,
		SubscriptionID: res.SubscriptionID,
		Limits: domain.PlanLimits{
			MaxMembers:            res.MaxMembers,
			MaxStorageSizeInBytes: res.MaxStorage,
			MaxProjects:           res.MaxProjects,
		},
	})
}

func (a *Assembler) ToWorkspaces(raw json.RawMessage) []*domain.Workspace {
	items := shared.SplitBatch(raw)
	out := make([]*domain.Workspace, 0, len(items))
	for _, item := range items {
		ws, err := a.ToWorkspace(item)
		if err != nil {
			a.log.Warnw("dropping malformed workspace", "error", err)
			continue
		}
		out = append(out, ws)
	}
	return out
}
