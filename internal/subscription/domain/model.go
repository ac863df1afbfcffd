package domain

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// SubscriptionStatus is the lifecycle of a subscription. Only
// ACTIVE->CANCELLED is legal; there is no path back.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

// ParseSubscriptionStatus falls back to ACTIVE on unknown wire values.
func ParseSubscriptionStatus(raw string) SubscriptionStatus {
	switch SubscriptionStatus(raw) {
	case SubscriptionActive, SubscriptionCancelled:
		return SubscriptionStatus(raw)
	default:
		return SubscriptionActive
	}
}

// Subscription ties a person to a plan over a date window.
type Subscription struct {
	id        shared.ID
	startDate time.Time
	endDate   time.Time
	status    SubscriptionStatus
	personID  shared.ID
	planID    shared.ID
	autoRenew bool
}

// SubscriptionConfig carries the named, defaulted construction fields.
type SubscriptionConfig struct {
	ID        shared.ID
	StartDate time.Time
	EndDate   time.Time
	Status    SubscriptionStatus
	PersonID  shared.ID
	PlanID    shared.ID
	AutoRenew bool
}

// NewSubscription validates and builds a subscription.
func NewSubscription(cfg SubscriptionConfig) (*Subscription, error) {
	if cfg.Status == "" {
		cfg.Status = SubscriptionActive
	}
	switch cfg.Status {
	case SubscriptionActive, SubscriptionCancelled:
	default:
		return nil, shared.NewValidationError("status", "unknown subscription status "+string(cfg.Status))
	}
	if cfg.StartDate.IsZero() {
		cfg.StartDate = time.Now()
	}
	if cfg.EndDate.IsZero() {
		cfg.EndDate = cfg.StartDate
	}
	if cfg.EndDate.Before(cfg.StartDate) {
		return nil, shared.NewValidationError("endDate", "end date cannot be earlier than start date")
	}
	return &Subscription{
		id:        cfg.ID,
		startDate: cfg.StartDate,
		endDate:   cfg.EndDate,
		status:    cfg.Status,
		personID:  cfg.PersonID,
		planID:    cfg.PlanID,
		autoRenew: cfg.AutoRenew,
	}, nil
}

func (s *Subscription) ID() shared.ID              { return s.id }
func (s *Subscription) StartDate() time.Time       { return s.startDate }
func (s *Subscription) EndDate() time.Time         { return s.endDate }
func (s *Subscription) Status() SubscriptionStatus { return s.status }
func (s *Subscription) PersonID() shared.ID        { return s.personID }
func (s *Subscription) PlanID() shared.ID          { return s.planID }
func (s *Subscription) AutoRenew() bool            { return s.autoRenew }

// Cancel ends an active subscription.
func (s *Subscription) Cancel() error {
	if s.status != SubscriptionActive {
		return shared.NewValidationError("status", "only active subscriptions can be cancelled")
	}
	s.status = SubscriptionCancelled
	return nil
}

// IsActive is a derived predicate: status ACTIVE and now inside the
// subscription window. It is never stored.
func (s *Subscription) IsActive(now time.Time) bool {
	return s.status == SubscriptionActive &&
		!now.Before(s.startDate) && !now.After(s.endDate)
}

// Extend pushes the end date forward; it must move, not shrink.
func (s *Subscription) Extend(newEndDate time.Time) error {
	if !newEndDate.After(s.endDate) {
		return shared.NewValidationError("endDate", "new end date must be after the current end date")
	}
	s.endDate = newEndDate
	return nil
}

type subscriptionJSON struct {
	ID        shared.ID          `json:"id"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	Status    SubscriptionStatus `json:"status"`
	PersonID  shared.ID          `json:"personId"`
	PlanID    shared.ID          `json:"subscriptionPlan"`
	AutoRenew bool               `json:"isAutoRenew"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (s *Subscription) MarshalJSON() ([]byte, error) {
	return json.Marshal(subscriptionJSON{
		ID:        s.id,
		StartDate: s.startDate,
		EndDate:   s.endDate,
		Status:    s.status,
		PersonID:  s.personID,
		PlanID:    s.planID,
		AutoRenew: s.autoRenew,
	})
}

// PlanLimits groups the usage ceilings a plan grants.
type PlanLimits struct {
	MaxMembers            int   `json:"maxMembers"`
	MaxStorageSizeInBytes int64 `json:"maxStorageSizeInBytes"`
	MaxProjects           int   `json:"maxProjects"`
}

// SubscriptionPlan is the catalog entry subscriptions reference.
type SubscriptionPlan struct {
	id             shared.ID
	name           string
	description    string
	durationInDays int
	price          shared.Money
	features       []string
	planType       string
	limits         PlanLimits
}

// PlanConfig carries the named, defaulted construction fields.
type PlanConfig struct {
	ID             shared.ID
	Name           string
	Description    string
	DurationInDays int
	Price          shared.Money
	Features       []string
	PlanType       string
	Limits         PlanLimits
}

// NewSubscriptionPlan validates and builds a plan.
func NewSubscriptionPlan(cfg PlanConfig) (*SubscriptionPlan, error) {
	if cfg.Name == "" {
		return nil, shared.NewValidationError("name", "plan name must be a non-empty string")
	}
	if cfg.DurationInDays < 0 {
		return nil, shared.NewValidationError("durationInDays", "duration must be a non-negative number")
	}
	return &SubscriptionPlan{
		id:             cfg.ID,
		name:           cfg.Name,
		description:    cfg.Description,
		durationInDays: cfg.DurationInDays,
		price:          cfg.Price,
		features:       cfg.Features,
		planType:       cfg.PlanType,
		limits:         cfg.Limits,
	}, nil
}

func (p *SubscriptionPlan) ID() shared.ID       { return p.id }
func (p *SubscriptionPlan) Name() string        { return p.name }
func (p *SubscriptionPlan) Description() string { return p.description }
func (p *SubscriptionPlan) DurationInDays() int { return p.durationInDays }
func (p *SubscriptionPlan) Price() shared.Money { return p.price }
func (p *SubscriptionPlan) Features() []string  { return p.features }
func (p *SubscriptionPlan) PlanType() string    { return p.planType }
func (p *SubscriptionPlan) Limits() PlanLimits  { return p.limits }

// IsTrial reports whether the plan is a zero-duration or free trial.
func (p *SubscriptionPlan) IsTrial() bool {
	return p.durationInDays == 0 || p.price.IsZero()
}

// IsFree reports whether the plan costs nothing.
func (p *SubscriptionPlan) IsFree() bool { return p.price.IsZero() }

// IsPaid reports whether the plan has a positive price.
func (p *SubscriptionPlan) IsPaid() bool { return p.price.IsPositive() }

// HasFeature reports whether the plan grants a feature key.
func (p *SubscriptionPlan) HasFeature(key string) bool {
	for _, f := range p.features {
		if f == key {
			return true
		}
	}
	return false
}

type planJSON struct {
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

// MarshalJSON emits the flat, backend-shaped record.
func (p *SubscriptionPlan) MarshalJSON() ([]byte, error) {
	features := p.features
	if features == nil {
		features = []string{}
	}
	return json.Marshal(planJSON{
		ID:             p.id,
		Name:           p.name,
		Description:    p.description,
		DurationInDays: p.durationInDays,
		Price:          p.price,
		Features:       features,
		PlanType:       p.planType,
		MaxMembers:     p.limits.MaxMembers,
		MaxStorage:     p.limits.MaxStorageSizeInBytes,
		MaxProjects:    p.limits.MaxProjects,
	})
}

// Workspace carries the usage limits an organization operates under.
type Workspace struct {
	id             shared.ID
	organizationID shared.ID
	createdBy      shared.ID
	createdAt      time.Time
	subscriptionID shared.ID
	limits         PlanLimits
}

// WorkspaceConfig carries the named, defaulted construction fields.
type WorkspaceConfig struct {
	ID             shared.ID
	OrganizationID shared.ID
	CreatedBy      shared.ID
	CreatedAt      time.Time
	SubscriptionID shared.ID
	Limits         PlanLimits
}

// NewWorkspace validates and builds a workspace.
func NewWorkspace(cfg WorkspaceConfig) (*Workspace, error) {
	if cfg.OrganizationID.IsNil() {
		return nil, shared.NewValidationError("organizationId", "organization id is required")
	}
	if cfg.CreatedBy.IsNil() {
		return nil, shared.NewValidationError("createdBy", "creator must be a valid person id")
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = time.Now()
	}
	return &Workspace{
		id:             cfg.ID,
		organizationID: cfg.OrganizationID,
		createdBy:      cfg.CreatedBy,
		createdAt:      cfg.CreatedAt,
		subscriptionID: cfg.SubscriptionID,
		limits:         cfg.Limits,
	}, nil
}

func (w *Workspace) ID() shared.ID             { return w.id }
func (w *Workspace) OrganizationID() shared.ID { return w.organizationID }
func (w *Workspace) CreatedBy() shared.ID      { return w.createdBy }
func (w *Workspace) CreatedAt() time.Time      { return w.createdAt }
func (w *Workspace) SubscriptionID() shared.ID { return w.subscriptionID }

// Limits returns the current usage ceilings.
func (w *Workspace) Limits() PlanLimits { return w.limits }

// ApplyPlan bulk-applies a plan's limits and records the subscription.
func (w *Workspace) ApplyPlan(plan *SubscriptionPlan, subscriptionID shared.ID) error {
	if plan == nil {
		return shared.NewValidationError("plan", "subscription plan is required")
	}
	w.limits = plan.Limits()
	w.subscriptionID = subscriptionID
	return nil
}

// SetLimits overrides individual ceilings; nil keeps the current value.
func (w *Workspace) SetLimits(members *int, storage *int64, projects *int) {
	if members != nil {
		w.limits.MaxMembers = *members
	}
	if storage != nil {
		w.limits.MaxStorageSizeInBytes = *storage
	}
	if projects != nil {
		w.limits.MaxProjects = *projects
	}
}

type workspaceJSON struct {
	ID             shared.ID `json:"id"`
	OrganizationID shared.ID `json:"organizationId"`
	CreatedBy      shared.ID `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
	SubscriptionID shared.ID `json:"subscriptionId"`
	MaxMembers     int       `json:"maxMembers"`
	MaxStorage     int64     `json:"maxStorageSizeInBytes"`
	MaxProjects    int       `json:"maxProjects"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (w *Workspace) MarshalJSON() ([]byte, error) {
	return json.Marshal(workspaceJSON{
		ID:             w.id,
		OrganizationID: w.organizationID,
		CreatedBy:      w.createdBy,
		CreatedAt:      w.createdAt,
		SubscriptionID: w.subscriptionID,
		MaxMembers:     w.limits.MaxMembers,
		MaxStorage:     w.limits.MaxStorageSizeInBytes,
		MaxProjects:    w.limits.MaxProjects,
	})
}
