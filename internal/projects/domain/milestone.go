package domain

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// Milestone is a named window on a project's schedule owning an ordered
// list of schedule items.
type Milestone struct {
	id        shared.ID
	name      string
	startDate time.Time
	endDate   time.Time
	projectID shared.ID
	items     []ScheduleItem
}

// MilestoneConfig carries the named, defaulted construction fields.
type MilestoneConfig struct {
	ID        shared.ID
	Name      string
	StartDate time.Time
	EndDate   time.Time
	ProjectID shared.ID
	Items     []ScheduleItem
}

// NewMilestone validates and builds a milestone.
func NewMilestone(cfg MilestoneConfig) (*Milestone, error) {
	if cfg.Name == "" {
		return nil, shared.NewValidationError("name", "name is required and must be a non-empty string")
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
	return &Milestone{
		id:        cfg.ID,
		name:      cfg.Name,
		startDate: cfg.StartDate,
		endDate:   cfg.EndDate,
		projectID: cfg.ProjectID,
		items:     cfg.Items,
	}, nil
}

func (m *Milestone) ID() shared.ID        { return m.id }
func (m *Milestone) Name() string         { return m.name }
func (m *Milestone) StartDate() time.Time { return m.startDate }
func (m *Milestone) EndDate() time.Time   { return m.endDate }
func (m *Milestone) ProjectID() shared.ID { return m.projectID }

// Items returns the owned, ordered schedule items.
func (m *Milestone) Items() []ScheduleItem { return m.items }

// UpdateName replaces the milestone name.
func (m *Milestone) UpdateName(name string) error {
	if name == "" {
		return shared.NewValidationError("name", "name is required and must be a non-empty string")
	}
	m.name = name
	return nil
}

// UpdateDateRange moves the window, keeping end >= start.
func (m *Milestone) UpdateDateRange(start, end time.Time) error {
	if end.Before(start) {
		return shared.NewValidationError("endDate", "end date cannot be earlier than start date")
	}
	m.startDate = start
	m.endDate = end
	return nil
}

// AddItem appends a schedule item, rejecting duplicates by identity.
func (m *Milestone) AddItem(item ScheduleItem) error {
	if item == nil {
		return shared.NewValidationError("item", "schedule item is required")
	}
	for _, existing := range m.items {
		if existing.itemRef() == item.itemRef() {
			return shared.NewValidationError("item", "schedule item already belongs to the milestone")
		}
	}
	m.items = append(m.items, item)
	return nil
}

// RemoveItem drops a schedule item by identity.
func (m *Milestone) RemoveItem(item ScheduleItem) error {
	if item == nil {
		return shared.NewValidationError("item", "schedule item is required")
	}
	for i, existing := range m.items {
		if existing.itemRef() == item.itemRef() {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return shared.NewValidationError("item", "schedule item not found in the milestone")
}

type milestoneJSON struct {
	ID        shared.ID      `json:"id"`
	Name      string         `json:"name"`
	StartDate time.Time      `json:"startDate"`
	EndDate   time.Time      `json:"endDate"`
	ProjectID shared.ID      `json:"projectId"`
	Items     []ScheduleItem `json:"items"`
}

// MarshalJSON emits the flat, backend-shaped record with items as an
// array of their own canonical forms.
func (m *Milestone) MarshalJSON() ([]byte, error) {
	items := m.items
	if items == nil {
		items = []ScheduleItem{}
	}
	return json.Marshal(milestoneJSON{
		ID:        m.id,
		Name:      m.name,
		StartDate: m.startDate,
		EndDate:   m.endDate,
		ProjectID: m.projectID,
		Items:     items,
	})
}
