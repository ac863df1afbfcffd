package domain

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// Task is a schedule item carrying a specialty and an optional
// responsible person.
type Task struct {
	id           shared.ID
	ref          shared.Ref
	name         string
	specialty    Specialty
	status       TaskStatus
	startingDate time.Time
	dueDate      time.Time
	responsible  shared.ID
	milestoneID  shared.ID
}

// TaskConfig carries the named, defaulted construction fields.
type TaskConfig struct {
	ID           shared.ID
	Name         string
	Specialty    Specialty
	Status       TaskStatus
	StartingDate time.Time
	DueDate      time.Time
	Responsible  shared.ID
	MilestoneID  shared.ID
}

// NewTask validates and builds a task.
func NewTask(cfg TaskConfig) (*Task, error) {
	if cfg.Name == "" {
		return nil, shared.NewValidationError("name", "name is required and must be a non-empty string")
	}
	if !KnownSpecialty(cfg.Specialty) {
		return nil, shared.NewValidationError("specialty", "unknown specialty "+string(cfg.Specialty))
	}
	if cfg.Status == "" {
		cfg.Status = TaskDraft
	}
	if !KnownTaskStatus(cfg.Status) {
		return nil, shared.NewValidationError("status", "unknown task status "+string(cfg.Status))
	}
	if cfg.StartingDate.IsZero() {
		cfg.StartingDate = time.Now()
	}
	if cfg.DueDate.IsZero() {
		cfg.DueDate = cfg.StartingDate
	}
	if cfg.DueDate.Before(cfg.StartingDate) {
		return nil, shared.NewValidationError("dueDate", "due date cannot be earlier than starting date")
	}
	return &Task{
		id:           cfg.ID,
		ref:          shared.NewRef(),
		name:         cfg.Name,
		specialty:    cfg.Specialty,
		status:       cfg.Status,
		startingDate: cfg.StartingDate,
		dueDate:      cfg.DueDate,
		responsible:  cfg.Responsible,
		milestoneID:  cfg.MilestoneID,
	}, nil
}

func (t *Task) ID() shared.ID           { return t.id }
func (t *Task) Ref() shared.Ref         { return t.ref }
func (t *Task) Name() string            { return t.name }
func (t *Task) Specialty() Specialty    { return t.specialty }
func (t *Task) Status() TaskStatus      { return t.status }
func (t *Task) StartingDate() time.Time { return t.startingDate }
func (t *Task) DueDate() time.Time      { return t.dueDate }
func (t *Task) Responsible() shared.ID  { return t.responsible }
func (t *Task) MilestoneID() shared.ID  { return t.milestoneID }

// Kind implements ScheduleItem.
func (t *Task) Kind() ScheduleItemKind { return ItemTask }

// WindowStart implements ScheduleItem.
func (t *Task) WindowStart() time.Time { return t.startingDate }

// WindowEnd implements ScheduleItem.
func (t *Task) WindowEnd() time.Time { return t.dueDate }

func (t *Task) itemRef() string {
	if v, ok := t.id.Value(); ok {
		return "task:" + shared.NewID(v).String()
	}
	return "task:" + t.ref.String()
}

// AssignResponsible attaches a persisted person to the task.
func (t *Task) AssignResponsible(personID shared.ID) error {
	if personID.IsNil() {
		return shared.NewValidationError("responsible", "responsible must be a persisted person id")
	}
	t.responsible = personID
	return nil
}

// UpdateStatus moves the task to any known status.
func (t *Task) UpdateStatus(status TaskStatus) error {
	if !KnownTaskStatus(status) {
		return shared.NewValidationError("status", "unknown task status "+string(status))
	}
	t.status = status
	return nil
}

type taskJSON struct {
	ID           shared.ID  `json:"id"`
	Name         string     `json:"name"`
	Specialty    Specialty  `json:"specialty"`
	Status       TaskStatus `json:"status"`
	StartingDate time.Time  `json:"startingDate"`
	DueDate      time.Time  `json:"dueDate"`
	Responsible  shared.ID  `json:"responsible"`
	MilestoneID  shared.ID  `json:"milestoneId"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (t *Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskJSON{
		ID:           t.id,
		Name:         t.name,
		Specialty:    t.specialty,
		Status:       t.status,
		StartingDate: t.startingDate,
		DueDate:      t.dueDate,
		Responsible:  t.responsible,
		MilestoneID:  t.milestoneID,
	})
}
