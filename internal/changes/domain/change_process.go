package domain

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// ChangeProcessStatus is the review state of a requested change.
type ChangeProcessStatus string

const (
	ChangePending  ChangeProcessStatus = "PENDING"
	ChangeApproved ChangeProcessStatus = "APPROVED"
	ChangeRejected ChangeProcessStatus = "REJECTED"
)

func (s ChangeProcessStatus) String() string { return string(s) }

// ParseChangeProcessStatus falls back to PENDING for unknown values.
func ParseChangeProcessStatus(s string) ChangeProcessStatus {
	switch status := ChangeProcessStatus(s); status {
	case ChangePending, ChangeApproved, ChangeRejected:
		return status
	}
	return ChangePending
}

// ChangeProcess is a client-requested change against a project under
// review. It starts PENDING and resolves exactly once, to APPROVED or
// REJECTED; the project's CHANGE_REQUESTED/CHANGE_PENDING statuses
// track the open process.
type ChangeProcess struct {
	id            shared.ID
	projectID     shared.ID
	justification string
	status        ChangeProcessStatus
	requestedBy   shared.ID
	response      string
	createdAt     time.Time
	resolvedAt    *time.Time
}

// ChangeProcessConfig carries the named, defaulted construction fields.
type ChangeProcessConfig struct {
	ID            shared.ID
	ProjectID     shared.ID
	Justification string
	Status        ChangeProcessStatus
	RequestedBy   shared.ID
	Response      string
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

// NewChangeProcess validates and builds a change process.
func NewChangeProcess(cfg ChangeProcessConfig) (*ChangeProcess, error) {
	if cfg.ProjectID.IsNil() {
		return nil, shared.NewValidationError("projectId", "project id is required")
	}
	if cfg.Justification == "" {
		return nil, shared.NewValidationError("justification", "justification is required and must be a non-empty string")
	}
	if cfg.RequestedBy.IsNil() {
		return nil, shared.NewValidationError("requestedBy", "requesting member id is required")
	}
	if cfg.Status == "" {
		cfg.Status = ChangePending
	}
	switch cfg.Status {
	case ChangePending, ChangeApproved, ChangeRejected:
	default:
		return nil, shared.NewValidationError("status", "unknown change process status "+string(cfg.Status))
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = time.Now()
	}
	return &ChangeProcess{
		id:            cfg.ID,
		projectID:     cfg.ProjectID,
		justification: cfg.Justification,
		status:        cfg.Status,
		requestedBy:   cfg.RequestedBy,
		response:      cfg.Response,
		createdAt:     cfg.CreatedAt,
		resolvedAt:    cfg.ResolvedAt,
	}, nil
}

func (c *ChangeProcess) ID() shared.ID               { return c.id }
func (c *ChangeProcess) ProjectID() shared.ID        { return c.projectID }
func (c *ChangeProcess) Justification() string       { return c.justification }
func (c *ChangeProcess) Status() ChangeProcessStatus { return c.status }
func (c *ChangeProcess) RequestedBy() shared.ID      { return c.requestedBy }
func (c *ChangeProcess) Response() string            { return c.response }
func (c *ChangeProcess) CreatedAt() time.Time        { return c.createdAt }
func (c *ChangeProcess) ResolvedAt() *time.Time      { return c.resolvedAt }

// IsPending reports whether the process is still open.
func (c *ChangeProcess) IsPending() bool { return c.status == ChangePending }

// Approve resolves an open process with an optional reviewer response.
func (c *ChangeProcess) Approve(response string, at time.Time) error {
	if c.status != ChangePending {
		return shared.NewValidationError("status", "only pending change processes can be approved")
	}
	c.status = ChangeApproved
	c.response = response
	c.resolvedAt = &at
	return nil
}

// Reject resolves an open process with an optional reviewer response.
func (c *ChangeProcess) Reject(response string, at time.Time) error {
	if c.status != ChangePending {
		return shared.NewValidationError("status", "only pending change processes can be rejected")
	}
	c.status = ChangeRejected
	c.response = response
	c.resolvedAt = &at
	return nil
}

type changeProcessJSON struct {
	ID            shared.ID           `json:"id"`
	ProjectID     shared.ID           `json:"projectId"`
	Justification string              `json:"justification"`
	Status        ChangeProcessStatus `json:"status"`
	RequestedBy   shared.ID           `json:"requestedBy"`
	Response      string              `json:"response,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	ResolvedAt    *time.Time          `json:"resolvedAt,omitempty"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (c *ChangeProcess) MarshalJSON() ([]byte, error) {
	return json.Marshal(changeProcessJSON{
		ID:            c.id,
		ProjectID:     c.projectID,
		Justification: c.justification,
		Status:        c.status,
		RequestedBy:   c.requestedBy,
		Response:      c.response,
		CreatedAt:     c.createdAt,
		ResolvedAt:    c.resolvedAt,
	})
}
