package changes

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/changes/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

type changeProcessResource struct {
	ID            shared.ID `json:"id"`
	ProjectID     shared.ID `json:"projectId"`
	Justification string    `json:"justification"`
	Status        string    `json:"status"`
	RequestedBy   shared.ID `json:"requestedBy"`
	Response      string    `json:"response"`
	CreatedAt     string    `json:"createdAt"`
	ResolvedAt    string    `json:"resolvedAt"`
}

// Assembler builds change-process entities from raw responses.
type Assembler struct {
	log *logging.Logger
}

func NewAssembler(log *logging.Logger) *Assembler {
	if log == nil {
		log = logging.Nop()
	}
	return &Assembler{log: log}
}

func (a *Assembler) ToChangeProcess(raw json.RawMessage) (*domain.ChangeProcess, error) {
	var res changeProcessResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	createdAt := shared.ParseWireTime(res.CreatedAt)
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	cfg := domain.ChangeProcessConfig{
		ID:            res.ID,
		ProjectID:     res.ProjectID,
		Justification: res.Justification,
		Status:        domain.ParseChangeProcessStatus(res.Status),
		RequestedBy:   res.RequestedBy,
		Response:      res.Response,
		CreatedAt:     createdAt,
	}
	if t := shared.ParseWireTime(res.ResolvedAt); !t.IsZero() {
		cfg.ResolvedAt = &t
	}
	return domain.NewChangeProcess(cfg)
}

func (a *Assembler) ToChangeProcesses(raw json.RawMessage) []*domain.ChangeProcess {
	items := shared.SplitBatch(raw)
	out := make([]*domain.ChangeProcess, 0, len(items))
	for _, item := range items {
		cp, err := a.ToChangeProcess(item)
		if err != nil {
			a.log.Warnw("dropping malformed change process", "error", err)
			continue
		}
		out = append(out, cp)
	}
	return out
}
