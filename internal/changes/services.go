package changes

import (
	"context"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/changes/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/rest"
)

// Service exposes the change-process resource operations. Processes
// hang off their project, so reads and creates go through the
// by-project-id routes.
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
		svc: rest.NewService(client, "/change-process", rest.Definition{
			"create":         {Verb: rest.POST, Path: "by-project-id/:projectId"},
			"getByProjectId": {Verb: rest.GET, Path: "by-project-id/:projectId"},
			"update":         {Verb: rest.PATCH, Path: ":id"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *Service) Create(ctx context.Context, process *domain.ChangeProcess) (*domain.ChangeProcess, error) {
	raw, err := s.svc.Call(ctx, "create", process, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToChangeProcess(raw)
}

func (s *Service) GetByProjectID(ctx context.Context, projectID int64) ([]*domain.ChangeProcess, error) {
	raw, err := s.svc.Call(ctx, "getByProjectId", map[string]any{"projectId": projectID}, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToChangeProcesses(raw), nil
}

func (s *Service) Update(ctx context.Context, process *domain.ChangeProcess) (*domain.ChangeProcess, error) {
	raw, err := s.svc.Call(ctx, "update", process, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToChangeProcess(raw)
}
