package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/cache"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/rest"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/projects/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

const cachePrefix = "projects:"

func intQuery(field string, value int64) url.Values {
	return url.Values{field: {strconv.FormatInt(value, 10)}}
}

// Service exposes the project resource operations.
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
		svc: rest.NewService(client, "/projects", rest.Definition{
			"getAll":             {Verb: rest.GET},
			"getById":            {Verb: rest.GET, Path: ":id"},
			"create":             {Verb: rest.POST},
			"update":             {Verb: rest.PATCH, Path: ":id"},
			"delete":             {Verb: rest.DELETE, Path: ":id"},
			"getTeam":            {Verb: rest.GET, Path: ":id/team"},
			"addTeamMember":      {Verb: rest.POST, Path: ":projectId/team"},
			"removeTeamMember":   {Verb: rest.DELETE, Path: ":projectId/team/:memberId"},
			"updateStatus":       {Verb: rest.PATCH, Path: ":id/status"},
			"getTotalTaskBudget": {Verb: rest.GET, Path: ":id/total-task-budget"},
		}),
		asm:   NewAssembler(log),
		cache: c,
		log:   log,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]*domain.Project, error) {
	raw, err := s.cache.GetOrPopulate(ctx, cachePrefix+"all", func(ctx context.Context) ([]byte, error) {
		return s.svc.Call(ctx, "getAll", nil, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.asm.ToProjects(raw), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	key := fmt.Sprintf("%sid:%d", cachePrefix, id)
	raw, err := s.cache.GetOrPopulate(ctx, key, func(ctx context.Context) ([]byte, error) {
		return s.svc.Call(ctx, "getById", id, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.asm.ToProject(raw)
}

func (s *Service) GetByOrganizationID(ctx context.Context, organizationID int64) ([]*domain.Project, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, intQuery("organizationId", organizationID))
	if err != nil {
		return nil, err
	}
	return s.asm.ToProjects(raw), nil
}

func (s *Service) GetByContractorID(ctx context.Context, contractorID int64) ([]*domain.Project, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, intQuery("contractorId", contractorID))
	if err != nil {
		return nil, err
	}
	return s.asm.ToProjects(raw), nil
}

func (s *Service) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	raw, err := s.svc.Call(ctx, "create", project, nil)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.asm.ToProject(raw)
}

func (s *Service) Update(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	raw, err := s.svc.Call(ctx, "update", project, nil)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.asm.ToProject(raw)
}

func (s *Service) UpdateStatus(ctx context.Context, projectID int64, status domain.ProjectStatus) (*domain.Project, error) {
	payload := map[string]any{"id": projectID, "status": string(status)}
	raw, err := s.svc.Call(ctx, "updateStatus", payload, nil)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.asm.ToProject(raw)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.svc.Call(ctx, "delete", id, nil); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) GetTeam(ctx context.Context, projectID int64) ([]*domain.ProjectTeamMember, error) {
	raw, err := s.svc.Call(ctx, "getTeam", projectID, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToTeamMembers(raw), nil
}

func (s *Service) AddTeamMember(ctx context.Context, projectID int64, member *domain.ProjectTeamMember) (*domain.ProjectTeamMember, error) {
	payload := map[string]any{
		"projectId": projectID,
		"role":      string(member.Role()),
		"specialty": string(member.Specialty()),
		"memberId":  member.MemberID(),
	}
	raw, err := s.svc.Call(ctx, "addTeamMember", payload, nil)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.asm.ToTeamMember(raw)
}

func (s *Service) RemoveTeamMember(ctx context.Context, projectID, memberID int64) error {
	payload := map[string]any{"projectId": projectID, "memberId": memberID}
	if _, err := s.svc.Call(ctx, "removeTeamMember", payload, nil); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// GetTotalTaskBudget returns the backend-computed sum of the budgets
// assigned to the project's tasks.
func (s *Service) GetTotalTaskBudget(ctx context.Context, projectID int64) (shared.Money, error) {
	raw, err := s.svc.Call(ctx, "getTotalTaskBudget", projectID, nil)
	if err != nil {
		return shared.Money{}, err
	}
	var rollup struct {
		TotalTaskBudget shared.Money `json:"totalTaskBudget"`
	}
	if err := json.Unmarshal(raw, &rollup); err != nil {
		return shared.Money{}, err
	}
	return rollup.TotalTaskBudget, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cachePrefix); err != nil {
		s.log.Warnw("cache invalidation failed", "prefix", cachePrefix, "error", err)
	}
}

// MilestoneService exposes the milestone resource operations.
type MilestoneService struct {
	svc *rest.Service
	asm *Assembler
	log *logging.Logger
}

func NewMilestoneService(client *rest.Client, log *logging.Logger) *MilestoneService {
	if log == nil {
		log = logging.Nop()
	}
	return &MilestoneService{
		svc: rest.NewService(client, "/milestones", rest.Definition{
			"getAll":          {Verb: rest.GET},
			"getById":         {Verb: rest.GET, Path: ":id"},
			"create":          {Verb: rest.POST},
			"update":          {Verb: rest.PATCH, Path: ":id"},
			"delete":          {Verb: rest.DELETE, Path: ":id"},
			"updateName":      {Verb: rest.PATCH, Path: ":id/name"},
			"updateDateRange": {Verb: rest.PATCH, Path: ":id/date"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *MilestoneService) GetByProjectID(ctx context.Context, projectID int64) ([]*domain.Milestone, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, intQuery("projectId", projectID))
	if err != nil {
		return nil, err
	}
	return s.asm.ToMilestones(raw), nil
}

func (s *MilestoneService) GetByID(ctx context.Context, id int64) (*domain.Milestone, error) {
	raw, err := s.svc.Call(ctx, "getById", id, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToMilestone(raw)
}

func (s *MilestoneService) Create(ctx context.Context, milestone *domain.Milestone) (*domain.Milestone, error) {
	raw, err := s.svc.Call(ctx, "create", milestone, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToMilestone(raw)
}

func (s *MilestoneService) UpdateName(ctx context.Context, milestoneID int64, name string) (*domain.Milestone, error) {
	payload := map[string]any{"id": milestoneID, "name": name}
	raw, err := s.svc.Call(ctx, "updateName", payload, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToMilestone(raw)
}

func (s *MilestoneService) UpdateDateRange(ctx context.Context, milestoneID int64, startDate, endDate string) (*domain.Milestone, error) {
	payload := map[string]any{"id": milestoneID, "startDate": startDate, "endDate": endDate}
	raw, err := s.svc.Call(ctx, "updateDateRange", payload, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToMilestone(raw)
}

func (s *MilestoneService) Delete(ctx context.Context, id int64) error {
	_, err := s.svc.Call(ctx, "delete", id, nil)
	return err
}

// TaskService exposes the task resource operations. Tasks hang off
// milestones, so listings filter on milestoneId.
type TaskService struct {
	svc *rest.Service
	asm *Assembler
	log *logging.Logger
}

func NewTaskService(client *rest.Client, log *logging.Logger) *TaskService {
	if log == nil {
		log = logging.Nop()
	}
	return &TaskService{
		svc: rest.NewService(client, "/tasks", rest.Definition{
			"getAll":            {Verb: rest.GET},
			"getById":           {Verb: rest.GET, Path: ":id"},
			"create":            {Verb: rest.POST},
			"update":            {Verb: rest.PATCH, Path: ":id"},
			"delete":            {Verb: rest.DELETE, Path: ":id"},
			"updateStatus":      {Verb: rest.PATCH, Path: ":id/status"},
			"assignResponsible": {Verb: rest.PATCH, Path: ":id/responsible"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *TaskService) GetByMilestoneID(ctx context.Context, milestoneID int64) ([]*domain.Task, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, intQuery("milestoneId", milestoneID))
	if err != nil {
		return nil, err
	}
	return s.asm.ToTasks(raw), nil
}

func (s *TaskService) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	raw, err := s.svc.Call(ctx, "create", task, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToTask(raw)
}

func (s *TaskService) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	raw, err := s.svc.Call(ctx, "update", task, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToTask(raw)
}

func (s *TaskService) UpdateStatus(ctx context.Context, taskID int64, status domain.TaskStatus) (*domain.Task, error) {
	payload := map[string]any{"id": taskID, "status": string(status)}
	raw, err := s.svc.Call(ctx, "updateStatus", payload, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToTask(raw)
}

func (s *TaskService) AssignResponsible(ctx context.Context, taskID, personID int64) (*domain.Task, error) {
	payload := map[string]any{"id": taskID, "responsible": personID}
	raw, err := s.svc.Call(ctx, "assignResponsible", payload, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToTask(raw)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	_, err := s.svc.Call(ctx, "delete", id, nil)
	return err
}

// MeetingService exposes the meeting resource operations.
type MeetingService struct {
	svc *rest.Service
	asm *Assembler
	log *logging.Logger
}

func NewMeetingService(client *rest.Client, log *logging.Logger) *MeetingService {
	if log == nil {
		log = logging.Nop()
	}
	return &MeetingService{
		svc: rest.NewService(client, "/meetings", rest.Definition{
			"getAll":  {Verb: rest.GET},
			"getById": {Verb: rest.GET, Path: ":id"},
			"create":  {Verb: rest.POST},
			"update":  {Verb: rest.PATCH, Path: ":id"},
			"delete":  {Verb: rest.DELETE, Path: ":id"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *MeetingService) GetByMilestoneID(ctx context.Context, milestoneID int64) ([]*domain.Meeting, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, intQuery("milestoneId", milestoneID))
	if err != nil {
		return nil, err
	}
	return s.asm.ToMeetings(raw), nil
}

func (s *MeetingService) Create(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	raw, err := s.svc.Call(ctx, "create", meeting, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToMeeting(raw)
}

func (s *MeetingService) Update(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	raw, err := s.svc.Call(ctx, "update", meeting, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToMeeting(raw)
}

func (s *MeetingService) Delete(ctx context.Context, id int64) error {
	_, err := s.svc.Call(ctx, "delete", id, nil)
	return err
}
