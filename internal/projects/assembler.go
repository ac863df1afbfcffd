package projects

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/projects/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// The project collection is the one with the most wire drift: ids as
// numeric strings, startDate/startingDate spelled both ways, budget as
// object or bare number. The resource structs absorb all of it.

type projectResource struct {
	ID             shared.ID         `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Status         string            `json:"status"`
	Budget         shared.Money      `json:"budget"`
	StartingDate   string            `json:"startingDate"`
	StartDate      string            `json:"startDate"`
	EndingDate     string            `json:"endingDate"`
	EndDate        string            `json:"endDate"`
	OrganizationID shared.ID         `json:"organizationId"`
	ContractorID   shared.ID         `json:"contractorId"`
	Team           []json.RawMessage `json:"team"`
}

type teamMemberResource struct {
	ID        shared.ID `json:"id"`
	Role      string    `json:"role"`
	Specialty string    `json:"specialty"`
	MemberID  shared.ID `json:"memberId"`
}

type milestoneResource struct {
	ID           shared.ID `json:"id"`
	Name         string    `json:"name"`
	StartDate    string    `json:"startDate"`
	StartingDate string    `json:"startingDate"`
	EndDate      string    `json:"endDate"`
	EndingDate   string    `json:"endingDate"`
	ProjectID    shared.ID `json:"projectId"`
}

type taskResource struct {
	ID           shared.ID `json:"id"`
	Name         string    `json:"name"`
	Specialty    string    `json:"specialty"`
	Status       string    `json:"status"`
	StartingDate string    `json:"startingDate"`
	StartDate    string    `json:"startDate"`
	DueDate      string    `json:"dueDate"`
	Responsible  shared.ID `json:"responsible"`
	MilestoneID  shared.ID `json:"milestoneId"`
}

type meetingResource struct {
	ID           shared.ID   `json:"id"`
	Topic        string      `json:"topic"`
	Description  string      `json:"description"`
	StartingDate string      `json:"startingDate"`
	StartDate    string      `json:"startDate"`
	EndingDate   string      `json:"endingDate"`
	EndDate      string      `json:"endDate"`
	CalledBy     shared.ID   `json:"calledBy"`
	Participants []shared.ID `json:"participants"`
	MilestoneID  shared.ID   `json:"milestoneId"`
}

// Assembler builds project-context entities from raw responses.
type Assembler struct {
	log *logging.Logger
}

func NewAssembler(log *logging.Logger) *Assembler {
	if log == nil {
		log = logging.Nop()
	}
	return &Assembler{log: log}
}

func (a *Assembler) ToProject(raw json.RawMessage) (*domain.Project, error) {
	var res projectResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	team := make([]*domain.ProjectTeamMember, 0, len(res.Team))
	for _, item := range res.Team {
		member, err := a.ToTeamMember(item)
		if err != nil {
			a.log.Warnw("dropping malformed team member", "error", err)
			continue
		}
		team = append(team, member)
	}
	start := shared.FirstDate(res.StartingDate, res.StartDate)
	if start.IsZero() {
		start = time.Now()
	}
	return domain.NewProject(domain.ProjectConfig{
		ID:             res.ID,
		Name:           res.Name,
		Description:    res.Description,
		Status:         domain.ParseProjectStatus(res.Status),
		Budget:         res.Budget,
		StartingDate:   start,
		EndingDate:     shared.FirstDate(res.EndingDate, res.EndDate),
		OrganizationID: res.OrganizationID,
		ContractorID:   res.ContractorID,
		Team:           team,
	})
}

// ToProjects assembles a batch, dropping items that fail to validate
// so one malformed record does not sink the page.
func (a *Assembler) ToProjects(raw json.RawMessage) []*domain.Project {
	items := shared.SplitBatch(raw)
	out := make([]*domain.Project, 0, len(items))
	for _, item := range items {
		p, err := a.ToProject(item)
		if err != nil {
			a.log.Warnw("dropping malformed project", "error", err)
			continue
		}
		out = append(out, p)
	}
	return out
}

func (a *Assembler) ToTeamMember(raw json.RawMessage) (*domain.ProjectTeamMember, error) {
	var res teamMemberResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	return domain.NewProjectTeamMember(domain.TeamMemberConfig{
		ID:        res.ID,
		Role:      domain.ParseTeamMemberRole(res.Role),
		Specialty: domain.Specialty(res.Specialty),
		MemberID:  res.MemberID,
	})
}

func (a *Assembler) ToTeamMembers(raw json.RawMessage) []*domain.ProjectTeamMember {
	items := shared.SplitBatch(raw)
	out := make([]*domain.ProjectTeamMember, 0, len(items))
	for _, item := range items {
		m, err := a.ToTeamMember(item)
		if err != nil {
			a.log.Warnw("dropping malformed team member", "error", err)
			continue
		}
		out = append(out, m)
	}
	return out
}

func (a *Assembler) ToMilestone(raw json.RawMessage) (*domain.Milestone, error) {
	var res milestoneResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	return domain.NewMilestone(domain.MilestoneConfig{
		ID:        res.ID,
		Name:      res.Name,
		StartDate: shared.FirstDate(res.StartDate, res.StartingDate),
		EndDate:   shared.FirstDate(res.EndDate, res.EndingDate),
		ProjectID: res.ProjectID,
	})
}

func (a *Assembler) ToMilestones(raw json.RawMessage) []*domain.Milestone {
	items := shared.SplitBatch(raw)
	out := make([]*domain.Milestone, 0, len(items))
	for _, item := range items {
		m, err := a.ToMilestone(item)
		if err != nil {
			a.log.Warnw("dropping malformed milestone", "error", err)
			continue
		}
		out = append(out, m)
	}
	return out
}

func (a *Assembler) ToTask(raw json.RawMessage) (*domain.Task, error) {
	var res taskResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	return domain.NewTask(domain.TaskConfig{
		ID:           res.ID,
		Name:         res.Name,
		Specialty:    domain.ParseSpecialty(res.Specialty),
		Status:       domain.ParseTaskStatus(res.Status),
		StartingDate: shared.FirstDate(res.StartingDate, res.StartDate),
		DueDate:      shared.ParseWireTime(res.DueDate),
		Responsible:  res.Responsible,
		MilestoneID:  res.MilestoneID,
	})
}

func (a *Assembler) ToTasks(raw json.RawMessage) []*domain.Task {
	items := shared.SplitBatch(raw)
	out := make([]*domain.Task, 0, len(items))
	for _, item := range items {
		t, err := a.ToTask(item)
		if err != nil {
			a.log.Warnw("dropping malformed task", "error", err)
			continue
		}
		out = append(out, t)
	}
	return out
}

func (a *Assembler) ToMeeting(raw json.RawMessage) (*domain.Meeting, error) {
	var res meetingResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	return domain.NewMeeting(domain.MeetingConfig{
		ID:           res.ID,
		Topic:        res.Topic,
		Description:  res.Description,
		StartingDate: shared.FirstDate(res.StartingDate, res.StartDate),
		EndingDate:   shared.FirstDate(res.EndingDate, res.EndDate),
		CalledBy:     res.CalledBy,
		Participants: res.Participants,
		MilestoneID:  res.MilestoneID,
	})
}

func (a *Assembler) ToMeetings(raw json.RawMessage) []*domain.Meeting {
	items := shared.SplitBatch(raw)
	out := make([]*domain.Meeting, 0, len(items))
	for _, item := range items {
		m, err := a.ToMeeting(item)
		if err != nil {
			a.log.Warnw("dropping malformed meeting", "error", err)
			continue
		}
		out = append(out, m)
	}
	return out
}
