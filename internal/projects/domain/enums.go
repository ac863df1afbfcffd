package domain

// ProjectStatus is the design-review lifecycle of a project. Transitions
// are validated against membership only, not against a strict order.
type ProjectStatus string

const (
	ProjectBasicStudies    ProjectStatus = "BASIC_STUDIES"
	ProjectDesignInProcess ProjectStatus = "DESIGN_IN_PROCESS"
	ProjectUnderReview     ProjectStatus = "UNDER_REVIEW"
	ProjectChangeRequested ProjectStatus = "CHANGE_REQUESTED"
	ProjectChangePending   ProjectStatus = "CHANGE_PENDING"
	ProjectApproved        ProjectStatus = "APPROVED"
)

func (s ProjectStatus) String() string { return string(s) }

// KnownProjectStatus reports enum membership.
func KnownProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectBasicStudies, ProjectDesignInProcess, ProjectUnderReview,
		ProjectChangeRequested, ProjectChangePending, ProjectApproved:
		return true
	}
	return false
}

// ParseProjectStatus falls back to BASIC_STUDIES on unknown wire values.
func ParseProjectStatus(raw string) ProjectStatus {
	if KnownProjectStatus(ProjectStatus(raw)) {
		return ProjectStatus(raw)
	}
	return ProjectBasicStudies
}

// Specialty is the discipline a task or specialist belongs to.
type Specialty string

const (
	SpecialtyArchitecture Specialty = "ARCHITECTURE"
	SpecialtyStructural   Specialty = "STRUCTURAL"
	SpecialtyElectrical   Specialty = "ELECTRICAL"
	SpecialtySanitary     Specialty = "SANITARY"
	SpecialtyTopography   Specialty = "TOPOGRAPHY"
)

func (s Specialty) String() string { return string(s) }

// KnownSpecialty reports enum membership.
func KnownSpecialty(s Specialty) bool {
	switch s {
	case SpecialtyArchitecture, SpecialtyStructural, SpecialtyElectrical,
		SpecialtySanitary, SpecialtyTopography:
		return true
	}
	return false
}

// ParseSpecialty falls back to ARCHITECTURE on unknown wire values.
func ParseSpecialty(raw string) Specialty {
	if KnownSpecialty(Specialty(raw)) {
		return Specialty(raw)
	}
	return SpecialtyArchitecture
}

// TaskStatus is the lifecycle of a task.
type TaskStatus string

const (
	TaskDraft      TaskStatus = "DRAFT"
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskSubmitted  TaskStatus = "SUBMITTED"
	TaskApproved   TaskStatus = "APPROVED"
	TaskRejected   TaskStatus = "REJECTED"
)

func (s TaskStatus) String() string { return string(s) }

// KnownTaskStatus reports enum membership.
func KnownTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskDraft, TaskPending, TaskInProgress, TaskSubmitted, TaskApproved, TaskRejected:
		return true
	}
	return false
}

// ParseTaskStatus falls back to DRAFT on unknown wire values.
func ParseTaskStatus(raw string) TaskStatus {
	if KnownTaskStatus(TaskStatus(raw)) {
		return TaskStatus(raw)
	}
	return TaskDraft
}

// TeamMemberRole distinguishes coordinators from specialists on a
// project team.
type TeamMemberRole string

const (
	RoleCoordinator TeamMemberRole = "COORDINATOR"
	RoleSpecialist  TeamMemberRole = "SPECIALIST"
)

func (r TeamMemberRole) String() string { return string(r) }

// ParseTeamMemberRole falls back to SPECIALIST on unknown wire values.
func ParseTeamMemberRole(raw string) TeamMemberRole {
	switch TeamMemberRole(raw) {
	case RoleCoordinator, RoleSpecialist:
		return TeamMemberRole(raw)
	default:
		return RoleSpecialist
	}
}
