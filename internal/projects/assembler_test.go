package projects

import (
	"encoding/json"
	"testing"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/projects/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProjectAbsorbsWireDrift(t *testing.T) {
	asm := NewAssembler(nil)
	// Numeric-string id, bare-number budget, startDate spelling.
	p, err := asm.ToProject(json.RawMessage(`{
		"id": "12",
		"name": "Puente Rimac",
		"description": "Reinforcement design",
		"budget": 250000,
		"startDate": "2025-02-01",
		"endDate": "2025-12-01",
		"organizationId": 1,
		"contractorId": 2
	}`))
	require.NoError(t, err)
	assert.Equal(t, shared.NewID(12), p.ID())
	assert.Equal(t, "250000", p.Budget().Amount().String())
	assert.Equal(t, shared.DefaultCurrency, p.Budget().Currency())
	assert.Equal(t, 2025, p.StartingDate().Year())
	assert.Equal(t, domain.ProjectBasicStudies, p.Status())
}

func TestToProjectBudgetObject(t *testing.T) {
	asm := NewAssembler(nil)
	p, err := asm.ToProject(json.RawMessage(`{
		"id": 1,
		"name": "Torre Lima",
		"description": "Structural design",
		"budget": {"amount": "98000.50", "currency": "USD"},
		"startingDate": "2025-03-01T00:00:00Z",
		"endingDate": "2025-09-01T00:00:00Z",
		"organizationId": 1,
		"contractorId": 2
	}`))
	require.NoError(t, err)
	assert.Equal(t, "98000.5", p.Budget().Amount().String())
	assert.Equal(t, "USD", p.Budget().Currency())
}

func TestToProjectDropsMalformedTeamMembers(t *testing.T) {
	asm := NewAssembler(nil)
	p, err := asm.ToProject(json.RawMessage(`{
		"id": 1,
		"name": "Torre Lima",
		"description": "Structural design",
		"budget": 1000,
		"startingDate": "2025-03-01",
		"endingDate": "2025-09-01",
		"organizationId": 1,
		"contractorId": 2,
		"team": [
			{"id": 1, "role": "SPECIALIST", "specialty": "STRUCTURAL", "memberId": 4},
			{"id": 2, "role": "COORDINATOR", "specialty": "STRUCTURAL", "memberId": 5}
		]
	}`))
	require.NoError(t, err)
	// Coordinators carry no specialty, so the second entry is dropped.
	require.Len(t, p.Team(), 1)
	assert.Equal(t, domain.RoleSpecialist, p.Team()[0].Role())
}

func TestToProjectsDropsMalformedItems(t *testing.T) {
	asm := NewAssembler(nil)
	out := asm.ToProjects(json.RawMessage(`[
		{"id": 1, "name": "Torre Lima", "description": "d", "budget": 1000,
		 "startingDate": "2025-03-01", "endingDate": "2025-09-01",
		 "organizationId": 1, "contractorId": 2},
		{"id": 2, "name": "", "description": "d", "budget": 1000,
		 "startingDate": "2025-03-01", "endingDate": "2025-09-01",
		 "organizationId": 1, "contractorId": 2}
	]`))
	require.Len(t, out, 1)
	assert.Equal(t, shared.NewID(1), out[0].ID())
}

func TestToMilestoneDateSpellings(t *testing.T) {
	asm := NewAssembler(nil)
	m, err := asm.ToMilestone(json.RawMessage(`{
		"id": 3, "name": "Foundations",
		"startingDate": "2025-04-01", "endingDate": "2025-05-01",
		"projectId": 1
	}`))
	require.NoError(t, err)
	assert.Equal(t, 4, int(m.StartDate().Month()))
	assert.Equal(t, 5, int(m.EndDate().Month()))
}

func TestToTaskUnknownEnumsFallBack(t *testing.T) {
	asm := NewAssembler(nil)
	task, err := asm.ToTask(json.RawMessage(`{
		"id": 9, "name": "Load calc",
		"specialty": "QUANTUM", "status": "WAT",
		"startDate": "2025-04-01", "dueDate": "2025-04-10",
		"milestoneId": 3
	}`))
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDraft, task.Status())
}
