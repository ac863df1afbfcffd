package domain

import (
	"testing"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yearSubscription(t *testing.T) *Subscription {
	t.Helper()
	sub, err := NewSubscription(SubscriptionConfig{
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		PersonID:  shared.NewID(1),
		PlanID:    shared.NewID(2),
	})
	require.NoError(t, err)
	return sub
}

func TestSubscriptionRejectsInvertedDates(t *testing.T) {
	_, err := NewSubscription(SubscriptionConfig{
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PersonID:  shared.NewID(1),
	})
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)
}

func TestSubscriptionIsActiveWindow(t *testing.T) {
	sub := yearSubscription(t)

	assert.True(t, sub.IsActive(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	// Boundaries are inclusive.
	assert.True(t, sub.IsActive(sub.StartDate()))
	assert.True(t, sub.IsActive(sub.EndDate()))

	assert.False(t, sub.IsActive(sub.StartDate().AddDate(0, 0, -1)))
	assert.False(t, sub.IsActive(sub.EndDate().AddDate(0, 0, 1)))
}

func TestSubscriptionCancelIsOneWay(t *testing.T) {
	sub := yearSubscription(t)

	require.NoError(t, sub.Cancel())
	assert.Equal(t, SubscriptionCancelled, sub.Status())
	assert.False(t, sub.IsActive(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Error(t, sub.Cancel())
}

func TestSubscriptionExtend(t *testing.T) {
	sub := yearSubscription(t)

	assert.Error(t, sub.Extend(sub.EndDate()))
	assert.Error(t, sub.Extend(sub.EndDate().AddDate(0, -1, 0)))

	require.NoError(t, sub.Extend(sub.EndDate().AddDate(1, 0, 0)))
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), sub.EndDate())
}

func TestPlanClassification(t *testing.T) {
	free, err := shared.MoneyFromFloat(0, "PEN")
	require.NoError(t, err)
	trial, err := NewSubscriptionPlan(PlanConfig{Name: "Free", DurationInDays: 0, Price: free})
	require.NoError(t, err)
	assert.True(t, trial.IsFree())
	assert.False(t, trial.IsPaid())

	price, err := shared.MoneyFromFloat(99.90, "PEN")
	require.NoError(t, err)
	paid, err := NewSubscriptionPlan(PlanConfig{
		Name:           "Studio",
		DurationInDays: 30,
		Price:          price,
		Features:       []string{"10 projects", "priority support"},
	})
	require.NoError(t, err)
	assert.True(t, paid.IsPaid())
	assert.True(t, paid.HasFeature("priority support"))
	assert.False(t, paid.HasFeature("sso"))
}

func TestPlanValidation(t *testing.T) {
	_, err := NewSubscriptionPlan(PlanConfig{DurationInDays: 30})
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)

	_, err = NewSubscriptionPlan(PlanConfig{Name: "Bad", DurationInDays: -1})
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)
}

func TestWorkspaceApplyPlanAndLimits(t *testing.T) {
	ws, err := NewWorkspace(WorkspaceConfig{
		OrganizationID: shared.NewID(1),
		CreatedBy:      shared.NewID(1),
	})
	require.NoError(t, err)

	price, err := shared.MoneyFromFloat(99.90, "PEN")
	require.NoError(t, err)
	plan, err := NewSubscriptionPlan(PlanConfig{
		Name:           "Studio",
		DurationInDays: 30,
		Price:          price,
		Limits:         PlanLimits{MaxMembers: 25, MaxStorageSizeInBytes: 50 << 30, MaxProjects: 10},
	})
	require.NoError(t, err)

	require.NoError(t, ws.ApplyPlan(plan, shared.NewID(9)))
	assert.Equal(t, 25, ws.Limits().MaxMembers)
	assert.Equal(t, shared.NewID(9), ws.SubscriptionID())

	// Partial overrides keep unset values.
	members := 30
	ws.SetLimits(&members, nil, nil)
	assert.Equal(t, 30, ws.Limits().MaxMembers)
	assert.Equal(t, 10, ws.Limits().MaxProjects)
	assert.Equal(t, int64(50<<30), ws.Limits().MaxStorageSizeInBytes)
}
