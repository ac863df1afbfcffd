package domain

import (
	"testing"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() ChangeProcessConfig {
	return ChangeProcessConfig{
		ProjectID:     shared.NewID(1),
		Justification: "Client requested an extra parking level",
		RequestedBy:   shared.NewID(2),
	}
}

func TestNewChangeProcessValidation(t *testing.T) {
	missingProject := validConfig()
	missingProject.ProjectID = shared.ID{}
	_, err := NewChangeProcess(missingProject)
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)

	missingJustification := validConfig()
	missingJustification.Justification = ""
	_, err = NewChangeProcess(missingJustification)
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)

	missingRequester := validConfig()
	missingRequester.RequestedBy = shared.ID{}
	_, err = NewChangeProcess(missingRequester)
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)
}

func TestNewChangeProcessDefaultsToPending(t *testing.T) {
	cp, err := NewChangeProcess(validConfig())
	require.NoError(t, err)
	assert.Equal(t, ChangePending, cp.Status())
	assert.True(t, cp.IsPending())
	assert.Nil(t, cp.ResolvedAt())
	assert.False(t, cp.CreatedAt().IsZero())
}

func TestApproveResolvesOnce(t *testing.T) {
	cp, err := NewChangeProcess(validConfig())
	require.NoError(t, err)

	at := time.Now()
	require.NoError(t, cp.Approve("scoped into the next milestone", at))
	assert.Equal(t, ChangeApproved, cp.Status())
	require.NotNil(t, cp.ResolvedAt())
	assert.True(t, cp.ResolvedAt().Equal(at))

	assert.ErrorIs(t, cp.Approve("again", at), shared.ErrInvalidEntity)
	assert.ErrorIs(t, cp.Reject("too late", at), shared.ErrInvalidEntity)
}

func TestRejectResolvesOnce(t *testing.T) {
	cp, err := NewChangeProcess(validConfig())
	require.NoError(t, err)

	require.NoError(t, cp.Reject("out of budget", time.Now()))
	assert.Equal(t, ChangeRejected, cp.Status())
	assert.ErrorIs(t, cp.Approve("reconsidered", time.Now()), shared.ErrInvalidEntity)
}

func TestParseChangeProcessStatusFallsBack(t *testing.T) {
	assert.Equal(t, ChangeApproved, ParseChangeProcessStatus("APPROVED"))
	assert.Equal(t, ChangePending, ParseChangeProcessStatus("IN_LIMBO"))
	assert.Equal(t, ChangePending, ParseChangeProcessStatus(""))
}
