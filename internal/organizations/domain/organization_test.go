package domain

import (
	"testing"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrganization(t *testing.T) *Organization {
	t.Helper()
	org, err := NewOrganization(OrganizationConfig{
		LegalName: "Constructora Andina S.A.C.",
		Ruc:       NewRuc("20123456789"),
		CreatedBy: shared.NewID(1),
	})
	require.NoError(t, err)
	return org
}

func TestRucValidation(t *testing.T) {
	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"company prefix", "20123456789", true},
		{"person prefix", "10456789012", true},
		{"wrong length", "201234567", false},
		{"bad prefix", "99123456789", false},
		{"letters", "20abc456789", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, NewRuc(tc.value).IsValid())
		})
	}
}

func TestNewOrganizationRejectsInvalidInput(t *testing.T) {
	_, err := NewOrganization(OrganizationConfig{
		Ruc:       NewRuc("20123456789"),
		CreatedBy: shared.NewID(1),
	})
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)

	_, err = NewOrganization(OrganizationConfig{
		LegalName: "Andina",
		Ruc:       NewRuc("123"),
		CreatedBy: shared.NewID(1),
	})
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)

	_, err = NewOrganization(OrganizationConfig{
		LegalName: "Andina",
		Ruc:       NewRuc("20123456789"),
	})
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)
}

func TestOrganizationDefaultsToActive(t *testing.T) {
	org := validOrganization(t)
	assert.Equal(t, OrganizationActive, org.Status())
	assert.True(t, org.IsActive())
}

func TestOrganizationDeactivateIsOneWay(t *testing.T) {
	org := validOrganization(t)
	org.Deactivate()
	assert.Equal(t, OrganizationInactive, org.Status())
	assert.False(t, org.IsActive())
}

func TestAddMemberDeduplicatesByPerson(t *testing.T) {
	org := validOrganization(t)

	first, err := NewOrganizationMember(MemberConfig{PersonID: shared.NewID(2), Type: MemberWorker})
	require.NoError(t, err)
	require.NoError(t, org.AddMember(first))

	duplicate, err := NewOrganizationMember(MemberConfig{PersonID: shared.NewID(2), Type: MemberContractor})
	require.NoError(t, err)
	assert.Error(t, org.AddMember(duplicate))
	assert.Len(t, org.Members(), 1)
}

func TestRemoveMemberByPersonID(t *testing.T) {
	org := validOrganization(t)
	member, err := NewOrganizationMember(MemberConfig{PersonID: shared.NewID(2)})
	require.NoError(t, err)
	require.NoError(t, org.AddMember(member))

	org.RemoveMemberByPersonID(shared.NewID(2))
	assert.Empty(t, org.Members())

	// Removing an unknown person is a no-op.
	org.RemoveMemberByPersonID(shared.NewID(99))
}

func TestInvitePersonOnePendingPerPerson(t *testing.T) {
	org := validOrganization(t)

	inv, err := org.InvitePerson(shared.NewID(5), shared.NewID(1))
	require.NoError(t, err)
	assert.True(t, inv.IsPending())

	_, err = org.InvitePerson(shared.NewID(5), shared.NewID(1))
	assert.Error(t, err)
	assert.Len(t, org.Invitations(), 1)

	// A resolved invitation frees the person for a new one.
	require.NoError(t, inv.Reject())
	_, err = org.InvitePerson(shared.NewID(5), shared.NewID(1))
	assert.NoError(t, err)
}

func TestInvitationTransitions(t *testing.T) {
	inv, err := NewOrganizationInvitation(InvitationConfig{
		OrganizationID: shared.NewID(1),
		PersonID:       shared.NewID(5),
		InvitedBy:      shared.NewID(1),
	})
	require.NoError(t, err)

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, inv.Accept(at))
	assert.Equal(t, InvitationAccepted, inv.Status())
	require.NotNil(t, inv.AcceptedAt())
	assert.Equal(t, at, *inv.AcceptedAt())

	// Accepting or rejecting again is invalid.
	assert.Error(t, inv.Accept(at))
	assert.Error(t, inv.Reject())
}

func TestRejectClearsAcceptedAt(t *testing.T) {
	inv, err := NewOrganizationInvitation(InvitationConfig{
		OrganizationID: shared.NewID(1),
		PersonID:       shared.NewID(5),
		InvitedBy:      shared.NewID(1),
	})
	require.NoError(t, err)

	require.NoError(t, inv.Reject())
	assert.Equal(t, InvitationRejected, inv.Status())
	assert.Nil(t, inv.AcceptedAt())
}

func TestMemberChangeType(t *testing.T) {
	member, err := NewOrganizationMember(MemberConfig{PersonID: shared.NewID(3), Type: MemberContractor})
	require.NoError(t, err)

	require.NoError(t, member.ChangeType(MemberWorker))
	assert.True(t, member.IsWorker())

	assert.Error(t, member.ChangeType("INTERN"))
}
