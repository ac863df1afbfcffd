package iam

import (
	"encoding/json"
	"testing"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/iam/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPersonWithProfessionalID(t *testing.T) {
	asm := NewAssembler(nil)
	p, err := asm.ToPerson(json.RawMessage(`{
		"id": "4",
		"name": "Lucia",
		"lastName": "Vargas",
		"email": "lucia@andina.pe",
		"professionalId": "123456",
		"professionalIdType": "CIP"
	}`))
	require.NoError(t, err)
	assert.Equal(t, shared.NewID(4), p.ID())
	assert.Equal(t, "123456", p.ProfessionalID().Value())
	assert.Equal(t, domain.ProfessionalCIP, p.ProfessionalID().Type())
}

func TestToPersonWithoutProfessionalID(t *testing.T) {
	asm := NewAssembler(nil)
	p, err := asm.ToPerson(json.RawMessage(`{
		"id": 5, "name": "Marco", "lastName": "Rios", "email": "marco@andina.pe"
	}`))
	require.NoError(t, err)
	assert.True(t, p.ProfessionalID().IsEmpty())
}

func TestToPersonsDropsInvalidEmails(t *testing.T) {
	asm := NewAssembler(nil)
	out := asm.ToPersons(json.RawMessage(`[
		{"id": 1, "name": "Lucia", "lastName": "Vargas", "email": "lucia@andina.pe"},
		{"id": 2, "name": "Marco", "lastName": "Rios", "email": "not-an-email"}
	]`))
	require.Len(t, out, 1)
	assert.Equal(t, "lucia@andina.pe", out[0].Email())
}

func TestToAccountDefaultsAndLastLogin(t *testing.T) {
	asm := NewAssembler(nil)

	acc, err := asm.ToAccount(json.RawMessage(`{
		"id": 1, "email": "lucia@andina.pe", "password": "s3cret123",
		"personId": 4, "lastLoginAt": "2025-08-01T09:30:00Z"
	}`))
	require.NoError(t, err)
	assert.Equal(t, domain.UserClient, acc.UserType())
	require.NotNil(t, acc.LastLoginAt())

	fresh, err := asm.ToAccount(json.RawMessage(`{
		"id": 2, "email": "marco@andina.pe", "password": "s3cret123", "personId": 5
	}`))
	require.NoError(t, err)
	assert.Nil(t, fresh.LastLoginAt())
}
