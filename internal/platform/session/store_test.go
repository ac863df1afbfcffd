package session

import (
	"testing"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
	"github.com/stretchr/testify/assert"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	_, ok := store.Current()
	assert.False(t, ok)
	assert.Empty(t, store.Token())

	store.SignIn(CurrentUser{
		AccountID: shared.NewID(1),
		PersonID:  shared.NewID(2),
		Email:     "luis@propgms.dev",
		UserType:  "ORGANIZATION",
	}, "token-abc")

	user, ok := store.Current()
	assert.True(t, ok)
	assert.Equal(t, "luis@propgms.dev", user.Email)
	assert.Equal(t, "token-abc", store.Token())

	store.Clear()
	_, ok = store.Current()
	assert.False(t, ok)
	assert.Empty(t, store.Token())
}
