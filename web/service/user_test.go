package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUserDefaultAccount(t *testing.T) {
	ctx := setup(t)
	service := UserService{}

	user, err := service.CheckUser(ctx, "admin", "123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotZero(t, user.Id)

	for _, password := range []string{"", "1234", "admin", "123 "} {
		user, err := service.CheckUser(ctx, "admin", password)
		assert.ErrorIs(t, err, ErrInvalidCredentials, password)
		assert.Nil(t, user)
	}
}

func TestCheckUserUnknownUser(t *testing.T) {
	ctx := setup(t)
	service := UserService{}

	user, err := service.CheckUser(ctx, "root", "123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestGetFirstUser(t *testing.T) {
	ctx := setup(t)
	service := UserService{}

	user, err := service.GetFirstUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotEqual(t, "123", user.PasswordHash)
}
