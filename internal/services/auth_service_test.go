package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthServiceLogin(t *testing.T) {
	auth := NewAuthService(testStore(t, []string{"s1"}))

	token, err := auth.Login("pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, auth.Valid(token))
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	auth := NewAuthService(testStore(t, []string{"s1"}))

	_, err := auth.Login("wrong")
	require.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthServiceLogout(t *testing.T) {
	auth := NewAuthService(testStore(t, []string{"s1"}))

	token, err := auth.Login("pw")
	require.NoError(t, err)

	auth.Logout(token)
	assert.False(t, auth.Valid(token))
	assert.False(t, auth.Valid("never-issued"))
}
