package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/geprek/internal/utils"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newMemStore(), "secret", time.Hour)

	registered, err := svc.Register(ctx, validUserInput())
	require.NoError(t, err)

	result, err := svc.Login(ctx, "budi", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)

	claims, err := utils.ParseToken("secret", result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "USER", claims.Role)
}

func TestLoginFailuresShareMessage(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newMemStore(), "secret", time.Hour)

	_, err := svc.Register(ctx, validUserInput())
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "budi", "salah123")
	_, unknownUser := svc.Login(ctx, "tidakada", "rahasia")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.True(t, errors.Is(wrongPassword, utils.ErrUnauthorized))
	assert.True(t, errors.Is(unknownUser, utils.ErrUnauthorized))
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	assert.Equal(t, "Username atau password salah", unknownUser.Error())
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := NewAuthService(newMemStore(), "secret", time.Hour)

	for _, creds := range [][2]string{{"", "rahasia"}, {"budi", ""}, {"  ", "  "}} {
		_, err := svc.Login(context.Background(), creds[0], creds[1])
		require.Error(t, err)
		assert.True(t, errors.Is(err, utils.ErrValidation))
		assert.Equal(t, "Username dan password harus diisi", err.Error())
	}
}
