package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/geprek/internal/utils"
)

func strPtr(s string) *string { return &s }

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	user := st.addUser("budi")
	svc := NewUserService(st)

	updated, err := svc.Update(ctx, user.ID, UpdateUserInput{
		Password: strPtr("passwordbaru"),
		Address:  strPtr("Jl. Sudirman 5"),
		Phone:    strPtr("085200000000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "085200000000", updated.Phone)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "Jl. Sudirman 5", *updated.Address)
	assert.True(t, utils.CheckPassword(updated.PasswordHash, "passwordbaru"))

	cleared, err := svc.Update(ctx, user.ID, UpdateUserInput{Address: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Address)
}

func TestUserUpdateValidation(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	user := st.addUser("budi")
	other := st.addUser("siti")
	svc := NewUserService(st)

	_, err := svc.Update(ctx, user.ID, UpdateUserInput{Password: strPtr("123")})
	require.Error(t, err)
	assert.Equal(t, "Password minimal 6 karakter", err.Error())

	_, err = svc.Update(ctx, user.ID, UpdateUserInput{Phone: strPtr("0812")})
	require.Error(t, err)
	assert.Equal(t, "No HP minimal 10 digit. Contoh: 08123456789", err.Error())

	_, err = svc.Update(ctx, user.ID, UpdateUserInput{Phone: strPtr("nomor-telepon")})
	require.Error(t, err)
	assert.Equal(t, "No HP minimal 10 digit. Contoh: 08123456789", err.Error())

	_, err = svc.Update(ctx, user.ID, UpdateUserInput{Phone: strPtr(other.Phone)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrValidation))
	assert.Contains(t, err.Error(), "sudah digunakan")

	_, err = svc.Update(ctx, uuid.New(), UpdateUserInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestUserDeleteCascadesOrders(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	user := st.addUser("budi")
	product := st.addProduct("Ayam Geprek", 15000)

	_, err := NewOrderService(st, nil).Create(ctx, orderInput(user.ID, product.ID, 1, 15000))
	require.NoError(t, err)

	svc := NewUserService(st)
	require.NoError(t, svc.Delete(ctx, user.ID))

	orders, err := st.ListOrders(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, orders)

	err = svc.Delete(ctx, user.ID)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}
