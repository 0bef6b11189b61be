package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/store"
	"github.com/example/geprek/internal/utils"
)

func int64Ptr(v int64) *int64 { return &v }

func TestProductCreateValidation(t *testing.T) {
	svc := NewProductService(newMemStore())

	cases := []struct {
		name    string
		in      ProductInput
		message string
	}{
		{"missing name", ProductInput{Price: 15000, Category: models.CategoryMakanan}, "Missing required fields"},
		{"missing price", ProductInput{Name: "Geprek", Category: models.CategoryMakanan}, "Missing required fields"},
		{"negative price", ProductInput{Name: "Geprek", Price: -1, Category: models.CategoryMakanan}, "Harga harus lebih dari 0"},
		{"bad category", ProductInput{Name: "Geprek", Price: 15000, Category: "SNACK"}, "Kategori tidak valid"},
		{"discount above price", ProductInput{Name: "Geprek", Price: 15000, DiscountPrice: int64Ptr(15000), Category: models.CategoryMakanan}, "Harga diskon harus lebih kecil dari harga normal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, utils.ErrValidation))
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestProductLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	svc := NewProductService(st)

	created, err := svc.Create(ctx, ProductInput{
		Name:          " Ayam Geprek ",
		Description:   strPtr(""),
		Price:         15000,
		DiscountPrice: int64Ptr(0),
		Category:      models.CategoryMakanan,
		IsPromotion:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ayam Geprek", created.Name)
	assert.Nil(t, created.Description)
	assert.Nil(t, created.DiscountPrice)

	updated, err := svc.Update(ctx, created.ID, ProductInput{
		Name:          "Ayam Geprek Keju",
		Price:         20000,
		DiscountPrice: int64Ptr(18000),
		Category:      models.CategoryMakanan,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ayam Geprek Keju", updated.Name)
	assert.Equal(t, int64(18000), updated.EffectivePrice())
	assert.False(t, updated.IsPromotion)

	_, err = svc.Update(ctx, uuid.New(), ProductInput{Name: "X", Price: 1, Category: models.CategoryMinuman})
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestProductDeleteKeepsOrderSnapshot(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	user := st.addUser("budi")
	product := st.addProduct("Ayam Geprek", 15000)

	order, err := NewOrderService(st, nil).Create(ctx, orderInput(user.ID, product.ID, 2, 15000))
	require.NoError(t, err)

	require.NoError(t, NewProductService(st).Delete(ctx, product.ID))

	reloaded, err := st.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Nil(t, reloaded.Items[0].ProductID)
	assert.Equal(t, models.DeletedProductName, reloaded.Items[0].ProductName())
	assert.Equal(t, int64(30000), reloaded.Items[0].Subtotal)
	assert.Equal(t, 2, reloaded.Items[0].Quantity)
}

func TestProductListFilters(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	svc := NewProductService(st)

	for _, in := range []ProductInput{
		{Name: "Ayam Geprek", Price: 15000, Category: models.CategoryMakanan, IsPromotion: true},
		{Name: "Es Teh", Price: 5000, Category: models.CategoryMinuman, IsNew: true},
		{Name: "Nasi", Price: 4000, Category: models.CategoryMakanan},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	drinks, err := svc.List(ctx, store.ProductFilter{Category: models.CategoryMinuman})
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Es Teh", drinks[0].Name)

	promos, err := svc.List(ctx, store.ProductFilter{PromotionOnly: true})
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "Ayam Geprek", promos[0].Name)

	all, err := svc.List(ctx, store.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.List(ctx, store.ProductFilter{Category: "SNACK"})
	assert.True(t, errors.Is(err, utils.ErrValidation))
}
