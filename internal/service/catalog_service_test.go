package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleshop/internal/domain"
)

func newCatalogEnv(t *testing.T) (*CatalogService, *memProductRepo) {
	t.Helper()
	products := newMemProductRepo()
	return NewCatalogService(products), products
}

func TestCreateAndGetProduct_RoundTrip(t *testing.T) {
	svc, _ := newCatalogEnv(t)

	created, err := svc.Create(context.Background(), admin, &domain.Product{
		Name:        "Widget",
		Description: "A fine widget.",
		Price:       decimal.RequireFromString("19.99"),
		ImageURL:    "https://example.com/widget.jpg",
		Category:    "Tools",
		Stock:       10,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "A fine widget.", got.Description)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, "https://example.com/widget.jpg", got.ImageURL)
	assert.Equal(t, "Tools", got.Category)
	assert.Equal(t, 10, got.Stock)
}

func TestUpdateProduct_ReflectedOnRead(t *testing.T) {
	svc, _ := newCatalogEnv(t)
	created, err := svc.Create(context.Background(), admin, &domain.Product{
		Name:  "Widget",
		Price: decimal.RequireFromString("19.99"),
		Stock: 10,
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), admin, created.ID, &domain.Product{
		Name:     "Widget v2",
		Price:    decimal.RequireFromString("24.99"),
		Category: "Tools",
		Stock:    7,
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("24.99")))
	assert.Equal(t, "Tools", got.Category)
	assert.Equal(t, 7, got.Stock)
}

func TestCatalogMutations_RequirePrivilege(t *testing.T) {
	svc, _ := newCatalogEnv(t)
	created, err := svc.Create(context.Background(), admin, &domain.Product{
		Name:  "Widget",
		Price: decimal.RequireFromString("19.99"),
		Stock: 10,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), shopper, &domain.Product{Name: "X", Price: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Update(context.Background(), shopper, created.ID, &domain.Product{Name: "X", Price: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = svc.Delete(context.Background(), shopper, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Nil actor (unauthenticated service caller) is rejected too.
	_, err = svc.Create(context.Background(), nil, &domain.Product{Name: "X", Price: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateProduct_InvalidFields(t *testing.T) {
	svc, _ := newCatalogEnv(t)

	cases := []domain.Product{
		{Name: "", Price: decimal.RequireFromString("1.00"), Stock: 1},
		{Name: "Widget", Price: decimal.RequireFromString("-0.01"), Stock: 1},
		{Name: "Widget", Price: decimal.RequireFromString("1.00"), Stock: -1},
	}
	for _, p := range cases {
		_, err := svc.Create(context.Background(), admin, &p)
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	svc, _ := newCatalogEnv(t)
	_, err := svc.Create(context.Background(), admin, &domain.Product{
		Name:        "Wireless Headphones",
		Description: "Noise cancellation.",
		Price:       decimal.RequireFromString("99.99"),
		Stock:       5,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), admin, &domain.Product{
		Name:        "Blender",
		Description: "For smoothies.",
		Price:       decimal.RequireFromString("69.99"),
		Stock:       5,
	})
	require.NoError(t, err)

	found, err := svc.Search(context.Background(), "HEADPHONES")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Wireless Headphones", found[0].Name)

	// Description matches too.
	found, err = svc.Search(context.Background(), "smoothie")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Blender", found[0].Name)

	found, err = svc.Search(context.Background(), "nothing matches this")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestListByCategory_ExactMatch(t *testing.T) {
	svc, _ := newCatalogEnv(t)
	for _, p := range []domain.Product{
		{Name: "Headphones", Category: "Electronics", Price: decimal.RequireFromString("99.99"), Stock: 1},
		{Name: "Camera", Category: "Electronics", Price: decimal.RequireFromString("649.99"), Stock: 1},
		{Name: "T-Shirt", Category: "Clothing", Price: decimal.RequireFromString("24.99"), Stock: 1},
	} {
		_, err := svc.Create(context.Background(), admin, &p)
		require.NoError(t, err)
	}

	found, err := svc.ListByCategory(context.Background(), "Electronics")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.ListByCategory(context.Background(), "electronics")
	require.NoError(t, err)
	assert.Empty(t, found, "category match is exact")
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newCatalogEnv(t)
	created, err := svc.Create(context.Background(), admin, &domain.Product{
		Name:  "Widget",
		Price: decimal.RequireFromString("19.99"),
		Stock: 10,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), admin, created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	err = svc.Delete(context.Background(), admin, created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
