package impl

import (
	"context"
	"testing"

	"pureflow/internal/domain/entity"
	domainerrors "pureflow/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_SeedDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.catalogUC.SeedDefaults(ctx)

	products := env.catalogUC.Products()
	require.Len(t, products, 5)

	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	assert.Equal(t, "20L RO Water Can", byID["p1"].Name)
	assert.Equal(t, 35, byID["p1"].Price)
	assert.Equal(t, entity.CategorySubscription, byID["p3"].Category)
	assert.Equal(t, 450, byID["p5"].Price)
}

func TestCatalogService_SeedDefaults_SkipsNonEmptyStore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	custom := entity.Product{ID: "p1", Name: "25L RO Water Can", Price: 45, Unit: "Can", Category: entity.CategoryCan}
	env.products.Upsert(custom)

	// An admin-edited catalog never gets reset to the defaults.
	env.catalogUC.SeedDefaults(ctx)

	products := env.catalogUC.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "25L RO Water Can", products[0].Name)
}

func TestCatalogService_SaveProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	saved, err := env.catalogUC.SaveProduct(ctx, entity.Product{
		Name:     "  Cooler Stand ",
		Price:    199,
		Unit:     "Piece",
		Category: entity.CategoryAccessory,
	})

	require.NoError(t, err)
	assert.Equal(t, "Cooler Stand", saved.Name)
	assert.NotEmpty(t, saved.ID)

	// Saving with an existing ID edits in place instead of duplicating.
	saved.Price = 249
	again, err := env.catalogUC.SaveProduct(ctx, *saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)

	products := env.catalogUC.Products()
	require.Len(t, products, 1)
	assert.Equal(t, 249, products[0].Price)
}

func TestCatalogService_SaveProduct_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		product entity.Product
	}{
		{"blank name", entity.Product{Name: "   ", Price: 10, Category: entity.CategoryCan}},
		{"zero price", entity.Product{Name: "Can", Price: 0, Category: entity.CategoryCan}},
		{"negative price", entity.Product{Name: "Can", Price: -5, Category: entity.CategoryCan}},
		{"unknown category", entity.Product{Name: "Can", Price: 10, Category: "gadget"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.catalogUC.SaveProduct(ctx, tc.product)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidProduct)
		})
	}

	assert.Empty(t, env.catalogUC.Products())
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.catalogUC.SeedDefaults(ctx)

	require.NoError(t, env.catalogUC.DeleteProduct(ctx, "p4"))
	assert.Len(t, env.catalogUC.Products(), 4)

	err := env.catalogUC.DeleteProduct(ctx, "p4")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
