package usecase

import (
	"context"

	"pureflow/internal/domain/entity"
)

// CatalogUsecase defines the interface for product catalog management
type CatalogUsecase interface {
	// Products returns the full catalog
	Products() []entity.Product

	// SaveProduct creates or updates a product, assigning an ID when missing
	SaveProduct(ctx context.Context, product entity.Product) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog
	DeleteProduct(ctx context.Context, productID string) error

	// SeedDefaults installs the default catalog when the store is empty
	SeedDefaults(ctx context.Context)
}
