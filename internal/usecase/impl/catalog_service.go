package impl

import (
	"context"
	"log/slog"
	"strings"

	"pureflow/internal/domain/entity"
	domainerrors "pureflow/internal/domain/errors"
	"pureflow/internal/domain/repository"
	"pureflow/internal/usecase"

	"github.com/google/uuid"
)

// defaultCatalog seeds a fresh install so the storefront is never empty.
var defaultCatalog = []entity.Product{
	{
		ID:          "p1",
		Name:        "20L RO Water Can",
		Description: "Freshly purified RO water in a premium sealed 20-liter can.",
		Price:       35,
		Unit:        "Can",
		Image:       "https://images.unsplash.com/photo-1548839140-29a749e1cf4d?auto=format&fit=crop&q=80&w=400",
		Category:    entity.CategoryCan,
	},
	{
		ID:          "p2",
		Name:        "Weekly Subscription",
		Description: "Perfect for small families. 2 cans delivered every week.",
		Price:       250,
		Unit:        "Month",
		Image:       "https://images.unsplash.com/photo-1560067174-c5a3a8f37060?auto=format&fit=crop&q=80&w=400",
		Category:    entity.CategorySubscription,
	},
	{
		ID:          "p3",
		Name:        "Daily Family Plan",
		Description: "Never run out. One 20L can delivered daily to your home.",
		Price:       900,
		Unit:        "Month",
		Image:       "https://images.unsplash.com/photo-1516733968668-dbdce39c46ef?auto=format&fit=crop&q=80&w=400",
		Category:    entity.CategorySubscription,
	},
	{
		ID:          "p4",
		Name:        "Manual Hand Pump",
		Description: "Food-grade manual pump for easy water dispensing.",
		Price:       150,
		Unit:        "Piece",
		Image:       "https://images.unsplash.com/photo-1615461066841-6116ecaabb04?auto=format&fit=crop&q=80&w=400",
		Category:    entity.CategoryAccessory,
	},
	{
		ID:          "p5",
		Name:        "Automatic Dispenser",
		Description: "Quiet, USB-rechargeable electric water pump.",
		Price:       450,
		Unit:        "Piece",
		Image:       "https://images.unsplash.com/photo-1589365278144-c9e705f843ba?auto=format&fit=crop&q=80&w=400",
		Category:    entity.CategoryAccessory,
	},
}

type catalogService struct {
	products repository.ProductCollection
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(products repository.ProductCollection, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{products: products, logger: logger}
}

// Products returns the full catalog.
func (s *catalogService) Products() []entity.Product {
	return s.products.List()
}

// SaveProduct validates and stores a product, minting an ID for new entries.
func (s *catalogService) SaveProduct(ctx context.Context, product entity.Product) (*entity.Product, error) {
	product.Name = strings.TrimSpace(product.Name)

	switch {
	case product.Name == "":
		return nil, domainerrors.ErrInvalidProduct.WithDetails("name is required")
	case product.Price <= 0:
		return nil, domainerrors.ErrInvalidProduct.WithDetails("price must be positive")
	case !product.Category.IsValid():
		return nil, domainerrors.ErrInvalidProduct.WithDetails("unknown category")
	}

	if product.ID == "" {
		product.ID = "p-" + uuid.NewString()
	}

	s.products.Upsert(product)

	return &product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *catalogService) DeleteProduct(ctx context.Context, productID string) error {
	if _, ok := s.products.Get(productID); !ok {
		return domainerrors.ErrProductNotFound
	}

	s.products.Delete(productID)

	return nil
}

// SeedDefaults installs the default catalog when the store has no products,
// typically on the first run of a fresh install.
func (s *catalogService) SeedDefaults(ctx context.Context) {
	if len(s.products.List()) > 0 {
		return
	}

	s.logger.Info("seeding default catalog", slog.Int("products", len(defaultCatalog)))
	for _, product := range defaultCatalog {
		s.products.Upsert(product)
	}
}
