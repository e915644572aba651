package ports

import (
	"context"

	"github.com/pimcentral/pim-api/internal/core/domain"
)

// ProductRepository persists the product aggregate root.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// LocalizationRepository reads per-country name rows for a set of products.
type LocalizationRepository interface {
	FindByProductIDs(ctx context.Context, productIDs []string) ([]domain.Localization, error)
}

// VariantRepository reads per-color inventory rows for a set of products.
type VariantRepository interface {
	FindByProductIDs(ctx context.Context, productIDs []string) ([]domain.Variant, error)
}

// ImageRepository records uploaded product images.
type ImageRepository interface {
	Create(ctx context.Context, image *domain.Image) (*domain.Image, error)
}

// CategoryRepository reads category master data.
type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

// CountryRepository reads country master data.
type CountryRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.Country, error)
	Create(ctx context.Context, country *domain.Country) (*domain.Country, error)
}

// CatalogRepository persists catalog groupings and their memberships.
type CatalogRepository interface {
	Create(ctx context.Context, catalog *domain.Catalog) (*domain.Catalog, error)
	FindByID(ctx context.Context, id string) (*domain.Catalog, error)
	FindAll(ctx context.Context) ([]domain.Catalog, error)
	AddProduct(ctx context.Context, catalogID, productID string) error
}
