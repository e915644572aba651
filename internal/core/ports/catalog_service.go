package ports

import (
	"context"

	"github.com/pimcentral/pim-api/internal/core/domain"
)

type CatalogService interface {
	List(ctx context.Context) ([]domain.Catalog, error)
	Create(ctx context.Context, name, targetAudience string) (*domain.Catalog, error)
	// AddProduct makes productID a member of the catalog. Adding a product
	// that is already a member is a no-op.
	AddProduct(ctx context.Context, catalogID, productID string) error
}
