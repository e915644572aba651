package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pimcentral/pim-api/internal/core/domain"
	"github.com/pimcentral/pim-api/internal/core/ports"
)

// CatalogService manages catalog groupings and their product memberships.
type CatalogService struct {
	catalogs ports.CatalogRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCatalogService(catalogs ports.CatalogRepository, products ports.ProductRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{catalogs: catalogs, products: products, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Catalog, error) {
	return s.catalogs.FindAll(ctx)
}

func (s *CatalogService) Create(ctx context.Context, name, targetAudience string) (*domain.Catalog, error) {
	created, err := s.catalogs.Create(ctx, &domain.Catalog{
		Name:           name,
		TargetAudience: targetAudience,
		ProductIDs:     []string{},
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("catalog_id", created.ID).Str("name", created.Name).Msg("catalog created")
	return created, nil
}

// AddProduct links productID into the catalog. Both sides must exist;
// re-adding an existing member is a no-op.
func (s *CatalogService) AddProduct(ctx context.Context, catalogID, productID string) error {
	if _, err := s.catalogs.FindByID(ctx, catalogID); err != nil {
		return err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}
	return s.catalogs.AddProduct(ctx, catalogID, productID)
}
