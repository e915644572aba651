package service

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pimcentral/pim-api/internal/core/domain"
	"github.com/pimcentral/pim-api/internal/core/ports"
)

// ProductService implements the localized listing, product creation and image
// attachment operations.
type ProductService struct {
	products      ports.ProductRepository
	localizations ports.LocalizationRepository
	variants      ports.VariantRepository
	images        ports.ImageRepository
	categories    ports.CategoryRepository
	countries     ports.CountryRepository
	store         ports.ImageStore
	logger        zerolog.Logger
}

type ProductServiceDeps struct {
	Products      ports.ProductRepository
	Localizations ports.LocalizationRepository
	Variants      ports.VariantRepository
	Images        ports.ImageRepository
	Categories    ports.CategoryRepository
	Countries     ports.CountryRepository
	Store         ports.ImageStore
	Logger        zerolog.Logger
}

func NewProductService(deps ProductServiceDeps) *ProductService {
	return &ProductService{
		products:      deps.Products,
		localizations: deps.Localizations,
		variants:      deps.Variants,
		images:        deps.Images,
		categories:    deps.Categories,
		countries:     deps.Countries,
		store:         deps.Store,
		logger:        deps.Logger,
	}
}

// List returns every product with its display name resolved for countryCode.
// The code is matched case-insensitively against the country master table;
// unknown codes yield ErrCountryNotFound. Related rows are fetched with
// explicit per-collection queries keyed by product id.
func (s *ProductService) List(ctx context.Context, countryCode string) ([]ports.ProductListItem, error) {
	country, err := s.countries.FindByCode(ctx, strings.ToUpper(countryCode))
	if err != nil {
		return nil, err
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return []ports.ProductListItem{}, nil
	}

	ids := make([]string, 0, len(products))
	categoryIDs := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
		if p.CategoryID != "" {
			categoryIDs = append(categoryIDs, p.CategoryID)
		}
	}

	localizations, err := s.localizations.FindByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	variants, err := s.variants.FindByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	variantsByProduct := make(map[string][]ports.VariantItem)
	for _, v := range variants {
		variantsByProduct[v.ProductID] = append(variantsByProduct[v.ProductID], ports.VariantItem{
			Color:         v.Color,
			StockQuantity: v.StockQuantity,
			Price:         v.Price,
		})
	}

	items := make([]ports.ProductListItem, 0, len(products))
	for i := range products {
		p := &products[i]
		categoryName := domain.UncategorizedName
		if name, ok := categoryNames[p.CategoryID]; ok {
			categoryName = name
		}
		items = append(items, ports.ProductListItem{
			ID:          p.ID,
			SKU:         p.SKU,
			Name:        domain.ResolveDisplayName(p, localizations, country.ID),
			Description: p.Description,
			Category:    categoryName,
			Variants:    variantsByProduct[p.ID],
		})
	}

	return items, nil
}

// Create adds a new product. Duplicate SKUs fail with ErrSKUExists before any
// write happens; the unique index on sku backstops concurrent creates.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if _, err := s.products.FindBySKU(ctx, input.SKU); err == nil {
		return nil, domain.ErrSKUExists
	} else if !errors.Is(err, domain.ErrProductNotFound) {
		return nil, err
	}

	if input.CategoryID != "" {
		if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
			return nil, err
		}
	}

	created, err := s.products.Create(ctx, &domain.Product{
		SKU:         input.SKU,
		DefaultName: input.DefaultName,
		Description: input.Description,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sku", created.SKU).Str("product_id", created.ID).Msg("product created")
	return created, nil
}

// AttachImage validates the upload, stores the bytes under a fresh unique
// filename and records the resulting URL on the product. Newly uploaded
// images are never primary.
func (s *ProductService) AttachImage(ctx context.Context, productID string, upload ports.ImageUpload) (*ports.ImageUploadResult, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, domain.ErrNotAnImage
	}

	filename := uuid.NewString() + strings.ToLower(path.Ext(upload.Filename))
	url, err := s.store.Save(ctx, filename, upload.Content)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("image store write failed")
		return nil, err
	}

	if _, err := s.images.Create(ctx, &domain.Image{
		ProductID: productID,
		URL:       url,
		Primary:   false,
	}); err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", productID).Str("url", url).Msg("image attached")
	return &ports.ImageUploadResult{Filename: filename, URL: url}, nil
}
