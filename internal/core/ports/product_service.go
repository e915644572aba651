package ports

import (
	"context"
	"io"

	"github.com/pimcentral/pim-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a product.
type CreateProductInput struct {
	SKU         string
	DefaultName string
	Description string
	CategoryID  string
}

// VariantItem is a read-side view of a product variant.
type VariantItem struct {
	Color         string  `json:"color"`
	StockQuantity int     `json:"stock_quantity"`
	Price         float64 `json:"price"`
}

// ProductListItem is one entry of the localized product listing. Name is the
// display name already resolved for the requested country.
type ProductListItem struct {
	ID          string        `json:"id"`
	SKU         string        `json:"sku"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category"`
	Variants    []VariantItem `json:"variants"`
}

// ImageUpload carries an uploaded file into the service layer.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// ImageUploadResult reports where an uploaded image ended up.
type ImageUploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type ProductService interface {
	// List returns all products with names resolved for countryCode.
	// Unknown country codes yield domain.ErrCountryNotFound.
	List(ctx context.Context, countryCode string) ([]ProductListItem, error)
	// Create adds a product; duplicate SKUs yield domain.ErrSKUExists
	// without mutating state.
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	// AttachImage stores the uploaded file and records its URL on the product.
	AttachImage(ctx context.Context, productID string, upload ImageUpload) (*ImageUploadResult, error)
}

// ImageStore is the blob-storage collaborator for uploaded images. It returns
// the public URL under which the stored object is served.
type ImageStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
