package domain

import "time"

// UncategorizedName is the placeholder category shown for products that
// have no category reference.
const UncategorizedName = "Uncategorized"

// Product is the core aggregate of the catalog. Related rows (localizations,
// variants, images) hold a foreign key back to the product and are fetched by
// explicit query; the product itself carries no live back-references.
type Product struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	DefaultName string    `json:"default_name"`
	Description string    `json:"description"`
	CategoryID  string    `json:"category_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Localization maps (product, country) to a country-specific display name.
// There is no uniqueness constraint per product+country; resolution takes the
// first entry in repository iteration order.
type Localization struct {
	ID            string `json:"id"`
	ProductID     string `json:"product_id"`
	CountryID     string `json:"country_id"`
	LocalizedName string `json:"localized_name"`
}

// Variant is a per-color inventory entry for a product.
type Variant struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"product_id"`
	Color         string  `json:"color"`
	StockQuantity int     `json:"stock_quantity"`
	Price         float64 `json:"price"`
}

// Image is a stored picture attached to a product.
type Image struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	URL       string `json:"url"`
	Primary   bool   `json:"is_primary"`
}

// Category groups products; master data.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Country is read-only master data. Code is the unique 2-3 letter code
// (GT, SV, HN).
type Country struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Catalog is a named grouping of products for a target audience.
type Catalog struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	TargetAudience string   `json:"target_audience,omitempty"`
	ProductIDs     []string `json:"product_ids"`
}

// ResolveDisplayName selects the display name of a product for a country:
// the first localization entry matching countryID wins, otherwise the
// product's default name. Pure function.
func ResolveDisplayName(p *Product, localizations []Localization, countryID string) string {
	for _, loc := range localizations {
		if loc.ProductID == p.ID && loc.CountryID == countryID {
			return loc.LocalizedName
		}
	}
	return p.DefaultName
}
