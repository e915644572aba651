package domain

import "errors"

// Authentication / authorization.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken deliberately covers malformed, forged and expired
	// tokens alike so callers cannot tell which one occurred.
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrMissingToken    = errors.New("missing credentials")
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrForbidden       = errors.New("access forbidden")
)

// Catalog data.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrSKUExists        = errors.New("sku already exists")
	ErrCountryNotFound  = errors.New("country not supported")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCatalogNotFound  = errors.New("catalog not found")
	ErrNotAnImage       = errors.New("file must be an image")
)
