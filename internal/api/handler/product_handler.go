package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pimcentral/pim-api/internal/api/metrics"
	"github.com/pimcentral/pim-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service        ports.ProductService
	defaultCountry string
}

func NewProductHandler(service ports.ProductService, defaultCountry string) *ProductHandler {
	return &ProductHandler{service: service, defaultCountry: defaultCountry}
}

type listProductsRequest struct {
	CountryCode string `query:"country_code" validate:"omitempty,len=2"`
}

type createProductRequest struct {
	SKU         string `json:"sku"          validate:"required"`
	DefaultName string `json:"default_name" validate:"required"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
}

type createProductResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	SKU     string `json:"sku"`
}

// List handles GET /api/v1/products, the localized product listing.
//
// @Summary      List products with names localized for a country
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        country_code  query     string  false  "2-letter country code (default GT)"
// @Success      200  {array}   ports.ProductListItem
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	if _, err := currentAccount(c); err != nil {
		return err
	}

	var req listProductsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	countryCode := strings.ToUpper(req.CountryCode)
	if countryCode == "" {
		countryCode = h.defaultCountry
	}

	items, err := h.service.List(c.Request().Context(), countryCode)
	if err != nil {
		return err
	}

	metrics.ProductListingsTotal.WithLabelValues(countryCode).Inc()
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/v1/products. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201  {object}  createProductResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		SKU:         req.SKU,
		DefaultName: req.DefaultName,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createProductResponse{
		Message: "product created",
		ID:      product.ID,
		SKU:     product.SKU,
	})
}

// UploadImage handles POST /api/v1/products/:id/images. Admin only.
//
// @Summary      Upload a product image
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Product id"
// @Param        file  formData  file    true  "Image file"
// @Success      201  {object}  ports.ImageUploadResult
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id}/images [post]
func (h *ProductHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer file.Close()

	result, err := h.service.AttachImage(c.Request().Context(), c.Param("id"), ports.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		metrics.ImagesUploadedTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.ImagesUploadedTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusCreated, result)
}
