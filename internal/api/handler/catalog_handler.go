package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pimcentral/pim-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for catalog groupings.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type createCatalogRequest struct {
	Name           string `json:"name" validate:"required"`
	TargetAudience string `json:"target_audience"`
}

// List handles GET /api/v1/catalogs.
//
// @Summary      List catalogs with their product ids
// @Tags         catalogs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Catalog
// @Failure      401  {object}  errorResponse
// @Router       /catalogs [get]
func (h *CatalogHandler) List(c echo.Context) error {
	if _, err := currentAccount(c); err != nil {
		return err
	}

	catalogs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalogs)
}

// Create handles POST /api/v1/catalogs. Admin only.
//
// @Summary      Create a catalog
// @Tags         catalogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCatalogRequest  true  "Catalog details"
// @Success      201  {object}  domain.Catalog
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /catalogs [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createCatalogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	catalog, err := h.service.Create(c.Request().Context(), req.Name, req.TargetAudience)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, catalog)
}

// AddProduct handles POST /api/v1/catalogs/:id/products/:product_id. Admin only.
//
// @Summary      Add a product to a catalog
// @Tags         catalogs
// @Produce      json
// @Security     BearerAuth
// @Param        id          path  string  true  "Catalog id"
// @Param        product_id  path  string  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /catalogs/{id}/products/{product_id} [post]
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	if err := h.service.AddProduct(c.Request().Context(), c.Param("id"), c.Param("product_id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product added to catalog"})
}
