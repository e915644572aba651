package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pimcentral/pim-api/internal/api/middleware"
	"github.com/pimcentral/pim-api/internal/core/domain"
)

// currentAccount extracts the account injected by the Authenticate
// middleware. Its presence proves the pipeline ran; a handler reached
// without it is a wiring bug, answered with 401 rather than a panic.
func currentAccount(c echo.Context) (*domain.Account, error) {
	account, _ := c.Get(middleware.AccountKey).(*domain.Account)
	if account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return account, nil
}
