package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pimcentral/pim-api/internal/api/metrics"
	"github.com/pimcentral/pim-api/internal/core/domain"
)

// RequireRole gates a route on the authenticated account's role. It must run
// after Authenticate. Unknown or missing roles fail closed with 403.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, _ := c.Get(AccountKey).(*domain.Account)
			if account == nil || !account.Role.Valid() {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			if _, ok := allowed[account.Role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}
