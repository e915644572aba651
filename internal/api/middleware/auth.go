package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pimcentral/pim-api/internal/api/metrics"
	"github.com/pimcentral/pim-api/internal/core/domain"
	"github.com/pimcentral/pim-api/internal/core/ports"
)

// AccountKey is the context key under which Authenticate stores the
// authenticated account.
const AccountKey = "account"

// Authenticate resolves the request's bearer token into an authenticated
// account and stores it in the Echo context. The pipeline short-circuits on
// the first failure:
//
//	no Authorization header        → 401 missing credentials
//	token fails verification       → 401 invalid or expired token
//	subject unknown to the store   → 401 account not found
//
// Token verification deliberately does not reveal whether the token was
// malformed, forged or expired.
func Authenticate(tokens ports.TokenVerifier, accounts ports.AccountRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingToken.Error())
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingToken.Error())
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_or_expired").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
			}

			account, err := accounts.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrAccountNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("unknown_account").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrAccountNotFound.Error())
				}
				return err
			}

			c.Set(AccountKey, account)
			return next(c)
		}
	}
}
