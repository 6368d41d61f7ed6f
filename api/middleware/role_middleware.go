package middleware

import (
	"net/http"

	"schoolhub/internal/entity"

	"github.com/labstack/echo/v4"
)

func RequireRole(role entity.AccountRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := SessionAccountFromContext(c)
			if !ok || account.Role != role {
				return echo.NewHTTPError(http.StatusForbidden)
			}
			return next(c)
		}
	}
}
