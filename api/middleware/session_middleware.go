package middleware

import (
	"net/http"

	"schoolhub/internal/service"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware authenticates requests by the session cookie: the token
// must carry a valid signature, be unexpired, and still match the token
// stored on the account record.
type SessionMiddleware struct {
	Service    *service.AccountService
	CookieName string
}

func (m SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.Service == nil {
			return echo.NewHTTPError(http.StatusUnauthorized)
		}
		cookie, err := c.Cookie(m.CookieName)
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized)
		}
		account, err := m.Service.ResolveSession(c.Request().Context(), cookie.Value)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized)
		}
		SetSessionAccount(c, account)
		return next(c)
	}
}
