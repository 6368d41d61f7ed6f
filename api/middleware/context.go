package middleware

import (
	"schoolhub/internal/entity"

	"github.com/labstack/echo/v4"
)

const contextAccountKey = "session_account"

func SetSessionAccount(c echo.Context, account *entity.Account) {
	c.Set(contextAccountKey, account)
}

func SessionAccountFromContext(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(contextAccountKey).(*entity.Account)
	return account, ok && account != nil
}
