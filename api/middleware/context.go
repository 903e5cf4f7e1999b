package middleware

import (
	"legalconnect/internal/entity"

	"github.com/labstack/echo/v4"
)

const contextAccountKey = "auth_account"

func SetAccount(c echo.Context, account entity.Account) {
	c.Set(contextAccountKey, account)
}

// AccountFromContext returns the account the access gate attached. The
// password hash is already stripped.
func AccountFromContext(c echo.Context) (entity.Account, bool) {
	value := c.Get(contextAccountKey)
	account, ok := value.(entity.Account)
	return account, ok
}

func RoleFromContext(c echo.Context) (entity.Role, bool) {
	account, ok := AccountFromContext(c)
	if !ok {
		return "", false
	}
	return account.Ref().Role, true
}
