package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopor/catalog-api/internal/core/domain"
)

// ctxPrincipal reconstructs the principal the Auth middleware stored in the
// context. An empty username or unparseable role means the middleware did not
// run for this route; fail closed with a 401 instead of trusting defaults.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	username, _ := c.Get("username").(string)
	rawRole, _ := c.Get("role").(string)

	role, err := domain.ParseRole(rawRole)
	if username == "" || err != nil {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return domain.Principal{Username: username, Role: role}, nil
}
