package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopor/catalog-api/internal/core/domain"
)

// RBAC enforces role-based access control. It is a pure check on the claims
// the Auth middleware injected; it performs no I/O.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
			}
			return next(c)
		}
	}
}
