package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC gates a route by role. A request with no attached role (Auth did
// not run, or ran in a misconfigured chain) is forbidden, never a crash.
// Single-role routes are the one-element case of the same check.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
