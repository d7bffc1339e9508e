package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/publishing-system/internal/api/metrics"
)

// RBAC is a coarse role gate applied at the route level. It only filters
// requests whose role can never pass; the service layer re-evaluates every
// decision through the authorization engine, including ownership.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthzDenialsTotal.WithLabelValues(role).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
