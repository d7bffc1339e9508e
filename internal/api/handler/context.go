package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/publishing-system/internal/core/domain"
)

// ctxActor rebuilds the authenticated actor from the claims injected by the
// Auth middleware and fast-fails before any service call:
//   - user_id and role must be non-empty (presence proves the middleware ran
//     and the token carries a usable identity).
func ctxActor(c echo.Context) (*domain.User, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("name").(string)
	return &domain.User{ID: userID, Name: name, Role: role}, nil
}
