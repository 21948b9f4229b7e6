package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
)

// adminContextKey is where the auth middleware stores the resolved account.
const adminContextKey = "admin"

// ctxAdmin extracts the admin account injected by the auth middleware. Its
// presence proves the middleware ran; a missing value means the route was
// registered without the gate, which is a wiring bug, not a client error.
func ctxAdmin(c echo.Context) (*domain.AdminUser, error) {
	admin, ok := c.Get(adminContextKey).(*domain.AdminUser)
	if !ok || admin == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return admin, nil
}
