package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
)

// Authorizer resolves a bearer token to an active admin account.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*domain.AdminUser, error)
}

type authErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// AdminAuth gates every admin-only route. It extracts the bearer token,
// delegates verification to the Authorizer, and injects the resolved account
// into the request context under the "admin" key.
//
// Any token problem reads "Authentication required"; a verified token whose
// account is gone or deactivated reads "Invalid or inactive admin user".
func AdminAuth(auth Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return c.JSON(http.StatusUnauthorized, authErrorResponse{Error: "Authentication required"})
			}

			admin, err := auth.Authorize(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrInactiveAdmin) {
					return c.JSON(http.StatusUnauthorized, authErrorResponse{Error: "Invalid or inactive admin user"})
				}
				if errors.Is(err, domain.ErrAuthRequired) {
					return c.JSON(http.StatusUnauthorized, authErrorResponse{Error: "Authentication required"})
				}
				return err
			}

			c.Set("admin", admin)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
