package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/legalsuccessindia/portfolio-backend/internal/api/metrics"
	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
	"github.com/legalsuccessindia/portfolio-backend/internal/core/ports"
)

// AuthHandler handles admin login and profile.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/admin/login.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errBody("invalid payload"))
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, errBody("Username and password are required"))
	}

	token, admin, err := h.authService.Login(c.Request().Context(), username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, errBody("Invalid username or password"))
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: token, Admin: admin})
}

// Profile handles GET /api/admin/profile.
//
// @Summary      Current admin profile
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminProfileResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminProfileResponse{Success: true, Admin: admin})
}
