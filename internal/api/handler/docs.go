package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DocsHandler serves a hand-built JSON description of the public API surface
// at GET /api/docs.
type DocsHandler struct{}

func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

func (h *DocsHandler) Docs(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"title":       "Portfolio Backend API",
		"version":     version,
		"description": "Backend API for the portfolio contact form and admin panel",
		"endpoints": map[string]any{
			"contact_form": map[string]any{
				"url":         "/api/submit-contact",
				"method":      http.MethodPost,
				"description": "Submit the contact form",
				"body": map[string]string{
					"name":    "string (required)",
					"email":   "string (required)",
					"service": "string (required)",
					"message": "string (required, min 10 chars)",
				},
			},
			"admin_login": map[string]any{
				"url":         "/api/admin/login",
				"method":      http.MethodPost,
				"description": "Admin login",
				"body": map[string]string{
					"username": "string (required)",
					"password": "string (required)",
				},
			},
			"get_submissions": map[string]any{
				"url":         "/api/admin/submissions",
				"method":      http.MethodGet,
				"description": "List contact submissions (admin only)",
				"headers": map[string]string{
					"Authorization": "Bearer <token>",
				},
				"query_params": map[string]string{
					"page":     "int (optional, default: 1)",
					"per_page": "int (optional, default: 20)",
					"is_read":  "boolean (optional)",
				},
			},
			"admin_stats": map[string]any{
				"url":         "/api/admin/stats",
				"method":      http.MethodGet,
				"description": "Dashboard statistics (admin only)",
				"headers": map[string]string{
					"Authorization": "Bearer <token>",
				},
			},
		},
	})
}
