package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/legalsuccessindia/portfolio-backend/internal/api/metrics"
	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
	"github.com/legalsuccessindia/portfolio-backend/internal/core/ports"
)

// AdminHandler handles the admin-only submission management endpoints.
type AdminHandler struct {
	service ports.ContactService
}

func NewAdminHandler(service ports.ContactService) *AdminHandler {
	return &AdminHandler{service: service}
}

// List handles GET /api/admin/submissions.
//
// @Summary      List contact submissions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        per_page  query     int     false  "Rows per page (default 20, max 100)"
// @Param        is_read   query     bool    false  "Filter by read flag"
// @Success      200       {object}  listSubmissionsResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Router       /api/admin/submissions [get]
func (h *AdminHandler) List(c echo.Context) error {
	filter := ports.ListSubmissionsFilter{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 20),
	}

	if raw := c.QueryParam("is_read"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errBody("is_read must be true or false"))
		}
		filter.IsRead = &v
	}

	page, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	items := page.Items
	if items == nil {
		items = []*domain.Submission{}
	}

	return c.JSON(http.StatusOK, listSubmissionsResponse{
		Success:     true,
		Submissions: items,
		Pagination:  page.Pagination,
	})
}

// Get handles GET /api/admin/submissions/:id. The first view marks the
// submission read.
//
// @Summary      Fetch a submission
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Submission id"
// @Success      200  {object}  submissionResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/submissions/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errBody("Submission not found"))
	}

	submission, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return c.JSON(http.StatusNotFound, errBody("Submission not found"))
		}
		return err
	}

	return c.JSON(http.StatusOK, submissionResponse{Success: true, Submission: submission})
}

// Delete handles DELETE /api/admin/submissions/:id.
//
// @Summary      Delete a submission
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Submission id"
// @Success      200  {object}  deleteSubmissionResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/submissions/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errBody("Submission not found"))
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return c.JSON(http.StatusNotFound, errBody("Submission not found"))
		}
		return err
	}

	metrics.SubmissionsDeletedTotal.Inc()

	return c.JSON(http.StatusOK, deleteSubmissionResponse{
		Success: true,
		Message: "Submission deleted successfully",
	})
}

// MarkRead handles PATCH /api/admin/submissions/:id/mark-read. The flag is an
// explicit value from the request, defaulting to true when the body or field
// is absent.
//
// @Summary      Set the read flag on a submission
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true   "Submission id"
// @Param        body  body      markReadRequest  false  "Read flag (default true)"
// @Success      200   {object}  submissionResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/submissions/{id}/mark-read [patch]
func (h *AdminHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errBody("Submission not found"))
	}

	read := true
	if c.Request().ContentLength != 0 {
		var req markReadRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errBody("invalid payload"))
		}
		if req.IsRead != nil {
			read = *req.IsRead
		}
	}

	submission, err := h.service.SetRead(c.Request().Context(), id, read)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return c.JSON(http.StatusNotFound, errBody("Submission not found"))
		}
		return err
	}

	return c.JSON(http.StatusOK, submissionResponse{Success: true, Submission: submission})
}

// Stats handles GET /api/admin/stats.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	breakdown := stats.ServiceBreakdown
	if breakdown == nil {
		breakdown = []domain.ServiceCount{}
	}

	return c.JSON(http.StatusOK, statsResponse{
		Success: true,
		Stats: contactStats{
			TotalSubmissions:  stats.Total,
			UnreadSubmissions: stats.Unread,
			RecentSubmissions: stats.RecentWeek,
			ServiceBreakdown:  breakdown,
		},
	})
}

// queryInt parses a positive integer query parameter, falling back to def on
// absent, malformed, or non-positive values.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// pathID parses the :id path parameter. Non-numeric ids behave like unknown
// ones: the caller responds 404.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
