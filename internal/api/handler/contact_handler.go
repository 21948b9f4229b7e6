package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsuccessindia/portfolio-backend/internal/api/metrics"
	"github.com/legalsuccessindia/portfolio-backend/internal/core/ports"
)

const submitThanks = "Thank you for your message! We will get back to you soon."

// ContactHandler handles the public contact-form endpoint.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/submit-contact.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      submitContactRequest  true  "Contact form fields"
// @Success      201   {object}  submitContactResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/submit-contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req submitContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errBody("invalid payload"))
	}

	req.normalize()
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errBody(err.Error()))
	}

	submission, err := h.service.Submit(c.Request().Context(), ports.SubmitContactInput{
		Name:      req.Name,
		Email:     req.Email,
		Service:   req.Service,
		Message:   req.Message,
		IPAddress: c.RealIP(),
	})
	if err != nil {
		return err
	}

	metrics.SubmissionsReceivedTotal.WithLabelValues(submission.Service).Inc()

	return c.JSON(http.StatusCreated, submitContactResponse{
		Success: true,
		Message: submitThanks,
		ID:      submission.ID,
	})
}
