package handler

import (
	"strings"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
	"github.com/legalsuccessindia/portfolio-backend/internal/core/ports"
)

// errorResponse is the standard envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func errBody(msg string) errorResponse {
	return errorResponse{Success: false, Error: msg}
}

// --- Public contact form ---

type submitContactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email_format"`
	Service string `json:"service" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// normalize trims every field and lower-cases the email. Runs before
// validation so whitespace-only values fail the required check.
func (r *submitContactRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Service = strings.TrimSpace(r.Service)
	r.Message = strings.TrimSpace(r.Message)
}

type submitContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// --- Admin auth ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool              `json:"success"`
	Token   string            `json:"token"`
	Admin   *domain.AdminUser `json:"admin"`
}

type adminProfileResponse struct {
	Success bool              `json:"success"`
	Admin   *domain.AdminUser `json:"admin"`
}

// --- Admin submission management ---

type submissionResponse struct {
	Success    bool               `json:"success"`
	Submission *domain.Submission `json:"submission"`
}

type listSubmissionsResponse struct {
	Success     bool                 `json:"success"`
	Submissions []*domain.Submission `json:"submissions"`
	Pagination  ports.Pagination     `json:"pagination"`
}

type deleteSubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type markReadRequest struct {
	IsRead *bool `json:"is_read"`
}

type statsResponse struct {
	Success bool         `json:"success"`
	Stats   contactStats `json:"stats"`
}

// contactStats is the JSON shape of the dashboard aggregates.
type contactStats struct {
	TotalSubmissions  int64                 `json:"total_submissions"`
	UnreadSubmissions int64                 `json:"unread_submissions"`
	RecentSubmissions int64                 `json:"recent_submissions"`
	ServiceBreakdown  []domain.ServiceCount `json:"service_breakdown"`
}
