package ports

import (
	"context"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
)

// SubmitContactInput is a validator-approved submission payload. Fields are
// already trimmed and the email lower-cased by the transport layer.
type SubmitContactInput struct {
	Name      string
	Email     string
	Service   string
	Message   string
	IPAddress string
}

// Pagination is the metadata returned alongside a submission page.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// SubmissionPage is one page of submissions plus pagination metadata.
type SubmissionPage struct {
	Items      []*domain.Submission
	Pagination Pagination
}

// ContactStats aggregates the admin dashboard numbers.
type ContactStats struct {
	Total            int64
	Unread           int64
	RecentWeek       int64
	ServiceBreakdown []domain.ServiceCount
}

// ContactService owns the submission lifecycle.
type ContactService interface {
	// Submit persists a new submission with submitted_at=now and is_read=false.
	Submit(ctx context.Context, input SubmitContactInput) (*domain.Submission, error)
	List(ctx context.Context, filter ListSubmissionsFilter) (*SubmissionPage, error)
	// Get returns a submission by id, marking it read on first view.
	Get(ctx context.Context, id uint) (*domain.Submission, error)
	// SetRead sets the read flag to an explicit value (not a toggle).
	SetRead(ctx context.Context, id uint, read bool) (*domain.Submission, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*ContactStats, error)
}
