package ports

import (
	"context"
	"time"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
)

// ListSubmissionsFilter carries the query parameters for listing submissions.
type ListSubmissionsFilter struct {
	IsRead  *bool // nil = no filter
	Page    int   // 1-based
	PerPage int   // rows per page (capped at 100 by the service)
}

// SubmissionRepository defines persistence operations for contact submissions.
// Each call is a single transactional unit; no operation spans two writes.
type SubmissionRepository interface {
	Create(ctx context.Context, s *domain.Submission) error
	FindByID(ctx context.Context, id uint) (*domain.Submission, error)
	// List returns one page of submissions ordered newest-first by
	// submitted_at, plus the total count matching the filter.
	List(ctx context.Context, filter ListSubmissionsFilter) ([]*domain.Submission, int64, error)
	// SetRead updates the read flag; domain.ErrSubmissionNotFound when the id
	// does not exist.
	SetRead(ctx context.Context, id uint, read bool) error
	Delete(ctx context.Context, id uint) error

	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
	// CountSince counts submissions with submitted_at >= since.
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByService(ctx context.Context) ([]domain.ServiceCount, error)
}
