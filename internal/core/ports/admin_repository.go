package ports

import (
	"context"
	"time"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
)

// AdminRepository defines persistence operations for admin accounts.
type AdminRepository interface {
	// Create inserts a new account; domain.ErrAdminExists on a duplicate
	// username or email.
	Create(ctx context.Context, admin *domain.AdminUser) error
	// FindActiveByUsername resolves an account by exact username where
	// is_active is true; domain.ErrAdminNotFound otherwise.
	FindActiveByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	FindByID(ctx context.Context, id uint) (*domain.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	Count(ctx context.Context) (int64, error)
}
