package ports

import (
	"context"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
)

// AuthService is the single authorization boundary for the admin surface.
type AuthService interface {
	// Login verifies credentials against an active account, updates the
	// last-login timestamp and returns a signed bearer token. Unknown
	// username, wrong password and deactivated account all yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.AdminUser, error)
	// Authorize verifies a bearer token and resolves it to an active admin
	// account. domain.ErrAuthRequired on any verification failure,
	// domain.ErrInactiveAdmin when the account is gone or deactivated.
	Authorize(ctx context.Context, token string) (*domain.AdminUser, error)
	// EnsureDefaultAdmin seeds the initial account when none exists.
	// Idempotent: a concurrent duplicate creation is not an error.
	EnsureDefaultAdmin(ctx context.Context, username, password, email string) error
}
