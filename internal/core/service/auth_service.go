package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
	"github.com/legalsuccessindia/portfolio-backend/internal/core/ports"
)

// AuthService implements admin login, token verification and bootstrap seeding.
type AuthService struct {
	repo      ports.AdminRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AdminRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies credentials against an active account. Every failure mode
// collapses into domain.ErrInvalidCredentials so the response never reveals
// whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.AdminUser, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.repo.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		return "", nil, err
	}
	admin.LastLogin = &now

	token, err := s.generateToken(admin, now)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", admin.Username).Msg("admin logged in")
	return token, admin, nil
}

// Authorize verifies a signed token and resolves it to an active account.
func (s *AuthService) Authorize(ctx context.Context, token string) (*domain.AdminUser, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrAuthRequired
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, domain.ErrAuthRequired
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, domain.ErrAuthRequired
	}

	admin, err := s.repo.FindByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInactiveAdmin
		}
		return nil, err
	}
	if !admin.IsActive {
		return nil, domain.ErrInactiveAdmin
	}
	return admin, nil
}

// EnsureDefaultAdmin seeds the initial account when the table is empty.
// A duplicate-key failure means another process won the race; that is fine.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, password, email string) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrAdminExists) {
			s.logger.Info().Str("username", username).Msg("default admin already seeded")
			return nil
		}
		return err
	}

	s.logger.Info().Str("username", username).Msg("default admin created")
	return nil
}

func (s *AuthService) generateToken(admin *domain.AdminUser, issuedAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(admin.ID), 10),
		"username": admin.Username,
		"iat":      issuedAt.Unix(),
		"exp":      issuedAt.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
