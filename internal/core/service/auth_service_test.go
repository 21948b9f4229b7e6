package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
)

type stubAdminRepo struct {
	admins    map[uint]*domain.AdminUser
	nextID    uint
	createErr error
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[uint]*domain.AdminUser), nextID: 1}
}

func cloneAdmin(a *domain.AdminUser) *domain.AdminUser {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.AdminUser) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.admins {
		if existing.Username == admin.Username {
			return domain.ErrAdminExists
		}
	}
	admin.ID = r.nextID
	r.nextID++
	r.admins[admin.ID] = cloneAdmin(admin)
	return nil
}

func (r *stubAdminRepo) FindActiveByUsername(_ context.Context, username string) (*domain.AdminUser, error) {
	for _, a := range r.admins {
		if a.Username == username && a.IsActive {
			return cloneAdmin(a), nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) FindByID(_ context.Context, id uint) (*domain.AdminUser, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return cloneAdmin(a), nil
}

func (r *stubAdminRepo) UpdateLastLogin(_ context.Context, id uint, at time.Time) error {
	a, ok := r.admins[id]
	if !ok {
		return domain.ErrAdminNotFound
	}
	a.LastLogin = &at
	return nil
}

func (r *stubAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.admins)), nil
}

func seedAdmin(t *testing.T, repo *stubAdminRepo, username, password string, active bool) *domain.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := &domain.AdminUser{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		IsActive:     active,
	}
	if err := repo.Create(context.Background(), admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo, "arshad", "s3cret", true)
	svc := NewAuthService(repo, "secret", 24*time.Hour, zerolog.Nop())

	token, admin, err := svc.Login(context.Background(), "arshad", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if admin.LastLogin == nil {
		t.Fatalf("expected last login to be set")
	}
	if stored := repo.admins[admin.ID]; stored.LastLogin == nil {
		t.Fatalf("last login not persisted")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != strconv.FormatUint(uint64(admin.ID), 10) {
		t.Fatalf("unexpected subject: %v", claims["sub"])
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("expiration claim: %v", err)
	}
	ttl := time.Until(exp.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Fatalf("expected ~24h expiry, got %v", ttl)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo, "arshad", "goodpass", true)
	svc := NewAuthService(repo, "secret", 24*time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "arshad", "badpass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownAndInactiveIndistinguishable(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo, "retired", "s3cret", false)
	svc := NewAuthService(repo, "secret", 24*time.Hour, zerolog.Nop())

	_, _, unknownErr := svc.Login(context.Background(), "ghost", "s3cret")
	_, _, inactiveErr := svc.Login(context.Background(), "retired", "s3cret")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(inactiveErr, domain.ErrInvalidCredentials) {
		t.Fatalf("inactive user: expected ErrInvalidCredentials, got %v", inactiveErr)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubAdminRepo(), "secret", 24*time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "user", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authorize_Success(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo, "arshad", "s3cret", true)
	svc := NewAuthService(repo, "secret", 24*time.Hour, zerolog.Nop())

	token, _, err := svc.Login(context.Background(), "arshad", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	admin, err := svc.Authorize(context.Background(), token)
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	if admin.Username != "arshad" {
		t.Fatalf("unexpected admin: %+v", admin)
	}
}

func TestAuthService_Authorize_BadTokens(t *testing.T) {
	repo := newStubAdminRepo()
	admin := seedAdmin(t, repo, "arshad", "s3cret", true)
	svc := NewAuthService(repo, "secret", 24*time.Hour, zerolog.Nop())

	expired := signToken(t, "secret", jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(admin.ID), 10),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(admin.ID), 10),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	badSubject := signToken(t, "secret", jwt.MapClaims{
		"sub": "not-a-number",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	for name, token := range map[string]string{
		"garbage":     "not-a-token",
		"expired":     expired,
		"wrong key":   wrongKey,
		"bad subject": badSubject,
	} {
		if _, err := svc.Authorize(context.Background(), token); !errors.Is(err, domain.ErrAuthRequired) {
			t.Fatalf("%s: expected ErrAuthRequired, got %v", name, err)
		}
	}
}

func TestAuthService_Authorize_GoneOrInactiveAccount(t *testing.T) {
	repo := newStubAdminRepo()
	admin := seedAdmin(t, repo, "arshad", "s3cret", true)
	svc := NewAuthService(repo, "secret", 24*time.Hour, zerolog.Nop())

	token, _, err := svc.Login(context.Background(), "arshad", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	repo.admins[admin.ID].IsActive = false
	if _, err := svc.Authorize(context.Background(), token); !errors.Is(err, domain.ErrInactiveAdmin) {
		t.Fatalf("inactive: expected ErrInactiveAdmin, got %v", err)
	}

	delete(repo.admins, admin.ID)
	if _, err := svc.Authorize(context.Background(), token); !errors.Is(err, domain.ErrInactiveAdmin) {
		t.Fatalf("deleted: expected ErrInactiveAdmin, got %v", err)
	}
}

func TestAuthService_EnsureDefaultAdmin_Idempotent(t *testing.T) {
	repo := newStubAdminRepo()
	svc := NewAuthService(repo, "secret", 24*time.Hour, zerolog.Nop())

	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "admin123", "admin@example.com"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "admin123", "admin@example.com"); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(repo.admins) != 1 {
		t.Fatalf("expected exactly one admin, got %d", len(repo.admins))
	}

	var seeded *domain.AdminUser
	for _, a := range repo.admins {
		seeded = a
	}
	if seeded.PasswordHash == "admin123" {
		t.Fatalf("expected password to be hashed")
	}
	if !seeded.IsActive {
		t.Fatalf("seeded admin should be active")
	}
}

func TestAuthService_EnsureDefaultAdmin_ToleratesCreateRace(t *testing.T) {
	repo := newStubAdminRepo()
	repo.createErr = domain.ErrAdminExists
	svc := NewAuthService(repo, "secret", 24*time.Hour, zerolog.Nop())

	// Another process inserted between our count and create.
	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "admin123", "admin@example.com"); err != nil {
		t.Fatalf("expected duplicate creation to be tolerated, got %v", err)
	}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
