package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
)

type stubAuthorizer struct {
	authorizeFn func(ctx context.Context, token string) (*domain.AdminUser, error)
}

func (s *stubAuthorizer) Authorize(ctx context.Context, token string) (*domain.AdminUser, error) {
	return s.authorizeFn(ctx, token)
}

func runGate(t *testing.T, auth Authorizer, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AdminAuth(auth)(next)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	msg, _ := resp["error"].(string)
	return msg
}

func TestAdminAuth_ValidToken(t *testing.T) {
	auth := &stubAuthorizer{
		authorizeFn: func(_ context.Context, token string) (*domain.AdminUser, error) {
			if token != "good-token" {
				t.Fatalf("unexpected token: %q", token)
			}
			return &domain.AdminUser{ID: 1, Username: "admin", IsActive: true}, nil
		},
	}

	called := false
	rec := runGate(t, auth, "Bearer good-token", func(c echo.Context) error {
		called = true
		admin, ok := c.Get("admin").(*domain.AdminUser)
		if !ok || admin.Username != "admin" {
			t.Fatalf("admin not injected into context")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminAuth_MissingOrMalformedHeader(t *testing.T) {
	auth := &stubAuthorizer{
		authorizeFn: func(context.Context, string) (*domain.AdminUser, error) {
			t.Fatalf("authorizer should not be called")
			return nil, nil
		},
	}
	next := func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer "} {
		rec := runGate(t, auth, header, next)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
		if msg := errorMessage(t, rec); msg != "Authentication required" {
			t.Fatalf("header %q: unexpected message %q", header, msg)
		}
	}
}

func TestAdminAuth_InvalidToken(t *testing.T) {
	auth := &stubAuthorizer{
		authorizeFn: func(context.Context, string) (*domain.AdminUser, error) {
			return nil, domain.ErrAuthRequired
		},
	}

	rec := runGate(t, auth, "Bearer bad-token", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "Authentication required" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestAdminAuth_InactiveAccount(t *testing.T) {
	auth := &stubAuthorizer{
		authorizeFn: func(context.Context, string) (*domain.AdminUser, error) {
			return nil, domain.ErrInactiveAdmin
		},
	}

	rec := runGate(t, auth, "Bearer stale-token", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "Invalid or inactive admin user" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
