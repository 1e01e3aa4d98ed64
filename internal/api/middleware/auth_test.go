package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crmapp/crm-backend/internal/core/domain"
	"github.com/crmapp/crm-backend/internal/core/token"
)

func newTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	signed, err := issuer.Issue("user_1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	c := newTestContext(t, "Bearer "+signed)

	called := false
	handler := Auth(issuer)(func(c echo.Context) error {
		called = true
		if c.Get(ContextUserID) != "user_1" {
			t.Fatalf("user_id not set")
		}
		if c.Get(ContextRole) != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	c := newTestContext(t, "")

	handler := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if domain.KindOf(err) != domain.KindUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	c := newTestContext(t, "Token abc")

	handler := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if domain.KindOf(err) != domain.KindUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	issuer := token.NewIssuer("secret", time.Hour)
	c := newTestContext(t, "Bearer not-a-token")

	handler := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if domain.KindOf(err) != domain.KindUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := token.NewIssuer("secret", -time.Minute)
	signed, err := expired.Issue("user_1", domain.RoleEmployee)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	c := newTestContext(t, "Bearer "+signed)

	handler := Auth(token.NewIssuer("secret", time.Hour))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); domain.KindOf(err) != domain.KindUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}
