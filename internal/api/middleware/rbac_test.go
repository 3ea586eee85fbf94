package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/roomdesk/booking-api/internal/core/domain"
)

func runRBAC(t *testing.T, mw echo.MiddlewareFunc, role string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	rec, called := runRBAC(t, RBAC(domain.RoleAdmin), domain.RoleAdmin)
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_AllowsAnyOfSeveral(t *testing.T) {
	rec, called := runRBAC(t, RBAC(domain.RoleAdmin, domain.RoleGuest), domain.RoleGuest)
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_ForbidsUnlistedRole(t *testing.T) {
	rec, called := runRBAC(t, RBAC(domain.RoleAdmin), domain.RoleGuest)
	if called {
		t.Fatalf("unlisted role reached handler")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_ForbidsMissingRole(t *testing.T) {
	// Chain misconfiguration: RBAC ran without Auth attaching a role.
	rec, called := runRBAC(t, RBAC(domain.RoleAdmin), "")
	if called {
		t.Fatalf("request with no role reached handler")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
