package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hobbyhub/community-platform/internal/core/domain"
)

func invokeRBAC(t *testing.T, principal *domain.User, allowed ...string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/admin-only", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(principalKey, principal)
	}

	handler := RequireRoles(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestRequireRoles_Allows(t *testing.T) {
	admin := &domain.User{Email: "root@example.com", Role: domain.RoleAdmin}
	rec, err := invokeRBAC(t, admin, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("middleware failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoles_Forbids(t *testing.T) {
	user := &domain.User{Email: "bob@example.com", Role: domain.RoleUser}
	rec, err := invokeRBAC(t, user, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("middleware failed: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoles_NoPrincipal(t *testing.T) {
	_, err := invokeRBAC(t, nil, domain.RoleAdmin)
	assertHTTPError(t, err, http.StatusUnauthorized)
}
