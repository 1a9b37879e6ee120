package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/promobeats/backoffice/internal/core/domain"
)

func runRBAC(t *testing.T, roles []string, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/brands", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if roles != nil {
		c.Set(KeyRoles, roles)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	if err := RBAC(allowed...)(next)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestRBAC_AllowsMatchingRole(t *testing.T) {
	rec := runRBAC(t, []string{domain.RoleAdmin}, domain.RoleSuperAdmin, domain.RoleAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_RejectsMissingRole(t *testing.T) {
	rec := runRBAC(t, []string{domain.RoleExecutive}, domain.RoleSuperAdmin, domain.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_RejectsWithoutAuthContext(t *testing.T) {
	rec := runRBAC(t, nil, domain.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when no roles are set, got %d", rec.Code)
	}
}

func TestRBAC_RejectsEmptyRoleSet(t *testing.T) {
	rec := runRBAC(t, []string{}, domain.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for an empty role set, got %d", rec.Code)
	}
}
