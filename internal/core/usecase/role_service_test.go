package usecase

import (
	"context"
	"testing"

	"github.com/promobeats/backoffice/internal/core/domain"
)

func TestRoleService_EnsureBuiltins_SeedsOnce(t *testing.T) {
	repos := newTestRepos()
	uow := &fakeUOW{repos: repos}
	svc := NewRoleService(repos, uow, testLog())

	if err := svc.EnsureBuiltins(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := svc.EnsureBuiltins(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	n, err := repos.Roles.Count(context.Background(), nil)
	if err != nil {
		t.Fatalf("count roles: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected exactly 3 builtin roles, got %d", n)
	}
	if uow.commits != 2 {
		t.Fatalf("both runs must commit, got %d", uow.commits)
	}
}

func TestRoleService_List_OrderedByID(t *testing.T) {
	repos := newTestRepos()
	uow := &fakeUOW{repos: repos}
	svc := NewRoleService(repos, uow, testLog())
	if err := svc.EnsureBuiltins(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	roles := res.Value()
	if len(roles) != 3 {
		t.Fatalf("expected 3 roles, got %d", len(roles))
	}
	want := []string{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleExecutive}
	for i, role := range roles {
		if role.Key != want[i] {
			t.Fatalf("expected %s at position %d, got %s", want[i], i, role.Key)
		}
		if role.ID != int64(i+1) {
			t.Fatalf("expected sequential ids, got %d at position %d", role.ID, i)
		}
	}
}
