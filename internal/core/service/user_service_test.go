package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crmapp/crm-backend/internal/core/domain"
)

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.GetByID(context.Background(), "ghost")
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := repo.Create(context.Background(), &domain.User{Name: "John", Email: "john@crmapp.com", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	updated, err := svc.UpdateRole(context.Background(), created.ID, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", updated.Role)
	}
}

func TestUserService_UpdateRole_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.UpdateRole(context.Background(), "ghost", domain.RoleAdmin)
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, _ = repo.Create(context.Background(), &domain.User{Name: "A", Email: "a@crmapp.com", Role: domain.RoleAdmin})
	_, _ = repo.Create(context.Background(), &domain.User{Name: "B", Email: "b@crmapp.com", Role: domain.RoleEmployee})

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
