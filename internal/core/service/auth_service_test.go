package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/crmapp/crm-backend/internal/core/domain"
	"github.com/crmapp/crm-backend/internal/core/ports"
	"github.com/crmapp/crm-backend/internal/core/token"
)

func newAuthService(repo ports.UserRepository) (*AuthService, *token.Issuer) {
	issuer := token.NewIssuer("secret", time.Hour)
	return NewAuthService(repo, issuer, zerolog.Nop()), issuer
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pw123456",
		Role:     domain.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "pw123456" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleEmployee {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	in := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pw123456", Role: domain.RoleAdmin}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	in.Name = "Other Bob"
	_, err := svc.Register(context.Background(), in)
	if domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("expected Conflict, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, issuer := newAuthService(repo)

	registered, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Carol",
		Email:    "carol@example.com",
		Password: "s3cret99",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	claims, err := issuer.Verify(result.AccessToken)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != registered.ID || claims.Role != domain.RoleAdmin {
		t.Fatalf("claims do not match issuance: %+v", claims)
	}
}

func TestAuthService_Login_SameMessageForBothFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Dave", Email: "dave@example.com", Password: "goodpass", Role: domain.RoleEmployee,
	})

	_, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, unknown := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if domain.KindOf(wrongPass) != domain.KindUnauthenticated {
		t.Fatalf("expected Unauthenticated for wrong password, got %v", wrongPass)
	}
	if domain.KindOf(unknown) != domain.KindUnauthenticated {
		t.Fatalf("expected Unauthenticated for unknown email, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("messages differ: %q vs %q", wrongPass.Error(), unknown.Error())
	}
}
