package token

import (
	"testing"
	"time"

	"github.com/crmapp/crm-backend/internal/core/domain"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	signed, err := issuer.Issue("user_1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user_1" {
		t.Fatalf("expected user_1, got %s", claims.UserID)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected %s, got %s", domain.RoleAdmin, claims.Role)
	}
}

func TestIssuer_Expired(t *testing.T) {
	issuer := NewIssuer("secret", -time.Minute)

	signed, err := issuer.Issue("user_1", domain.RoleEmployee)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := issuer.Verify(signed); err == nil {
		t.Fatalf("expected expired token to fail verification")
	} else if domain.KindOf(err) != domain.KindUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	signed, err := NewIssuer("secret-a", time.Hour).Issue("user_1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewIssuer("secret-b", time.Hour).Verify(signed); err == nil {
		t.Fatalf("expected signature mismatch to fail verification")
	}
}

func TestIssuer_Malformed(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	if _, err := issuer.Verify("not-a-token"); err == nil {
		t.Fatalf("expected malformed token to fail verification")
	}
}
