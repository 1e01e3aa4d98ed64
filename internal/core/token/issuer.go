// Package token issues and verifies the signed session credentials that bind
// a user id to a role. Tokens are HS256 JWTs with a fixed TTL; there is no
// revocation list, so a token stays valid until expiry.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crmapp/crm-backend/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Claims is the payload carried by every session token.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier is the read side of the issuer, used by the auth middleware.
type Verifier interface {
	Verify(tokenString string) (*Claims, error)
}

// Issuer creates and verifies session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the given identity.
func (i *Issuer) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses and validates tokenString. Malformed, tampered, and expired
// tokens all fail with the same Unauthenticated error.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.Unauthenticated("Invalid or expired token")
	}
	return claims, nil
}
