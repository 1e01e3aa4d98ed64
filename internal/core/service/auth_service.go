package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/crmapp/crm-backend/internal/core/domain"
	"github.com/crmapp/crm-backend/internal/core/ports"
	"github.com/crmapp/crm-backend/internal/core/token"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	issuer *token.Issuer
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, issuer *token.Issuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, logger: logger}
}

// Register creates a user account. The email must not already be taken;
// a duplicate fails with Conflict regardless of role.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.Conflict("user", "email")
	} else if domain.KindOf(err) != domain.KindNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// A concurrent registration may win the race between the existence
		// check and the insert; the unique constraint reports it.
		if domain.KindOf(err) == domain.KindConflict {
			return nil, domain.Conflict("user", "email")
		}
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password return the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.InvalidCredentials()
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.InvalidCredentials()
	}

	accessToken, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.LoginResult{AccessToken: accessToken, User: user}, nil
}
