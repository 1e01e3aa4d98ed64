package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/crmapp/crm-backend/internal/core/domain"
	"github.com/crmapp/crm-backend/internal/core/ports"
)

// UserService implements the admin-only user directory operations.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateRole changes a user's role. There is no self-demotion guard: an admin
// may demote themselves, and already-issued tokens keep their old role until
// they expire.
func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*domain.User, error) {
	user, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Str("role", role).Msg("user role updated")
	return user, nil
}
