package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-system/internal/core/authz"
	"github.com/pressroom/publishing-system/internal/core/domain"
	"github.com/pressroom/publishing-system/internal/core/ports"
)

// UserService implements user management. Listing users and reassigning
// roles are admin-only decisions made by the authorization engine.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: logger}
}

// Profile returns the actor's own record, re-read from the store.
func (s *UserService) Profile(ctx context.Context, actor *domain.User) (*domain.User, error) {
	return s.repo.FindByID(ctx, actor.ID)
}

func (s *UserService) ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	if !authz.Can(actor, authz.ActionViewAllUsers, nil) {
		return nil, domain.ErrForbidden
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// AssignRole moves the target user to a different registered role. This is
// the only way a user's role changes after registration.
func (s *UserService) AssignRole(ctx context.Context, actor *domain.User, userID, role string) (*domain.User, error) {
	if !authz.Can(actor, authz.ActionAssignRole, nil) {
		return nil, domain.ErrForbidden
	}
	if !domain.KnownRole(role) {
		return nil, domain.ErrUnknownRole
	}

	updated, err := s.repo.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", userID).
		Str("role", role).
		Str("assigned_by", actor.ID).
		Msg("role assigned")
	return updated, nil
}
