package ports

import (
	"context"

	"github.com/pressroom/publishing-system/internal/core/domain"
)

// UserService defines user-management operations. Listing and role
// assignment are admin-gated by the authorization engine.
type UserService interface {
	Profile(ctx context.Context, actor *domain.User) (*domain.User, error)
	ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error)
	AssignRole(ctx context.Context, actor *domain.User, userID, role string) (*domain.User, error)
}
