package ports

import (
	"context"

	"github.com/pressroom/publishing-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes a valid token for the remainder of its lifetime.
	Logout(ctx context.Context, token string) error
}
