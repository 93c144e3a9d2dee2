package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// AuthService registers users and authenticates logins.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login returns a signed session token alongside the authenticated user.
	// Unknown email and wrong password yield the same
	// domain.ErrInvalidCredentials — the two cases are indistinguishable to
	// the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
