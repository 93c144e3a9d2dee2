package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailTaken when the
	// email is already registered (enforced by a unique index).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail performs a case-sensitive exact match on email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// List returns all users ordered by creation time descending.
	List(ctx context.Context) ([]*domain.User, error)
	// Delete removes a user. Returns domain.ErrUserNotFound when absent.
	Delete(ctx context.Context, id string) error
}
