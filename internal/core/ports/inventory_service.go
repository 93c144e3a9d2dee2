package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// InventoryService mutates stock levels under the non-negative invariant.
type InventoryService interface {
	// Purchase decrements the sweet's quantity by one. Returns
	// domain.ErrOutOfStock when no stock is available; under concurrent
	// purchases at quantity 1, at most one call succeeds.
	Purchase(ctx context.Context, id string) (*domain.Sweet, error)
	// Restock increments the sweet's quantity by amount, which must be a
	// positive integer (domain.ErrInvalidQuantity otherwise).
	Restock(ctx context.Context, id string, amount int64) (*domain.Sweet, error)
}
