package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// SearchFilter carries the optional search predicates, AND-combined.
// A nil/zero field means "no constraint".
type SearchFilter struct {
	Name     string   // case-insensitive substring match
	Category string   // exact match, case-sensitive (byte-wise collation)
	MinPrice *float64 // inclusive lower bound
	MaxPrice *float64 // inclusive upper bound
}

// UpdateSweetFields is an explicit field mask for partial updates: a nil
// pointer means "leave unchanged", a set pointer means "write this value",
// including zero values.
type UpdateSweetFields struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
}

// Empty reports whether the mask selects no fields at all.
func (f UpdateSweetFields) Empty() bool {
	return f.Name == nil && f.Category == nil && f.Price == nil && f.Quantity == nil
}

// SweetRepository defines persistence operations for the sweet catalog.
type SweetRepository interface {
	// Create inserts a new sweet, assigning a server-generated ID and
	// creation/update timestamps on the passed value.
	Create(ctx context.Context, s *domain.Sweet) error
	// FindAll returns every sweet ordered by creation time descending.
	FindAll(ctx context.Context) ([]*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	// Update applies the field mask and returns the updated sweet.
	// Returns domain.ErrSweetNotFound when the id is absent.
	Update(ctx context.Context, id string, fields UpdateSweetFields) (*domain.Sweet, error)
	// Delete hard-deletes a sweet. Returns domain.ErrSweetNotFound when absent.
	Delete(ctx context.Context, id string) error
	// Search returns sweets matching all provided predicates, ordered by
	// creation time descending. An empty filter returns everything.
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Sweet, error)

	// IncrementQuantity applies quantity = quantity + delta as a single
	// atomic storage-level operation (no lost updates under concurrency)
	// and returns the updated sweet. Returns domain.ErrSweetNotFound when
	// the id is absent.
	IncrementQuantity(ctx context.Context, id string, delta int64) (*domain.Sweet, error)
	// DecrementIfAvailable atomically decrements quantity by one, but only
	// when the current quantity is greater than zero; the guard and the
	// decrement are a single storage-level operation, so quantity can never
	// go negative. Returns domain.ErrOutOfStock when stock is exhausted and
	// domain.ErrSweetNotFound when the id is absent.
	DecrementIfAvailable(ctx context.Context, id string) (*domain.Sweet, error)
}
