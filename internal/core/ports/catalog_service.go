package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// CreateSweetInput carries all data needed to create a catalog entry.
type CreateSweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int64
}

// UpdateSweetInput is the partial-update request: nil pointers mean
// "leave unchanged", so an absent field and a field set to its zero value
// are distinct.
type UpdateSweetInput struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
}

// SearchSweetsInput carries the optional search criteria.
type SearchSweetsInput struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// CatalogService defines use-case operations over the sweet catalog.
type CatalogService interface {
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	GetAll(ctx context.Context) ([]*domain.Sweet, error)
	GetByID(ctx context.Context, id string) (*domain.Sweet, error)
	Search(ctx context.Context, input SearchSweetsInput) ([]*domain.Sweet, error)
	Update(ctx context.Context, id string, input UpdateSweetInput) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
}
