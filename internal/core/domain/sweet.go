package domain

import (
	"errors"
	"time"
)

var ErrSweetNotFound = errors.New("sweet not found")
var ErrOutOfStock = errors.New("sweet out of stock")
var ErrInvalidPrice = errors.New("price must be greater than zero")
var ErrInvalidQuantity = errors.New("quantity must not be negative")

// Sweet is a catalog item with stock on hand.
//
// Invariants: Price > 0 and Quantity >= 0 at all times. Quantity is only
// mutated through the store's atomic increment/decrement operations.
type Sweet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InStock reports whether at least one unit is available for purchase.
func (s *Sweet) InStock() bool { return s.Quantity > 0 }
