package mongo

import (
	"context"
	"testing"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

func TestSweetRepository_MalformedID(t *testing.T) {
	r := &SweetRepository{}

	if _, err := r.FindByID(context.Background(), "nope"); err != domain.ErrSweetNotFound {
		t.Fatalf("FindByID: expected ErrSweetNotFound, got %v", err)
	}
	if err := r.Delete(context.Background(), "nope"); err != domain.ErrSweetNotFound {
		t.Fatalf("Delete: expected ErrSweetNotFound, got %v", err)
	}
	if _, err := r.IncrementQuantity(context.Background(), "nope", 1); err != domain.ErrSweetNotFound {
		t.Fatalf("IncrementQuantity: expected ErrSweetNotFound, got %v", err)
	}
	if _, err := r.DecrementIfAvailable(context.Background(), "nope"); err != domain.ErrSweetNotFound {
		t.Fatalf("DecrementIfAvailable: expected ErrSweetNotFound, got %v", err)
	}
}
