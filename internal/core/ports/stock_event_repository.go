package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// StockEventRepository persists quantity mutations to the audit trail.
type StockEventRepository interface {
	InsertEvent(ctx context.Context, event *domain.StockEvent) error
}
