package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

const collectionStockEvents = "stock_events"

// StockEventRepository implements ports.StockEventRepository using MongoDB.
type StockEventRepository struct {
	col *mongo.Collection
}

func NewStockEventRepository(db *mongo.Database) ports.StockEventRepository {
	return &StockEventRepository{col: db.Collection(collectionStockEvents)}
}

// InsertEvent persists a quantity mutation to the stock_events audit collection.
func (r *StockEventRepository) InsertEvent(ctx context.Context, event *domain.StockEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"sweet_id":       event.SweetID,
		"delta":          event.Delta,
		"quantity_after": event.QuantityAfter,
		"source":         event.Source,
		"occurred_at":    event.At.UTC(),
		"recorded_at":    time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert stock event: %w", err)
	}
	return nil
}
