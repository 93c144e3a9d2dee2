package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// StockRecorder receives quantity mutations for asynchronous auditing.
// Recording is fire-and-forget: it must never fail the calling operation.
type StockRecorder interface {
	Record(event domain.StockEvent)
}

// InventoryService mutates stock through the store's atomic primitives.
type InventoryService struct {
	repo     ports.SweetRepository
	recorder StockRecorder
	logger   zerolog.Logger
}

// NewInventoryService returns an InventoryService. recorder may be nil when
// no audit trail is configured.
func NewInventoryService(repo ports.SweetRepository, recorder StockRecorder, logger zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, recorder: recorder, logger: logger}
}

// Purchase decrements the sweet's quantity by one. The availability guard
// and the decrement are a single atomic storage operation, so concurrent
// purchases at quantity 1 yield at most one success and quantity never goes
// negative.
func (s *InventoryService) Purchase(ctx context.Context, id string) (*domain.Sweet, error) {
	sweet, err := s.repo.DecrementIfAvailable(ctx, id)
	if err != nil {
		return nil, err
	}

	s.record(domain.StockEvent{
		SweetID:       sweet.ID,
		Delta:         -1,
		QuantityAfter: sweet.Quantity,
		Source:        domain.StockSourcePurchase,
		At:            time.Now().UTC(),
	})

	s.logger.Info().Str("sweet_id", sweet.ID).Int64("quantity", sweet.Quantity).Msg("sweet purchased")
	return sweet, nil
}

// Restock increments the sweet's quantity by amount, a positive integer.
func (s *InventoryService) Restock(ctx context.Context, id string, amount int64) (*domain.Sweet, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	sweet, err := s.repo.IncrementQuantity(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	s.record(domain.StockEvent{
		SweetID:       sweet.ID,
		Delta:         amount,
		QuantityAfter: sweet.Quantity,
		Source:        domain.StockSourceRestock,
		At:            time.Now().UTC(),
	})

	s.logger.Info().Str("sweet_id", sweet.ID).Int64("amount", amount).Int64("quantity", sweet.Quantity).Msg("sweet restocked")
	return sweet, nil
}

func (s *InventoryService) record(event domain.StockEvent) {
	if s.recorder != nil {
		s.recorder.Record(event)
	}
}
