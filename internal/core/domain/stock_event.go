package domain

import "time"

// Stock event sources.
const (
	StockSourcePurchase = "purchase"
	StockSourceRestock  = "restock"
)

// StockEvent records a single quantity mutation for the audit trail.
// It deliberately carries no user reference: purchases are pure quantity
// mutations, not ledger entries.
type StockEvent struct {
	SweetID       string
	Delta         int64
	QuantityAfter int64
	Source        string
	At            time.Time
}
