package ledger

import (
	"context"

	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// TransactionRepository defines persistence operations for transactions
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	FindByShip(ctx context.Context, shipID shared.ShipID, opts QueryOptions) ([]*Transaction, error)
}

// QueryOptions filters and pages transaction queries
type QueryOptions struct {
	TransactionType *TransactionType
	FromTurn        int
	Limit           int
	Offset          int
}

// DefaultQueryOptions returns default query options
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{Limit: 50}
}
