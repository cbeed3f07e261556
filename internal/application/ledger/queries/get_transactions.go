package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// GetTransactionsQuery represents a query to retrieve a ship's transactions
type GetTransactionsQuery struct {
	ShipID          shared.ShipID
	TransactionType *string
	FromTurn        int
	Limit           int
	Offset          int
}

// GetTransactionsResponse represents the result of the query
type GetTransactionsResponse struct {
	Transactions []*TransactionDTO
	Net          int
}

// TransactionDTO represents a transaction data transfer object
type TransactionDTO struct {
	ID            string
	ShipID        int
	Turn          int
	Timestamp     time.Time
	Type          string
	Category      string
	Amount        int
	BalanceBefore int
	BalanceAfter  int
	Description   string
	Counterparty  string
}

// GetTransactionsHandler handles the GetTransactions query
type GetTransactionsHandler struct {
	transactionRepo ledger.TransactionRepository
}

// NewGetTransactionsHandler creates a new GetTransactionsHandler
func NewGetTransactionsHandler(transactionRepo ledger.TransactionRepository) *GetTransactionsHandler {
	return &GetTransactionsHandler{transactionRepo: transactionRepo}
}

// Handle executes the GetTransactions query
func (h *GetTransactionsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetTransactionsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetTransactionsQuery")
	}

	opts := ledger.DefaultQueryOptions()
	if query.Limit > 0 {
		opts.Limit = query.Limit
	}
	opts.Offset = query.Offset
	opts.FromTurn = query.FromTurn
	if query.TransactionType != nil {
		tt, err := ledger.ParseTransactionType(*query.TransactionType)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction type: %w", err)
		}
		opts.TransactionType = &tt
	}

	txs, err := h.transactionRepo.FindByShip(ctx, query.ShipID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	resp := &GetTransactionsResponse{Transactions: make([]*TransactionDTO, 0, len(txs))}
	for _, tx := range txs {
		resp.Net += tx.Amount()
		resp.Transactions = append(resp.Transactions, &TransactionDTO{
			ID:            tx.ID().String(),
			ShipID:        int(tx.ShipID()),
			Turn:          tx.Turn(),
			Timestamp:     tx.Timestamp(),
			Type:          tx.TransactionType().String(),
			Category:      string(tx.Category()),
			Amount:        tx.Amount(),
			BalanceBefore: tx.BalanceBefore(),
			BalanceAfter:  tx.BalanceAfter(),
			Description:   tx.Description(),
			Counterparty:  tx.Counterparty(),
		})
	}
	return resp, nil
}
