package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/starfront-go/internal/adapters/metrics"
	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/application/turn"
	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// AdvanceTurnCommand processes exactly one turn
type AdvanceTurnCommand struct{}

// AdvanceTurnResponse carries the processed turn
type AdvanceTurnResponse struct {
	Report   turn.Report
	Snapshot bool
}

// AdvanceTurnHandler runs the turn processor, then persists the turn's ledger
// entries and, every snapshotEvery turns, every ship's property bag
type AdvanceTurnHandler struct {
	session         *turn.Session
	transactionRepo ledger.TransactionRepository
	shipRepo        ship.Repository
	snapshotEvery   int
}

// NewAdvanceTurnHandler creates a new AdvanceTurnHandler. Either repository
// may be nil to skip that persistence.
func NewAdvanceTurnHandler(
	session *turn.Session,
	transactionRepo ledger.TransactionRepository,
	shipRepo ship.Repository,
	snapshotEvery int,
) *AdvanceTurnHandler {
	return &AdvanceTurnHandler{
		session:         session,
		transactionRepo: transactionRepo,
		shipRepo:        shipRepo,
		snapshotEvery:   snapshotEvery,
	}
}

// Handle executes the AdvanceTurn command
func (h *AdvanceTurnHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*AdvanceTurnCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *AdvanceTurnCommand")
	}

	start := time.Now()
	rep := h.session.ProcessTurn(ctx)

	if err := h.recordTransactions(ctx, rep.Transactions); err != nil {
		return nil, err
	}

	resp := &AdvanceTurnResponse{Report: rep}
	if h.shipRepo != nil && h.snapshotEvery > 0 && (rep.Turn+1)%h.snapshotEvery == 0 {
		if _, err := saveSnapshot(ctx, h.session, h.shipRepo); err != nil {
			return nil, err
		}
		resp.Snapshot = true
	}

	_ = h.session.View(func(w *world.World) error {
		metrics.RecordTurn(time.Since(start), len(w.LivingShips()), len(w.Battles()))
		return nil
	})
	return resp, nil
}

func (h *AdvanceTurnHandler) recordTransactions(ctx context.Context, txs []*ledger.Transaction) error {
	for _, tx := range txs {
		metrics.RecordTransaction(tx.TransactionType().String(), string(tx.Category()), tx.Amount())
		if h.transactionRepo == nil {
			continue
		}
		if err := h.transactionRepo.Create(ctx, tx); err != nil {
			return fmt.Errorf("failed to persist transaction: %w", err)
		}
	}
	return nil
}
