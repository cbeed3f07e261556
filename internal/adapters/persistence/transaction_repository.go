package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// GormTransactionRepository implements ledger.TransactionRepository using
// GORM. Every repository is scoped to one simulation session.
type GormTransactionRepository struct {
	db      *gorm.DB
	session string
}

// NewGormTransactionRepository creates a new GORM transaction repository
func NewGormTransactionRepository(db *gorm.DB, session string) *GormTransactionRepository {
	return &GormTransactionRepository{db: db, session: session}
}

// Create persists a new transaction
func (r *GormTransactionRepository) Create(ctx context.Context, transaction *ledger.Transaction) error {
	model := r.transactionToModel(transaction)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to create transaction: %w", result.Error)
	}

	return nil
}

// FindByShip retrieves a ship's transactions, latest turn first
func (r *GormTransactionRepository) FindByShip(ctx context.Context, shipID shared.ShipID, opts ledger.QueryOptions) ([]*ledger.Transaction, error) {
	query := r.db.WithContext(ctx).Where("session = ? AND ship_id = ?", r.session, int(shipID))

	query = r.applyFilters(query, opts)
	query = query.Order("turn DESC").Order("timestamp DESC")

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var models []TransactionModel
	result := query.Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", result.Error)
	}

	transactions := make([]*ledger.Transaction, len(models))
	for i := range models {
		tx, err := r.modelToTransaction(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert transaction model: %w", err)
		}
		transactions[i] = tx
	}

	return transactions, nil
}

// CountByShip returns the count of transactions matching the criteria
func (r *GormTransactionRepository) CountByShip(ctx context.Context, shipID shared.ShipID, opts ledger.QueryOptions) (int, error) {
	query := r.db.WithContext(ctx).Model(&TransactionModel{}).Where("session = ? AND ship_id = ?", r.session, int(shipID))
	query = r.applyFilters(query, opts)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return int(count), nil
}

func (r *GormTransactionRepository) applyFilters(query *gorm.DB, opts ledger.QueryOptions) *gorm.DB {
	if opts.TransactionType != nil {
		query = query.Where("transaction_type = ?", opts.TransactionType.String())
	}
	if opts.FromTurn > 0 {
		query = query.Where("turn >= ?", opts.FromTurn)
	}
	return query
}

func (r *GormTransactionRepository) modelToTransaction(model *TransactionModel) (*ledger.Transaction, error) {
	id, err := ledger.ParseTransactionID(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction ID in database: %w", err)
	}

	transactionType, err := ledger.ParseTransactionType(model.TransactionType)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction type in database: %w", err)
	}

	return ledger.ReconstructTransaction(
		id,
		shared.ShipID(model.ShipID),
		model.Turn,
		model.Timestamp,
		transactionType,
		model.Amount,
		model.BalanceBefore,
		model.BalanceAfter,
		model.Description,
		model.Counterparty,
	), nil
}

func (r *GormTransactionRepository) transactionToModel(tx *ledger.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              tx.ID().String(),
		Session:         r.session,
		ShipID:          int(tx.ShipID()),
		Turn:            tx.Turn(),
		Timestamp:       tx.Timestamp(),
		TransactionType: tx.TransactionType().String(),
		Category:        string(tx.Category()),
		Amount:          tx.Amount(),
		BalanceBefore:   tx.BalanceBefore(),
		BalanceAfter:    tx.BalanceAfter(),
		Description:     tx.Description(),
		Counterparty:    tx.Counterparty(),
	}
}
