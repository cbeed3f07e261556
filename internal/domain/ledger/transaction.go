package ledger

import (
	"fmt"
	"time"

	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Transaction is an immutable record of one credit movement on a ship's
// balance
type Transaction struct {
	id              TransactionID
	shipID          shared.ShipID
	turn            int
	timestamp       time.Time
	transactionType TransactionType
	amount          int // Positive for income, negative for expenses
	balanceBefore   int
	balanceAfter    int
	description     string
	counterparty    string
}

// NewTransaction creates a new transaction with validation
func NewTransaction(
	shipID shared.ShipID,
	turn int,
	timestamp time.Time,
	transactionType TransactionType,
	amount int,
	balanceBefore int,
	description string,
	counterparty string,
) (*Transaction, error) {
	if shipID.IsZero() {
		return nil, &ErrInvalidTransaction{Field: "ship_id", Reason: "ship_id cannot be zero"}
	}
	if !transactionType.IsValid() {
		return nil, &ErrInvalidTransaction{
			Field:  "transaction_type",
			Reason: fmt.Sprintf("invalid transaction type: %s", transactionType),
		}
	}

	t := &Transaction{
		id:              NewTransactionID(),
		shipID:          shipID,
		turn:            turn,
		timestamp:       timestamp,
		transactionType: transactionType,
		amount:          amount,
		balanceBefore:   balanceBefore,
		balanceAfter:    balanceBefore + amount,
		description:     description,
		counterparty:    counterparty,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReconstructTransaction rebuilds a transaction from persistence
func ReconstructTransaction(
	id TransactionID,
	shipID shared.ShipID,
	turn int,
	timestamp time.Time,
	transactionType TransactionType,
	amount int,
	balanceBefore int,
	balanceAfter int,
	description string,
	counterparty string,
) *Transaction {
	return &Transaction{
		id:              id,
		shipID:          shipID,
		turn:            turn,
		timestamp:       timestamp,
		transactionType: transactionType,
		amount:          amount,
		balanceBefore:   balanceBefore,
		balanceAfter:    balanceAfter,
		description:     description,
		counterparty:    counterparty,
	}
}

// Validate checks that the transaction satisfies all invariants
func (t *Transaction) Validate() error {
	if t.amount == 0 {
		return &ErrInvalidTransaction{Field: "amount", Reason: "amount cannot be zero"}
	}
	if t.balanceAfter != t.balanceBefore+t.amount {
		return &ErrBalanceInvariantViolation{
			BalanceBefore: t.balanceBefore,
			Amount:        t.amount,
			BalanceAfter:  t.balanceAfter,
		}
	}
	if t.balanceAfter < 0 {
		return &ErrInvalidTransaction{Field: "balance_after", Reason: "balance cannot go negative"}
	}
	return nil
}

func (t *Transaction) ID() TransactionID { return t.id }
func (t *Transaction) ShipID() shared.ShipID { return t.shipID }
func (t *Transaction) Turn() int { return t.turn }
func (t *Transaction) Timestamp() time.Time { return t.timestamp }
func (t *Transaction) TransactionType() TransactionType { return t.transactionType }
func (t *Transaction) Category() Category { return t.transactionType.Category() }
func (t *Transaction) Amount() int { return t.amount }
func (t *Transaction) BalanceBefore() int { return t.balanceBefore }
func (t *Transaction) BalanceAfter() int { return t.balanceAfter }
func (t *Transaction) Description() string { return t.description }
func (t *Transaction) Counterparty() string { return t.counterparty }

// IsIncome returns true if the transaction represents income
func (t *Transaction) IsIncome() bool {
	return t.amount > 0
}

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction[%s, type=%s, amount=%d, balance=%d->%d]",
		t.id, t.transactionType, t.amount, t.balanceBefore, t.balanceAfter)
}
