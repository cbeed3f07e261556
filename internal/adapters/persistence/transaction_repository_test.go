package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/adapters/persistence"
	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/testutil"
)

func newTransaction(t *testing.T, ship shared.ShipID, turn int, kind ledger.TransactionType, amount, before int) *ledger.Transaction {
	t.Helper()
	tx, err := ledger.NewTransaction(ship, turn, testutil.FixedTime, kind, amount, before, "test", "Sol Station")
	require.NoError(t, err)
	return tx
}

func TestTransactionRepository_CreateAndFind(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	repo := persistence.NewGormTransactionRepository(db, "alpha")
	ctx := context.Background()
	buy := newTransaction(t, 1, 0, ledger.TransactionBuyResource, -20, 200)
	sell := newTransaction(t, 1, 3, ledger.TransactionSellResource, 45, 180)
	other := newTransaction(t, 2, 1, ledger.TransactionClaim, -50, 200)
	for _, tx := range []*ledger.Transaction{buy, sell, other} {
		require.NoError(t, repo.Create(ctx, tx))
	}

	// Act
	found, err := repo.FindByShip(ctx, 1, ledger.DefaultQueryOptions())

	// Assert
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, sell.ID(), found[0].ID())
	assert.Equal(t, buy.ID(), found[1].ID())
	assert.Equal(t, 225, found[0].BalanceAfter())
	assert.Equal(t, ledger.CategoryTrading, found[0].Category())
	assert.Equal(t, "Sol Station", found[0].Counterparty())
	assert.NoError(t, found[0].Validate())
}

func TestTransactionRepository_Filters(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	repo := persistence.NewGormTransactionRepository(db, "alpha")
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newTransaction(t, 1, 0, ledger.TransactionBuyResource, -20, 200)))
	require.NoError(t, repo.Create(ctx, newTransaction(t, 1, 2, ledger.TransactionRepair, -10, 180)))
	require.NoError(t, repo.Create(ctx, newTransaction(t, 1, 4, ledger.TransactionBuyResource, -5, 170)))
	buy := ledger.TransactionBuyResource

	// Act
	byType, err := repo.FindByShip(ctx, 1, ledger.QueryOptions{TransactionType: &buy})
	require.NoError(t, err)
	fromTurn, err := repo.FindByShip(ctx, 1, ledger.QueryOptions{FromTurn: 2})
	require.NoError(t, err)
	paged, err := repo.FindByShip(ctx, 1, ledger.QueryOptions{Limit: 1, Offset: 1})
	require.NoError(t, err)
	count, err := repo.CountByShip(ctx, 1, ledger.QueryOptions{TransactionType: &buy})
	require.NoError(t, err)

	// Assert
	assert.Len(t, byType, 2)
	assert.Len(t, fromTurn, 2)
	require.Len(t, paged, 1)
	assert.Equal(t, 2, paged[0].Turn())
	assert.Equal(t, 2, count)
}

func TestTransactionRepository_ScopedBySession(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	alpha := persistence.NewGormTransactionRepository(db, "alpha")
	beta := persistence.NewGormTransactionRepository(db, "beta")
	ctx := context.Background()
	require.NoError(t, alpha.Create(ctx, newTransaction(t, 1, 0, ledger.TransactionSalvage, 30, 0)))

	// Act
	found, err := beta.FindByShip(ctx, 1, ledger.DefaultQueryOptions())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, found)
}
