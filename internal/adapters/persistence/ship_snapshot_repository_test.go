package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/adapters/persistence"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/testutil"
)

func TestShipSnapshotRepository_SaveAndLoad(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	repo := persistence.NewGormShipSnapshotRepository(db)
	w := testutil.NewWorld(t, nil)
	g := w.Galaxy()
	player := testutil.AddPlayer(t, w, testutil.Docked(t, g, testutil.SolCoord, testutil.StationOrbit))
	miner := testutil.AddShip(t, w, "Prospector", testutil.Orbital(t, g, testutil.SolCoord, testutil.BeltOrbit))
	testutil.Arm(t, miner, resource.Laser)
	testutil.SetAmount(miner, resource.Fuel, 3)

	// Act
	err := repo.SaveAll(context.Background(), "alpha", []ship.PropertyBag{player.Export(), miner.Export()})
	require.NoError(t, err)
	bags, err := repo.LoadAll(context.Background(), "alpha")

	// Assert
	require.NoError(t, err)
	require.Len(t, bags, 2)
	assert.Equal(t, "Player", bags[0][ship.KeyName])
	assert.Equal(t, "Prospector", bags[1][ship.KeyName])

	restored, err := ship.Reconstruct(g, bags[1])
	require.NoError(t, err)
	assert.Equal(t, miner.ID(), restored.ID())
	assert.Equal(t, 3, restored.Inventory().Get(resource.Fuel).Amount())
	assert.True(t, restored.Location().Equal(miner.Location()))
	assert.Equal(t, 1, restored.Inventory().ModuleCount())
}

func TestShipSnapshotRepository_SaveReplacesSession(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	repo := persistence.NewGormShipSnapshotRepository(db)
	w := testutil.NewWorld(t, nil)
	g := w.Galaxy()
	a := testutil.AddShip(t, w, "Alpha", testutil.Orbital(t, g, testutil.SolCoord, 1))
	b := testutil.AddShip(t, w, "Beta", testutil.Orbital(t, g, testutil.SolCoord, 1))
	ctx := context.Background()
	require.NoError(t, repo.SaveAll(ctx, "alpha", []ship.PropertyBag{a.Export(), b.Export()}))
	require.NoError(t, repo.SaveAll(ctx, "beta", []ship.PropertyBag{b.Export()}))

	// Act
	require.NoError(t, repo.SaveAll(ctx, "alpha", []ship.PropertyBag{a.Export()}))

	// Assert
	alpha, err := repo.LoadAll(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, alpha, 1)
	assert.Equal(t, "Alpha", alpha[0][ship.KeyName])

	beta, err := repo.LoadAll(ctx, "beta")
	require.NoError(t, err)
	assert.Len(t, beta, 1)

	sessions, err := repo.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, sessions)
}

func TestShipSnapshotRepository_UnknownSessionIsEmpty(t *testing.T) {
	// Arrange
	repo := persistence.NewGormShipSnapshotRepository(newTestDB(t))

	// Act
	bags, err := repo.LoadAll(context.Background(), "missing")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, bags)
}

func TestShipSnapshotRepository_RejectsBagWithoutID(t *testing.T) {
	// Arrange
	repo := persistence.NewGormShipSnapshotRepository(newTestDB(t))

	// Act
	err := repo.SaveAll(context.Background(), "alpha", []ship.PropertyBag{{ship.KeyName: "Ghost"}})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ship id")
}
