package setup_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/adapters/universe"
	"github.com/andrescamacho/starfront-go/internal/application/common"
	fleetQueries "github.com/andrescamacho/starfront-go/internal/application/fleet/queries"
	ledgerQueries "github.com/andrescamacho/starfront-go/internal/application/ledger/queries"
	"github.com/andrescamacho/starfront-go/internal/application/setup"
	"github.com/andrescamacho/starfront-go/internal/application/turn"
	turnCommands "github.com/andrescamacho/starfront-go/internal/application/turn/commands"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
)

const tinyUniverse = `
galaxy: {id: tiny, width: 3, height: 3}
factions:
  - {id: blue, name: Blue}
sectors:
  - x: 1
    y: 1
    star: Alpha
    orbits: 3
    owner: blue
    planets:
      - {name: Ring, orbit: 2, orbit_ore: iron}
    stations:
      - {name: Depot, orbit: 3, owner: blue, stock: [Laser]}
ships:
  - name: Scout
    controller: player
    specialization: trader
    faction: blue
    location: {kind: docked, x: 1, y: 1, orbit: 3}
  - name: Digger
    location: {kind: orbital, x: 1, y: 1, orbit: 2}
`

type memoryShips struct {
	saves map[string][]ship.PropertyBag
}

func (m *memoryShips) SaveAll(_ context.Context, session string, bags []ship.PropertyBag) error {
	if m.saves == nil {
		m.saves = make(map[string][]ship.PropertyBag)
	}
	m.saves[session] = bags
	return nil
}

func (m *memoryShips) LoadAll(_ context.Context, session string) ([]ship.PropertyBag, error) {
	return m.saves[session], nil
}

func loadTiny(t *testing.T) *universe.File {
	t.Helper()
	uf, err := universe.LoadFromReader(strings.NewReader(tinyUniverse))
	require.NoError(t, err)
	return uf
}

func TestBuildWorld_FreshFromUniverse(t *testing.T) {
	// Act
	w, restored, err := setup.BuildWorld(context.Background(), loadTiny(t), 1, &memoryShips{}, "alpha")

	// Assert
	require.NoError(t, err)
	assert.False(t, restored)
	assert.Len(t, w.Ships(), 2)
}

func TestBuildWorld_RestoresSnapshot(t *testing.T) {
	// Arrange
	ctx := context.Background()
	uf := loadTiny(t)
	repo := &memoryShips{}
	w, _, err := setup.BuildWorld(ctx, uf, 1, repo, "alpha")
	require.NoError(t, err)
	scout := w.Ships()[0]
	scout.ChangeCredits(-75)
	var bags []ship.PropertyBag
	for _, s := range w.Ships()[:1] {
		bags = append(bags, s.Export())
	}
	require.NoError(t, repo.SaveAll(ctx, "alpha", bags))

	// Act
	restoredWorld, restored, err := setup.BuildWorld(ctx, uf, 1, repo, "alpha")

	// Assert
	require.NoError(t, err)
	assert.True(t, restored)
	require.Len(t, restoredWorld.Ships(), 1)
	assert.Equal(t, "Scout", restoredWorld.Ships()[0].Name())
	assert.Equal(t, ship.StartingCredits-75, restoredWorld.Ships()[0].Credits())
	assert.Equal(t, "tiny", restoredWorld.Galaxy().ID())
}

func TestRestoreShips_RejectsBadBag(t *testing.T) {
	// Arrange
	w, err := loadTiny(t).Build(1)
	require.NoError(t, err)

	// Act
	err = setup.RestoreShips(w, []ship.PropertyBag{{ship.KeyID: "9", ship.KeyName: "Broken"}})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to restore ship 9")
}

func TestHandlerRegistry_RegistersEverything(t *testing.T) {
	// Arrange
	w, err := loadTiny(t).Build(1)
	require.NoError(t, err)
	session := turn.NewSession("alpha", w)
	m := common.NewMediator()
	registry := setup.NewHandlerRegistry(session, nil, &memoryShips{}, 0)

	// Act
	require.NoError(t, registry.RegisterAll(m))

	// Assert
	resp, err := m.Send(context.Background(), &fleetQueries.ListShipsQuery{})
	require.NoError(t, err)
	assert.Len(t, resp.(*fleetQueries.ListShipsResponse).Ships, 2)

	run, err := m.Send(context.Background(), &turnCommands.RunSimulationCommand{Turns: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, run.(*turnCommands.RunSimulationResponse).TurnsRun)

	_, err = m.Send(context.Background(), &turnCommands.SaveSnapshotCommand{})
	assert.NoError(t, err)

	_, err = m.Send(context.Background(), &ledgerQueries.GetTransactionsQuery{ShipID: 1})
	assert.ErrorContains(t, err, "no handler registered", "ledger queries need a repository")
}

func TestHandlerRegistry_RejectsDoubleRegistration(t *testing.T) {
	// Arrange
	w, err := loadTiny(t).Build(1)
	require.NoError(t, err)
	registry := setup.NewHandlerRegistry(turn.NewSession("alpha", w), nil, nil, 0)
	m := common.NewMediator()
	require.NoError(t, registry.RegisterAll(m))

	// Act
	err = registry.RegisterAll(m)

	// Assert
	assert.ErrorContains(t, err, "already registered")
}
