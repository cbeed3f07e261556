package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/domain/battle"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/testutil"
)

func newBattle(t *testing.T) *battle.Battle {
	t.Helper()
	g := testutil.NewGalaxy(t)
	b, err := battle.New("b-1", 1, testutil.Orbital(t, g, testutil.SolCoord, 4), 1, 2)
	require.NoError(t, err)
	return b
}

func TestNew_RejectsSelfBattle(t *testing.T) {
	g := testutil.NewGalaxy(t)

	_, err := battle.New("b-1", 1, testutil.Orbital(t, g, testutil.SolCoord, 4), 3, 3)

	assert.Error(t, err)
}

func TestBattle_RostersAndSides(t *testing.T) {
	// Arrange
	b := newBattle(t)

	// Act
	require.NoError(t, b.Join(3, battle.Defenders))
	err := b.Join(1, battle.Defenders)

	// Assert
	assert.True(t, shared.IsRejection(err), "a ship fights on one side only")
	assert.Equal(t, []shared.ShipID{1}, b.Attackers())
	assert.Equal(t, []shared.ShipID{2, 3}, b.Defenders())
	assert.Equal(t, []shared.ShipID{1, 2, 3}, b.Participants())
	assert.Equal(t, []shared.ShipID{2, 3}, b.Enemies(1))
	assert.Equal(t, []shared.ShipID{1}, b.Enemies(3))
	side, ok := b.SideOf(3)
	assert.True(t, ok)
	assert.Equal(t, battle.Attackers, side.Opposite())
	assert.Equal(t, 3, b.Size())
}

func TestBattle_IsOverWhenASideEmpties(t *testing.T) {
	b := newBattle(t)
	assert.False(t, b.IsOver())

	assert.True(t, b.Remove(2))
	assert.False(t, b.Remove(2))

	assert.True(t, b.IsOver())
}

func TestBattle_TurnStateIsClearedEachRound(t *testing.T) {
	b := newBattle(t)
	require.NoError(t, b.Join(3, battle.Attackers))
	b.DeclareFlee(2)
	b.DeclareFlee(2)
	b.DeclarePursuit(3, 2)
	b.DeclarePursuit(1, 2)
	b.DeclareSurrender(1)

	assert.Equal(t, []shared.ShipID{2}, b.Fleeing())
	assert.Equal(t, []shared.ShipID{1, 3}, b.PursuersOf(2), "pursuers come back in roster order")
	assert.True(t, b.HasActed(3))
	assert.True(t, b.HasSurrendered(1))

	b.ClearTurnState()

	assert.False(t, b.IsFleeing(2))
	assert.Empty(t, b.PursuersOf(2))
	assert.False(t, b.HasActed(1))
}

func TestBattle_CasualtiesKeepDestroyerCredit(t *testing.T) {
	b := newBattle(t)

	b.CreditDestroyer(2, 1)
	b.RecordCasualty(2)
	b.RecordCasualty(2)

	assert.Equal(t, []shared.ShipID{2}, b.Casualties())
	assert.Empty(t, b.Defenders())
	d, ok := b.DestroyerOf(2)
	assert.True(t, ok)
	assert.Equal(t, shared.ShipID(1), d)
}

func TestBattle_BeginRoundCounts(t *testing.T) {
	b := newBattle(t)

	b.BeginRound()
	round := b.BeginRound()

	assert.Equal(t, 2, round)
	assert.Equal(t, 2, b.Rounds())
}
