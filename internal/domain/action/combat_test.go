package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/domain/action"
	"github.com/andrescamacho/starfront-go/internal/domain/battle"
	"github.com/andrescamacho/starfront-go/internal/domain/faction"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
	"github.com/andrescamacho/starfront-go/internal/testutil"
)

// duel puts two armed ships on orbit 4 of Sol and opens a battle between them
func duel(t *testing.T, w *world.World) (*ship.Ship, *ship.Ship, *battle.Battle) {
	t.Helper()
	orbit := testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, 4)
	a := testutil.AddShipAs(t, w, "Hawk", ship.ControllerAI, ship.Fighter, orbit)
	b := testutil.AddShipAs(t, w, "Dove", ship.ControllerAI, ship.Trader, orbit)
	testutil.Arm(t, a, resource.Laser, resource.PulseBeam)
	testutil.Arm(t, b, resource.Shield)
	require.NoError(t, execute(t, w, a, action.Engage{Target: b.ID()}))
	bt, ok := w.BattleOf(a)
	require.True(t, ok)
	return a, b, bt
}

func TestEngage_OpensBattleAndCostsStanding(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	orbit := testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, 4)
	a := testutil.AddShip(t, w, "Hawk", orbit)
	b := testutil.AddShip(t, w, "Dove", orbit)
	b.SetFaction(testutil.Syndicate)

	// Act
	require.NoError(t, execute(t, w, a, action.Engage{Target: b.ID()}))

	// Assert
	bt, ok := w.BattleOf(a)
	require.True(t, ok)
	assert.Equal(t, []shared.ShipID{a.ID()}, bt.Attackers())
	assert.Equal(t, []shared.ShipID{b.ID()}, bt.Defenders())
	_, inBattle := b.InBattle()
	assert.True(t, inBattle)
	assert.Equal(t, 19, a.Inventory().Energy().Amount())
	assert.Equal(t, -faction.AggressionPenalty, a.Reputation().Get(testutil.Syndicate))
}

func TestEngage_JoinsExistingBattleOnOppositeSide(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	a, b, bt := duel(t, w)
	ally := testutil.AddShip(t, w, "Ally", testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, 4))

	require.NoError(t, execute(t, w, ally, action.Engage{Target: a.ID()}))

	side, ok := bt.SideOf(ally.ID())
	require.True(t, ok)
	assert.Equal(t, battle.Defenders, side)
	assert.Contains(t, bt.Enemies(a.ID()), ally.ID())
	assert.NotContains(t, bt.Enemies(b.ID()), ally.ID())
}

func TestEngage_Rejections(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	g := w.Galaxy()
	orbit := testutil.Orbital(t, g, testutil.SolCoord, 4)
	hunter := testutil.AddShip(t, w, "Hunter", orbit)
	far := testutil.AddShip(t, w, "Far", testutil.Orbital(t, g, testutil.SolCoord, 6))
	ghost := testutil.AddShip(t, w, "Ghost", orbit)
	testutil.Arm(t, ghost, resource.Cloak)
	ghost.Inventory().FindModule(resource.Cloak).SetActive(true)
	lander := testutil.AddShip(t, w, "Lander", testutil.Surface(t, g, testutil.SolCoord, testutil.TerraOrbit, "Plains"))

	assert.EqualError(t, execute(t, w, hunter, action.Engage{Target: hunter.ID()}), "cannot engage yourself")
	assert.EqualError(t, execute(t, w, hunter, action.Engage{Target: far.ID()}), "Far is not on this orbit")
	assert.EqualError(t, execute(t, w, hunter, action.Engage{Target: ghost.ID()}), "Ghost cannot be targeted while cloaked")
	assert.EqualError(t, execute(t, w, hunter, action.Engage{Target: 99}), "no such target ship-99")
	assert.ErrorContains(t, execute(t, w, hunter, action.Engage{Target: lander.ID()}), "Lander is out of reach")
}

func TestFire_ShieldHalvesDamageRoundingUp(t *testing.T) {
	// Arrange: rolls of 9 keep the shield module intact
	w := testutil.NewWorld(t, shared.NewScriptedRandom(9, 9))
	a, b, _ := duel(t, w)
	require.NoError(t, execute(t, w, b, action.ActivateModule{Effect: resource.EffectShield}))

	// Act
	require.NoError(t, execute(t, w, a, action.Fire{Target: b.ID(), Class: resource.WeaponBeam}))
	require.NoError(t, execute(t, w, a, action.Fire{Target: b.ID(), Class: resource.WeaponEnergy}))

	// Assert: beam 4 -> 2, laser 1 -> 1
	assert.Equal(t, 7, b.Inventory().Hull().Amount())
	assert.Equal(t, 20-1-3-1, a.Inventory().Energy().Amount())
	assert.Equal(t, 1, action.ShieldedDamage(b, 1))
	assert.Equal(t, 3, action.ShieldedDamage(b, 5))
	assert.Equal(t, 5, action.ShieldedDamage(a, 5))
}

func TestFire_ModuleDamageRollUsesRawDamage(t *testing.T) {
	// Arrange: a roll of 3 passes 4 in 10 but would fail the shielded 2 in 10
	w := testutil.NewWorld(t, shared.NewScriptedRandom(3))
	a, b, _ := duel(t, w)
	require.NoError(t, execute(t, w, b, action.ActivateModule{Effect: resource.EffectShield}))

	// Act
	require.NoError(t, execute(t, w, a, action.Fire{Target: b.ID(), Class: resource.WeaponBeam}))

	// Assert
	shield := b.Inventory().FindDamaged(resource.Shield)
	require.NotNil(t, shield)
	assert.False(t, shield.IsActive())
	assert.Equal(t, 8, b.Inventory().Hull().Amount())
}

func TestFire_KillingBlowIsCredited(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	a, b, bt := duel(t, w)
	testutil.SetAmount(b, resource.Hull, 3)

	require.NoError(t, execute(t, w, a, action.Fire{Target: b.ID(), Class: resource.WeaponBeam}))

	assert.True(t, b.IsDestroyed())
	destroyer, ok := bt.DestroyerOf(b.ID())
	assert.True(t, ok)
	assert.Equal(t, a.ID(), destroyer)
	assert.EqualError(t, execute(t, w, a, action.Fire{Target: b.ID(), Class: resource.WeaponEnergy}), "no such target "+b.ID().String())
}

func TestFire_Rejections(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	a, b, _ := duel(t, w)
	outsider := testutil.AddShip(t, w, "Outsider", testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, 4))

	assert.EqualError(t, execute(t, w, b, action.Fire{Target: a.ID(), Class: resource.WeaponEnergy}), "no working energy weapon installed")
	assert.EqualError(t, execute(t, w, a, action.Fire{Target: b.ID(), Class: resource.WeaponAmmunition}), "no working ammunition weapon installed")
	assert.EqualError(t, execute(t, w, outsider, action.Fire{Target: a.ID(), Class: resource.WeaponEnergy}), "cannot fire: not in battle")

	testutil.SetAmount(a, resource.Energy, 2)
	assert.EqualError(t, execute(t, w, a, action.Fire{Target: b.ID(), Class: resource.WeaponBeam}), "insufficient energy: have 2, need 3")
}

func TestFleeAndPursue(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	a, b, bt := duel(t, w)

	assert.EqualError(t, execute(t, w, a, action.Pursue{Target: b.ID()}), "Dove is not fleeing")

	// Act
	require.NoError(t, execute(t, w, b, action.Flee{}))
	require.NoError(t, execute(t, w, a, action.Pursue{Target: b.ID()}))

	// Assert
	assert.True(t, bt.IsFleeing(b.ID()))
	assert.Equal(t, []shared.ShipID{a.ID()}, bt.PursuersOf(b.ID()))
	assert.Equal(t, 18, b.Inventory().Fuel().Amount())
	assert.Equal(t, 18, a.Inventory().Fuel().Amount())
	assert.EqualError(t, execute(t, w, b, action.Flee{}), "already fleeing")
	assert.EqualError(t, execute(t, w, b, action.Pursue{Target: a.ID()}), "Hawk is not fleeing")
}

func TestSurrender_PaysTributeAndLeaves(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	a, b, bt := duel(t, w)

	// Act
	require.NoError(t, execute(t, w, b, action.Surrender{}))

	// Assert
	assert.Equal(t, 150, b.Credits())
	assert.Equal(t, 250, a.Credits())
	_, inBattle := b.InBattle()
	assert.False(t, inBattle)
	assert.True(t, b.Location().Equal(testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, 4)))
	assert.Empty(t, bt.Defenders())
	assert.True(t, bt.IsOver())
}

func TestCloakCannotBeActivatedInBattle(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	_, b, _ := duel(t, w)
	testutil.Arm(t, b, resource.Cloak)

	err := execute(t, w, b, action.ActivateModule{Effect: resource.EffectCloak})

	assert.EqualError(t, err, "cannot cloak while in battle")
}

func TestBattleBlocksPeacefulActions(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	a, _, _ := duel(t, w)
	a.Reputation().Set(testutil.Federation, 20)

	assert.EqualError(t, execute(t, w, a, action.Distress{}), "cannot call for rescue while in battle")
	assert.EqualError(t, execute(t, w, a, action.EscapeSector{}), "cannot escape while in battle")
	assert.EqualError(t, execute(t, w, a, action.Mine{}), "cannot mine while in battle")
}
