package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/testutil"
)

func TestNew_DefaultLoadout(t *testing.T) {
	g := testutil.NewGalaxy(t)

	s, err := ship.New(1, "Kestrel", ship.ControllerAI, ship.Miner, testutil.Interstellar(t, g, 1, 1))

	require.NoError(t, err)
	assert.Equal(t, ship.StartingCredits, s.Credits())
	assert.True(t, s.Inventory().Fuel().IsFull())
	assert.True(t, s.Inventory().Ore().IsEmpty())
	assert.True(t, s.IsAlive())
	assert.False(t, s.IsPlayer())
}

func TestNew_Validation(t *testing.T) {
	g := testutil.NewGalaxy(t)
	loc := testutil.Interstellar(t, g, 1, 1)

	_, err := ship.New(0, "Kestrel", ship.ControllerAI, ship.Miner, loc)
	assert.Error(t, err)
	_, err = ship.New(1, "", ship.ControllerAI, ship.Miner, loc)
	assert.Error(t, err)
	_, err = ship.New(1, "Kestrel", "robot", ship.Miner, loc)
	assert.Error(t, err)
	_, err = ship.New(1, "Kestrel", ship.ControllerAI, "pirate", loc)
	assert.Error(t, err)
	_, err = ship.New(1, "Kestrel", ship.ControllerAI, ship.Miner, nil)
	assert.Error(t, err)
}

func TestChangeCredits_ClampsAtZero(t *testing.T) {
	g := testutil.NewGalaxy(t)
	s, err := ship.New(1, "Kestrel", ship.ControllerAI, ship.Trader, testutil.Interstellar(t, g, 1, 1))
	require.NoError(t, err)

	applied := s.ChangeCredits(-500)

	assert.Equal(t, -ship.StartingCredits, applied)
	assert.Equal(t, 0, s.Credits())
	assert.False(t, s.CanAfford(1))
}

func TestMarkDestroyed_SwitchesModulesOff(t *testing.T) {
	g := testutil.NewGalaxy(t)
	s, err := ship.New(1, "Kestrel", ship.ControllerAI, ship.Fighter, testutil.Interstellar(t, g, 1, 1))
	require.NoError(t, err)
	testutil.Arm(t, s, resource.Shield)
	s.Inventory().FindModule(resource.Shield).SetActive(true)
	s.SetDestination(testutil.Interstellar(t, g, 2, 2))
	require.True(t, s.IsShielded())

	s.MarkDestroyed()

	assert.True(t, s.IsDestroyed())
	assert.False(t, s.IsShielded())
	_, ok := s.Destination()
	assert.False(t, ok)
}

func TestExportReconstruct_RoundTrip(t *testing.T) {
	// Arrange
	g := testutil.NewGalaxy(t)
	original, err := ship.New(7, "Corsair", ship.ControllerAI, ship.Fighter,
		testutil.Surface(t, g, testutil.SolCoord, testutil.TerraOrbit, "Highlands"))
	require.NoError(t, err)
	original.SetFaction(testutil.Federation)
	original.ChangeCredits(35)
	require.NoError(t, original.Inventory().Ore().Expand(2))
	testutil.SetAmount(original, resource.Ore, 17)
	testutil.SetAmount(original, resource.Fuel, 4)
	testutil.Arm(t, original, resource.Laser, resource.Cloak)
	original.Inventory().FindModule(resource.Laser).Hit()
	original.Reputation().Set(testutil.Federation, 12)
	original.Reputation().Set(testutil.Syndicate, -3)

	// Act
	bag := original.Export()
	restored, err := ship.Reconstruct(g, bag)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, bag, restored.Export())
	assert.Equal(t, shared.ShipID(7), restored.ID())
	assert.Equal(t, ship.Fighter, restored.Specialization())
	assert.Equal(t, 235, restored.Credits())
	assert.Equal(t, 17, restored.Inventory().Ore().Amount())
	assert.Equal(t, 20, restored.Inventory().Ore().Capacity())
	assert.True(t, restored.Inventory().FindModule(resource.Laser).IsDamaged())
	assert.Equal(t, -3, restored.Reputation().Get(testutil.Syndicate))
	assert.True(t, restored.Location().Equal(original.Location()))
}

func TestReconstruct_RejectsInvalidBags(t *testing.T) {
	g := testutil.NewGalaxy(t)
	s, err := ship.New(3, "Wisp", ship.ControllerPlayer, ship.Trader, testutil.Orbital(t, g, testutil.SolCoord, 1))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(ship.PropertyBag)
	}{
		{"missing credits", func(b ship.PropertyBag) { delete(b, ship.KeyCredits) }},
		{"negative credits", func(b ship.PropertyBag) { b[ship.KeyCredits] = "-1" }},
		{"fuel over capacity", func(b ship.PropertyBag) { b["fuel"] = "99" }},
		{"unknown module", func(b ship.PropertyBag) { b[ship.KeyModules] = "Warp Core" }},
		{"orbit outside sector", func(b ship.PropertyBag) { b["location.orbit"] = "12" }},
		{"bad reputation", func(b ship.PropertyBag) { b["rep.federation"] = "lots" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := s.Export()
			tt.mutate(bag)

			_, err := ship.Reconstruct(g, bag)

			assert.Error(t, err)
		})
	}
}
