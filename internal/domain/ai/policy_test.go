package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/domain/ai"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/testutil"
)

func TestMustRefuel(t *testing.T) {
	tests := []struct {
		name   string
		fuel   int
		ore    int
		energy int
		want   bool
	}{
		{"well supplied", 20, 0, 20, false},
		{"exactly a quarter", 5, 0, 20, false},
		{"under a quarter", 4, 0, 20, true},
		{"hold full", 20, 10, 20, true},
		{"no energy", 20, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.NewWorld(t, nil)
			s := testutil.AddShip(t, w, "Miner", testutil.Interstellar(t, w.Galaxy(), 1, 1))
			testutil.SetAmount(s, resource.Fuel, tt.fuel)
			testutil.SetAmount(s, resource.Ore, tt.ore)
			testutil.SetAmount(s, resource.Energy, tt.energy)

			assert.Equal(t, tt.want, ai.MustRefuel(s))
		})
	}
}

func TestWillAttack(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Hawk", testutil.Interstellar(t, w.Galaxy(), 1, 1))
	assert.False(t, ai.WillAttack(s), "unarmed")

	testutil.Arm(t, s, resource.Laser)
	assert.True(t, ai.WillAttack(s))

	testutil.SetAmount(s, resource.Hull, 5)
	assert.True(t, ai.WillAttack(s), "half hull is enough")

	testutil.SetAmount(s, resource.Hull, 4)
	assert.False(t, ai.WillAttack(s))
}

func TestWillClaim(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Settler", testutil.Surface(t, w.Galaxy(), testutil.VegaCoord, 2, "Crater"))
	testutil.Arm(t, s, resource.Laser)

	// Act / Assert
	assert.False(t, ai.WillClaim(w, s), "no faction")

	s.SetFaction(testutil.Federation)
	assert.True(t, ai.WillClaim(w, s))

	s.ChangeCredits(-60)
	assert.False(t, ai.WillClaim(w, s), "the reserve must survive the claim")

	s.ChangeCredits(60)
	s.SetFaction(testutil.Syndicate)
	assert.False(t, ai.WillClaim(w, s), "already owned by its own faction")
}

func TestWillClaim_NeedsStrength(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Settler", testutil.Surface(t, w.Galaxy(), testutil.VegaCoord, 2, "Crater"))
	s.SetFaction(testutil.Federation)
	testutil.SetAmount(s, resource.Hull, 9)

	assert.False(t, ai.WillClaim(w, s))
}

func TestWillConvert(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	here := testutil.Interstellar(t, w.Galaxy(), 1, 1)
	s := testutil.AddShip(t, w, "Drifter", here)
	s.Reputation().Set(testutil.Syndicate, 10)

	// Act / Assert
	assert.True(t, ai.WillConvert(w, s, testutil.Syndicate), "unaffiliated ships join any faction that will have them")
	assert.False(t, ai.WillConvert(w, s, testutil.Federation), "standing too low")

	s.SetFaction(testutil.Federation)
	assert.False(t, ai.WillConvert(w, s, testutil.Syndicate), "syndicate is weaker")

	strong := testutil.AddShip(t, w, "Enforcer", here)
	strong.SetFaction(testutil.Syndicate)
	testutil.Arm(t, strong, resource.PulseBeam)
	assert.True(t, ai.WillConvert(w, s, testutil.Syndicate))
	assert.False(t, ai.WillConvert(w, s, testutil.Federation), "already a member")
}

func TestFactionPower(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	here := testutil.Interstellar(t, w.Galaxy(), 1, 1)
	a := testutil.AddShip(t, w, "A", here)
	b := testutil.AddShip(t, w, "B", here)
	a.SetFaction(testutil.Federation)
	b.SetFaction(testutil.Federation)
	testutil.Arm(t, b, resource.TorpedoBay)

	assert.Equal(t, 23, ai.FactionPower(w, testutil.Federation))
	assert.Zero(t, ai.FactionPower(w, testutil.Syndicate))

	w.Destroy(b, "gone")
	assert.Equal(t, 10, ai.FactionPower(w, testutil.Federation))
}

func TestScarcestExpander(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Miner", testutil.Interstellar(t, w.Galaxy(), 1, 1))

	k, ok := ai.ScarcestExpander(s)
	assert.True(t, ok)
	assert.Equal(t, resource.Fuel, k)

	require.NoError(t, s.Inventory().Fuel().Expand(1))
	k, ok = ai.ScarcestExpander(s)
	assert.True(t, ok)
	assert.Equal(t, resource.Energy, k)
}
