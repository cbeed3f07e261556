package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/domain/action"
	"github.com/andrescamacho/starfront-go/internal/domain/faction"
	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
	"github.com/andrescamacho/starfront-go/internal/testutil"
)

// execute checks that CanExecute and Execute agree, and that a rejected
// action leaves the ship untouched
func execute(t *testing.T, w *world.World, s *ship.Ship, a action.Action) error {
	t.Helper()
	before := s.Export()
	canErr := a.CanExecute(w, s)
	err := a.Execute(w, s)
	if canErr != nil {
		require.Error(t, err)
		assert.Equal(t, canErr.Error(), err.Error())
		assert.True(t, shared.IsRejection(err), "%T is not a rejection", err)
		assert.Equal(t, before, s.Export(), "rejected %s mutated the ship", a.Name())
		return err
	}
	require.NoError(t, err)
	return nil
}

func TestMine_WithoutEnergyIsRejected(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Digger", testutil.Surface(t, w.Galaxy(), testutil.SolCoord, testutil.TerraOrbit, "Highlands"))
	testutil.SetAmount(s, resource.Energy, 0)

	// Act
	err := execute(t, w, s, action.Mine{})

	// Assert
	require.Error(t, err)
	assert.Equal(t, "insufficient energy: have 0, need 1", err.Error())
	assert.Equal(t, 0, s.Inventory().Ore().Amount())
	var shortfall *shared.InsufficientError
	require.ErrorAs(t, err, &shortfall)
	assert.Equal(t, 1, shortfall.Required)
}

func TestMine_SurfaceYieldsDensity(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Digger", testutil.Surface(t, w.Galaxy(), testutil.SolCoord, testutil.TerraOrbit, "Ridge"))

	require.NoError(t, execute(t, w, s, action.Mine{}))

	assert.Equal(t, 2, s.Inventory().Ore().Amount(), "cobalt has density 2")
	assert.Equal(t, 19, s.Inventory().Energy().Amount())
	assert.Equal(t, 10, s.Inventory().Hull().Amount(), "surface mining is safe")
}

func TestMine_OverflowIsDiscarded(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Digger", testutil.Surface(t, w.Galaxy(), testutil.SolCoord, testutil.TerraOrbit, "Ridge"))
	testutil.SetAmount(s, resource.Ore, 9)

	require.NoError(t, execute(t, w, s, action.Mine{}))
	assert.Equal(t, 10, s.Inventory().Ore().Amount())

	err := execute(t, w, s, action.Mine{})
	assert.EqualError(t, err, "ore hold is full: have 10, capacity 10")
}

func TestMine_NothingToMine(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Digger", testutil.Surface(t, w.Galaxy(), testutil.SolCoord, testutil.TerraOrbit, "Plains"))

	err := execute(t, w, s, action.Mine{})

	assert.ErrorContains(t, err, "nothing to mine")
}

func TestMine_OrbitDebrisCanDestroyTheShip(t *testing.T) {
	// Arrange: a scripted zero always triggers the 1-in-4 debris roll
	rec := &world.RecordingNotifier{}
	w := testutil.NewWorld(t, shared.NewScriptedRandom(0), world.WithNotifier(rec))
	s := testutil.AddShip(t, w, "Digger", testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, testutil.TitanOrbit))
	testutil.SetAmount(s, resource.Hull, 1)

	// Act
	require.NoError(t, execute(t, w, s, action.Mine{}))

	// Assert
	assert.Equal(t, 3, s.Inventory().Ore().Amount(), "iridium has density 3")
	assert.True(t, s.IsDestroyed())
	assert.Contains(t, rec.Messages(), "Digger breaks apart mining Titan")
}

func TestMine_OrbitDebrisMisses(t *testing.T) {
	w := testutil.NewWorld(t, shared.NewScriptedRandom(3))
	s := testutil.AddShip(t, w, "Digger", testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, testutil.BeltOrbit))

	require.NoError(t, execute(t, w, s, action.Mine{}))

	assert.Equal(t, 10, s.Inventory().Hull().Amount())
	assert.Equal(t, 2, s.Inventory().Ore().Amount())
}

func TestRefine_ConvertsWhatFits(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Digger", testutil.Interstellar(t, w.Galaxy(), 1, 1))
	testutil.SetAmount(s, resource.Ore, 8)
	testutil.SetAmount(s, resource.Fuel, 15)

	require.NoError(t, execute(t, w, s, action.Refine{}))

	assert.Equal(t, 20, s.Inventory().Fuel().Amount())
	assert.Equal(t, 3, s.Inventory().Ore().Amount())

	err := execute(t, w, s, action.Refine{})
	assert.EqualError(t, err, "fuel tank is full: have 20, capacity 20")

	testutil.SetAmount(s, resource.Ore, 0)
	testutil.SetAmount(s, resource.Fuel, 0)
	err = execute(t, w, s, action.Refine{})
	assert.EqualError(t, err, "insufficient ore: have 0, need 1")
}

func TestRaiseOrbit_FromOutermostIsAnEscape(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	outer := testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, 7)
	raiser := testutil.AddShip(t, w, "Raiser", outer)
	escaper := testutil.AddShip(t, w, "Escaper", outer)

	// Act
	require.NoError(t, execute(t, w, raiser, action.RaiseOrbit{}))
	require.NoError(t, execute(t, w, escaper, action.EscapeSector{}))

	// Assert
	assert.True(t, raiser.Location().Equal(escaper.Location()))
	assert.Equal(t, location.KindInterstellar, raiser.Location().Kind())
	assert.Equal(t, raiser.Inventory().Fuel().Amount(), escaper.Inventory().Fuel().Amount())
}

func TestEscapeSector_RequiresOutermostOrbit(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Runner", testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, 4))

	err := execute(t, w, s, action.EscapeSector{})

	assert.EqualError(t, err, "cannot escape from orbit 4: outermost orbit is 7")
}

func TestMovement_RoundTrip(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	g := w.Galaxy()
	s := testutil.AddShip(t, w, "Traveller", testutil.Interstellar(t, g, 1, 2))

	// Act
	steps := []action.Action{
		action.Burn{Direction: shared.East},
		action.EnterSector{},
		action.LowerOrbit{}, action.LowerOrbit{}, action.LowerOrbit{},
		action.LowerOrbit{}, action.LowerOrbit{},
		action.Land{Region: "Highlands"},
		action.Relocate{Region: "Ridge"},
		action.TakeOff{},
	}
	for _, a := range steps {
		require.NoError(t, execute(t, w, s, a), a.Name())
	}

	// Assert: burn 1, enter 1, lower 0, land 2, relocate 1, takeoff 2
	assert.True(t, s.Location().Equal(testutil.Orbital(t, g, testutil.SolCoord, testutil.TerraOrbit)))
	assert.Equal(t, 13, s.Inventory().Fuel().Amount())
}

func TestMovement_Rejections(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	g := w.Galaxy()

	tests := []struct {
		name string
		at   location.Location
		act  action.Action
		want string
	}{
		{"burn off the map", testutil.Interstellar(t, g, 0, 0), action.Burn{Direction: shared.North}, "cannot burn north: edge of the galaxy"},
		{"enter empty space", testutil.Interstellar(t, g, 1, 1), action.EnterSector{}, "no sector at (1,1)"},
		{"lower from orbit 1", testutil.Orbital(t, g, testutil.SolCoord, 1), action.LowerOrbit{}, "already at the innermost orbit"},
		{"land on the belt", testutil.Orbital(t, g, testutil.SolCoord, testutil.BeltOrbit), action.Land{Region: "Plains"}, "Belt cannot be landed on"},
		{"land nowhere", testutil.Orbital(t, g, testutil.SolCoord, 4), action.Land{Region: "Plains"}, "no planet at orbit 4"},
		{"relocate in place", testutil.Surface(t, g, testutil.SolCoord, testutil.TerraOrbit, "Plains"), action.Relocate{Region: "Plains"}, "already in Plains"},
		{"take off from orbit", testutil.Orbital(t, g, testutil.SolCoord, 1), action.TakeOff{}, "cannot take off: not landed"},
		{"dock without station", testutil.Orbital(t, g, testutil.SolCoord, 4), action.Dock{}, "no station at orbit 4"},
		{"undock in space", testutil.Interstellar(t, g, 1, 1), action.Undock{}, "cannot undock: not docked"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.AddShip(t, w, tt.name, tt.at)

			err := execute(t, w, s, tt.act)

			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestBurn_WithoutFuel(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Drifter", testutil.Interstellar(t, w.Galaxy(), 1, 1))
	testutil.SetAmount(s, resource.Fuel, 0)

	err := execute(t, w, s, action.Burn{Direction: shared.South})

	assert.EqualError(t, err, "insufficient fuel: have 0, need 1")
}

func TestBuyResource_UsesDockedStationPrice(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Trader", testutil.Orbital(t, w.Galaxy(), testutil.VegaCoord, 1))
	testutil.SetAmount(s, resource.Fuel, 10)
	require.NoError(t, execute(t, w, s, action.Dock{}))
	before := s.Credits()

	// Act
	require.NoError(t, execute(t, w, s, action.BuyResource{Kind: resource.Fuel, Quantity: 2}))

	// Assert
	assert.Equal(t, before-6, s.Credits())
}

func TestDock_RefusedWhenHostile(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Outlaw", testutil.Orbital(t, w.Galaxy(), testutil.VegaCoord, 1))
	s.Reputation().Set(testutil.Syndicate, faction.HostileThreshold)

	err := execute(t, w, s, action.Dock{})

	assert.EqualError(t, err, "Vega Outpost refuses docking clearance")
}

func TestTrade_BuyAndSell(t *testing.T) {
	// Arrange
	journal := ledger.NewJournal()
	w := testutil.NewWorld(t, nil, world.WithJournal(journal))
	s := testutil.AddShip(t, w, "Trader", testutil.Docked(t, w.Galaxy(), testutil.SolCoord, testutil.StationOrbit))
	testutil.SetAmount(s, resource.Fuel, 10)
	testutil.SetAmount(s, resource.Ore, 6)

	// Act
	require.NoError(t, execute(t, w, s, action.BuyResource{Kind: resource.Fuel, Quantity: 10}))
	require.NoError(t, execute(t, w, s, action.SellResource{Kind: resource.Ore, Quantity: 6}))

	// Assert
	assert.Equal(t, 20, s.Inventory().Fuel().Amount())
	assert.Equal(t, 0, s.Inventory().Ore().Amount())
	assert.Equal(t, 200-20+18, s.Credits())
	entries := journal.ForShip(s.ID())
	require.Len(t, entries, 2)
	assert.Equal(t, ledger.TransactionBuyResource, entries[0].TransactionType())
	assert.Equal(t, -20, entries[0].Amount())
	assert.Equal(t, "Sol Station", entries[1].Counterparty())
}

func TestTrade_Shortfalls(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	docked := testutil.Docked(t, w.Galaxy(), testutil.SolCoord, testutil.StationOrbit)

	tests := []struct {
		name  string
		setup func(s *ship.Ship)
		act   action.Action
		want  string
	}{
		{"tank too small", func(s *ship.Ship) { testutil.SetAmount(s, resource.Fuel, 10) }, action.BuyResource{Kind: resource.Fuel, Quantity: 15}, "insufficient fuel capacity: have 10, need 15"},
		{"not enough credits", func(s *ship.Ship) { testutil.SetAmount(s, resource.Hull, 0); s.ChangeCredits(-195) }, action.BuyResource{Kind: resource.Hull, Quantity: 2}, "insufficient credits: have 5, need 10"},
		{"zero quantity", func(*ship.Ship) {}, action.BuyResource{Kind: resource.Fuel, Quantity: 0}, "purchase quantity must be positive"},
		{"selling hull", func(*ship.Ship) {}, action.SellResource{Kind: resource.Hull, Quantity: 1}, "hull plating cannot be sold"},
		{"selling missing ore", func(*ship.Ship) {}, action.SellResource{Kind: resource.Ore, Quantity: 1}, "insufficient ore: have 0, need 1"},
		{"unknown kind", func(*ship.Ship) {}, action.SellResource{Kind: "gold", Quantity: 1}, `unknown resource "gold"`},
		{"module too expensive", func(s *ship.Ship) { s.ChangeCredits(-100) }, action.BuyModule{Item: resource.Cloak}, "insufficient credits: have 100, need 300"},
		{"module not stocked", func(*ship.Ship) {}, action.BuyModule{Item: "Warp Core"}, `Sol Station does not sell "Warp Core"`},
		{"nothing to repair", func(*ship.Ship) {}, action.RepairModule{Item: resource.Laser}, "no damaged Laser installed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.AddShip(t, w, tt.name, docked)
			tt.setup(s)

			err := execute(t, w, s, tt.act)

			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestBuyModule_SlotLimit(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Trader", testutil.Docked(t, w.Galaxy(), testutil.SolCoord, testutil.StationOrbit))
	testutil.Arm(t, s, resource.Laser, resource.Laser, resource.Laser, resource.Laser)

	err := execute(t, w, s, action.BuyModule{Item: resource.Shield})

	assert.EqualError(t, err, "module limit reached: have 4, max 4")
}

func TestModuleLifecycle_BuyDamageRepairSell(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Trader", testutil.Docked(t, w.Galaxy(), testutil.SolCoord, testutil.StationOrbit))
	s.ChangeCredits(300)

	// Act & Assert
	require.NoError(t, execute(t, w, s, action.BuyModule{Item: resource.Shield}))
	assert.Equal(t, 350, s.Credits())

	s.Inventory().FindModule(resource.Shield).Hit()
	require.NoError(t, execute(t, w, s, action.RepairModule{Item: resource.Shield}))
	assert.Equal(t, 275, s.Credits())
	assert.False(t, s.Inventory().FindModule(resource.Shield).IsDamaged())

	s.Inventory().FindModule(resource.Shield).Hit()
	require.NoError(t, execute(t, w, s, action.SellModule{Item: resource.Shield}))
	assert.Equal(t, 275+37, s.Credits(), "damaged modules fetch half the sale price")
	assert.Equal(t, 0, s.Inventory().ModuleCount())
}

func TestBuyExpander_CapIsEnforced(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Trader", testutil.Docked(t, w.Galaxy(), testutil.SolCoord, testutil.StationOrbit))

	require.NoError(t, execute(t, w, s, action.BuyExpander{Kind: resource.Ore}))
	assert.Equal(t, 15, s.Inventory().Ore().Capacity())
	assert.Equal(t, 140, s.Credits())

	require.NoError(t, s.Inventory().Ore().Expand(resource.MaxExpanders-1))
	err := execute(t, w, s, action.BuyExpander{Kind: resource.Ore})
	assert.EqualError(t, err, "ore expanders at limit: have 10, cap 10")
}

func TestClaim_TransfersOwnershipAndStanding(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Settler", testutil.Surface(t, w.Galaxy(), testutil.VegaCoord, 2, "Crater"))
	s.SetFaction(testutil.Federation)

	// Act
	require.NoError(t, execute(t, w, s, action.Claim{}))

	// Assert
	sector, _ := w.Galaxy().SectorAt(testutil.VegaCoord)
	planet, _ := sector.PlanetAt(2)
	region, _ := planet.Region("Crater")
	assert.Equal(t, testutil.Federation, region.Owner)
	assert.Equal(t, 100, s.Credits())
	assert.Equal(t, faction.ClaimBonus, s.Reputation().Get(testutil.Federation))
	assert.Equal(t, -faction.ClaimPenalty, s.Reputation().Get(testutil.Syndicate))

	err := execute(t, w, s, action.Claim{})
	assert.EqualError(t, err, "Crater already belongs to federation")
}

func TestClaim_Rejections(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	g := w.Galaxy()

	loner := testutil.AddShip(t, w, "Loner", testutil.Orbital(t, g, testutil.SolCoord, testutil.BeltOrbit))
	assert.EqualError(t, execute(t, w, loner, action.Claim{}), "must belong to a faction to claim")

	poor := testutil.AddShip(t, w, "Poor", testutil.Docked(t, g, testutil.VegaCoord, 1))
	poor.SetFaction(testutil.Federation)
	assert.EqualError(t, execute(t, w, poor, action.Claim{}), "insufficient credits: have 200, need 800")

	lost := testutil.AddShip(t, w, "Lost", testutil.Orbital(t, g, testutil.SolCoord, 4))
	lost.SetFaction(testutil.Federation)
	assert.ErrorContains(t, execute(t, w, lost, action.Claim{}), "nothing to claim")
}

func TestActivateModule_ShieldAndCloak(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Ghost", testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, 4))

	assert.EqualError(t, execute(t, w, s, action.ActivateModule{Effect: resource.EffectShield}), "no working shield module installed")

	testutil.Arm(t, s, resource.Shield, resource.Cloak)
	require.NoError(t, execute(t, w, s, action.ActivateModule{Effect: resource.EffectShield}))
	require.NoError(t, execute(t, w, s, action.ActivateModule{Effect: resource.EffectCloak}))
	assert.Equal(t, 15, s.Inventory().Energy().Amount())
	assert.EqualError(t, execute(t, w, s, action.ActivateModule{Effect: resource.EffectCloak}), "cloak already active")
	assert.EqualError(t, execute(t, w, s, action.Dock{}), "no station at orbit 4")

	require.NoError(t, execute(t, w, s, action.Upkeep{}))
	assert.Equal(t, 12, s.Inventory().Energy().Amount())

	require.NoError(t, execute(t, w, s, action.DeactivateModule{Effect: resource.EffectCloak}))
	assert.False(t, s.IsCloaked())
	assert.True(t, s.IsShielded())
}

func TestUpkeep_ShutsDownUnpaidModules(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Ghost", testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, 4))
	testutil.Arm(t, s, resource.Cloak)
	require.NoError(t, execute(t, w, s, action.ActivateModule{Effect: resource.EffectCloak}))
	testutil.SetAmount(s, resource.Energy, 1)

	require.NoError(t, execute(t, w, s, action.Upkeep{}))

	assert.False(t, s.IsCloaked())
	assert.Equal(t, 0, s.Inventory().Energy().Amount())
	assert.EqualError(t, execute(t, w, s, action.Upkeep{}), "no active modules")
}

func TestFactionMembership(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Recruit", testutil.Interstellar(t, w.Galaxy(), 1, 1))

	assert.EqualError(t, execute(t, w, s, action.JoinFaction{Faction: testutil.Federation}), "insufficient standing with federation: have 0, need 10")
	assert.EqualError(t, execute(t, w, s, action.JoinFaction{Faction: "pirates"}), `unknown faction "pirates"`)

	s.Reputation().Set(testutil.Federation, 10)
	s.Reputation().Set(testutil.Syndicate, 10)
	require.NoError(t, execute(t, w, s, action.JoinFaction{Faction: testutil.Federation}))
	require.NoError(t, w.Factions().SetLeader(testutil.Federation, s.ID()))
	assert.EqualError(t, execute(t, w, s, action.JoinFaction{Faction: testutil.Syndicate}), "must leave federation first")

	require.NoError(t, execute(t, w, s, action.LeaveFaction{}))
	assert.True(t, s.Faction().IsZero())
	_, hasLeader := w.Factions().Leader(testutil.Federation)
	assert.False(t, hasLeader)
	assert.EqualError(t, execute(t, w, s, action.LeaveFaction{}), "not a member of any faction")
}

func TestDistress_RescueCostsStanding(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Stranded", testutil.Interstellar(t, w.Galaxy(), 0, 4))
	testutil.SetAmount(s, resource.Fuel, 0)
	testutil.SetAmount(s, resource.Energy, 14)
	s.SetDestination(testutil.Interstellar(t, w.Galaxy(), 4, 4))

	assert.EqualError(t, execute(t, w, s, action.Distress{}), "no faction will answer: standing below 5 everywhere")

	s.Reputation().Set(testutil.Federation, 5)
	s.Reputation().Set(testutil.Syndicate, 7)

	// Act
	require.NoError(t, execute(t, w, s, action.Distress{}))

	// Assert
	assert.Equal(t, 10, s.Inventory().Fuel().Amount())
	assert.Equal(t, 14, s.Inventory().Energy().Amount())
	assert.Equal(t, 2, s.Reputation().Get(testutil.Syndicate))
	assert.Equal(t, 5, s.Reputation().Get(testutil.Federation))
	_, ok := s.Destination()
	assert.False(t, ok)
}

func TestActionsOnDestroyedShipAreRejected(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	s := testutil.AddShip(t, w, "Wreck", testutil.Interstellar(t, w.Galaxy(), 1, 1))
	w.Destroy(s, "gone")

	for _, a := range []action.Action{action.Burn{Direction: shared.East}, action.Refine{}, action.Distress{}, action.LeaveFaction{}} {
		assert.EqualError(t, execute(t, w, s, a), "Wreck is destroyed", a.Name())
	}
}
