// Package testutil builds a small deterministic universe for tests.
//
// Layout (5x5 galaxy "test-galaxy"):
//
//	(2,2) Sol, 7 orbits, federation
//	  2 Terra (landable): Highlands [iron], Plains, Ridge [cobalt]
//	  3 Belt (orbit ore: cobalt)
//	  5 Sol Station: sells every catalog item
//	  7 Titan (orbit ore: iridium)
//	(3,2) Vega, 3 orbits, syndicate
//	  1 Vega Outpost: sells Laser and Pulse Beam, fuel at 3
//	  2 Vega Prime (landable): Crater [iridium]
//	(0,0) Dust, 2 orbits, empty
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/domain/faction"
	"github.com/andrescamacho/starfront-go/internal/domain/galaxy"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

const GalaxyID = "test-galaxy"

const (
	Federation shared.FactionID = "federation"
	Syndicate  shared.FactionID = "syndicate"
)

var (
	SolCoord  = shared.NewCoord(2, 2)
	VegaCoord = shared.NewCoord(3, 2)
	DustCoord = shared.NewCoord(0, 0)
)

// Orbits of note in Sol
const (
	TerraOrbit   = 2
	BeltOrbit    = 3
	StationOrbit = 5
	TitanOrbit   = 7
)

// FixedTime stamps ledger entries in tests
var FixedTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func ore(o resource.OreType) *resource.OreType {
	return &o
}

// NewGalaxy builds the fixture galaxy
func NewGalaxy(t testing.TB) *galaxy.Galaxy {
	t.Helper()
	g, err := galaxy.New(GalaxyID, 5, 5)
	require.NoError(t, err)

	sol, err := galaxy.NewSector(SolCoord, "Sol", 7, Federation)
	require.NoError(t, err)
	require.NoError(t, sol.AddPlanet(&galaxy.Planet{
		Name: "Terra", Orbit: TerraOrbit, Landable: true,
		Regions: []*galaxy.Region{
			{Name: "Highlands", Ore: ore(resource.Iron)},
			{Name: "Plains"},
			{Name: "Ridge", Ore: ore(resource.Cobalt)},
		},
	}))
	require.NoError(t, sol.AddPlanet(&galaxy.Planet{Name: "Belt", Orbit: BeltOrbit, OrbitOre: ore(resource.Cobalt)}))
	require.NoError(t, sol.AddStation(&galaxy.Station{
		Name: "Sol Station", Orbit: StationOrbit, Owner: Federation,
		Stock: []string{resource.Laser, resource.TorpedoBay, resource.PulseBeam, resource.Shield, resource.Cloak},
	}))
	require.NoError(t, sol.AddPlanet(&galaxy.Planet{Name: "Titan", Orbit: TitanOrbit, OrbitOre: ore(resource.Iridium)}))
	require.NoError(t, g.AddSector(sol))

	vega, err := galaxy.NewSector(VegaCoord, "Vega", 3, Syndicate)
	require.NoError(t, err)
	require.NoError(t, vega.AddStation(&galaxy.Station{
		Name: "Vega Outpost", Orbit: 1, Owner: Syndicate,
		Prices: map[resource.Kind]int{resource.Fuel: 3},
		Stock:  []string{resource.Laser, resource.PulseBeam},
	}))
	require.NoError(t, vega.AddPlanet(&galaxy.Planet{
		Name: "Vega Prime", Orbit: 2, Landable: true, Owner: Syndicate,
		Regions: []*galaxy.Region{{Name: "Crater", Ore: ore(resource.Iridium), Owner: Syndicate}},
	}))
	require.NoError(t, g.AddSector(vega))

	dust, err := galaxy.NewSector(DustCoord, "Dust", 2, "")
	require.NoError(t, err)
	require.NoError(t, g.AddSector(dust))
	return g
}

// NewFactions registers federation and syndicate at peace
func NewFactions(t testing.TB) *faction.Registry {
	t.Helper()
	r := faction.NewRegistry()
	_, err := r.Add(Federation, "Terran Federation")
	require.NoError(t, err)
	_, err = r.Add(Syndicate, "Vega Syndicate")
	require.NoError(t, err)
	return r
}

// NewWorld builds a world over the fixture galaxy. A nil rng scripts zeros.
func NewWorld(t testing.TB, rng shared.Random, opts ...world.Option) *world.World {
	t.Helper()
	if rng == nil {
		rng = shared.NewScriptedRandom()
	}
	opts = append([]world.Option{world.WithClock(&shared.FixedClock{At: FixedTime})}, opts...)
	return world.New(NewGalaxy(t), NewFactions(t), rng, opts...)
}

// AddShip spawns an AI miner at loc and registers it
func AddShip(t testing.TB, w *world.World, name string, loc location.Location) *ship.Ship {
	t.Helper()
	return AddShipAs(t, w, name, ship.ControllerAI, ship.Miner, loc)
}

// AddPlayer spawns the player ship at loc
func AddPlayer(t testing.TB, w *world.World, loc location.Location) *ship.Ship {
	t.Helper()
	return AddShipAs(t, w, "Player", ship.ControllerPlayer, ship.Trader, loc)
}

func AddShipAs(t testing.TB, w *world.World, name string, c ship.Controller, sp ship.Specialization, loc location.Location) *ship.Ship {
	t.Helper()
	s, err := ship.New(w.NextShipID(), name, c, sp, loc)
	require.NoError(t, err)
	require.NoError(t, w.AddShip(s))
	return s
}

// Location helpers over the fixture galaxy

func Interstellar(t testing.TB, g galaxy.Query, x, y int) location.Interstellar {
	t.Helper()
	l, err := location.NewInterstellar(g, shared.NewCoord(x, y))
	require.NoError(t, err)
	return l
}

func Orbital(t testing.TB, g galaxy.Query, c shared.Coord, orbit int) location.Orbital {
	t.Helper()
	l, err := location.NewOrbital(g, c, orbit)
	require.NoError(t, err)
	return l
}

func Surface(t testing.TB, g galaxy.Query, c shared.Coord, orbit int, region string) location.Surface {
	t.Helper()
	l, err := location.NewSurface(g, c, orbit, region)
	require.NoError(t, err)
	return l
}

func Docked(t testing.TB, g galaxy.Query, c shared.Coord, orbit int) location.Docked {
	t.Helper()
	l, err := location.NewDocked(g, c, orbit)
	require.NoError(t, err)
	return l
}

// Arm installs the named items on s
func Arm(t testing.TB, s *ship.Ship, items ...string) {
	t.Helper()
	for _, name := range items {
		spec, ok := resource.LookupItem(name)
		require.True(t, ok, name)
		require.NoError(t, s.Inventory().AddModule(resource.NewModule(spec)))
	}
}

// SetAmount forces a store to amount
func SetAmount(s *ship.Ship, k resource.Kind, amount int) {
	r := s.Inventory().Get(k)
	r.ChangeAmount(amount - r.Amount())
}
