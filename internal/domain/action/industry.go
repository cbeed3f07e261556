package action

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/faction"
	"github.com/andrescamacho/starfront-go/internal/domain/galaxy"
	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// Orbit mining is unstable: each extraction risks hull damage
const (
	orbitMiningRiskNum  = 1
	orbitMiningRiskDen  = 4
	orbitMiningHullLoss = 1
)

// MiningSite is what a location offers to a miner
type MiningSite struct {
	Ore     resource.OreType
	InOrbit bool
	Planet  *galaxy.Planet
	Region  *galaxy.Region
}

// MiningSiteAt resolves the ore available at l: the region's ore when
// landed, the body's ore when orbiting a mineable planet
func MiningSiteAt(g galaxy.Query, l location.Location) (MiningSite, bool) {
	switch loc := l.(type) {
	case location.Surface:
		sector, ok := g.SectorAt(loc.Coord())
		if !ok {
			return MiningSite{}, false
		}
		planet, ok := sector.PlanetAt(loc.Orbit())
		if !ok {
			return MiningSite{}, false
		}
		region, ok := planet.Region(loc.Region())
		if !ok || !region.HasOre() {
			return MiningSite{}, false
		}
		return MiningSite{Ore: *region.Ore, Planet: planet, Region: region}, true
	case location.Orbital:
		sector, ok := g.SectorAt(loc.Coord())
		if !ok {
			return MiningSite{}, false
		}
		planet, ok := sector.PlanetAt(loc.Orbit())
		if !ok || !planet.IsOrbitMineable() {
			return MiningSite{}, false
		}
		return MiningSite{Ore: *planet.OrbitOre, InOrbit: true, Planet: planet}, true
	}
	return MiningSite{}, false
}

// Mine extracts one unit of ore scaled by the ore's density. Excess over the
// hold's capacity is discarded.
type Mine struct{}

func (a Mine) Name() string { return NameMine }

func (a Mine) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if err := checkNotInBattle(s, "mine"); err != nil {
		return err
	}
	if _, ok := MiningSiteAt(w.Galaxy(), s.Location()); !ok {
		return shared.NewRejection("nothing to mine at %s", s.Location())
	}
	if err := checkCost(s, CostOf(NameMine)); err != nil {
		return err
	}
	if ore := s.Inventory().Ore(); ore.IsFull() {
		return shared.NewRejection("ore hold is full: have %d, capacity %d", ore.Amount(), ore.Capacity())
	}
	return nil
}

func (a Mine) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Mine) apply(w *world.World, s *ship.Ship) error {
	site, _ := MiningSiteAt(w.Galaxy(), s.Location())
	pay(s, CostOf(NameMine))
	discarded := s.Inventory().Ore().ChangeAmountWithDiscard(site.Ore.Density)
	mined := site.Ore.Density - discarded
	msg := fmt.Sprintf("%s mines %d %s", s.Name(), mined, site.Ore.Name)
	if discarded > 0 {
		msg += fmt.Sprintf(" (%d discarded)", discarded)
	}
	w.Notify(s, msg, world.SoundMine)

	if site.InOrbit && w.Rand().Chance(orbitMiningRiskNum, orbitMiningRiskDen) {
		hull := s.Inventory().Hull()
		hull.ChangeAmount(-orbitMiningHullLoss)
		w.Notify(s, fmt.Sprintf("%s is struck by debris", s.Name()), world.SoundAlarm)
		if hull.IsEmpty() {
			w.Destroy(s, fmt.Sprintf("%s breaks apart mining %s", s.Name(), site.Planet.Name))
		}
	}
	return nil
}

// Refine converts ore into fuel 1:1, as much as the fuel tank can take
type Refine struct{}

func (a Refine) Name() string { return NameRefine }

func (a Refine) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if err := checkNotInBattle(s, "refine"); err != nil {
		return err
	}
	inv := s.Inventory()
	if inv.Ore().IsEmpty() {
		return shared.NewInsufficientError("ore", 0, 1)
	}
	if inv.Fuel().IsFull() {
		return shared.NewRejection("fuel tank is full: have %d, capacity %d", inv.Fuel().Amount(), inv.Fuel().Capacity())
	}
	return checkCost(s, CostOf(NameRefine))
}

func (a Refine) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Refine) apply(w *world.World, s *ship.Ship) error {
	inv := s.Inventory()
	pay(s, CostOf(NameRefine))
	units := min(inv.Ore().Amount(), inv.Fuel().Free())
	inv.Ore().ChangeAmount(-units)
	inv.Fuel().ChangeAmount(units)
	w.Notify(s, fmt.Sprintf("%s refines %d ore into fuel", s.Name(), units), world.SoundNone)
	return nil
}

// claimTarget is whatever a Claim at the current location would take over
type claimTarget struct {
	name  string
	price int
	owner *shared.FactionID
}

func claimTargetAt(w *world.World, l location.Location) (claimTarget, bool) {
	sector, ok := w.Galaxy().SectorAt(l.Coord())
	if !ok {
		return claimTarget{}, false
	}
	switch loc := l.(type) {
	case location.Surface:
		planet, _ := sector.PlanetAt(loc.Orbit())
		region, ok := planet.Region(loc.Region())
		if !ok {
			return claimTarget{}, false
		}
		return claimTarget{name: region.Name, price: RegionClaimPrice, owner: &region.Owner}, true
	case location.Docked:
		station, ok := sector.StationAt(loc.Orbit())
		if !ok {
			return claimTarget{}, false
		}
		return claimTarget{name: station.Name, price: StationClaimPrice, owner: &station.Owner}, true
	case location.Orbital:
		planet, ok := sector.PlanetAt(loc.Orbit())
		if !ok {
			return claimTarget{}, false
		}
		return claimTarget{name: planet.Name, price: PlanetClaimPrice, owner: &planet.Owner}, true
	}
	return claimTarget{}, false
}

// ClaimablePrice returns the price of claiming whatever is at l for faction
// f, or false when nothing there can be claimed by f
func ClaimablePrice(w *world.World, l location.Location, f shared.FactionID) (int, bool) {
	t, ok := claimTargetAt(w, l)
	if !ok || *t.owner == f {
		return 0, false
	}
	return t.price, true
}

// Claim transfers ownership of the region, planet or station at the current
// location to the ship's faction
type Claim struct{}

func (a Claim) Name() string { return NameClaim }

func (a Claim) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if err := checkNotInBattle(s, "claim"); err != nil {
		return err
	}
	if s.Faction().IsZero() {
		return shared.NewRejection("must belong to a faction to claim")
	}
	target, ok := claimTargetAt(w, s.Location())
	if !ok {
		return shared.NewRejection("nothing to claim at %s", s.Location())
	}
	if *target.owner == s.Faction() {
		return shared.NewRejection("%s already belongs to %s", target.name, s.Faction())
	}
	return checkCredits(s, target.price)
}

func (a Claim) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Claim) apply(w *world.World, s *ship.Ship) error {
	target, _ := claimTargetAt(w, s.Location())
	previous := *target.owner
	*target.owner = s.Faction()

	w.Transfer(s, ledger.TransactionClaim, -target.price, "claim "+target.name, previous.String())
	s.Reputation().Adjust(s.Faction(), faction.ClaimBonus)
	if !previous.IsZero() {
		s.Reputation().Adjust(previous, -faction.ClaimPenalty)
	}
	w.Notify(s, fmt.Sprintf("%s claims %s for %s", s.Name(), target.name, s.Faction()), world.SoundCoins)
	return nil
}
