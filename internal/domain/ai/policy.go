package ai

import (
	"github.com/andrescamacho/starfront-go/internal/domain/action"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

const (
	// RefuelPercent: below this share of fuel capacity a ship heads for a station
	RefuelPercent = 25
	// CreditReserve is kept back when buying optional equipment
	CreditReserve = 50
	// ClaimPowerThreshold is the fighting strength a ship needs before it
	// stakes claims it may have to defend
	ClaimPowerThreshold = 10
)

// WillAttack: has a usable weapon and hull at or above half capacity
func WillAttack(s *ship.Ship) bool {
	hull := s.Inventory().Hull()
	return s.Inventory().HasUsableWeapon() && hull.Amount()*2 >= hull.Capacity()
}

// WillPursue: target is weaker or equal and the pursuit fuel is affordable
func WillPursue(s, target *ship.Ship) bool {
	cost := action.CostOf(action.NamePursue)
	return target.Power() <= s.Power() && s.Inventory().Get(cost.Resource).Amount() >= cost.Amount
}

// WillClaim: a faction member strong enough to hold the claim, able to pay
// for it and keep the reserve
func WillClaim(w *world.World, s *ship.Ship) bool {
	if s.Faction().IsZero() || s.Power() < ClaimPowerThreshold {
		return false
	}
	price, ok := action.ClaimablePrice(w, s.Location(), s.Faction())
	return ok && s.Credits() >= price+CreditReserve
}

// FactionPower sums the fighting strength of f's living members
func FactionPower(w *world.World, f shared.FactionID) int {
	total := 0
	for _, m := range w.ShipsInFaction(f) {
		total += m.Power()
	}
	return total
}

// WillConvert: s may join f and f is stronger than its current faction
func WillConvert(w *world.World, s *ship.Ship, f shared.FactionID) bool {
	if f == s.Faction() || !s.Reputation().CanJoin(f) || w.IsHostile(s, f) {
		return false
	}
	if s.Faction().IsZero() {
		return true
	}
	return FactionPower(w, f) > FactionPower(w, s.Faction())
}

// MustRefuel: fuel under RefuelPercent, ore hold full, or energy exhausted
func MustRefuel(s *ship.Ship) bool {
	inv := s.Inventory()
	fuel := inv.Fuel()
	return fuel.Amount()*100 < fuel.Capacity()*RefuelPercent ||
		inv.Ore().IsFull() ||
		inv.Energy().IsEmpty()
}

// ScarcestExpander picks the resource with the fewest expanders that can
// still be expanded; ties follow resource.Kinds order
func ScarcestExpander(s *ship.Ship) (resource.Kind, bool) {
	var best resource.Kind
	found := false
	for _, k := range resource.Kinds {
		r := s.Inventory().Get(k)
		if !r.CanExpand(1) {
			continue
		}
		if !found || r.Expanders() < s.Inventory().Get(best).Expanders() {
			best, found = k, true
		}
	}
	return best, found
}
