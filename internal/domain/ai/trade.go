package ai

import (
	"github.com/andrescamacho/starfront-go/internal/domain/action"
	"github.com/andrescamacho/starfront-go/internal/domain/galaxy"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// restockOrder is the order consumables are topped up in
var restockOrder = []resource.Kind{resource.Fuel, resource.Energy, resource.Hull}

// tradeLoop runs the docked routine: liquidate cargo, restock consumables,
// repair and buy missing modules, buy the scarcest expander, then consider
// switching faction. Returns the actions that succeeded.
func tradeLoop(w *world.World, s *ship.Ship) []action.Action {
	docked, ok := s.Location().(location.Docked)
	if !ok {
		return nil
	}
	sector, _ := w.Galaxy().SectorAt(docked.Coord())
	station, _ := sector.StationAt(docked.Orbit())

	var done []action.Action
	try := func(a action.Action) bool {
		if a.Execute(w, s) == nil {
			done = append(done, a)
			return true
		}
		return false
	}

	if ore := s.Inventory().Ore().Amount(); ore > 0 {
		try(action.SellResource{Kind: resource.Ore, Quantity: ore})
	}

	for _, k := range restockOrder {
		price := station.PriceOf(k)
		if price <= 0 {
			continue
		}
		qty := min(s.Inventory().Get(k).Free(), s.Credits()/price)
		if qty > 0 {
			try(action.BuyResource{Kind: k, Quantity: qty})
		}
	}

	for _, m := range s.Inventory().Modules() {
		if m.IsDamaged() && s.Credits()-m.Spec().RepairPrice() >= CreditReserve {
			try(action.RepairModule{Item: m.Name()})
		}
	}
	if !s.Inventory().HasUsableWeapon() {
		buyWithReserve(station, s, resource.Laser, try)
	}
	if s.Inventory().FindModule(resource.Shield) == nil {
		buyWithReserve(station, s, resource.Shield, try)
	}

	if k, ok := ScarcestExpander(s); ok {
		if s.Credits()-resource.SpecFor(k).ExpanderPrice >= CreditReserve {
			try(action.BuyExpander{Kind: k})
		}
	}

	for _, f := range w.Factions().IDs() {
		if !WillConvert(w, s, f) {
			continue
		}
		if !s.Faction().IsZero() {
			try(action.LeaveFaction{})
		}
		try(action.JoinFaction{Faction: f})
		break
	}
	return done
}

func buyWithReserve(station *galaxy.Station, s *ship.Ship, item string, try func(action.Action) bool) {
	spec, ok := resource.LookupItem(item)
	if !ok || !station.Sells(item) {
		return
	}
	if s.Credits()-spec.Price >= CreditReserve {
		try(action.BuyModule{Item: item})
	}
}
