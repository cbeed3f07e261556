package combat

import (
	"github.com/andrescamacho/starfront-go/internal/domain/action"
	"github.com/andrescamacho/starfront-go/internal/domain/battle"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// SelectTarget picks the living, targetable enemy with the lowest hull.
// Ties keep the earliest in roster order.
func SelectTarget(w *world.World, s *ship.Ship, b *battle.Battle) (*ship.Ship, bool) {
	var best *ship.Ship
	for _, id := range b.Enemies(s.ID()) {
		t, ok := w.Ship(id)
		if !ok || t.IsDestroyed() || t.IsCloaked() {
			continue
		}
		if best == nil || t.Inventory().Hull().Amount() < best.Inventory().Hull().Amount() {
			best = t
		}
	}
	return best, best != nil
}

// SelectWeapon returns a Fire action for the first weapon class, in
// priority order, that s can legally fire at target
func SelectWeapon(w *world.World, s *ship.Ship, target *ship.Ship) (action.Action, bool) {
	for _, class := range resource.WeaponPriority {
		fire := action.Fire{Target: target.ID(), Class: class}
		if fire.CanExecute(w, s) == nil {
			return fire, true
		}
	}
	return nil, false
}

// Retreat returns the first legal way out of b: flee, otherwise surrender
func Retreat(w *world.World, s *ship.Ship) action.Action {
	if (action.Flee{}).CanExecute(w, s) == nil {
		return action.Flee{}
	}
	return action.Surrender{}
}
