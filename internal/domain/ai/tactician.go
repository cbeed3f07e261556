package ai

import (
	"github.com/andrescamacho/starfront-go/internal/domain/action"
	"github.com/andrescamacho/starfront-go/internal/domain/battle"
	"github.com/andrescamacho/starfront-go/internal/domain/combat"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

var _ combat.Tactician = (*Pilot)(nil)

// shieldEnergyMargin is the energy a ship keeps after raising its shield so
// it can still fire
const shieldEnergyMargin = 2

// ChooseAction picks one battle action: retreat when unwilling to fight,
// raise the shield when affordable, otherwise fire the highest-priority
// usable weapon at the weakest enemy
func (p *Pilot) ChooseAction(w *world.World, s *ship.Ship, b *battle.Battle) action.Action {
	if !WillAttack(s) {
		return combat.Retreat(w, s)
	}
	target, ok := combat.SelectTarget(w, s, b)
	if !ok {
		return combat.Retreat(w, s)
	}
	if shield := s.Inventory().EffectModule(resource.EffectShield); shield != nil && !s.IsShielded() {
		activate := action.ActivateModule{Effect: resource.EffectShield}
		cost := shield.Spec().Activation
		if activate.CanExecute(w, s) == nil &&
			s.Inventory().Get(cost.Resource).Amount() >= cost.Amount+shieldEnergyMargin {
			return activate
		}
	}
	if fire, ok := combat.SelectWeapon(w, s, target); ok {
		return fire
	}
	return combat.Retreat(w, s)
}

// WillPursue implements combat.Tactician
func (p *Pilot) WillPursue(w *world.World, s *ship.Ship, target *ship.Ship) bool {
	return WillPursue(s, target)
}
