package action

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// ActivateModule switches on a shield or cloak, paying its activation cost
type ActivateModule struct {
	Effect resource.Effect
}

func (a ActivateModule) Name() string { return NameActivate }

func (a ActivateModule) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if s.Inventory().IsEffectActive(a.Effect) {
		return shared.NewRejection("%s already active", a.Effect)
	}
	m := s.Inventory().EffectModule(a.Effect)
	if m == nil {
		return shared.NewRejection("no working %s module installed", a.Effect)
	}
	if a.Effect == resource.EffectCloak {
		if _, ok := s.InBattle(); ok {
			return shared.NewRejection("cannot cloak while in battle")
		}
	}
	return checkCost(s, m.Spec().Activation)
}

func (a ActivateModule) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a ActivateModule) apply(w *world.World, s *ship.Ship) error {
	m := s.Inventory().EffectModule(a.Effect)
	pay(s, m.Spec().Activation)
	m.SetActive(true)
	w.Notify(s, fmt.Sprintf("%s activates its %s", s.Name(), m.Name()), world.SoundShield)
	return nil
}

// DeactivateModule switches an effect off. Free.
type DeactivateModule struct {
	Effect resource.Effect
}

func (a DeactivateModule) Name() string { return NameDeactivate }

func (a DeactivateModule) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if !s.Inventory().IsEffectActive(a.Effect) {
		return shared.NewRejection("%s is not active", a.Effect)
	}
	return nil
}

func (a DeactivateModule) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a DeactivateModule) apply(w *world.World, s *ship.Ship) error {
	for _, m := range s.Inventory().ActiveModules() {
		if m.Spec().Effect == a.Effect {
			m.SetActive(false)
			w.Notify(s, fmt.Sprintf("%s deactivates its %s", s.Name(), m.Name()), world.SoundNone)
		}
	}
	return nil
}

// Upkeep charges the recurring cost of every active module. A module whose
// upkeep cannot be paid in full shuts down.
type Upkeep struct{}

func (a Upkeep) Name() string { return NameUpkeep }

func (a Upkeep) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if len(s.Inventory().ActiveModules()) == 0 {
		return shared.NewRejection("no active modules")
	}
	return nil
}

func (a Upkeep) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Upkeep) apply(w *world.World, s *ship.Ship) error {
	for _, m := range s.Inventory().ActiveModules() {
		cost := m.Spec().Upkeep
		if cost.IsFree() {
			continue
		}
		if !s.Inventory().Get(cost.Resource).ChangeAmount(-cost.Amount) {
			m.SetActive(false)
			w.Notify(s, fmt.Sprintf("%s's %s shuts down: out of %s", s.Name(), m.Name(), cost.Resource), world.SoundAlarm)
		}
	}
	return nil
}
