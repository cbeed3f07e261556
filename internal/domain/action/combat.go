package action

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/battle"
	"github.com/andrescamacho/starfront-go/internal/domain/faction"
	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// SurrenderShare is the fraction of credits a surrendering ship hands over
const SurrenderShare = 4

var weaponSounds = map[resource.WeaponClass]world.Sound{
	resource.WeaponEnergy:     world.SoundLaser,
	resource.WeaponAmmunition: world.SoundTorpedo,
	resource.WeaponBeam:       world.SoundBeam,
}

func lookupTarget(w *world.World, id shared.ShipID) (*ship.Ship, error) {
	t, ok := w.Ship(id)
	if !ok || t.IsDestroyed() {
		return nil, shared.NewRejection("no such target %s", id)
	}
	return t, nil
}

// currentBattle resolves the battle s is fighting in
func currentBattle(w *world.World, s *ship.Ship, verb string) (*battle.Battle, error) {
	b, ok := w.BattleOf(s)
	if !ok {
		return nil, shared.NewRejection("cannot %s: not in battle", verb)
	}
	return b, nil
}

// enemyIn checks that target fights on the other side of b
func enemyIn(b *battle.Battle, s *ship.Ship, target *ship.Ship) error {
	mine, _ := b.SideOf(s.ID())
	theirs, ok := b.SideOf(target.ID())
	if !ok || theirs == mine {
		return shared.NewRejection("%s is not an enemy in this battle", target.Name())
	}
	return nil
}

// Engage attacks a ship on the same orbit, opening a battle or joining the
// target's battle on the opposite side
type Engage struct {
	Target shared.ShipID
}

func (a Engage) Name() string { return NameEngage }

func (a Engage) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if err := checkNotInBattle(s, "engage"); err != nil {
		return err
	}
	if _, err := orbitalOnly(s, "engage"); err != nil {
		return err
	}
	target, err := lookupTarget(w, a.Target)
	if err != nil {
		return err
	}
	if target.ID() == s.ID() {
		return shared.NewRejection("cannot engage yourself")
	}
	switch target.Location().(type) {
	case location.Orbital, location.InBattle:
	default:
		return shared.NewRejection("%s is out of reach at %s", target.Name(), target.Location())
	}
	if !location.SameOrbit(s.Location(), target.Location()) {
		return shared.NewRejection("%s is not on this orbit", target.Name())
	}
	if target.IsCloaked() {
		return shared.NewRejection("%s cannot be targeted while cloaked", target.Name())
	}
	return checkCost(s, CostOf(NameEngage))
}

func (a Engage) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Engage) apply(w *world.World, s *ship.Ship) error {
	target, _ := w.Ship(a.Target)
	if b, ok := w.BattleOf(target); ok {
		side, _ := b.SideOf(target.ID())
		if err := w.JoinBattle(b, s, side.Opposite()); err != nil {
			return err
		}
	} else if _, err := w.OpenBattle(s, target); err != nil {
		return err
	}
	pay(s, CostOf(NameEngage))
	if f := target.Faction(); !f.IsZero() && f != s.Faction() {
		s.Reputation().Adjust(f, -faction.AggressionPenalty)
	}
	w.Notify(s, fmt.Sprintf("%s engages %s", s.Name(), target.Name()), world.SoundAlarm)
	return nil
}

// Fire shoots the first usable weapon of Class at an enemy in the same
// battle
type Fire struct {
	Target shared.ShipID
	Class  resource.WeaponClass
}

func (a Fire) Name() string { return NameFire }

func (a Fire) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	b, err := currentBattle(w, s, "fire")
	if err != nil {
		return err
	}
	target, err := lookupTarget(w, a.Target)
	if err != nil {
		return err
	}
	if err := enemyIn(b, s, target); err != nil {
		return err
	}
	if target.IsCloaked() {
		return shared.NewRejection("%s cannot be targeted while cloaked", target.Name())
	}
	weapon := s.Inventory().Weapon(a.Class)
	if weapon == nil {
		return shared.NewRejection("no working %s weapon installed", a.Class)
	}
	return checkCost(s, weapon.Spec().FireCost)
}

func (a Fire) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Fire) apply(w *world.World, s *ship.Ship) error {
	b, _ := w.BattleOf(s)
	target, _ := w.Ship(a.Target)
	weapon := s.Inventory().Weapon(a.Class)
	pay(s, weapon.Spec().FireCost)

	raw := weapon.Spec().Damage
	damage := ShieldedDamage(target, raw)
	hull := target.Inventory().Hull()
	hull.ChangeAmount(-damage)
	w.Notify(s, fmt.Sprintf("%s hits %s with a %s for %d", s.Name(), target.Name(), weapon.Name(), damage), weaponSounds[a.Class])

	if hit := target.Inventory().DamageModules(w.Rand(), raw); hit != nil {
		verb := "damaged"
		if hit.Destroyed {
			verb = "destroyed"
		}
		w.Notify(target, fmt.Sprintf("%s's %s is %s", target.Name(), hit.Module, verb), world.SoundAlarm)
	}
	if hull.IsEmpty() {
		b.CreditDestroyer(target.ID(), s.ID())
		w.Destroy(target, fmt.Sprintf("%s is destroyed by %s", target.Name(), s.Name()))
	}
	return nil
}

// ShieldedDamage is the damage that gets through target's defences: an
// active shield halves it, rounding up
func ShieldedDamage(target *ship.Ship, raw int) int {
	if target.IsShielded() {
		return raw - raw/2
	}
	return raw
}

// Flee declares an escape attempt, resolved at the end of the battle round
type Flee struct{}

func (a Flee) Name() string { return NameFlee }

func (a Flee) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	b, err := currentBattle(w, s, "flee")
	if err != nil {
		return err
	}
	if b.IsFleeing(s.ID()) {
		return shared.NewRejection("already fleeing")
	}
	return checkCost(s, CostOf(NameFlee))
}

func (a Flee) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Flee) apply(w *world.World, s *ship.Ship) error {
	b, _ := w.BattleOf(s)
	pay(s, CostOf(NameFlee))
	b.DeclareFlee(s.ID())
	w.Notify(s, fmt.Sprintf("%s tries to flee", s.Name()), world.SoundEngine)
	return nil
}

// Pursue chases a fleeing enemy; a pursued ship fails to escape
type Pursue struct {
	Target shared.ShipID
}

func (a Pursue) Name() string { return NamePursue }

func (a Pursue) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	b, err := currentBattle(w, s, "pursue")
	if err != nil {
		return err
	}
	target, err := lookupTarget(w, a.Target)
	if err != nil {
		return err
	}
	if err := enemyIn(b, s, target); err != nil {
		return err
	}
	if !b.IsFleeing(target.ID()) {
		return shared.NewRejection("%s is not fleeing", target.Name())
	}
	if target.IsCloaked() {
		return shared.NewRejection("%s cannot be pursued while cloaked", target.Name())
	}
	if b.IsFleeing(s.ID()) {
		return shared.NewRejection("cannot pursue while fleeing")
	}
	return checkCost(s, CostOf(NamePursue))
}

func (a Pursue) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Pursue) apply(w *world.World, s *ship.Ship) error {
	b, _ := w.BattleOf(s)
	target, _ := w.Ship(a.Target)
	pay(s, CostOf(NamePursue))
	b.DeclarePursuit(s.ID(), target.ID())
	w.Notify(s, fmt.Sprintf("%s pursues %s", s.Name(), target.Name()), world.SoundEngine)
	return nil
}

// Surrender leaves the battle, paying a quarter of the ship's credits to the
// first living opponent
type Surrender struct{}

func (a Surrender) Name() string { return NameSurrender }

func (a Surrender) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	b, err := currentBattle(w, s, "surrender")
	if err != nil {
		return err
	}
	if b.HasSurrendered(s.ID()) {
		return shared.NewRejection("already surrendered")
	}
	return nil
}

func (a Surrender) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Surrender) apply(w *world.World, s *ship.Ship) error {
	b, _ := w.BattleOf(s)
	b.DeclareSurrender(s.ID())
	tribute := s.Credits() / SurrenderShare
	for _, id := range b.Enemies(s.ID()) {
		victor, ok := w.Ship(id)
		if !ok || victor.IsDestroyed() {
			continue
		}
		if tribute > 0 {
			w.Transfer(s, ledger.TransactionSurrender, -tribute, "surrender to "+victor.Name(), victor.Name())
			w.Transfer(victor, ledger.TransactionSurrender, tribute, "tribute from "+s.Name(), s.Name())
		}
		break
	}
	w.LeaveBattle(b, s)
	w.Notify(s, fmt.Sprintf("%s surrenders and pays %d credits", s.Name(), tribute), world.SoundNone)
	return nil
}

// Distress calls for rescue from the faction holding the ship in highest
// regard. The rescue costs standing and restores fuel and energy to at
// least half capacity and hull to at least 1.
type Distress struct{}

func (a Distress) Name() string { return NameDistress }

func (a Distress) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if err := checkNotInBattle(s, "call for rescue"); err != nil {
		return err
	}
	if _, ok := s.Reputation().Rescuer(w.Factions().IDs()); !ok {
		return shared.NewRejection("no faction will answer: standing below %d everywhere", faction.DistressThreshold)
	}
	return nil
}

func (a Distress) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Distress) apply(w *world.World, s *ship.Ship) error {
	rescuer, _ := s.Reputation().Rescuer(w.Factions().IDs())
	s.Reputation().Adjust(rescuer, -faction.DistressCost)

	inv := s.Inventory()
	for _, store := range []*resource.Resource{inv.Fuel(), inv.Energy()} {
		if half := store.Capacity() / 2; store.Amount() < half {
			store.ChangeAmount(half - store.Amount())
		}
	}
	if inv.Hull().IsEmpty() {
		inv.Hull().ChangeAmount(1)
	}
	s.ClearDestination()
	w.Notify(s, fmt.Sprintf("%s answers %s's distress call", rescuer, s.Name()), world.SoundAlarm)
	return nil
}
