package action

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/faction"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// JoinFaction enlists with a faction that holds the ship in high enough
// regard
type JoinFaction struct {
	Faction shared.FactionID
}

func (a JoinFaction) Name() string { return NameJoinFaction }

func (a JoinFaction) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if _, ok := w.Factions().Get(a.Faction); !ok {
		return shared.NewRejection("unknown faction %q", a.Faction)
	}
	if s.Faction() == a.Faction {
		return shared.NewRejection("already a member of %s", a.Faction)
	}
	if !s.Faction().IsZero() {
		return shared.NewRejection("must leave %s first", s.Faction())
	}
	if !s.Reputation().CanJoin(a.Faction) {
		return shared.NewInsufficientError("standing with "+a.Faction.String(), s.Reputation().Get(a.Faction), faction.MembershipThreshold)
	}
	return nil
}

func (a JoinFaction) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a JoinFaction) apply(w *world.World, s *ship.Ship) error {
	s.SetFaction(a.Faction)
	w.Notify(s, fmt.Sprintf("%s joins %s", s.Name(), a.Faction), world.SoundNone)
	return nil
}

// LeaveFaction resigns membership, stepping down if the ship leads
type LeaveFaction struct{}

func (a LeaveFaction) Name() string { return NameLeave }

func (a LeaveFaction) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if s.Faction().IsZero() {
		return shared.NewRejection("not a member of any faction")
	}
	return nil
}

func (a LeaveFaction) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a LeaveFaction) apply(w *world.World, s *ship.Ship) error {
	f := s.Faction()
	w.Factions().StepDown(f, s.ID())
	s.SetFaction("")
	w.Notify(s, fmt.Sprintf("%s leaves %s", s.Name(), f), world.SoundNone)
	return nil
}
