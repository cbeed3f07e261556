package action

import (
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// Action is a gameplay command. Every mutation of simulation state goes
// through one.
//
// CanExecute is a pure predicate: it returns nil when the action is legal for
// s, otherwise a *shared.Rejection with a human-readable reason. Execute
// re-validates with CanExecute and, only if legal, applies the debit,
// transition and side effects. Both return the same rejection for the same
// state, so players and AI see one set of rules.
type Action interface {
	Name() string
	CanExecute(w *world.World, s *ship.Ship) error
	Execute(w *world.World, s *ship.Ship) error
}

// applier is implemented by every concrete action; apply runs only after
// CanExecute passed. An error from apply means CanExecute missed a case.
type applier interface {
	Action
	apply(w *world.World, s *ship.Ship) error
}

// perform is the single validate-then-act path shared by every action
func perform(w *world.World, s *ship.Ship, a applier) error {
	if err := a.CanExecute(w, s); err != nil {
		w.Observer().ActionCompleted(s.ID(), a.Name(), err)
		return err
	}
	err := a.apply(w, s)
	w.Observer().ActionCompleted(s.ID(), a.Name(), err)
	return err
}

// Common preconditions

func checkAlive(s *ship.Ship) error {
	if s.IsDestroyed() {
		return shared.NewRejection("%s is destroyed", s.Name())
	}
	return nil
}

func checkNotInBattle(s *ship.Ship, verb string) error {
	if _, ok := s.InBattle(); ok {
		return shared.NewRejection("cannot %s while in battle", verb)
	}
	return nil
}

// checkCost rejects when s cannot pay c, stating the exact shortfall
func checkCost(s *ship.Ship, c resource.Cost) error {
	if c.IsFree() {
		return nil
	}
	have := s.Inventory().Get(c.Resource).Amount()
	if have < c.Amount {
		return shared.NewInsufficientError(c.Resource.String(), have, c.Amount)
	}
	return nil
}

func checkCredits(s *ship.Ship, price int) error {
	if !s.CanAfford(price) {
		return shared.NewInsufficientError("credits", s.Credits(), price)
	}
	return nil
}

func pay(s *ship.Ship, c resource.Cost) {
	if !c.IsFree() {
		s.Inventory().Get(c.Resource).ChangeAmount(-c.Amount)
	}
}

// Location helpers

func orbitalOnly(s *ship.Ship, verb string) (location.Orbital, error) {
	o, ok := s.Location().(location.Orbital)
	if !ok {
		return location.Orbital{}, shared.NewRejection("cannot %s from %s", verb, s.Location())
	}
	return o, nil
}

func interstellarOnly(s *ship.Ship, verb string) (location.Interstellar, error) {
	l, ok := s.Location().(location.Interstellar)
	if !ok {
		return location.Interstellar{}, shared.NewRejection("cannot %s from %s", verb, s.Location())
	}
	return l, nil
}

func surfaceOnly(s *ship.Ship, verb string) (location.Surface, error) {
	l, ok := s.Location().(location.Surface)
	if !ok {
		return location.Surface{}, shared.NewRejection("cannot %s: not landed", verb)
	}
	return l, nil
}

func dockedOnly(s *ship.Ship, verb string) (location.Docked, error) {
	l, ok := s.Location().(location.Docked)
	if !ok {
		return location.Docked{}, shared.NewRejection("cannot %s: not docked", verb)
	}
	return l, nil
}
