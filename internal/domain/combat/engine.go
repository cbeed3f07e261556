package combat

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/action"
	"github.com/andrescamacho/starfront-go/internal/domain/battle"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// Tactician decides for automated participants
type Tactician interface {
	// ChooseAction returns the one battle action s takes this round, or nil
	// to pass
	ChooseAction(w *world.World, s *ship.Ship, b *battle.Battle) action.Action
	// WillPursue reports whether s chases a fleeing target
	WillPursue(w *world.World, s *ship.Ship, target *ship.Ship) bool
}

// RoundResult summarises one call to ProcessTurn
type RoundResult struct {
	Battle     shared.BattleID
	Round      int
	Acted      int
	Casualties []shared.ShipID
	Escaped    []shared.ShipID
	Caught     []shared.ShipID
	Resolved   bool
	Stalemate  bool
}

// Engine resolves battle rounds. It holds no per-battle state; everything
// lives on the battle and the world.
type Engine struct {
	tactician Tactician
}

func NewEngine(t Tactician) *Engine {
	return &Engine{tactician: t}
}

// ProcessTurn runs one resolution round of b:
//  1. every living AI participant performs one battle action
//  2. destroyed participants are removed from their roster
//  3. flight attempts resolve; a fleeing ship escapes unless an opponent
//     pursues it
//  4. when a roster is empty, loot goes to credited destroyers and the
//     battle is torn down
//
// A round in which nobody could act and nobody fled dissolves the battle so
// it can never stay active without progress.
func (e *Engine) ProcessTurn(w *world.World, b *battle.Battle) RoundResult {
	res := RoundResult{Battle: b.ID(), Round: b.BeginRound()}
	if b.IsOver() {
		e.resolve(w, b, &res)
		return res
	}

	res.Acted = e.act(w, b)
	res.Casualties = e.removeCasualties(w, b)
	res.Escaped, res.Caught = e.resolveFlight(w, b)

	if b.IsOver() {
		e.resolve(w, b, &res)
		return res
	}
	progressed := res.Acted > 0 || len(res.Casualties) > 0 || len(res.Escaped) > 0 ||
		len(res.Caught) > 0 || len(b.Surrendered()) > 0
	if !progressed {
		res.Stalemate = true
		for _, id := range b.Participants() {
			if s, ok := w.Ship(id); ok {
				w.Notify(s, fmt.Sprintf("%s disengages: nobody can fight", s.Name()), world.SoundNone)
			}
		}
		e.resolve(w, b, &res)
		return res
	}
	b.ClearTurnState()
	return res
}

func (e *Engine) act(w *world.World, b *battle.Battle) int {
	acted := 0
	for _, id := range b.Participants() {
		s, ok := w.Ship(id)
		if !ok || s.IsDestroyed() || s.IsPlayer() {
			continue
		}
		if _, still := b.SideOf(id); !still || b.HasActed(id) {
			continue
		}
		a := e.tactician.ChooseAction(w, s, b)
		if a == nil {
			continue
		}
		if err := a.Execute(w, s); err == nil {
			acted++
		}
		if b.IsOver() {
			break
		}
	}
	return acted
}

func (e *Engine) removeCasualties(w *world.World, b *battle.Battle) []shared.ShipID {
	var out []shared.ShipID
	for _, id := range b.Participants() {
		s, ok := w.Ship(id)
		if !ok {
			b.Remove(id)
			continue
		}
		if s.IsAlive() && !s.Inventory().Hull().IsEmpty() {
			continue
		}
		if s.IsAlive() {
			w.Destroy(s, fmt.Sprintf("%s is destroyed", s.Name()))
		}
		w.LeaveBattle(b, s)
		b.RecordCasualty(id)
		out = append(out, id)
	}
	return out
}

func (e *Engine) resolveFlight(w *world.World, b *battle.Battle) (escaped, caught []shared.ShipID) {
	for _, id := range b.Fleeing() {
		s, ok := w.Ship(id)
		if !ok || s.IsDestroyed() {
			continue
		}
		if _, still := b.SideOf(id); !still {
			continue
		}
		if pursuer, ok := e.pursue(w, b, s); ok {
			caught = append(caught, id)
			w.Notify(s, fmt.Sprintf("%s is caught by %s", s.Name(), pursuer.Name()), world.SoundAlarm)
			continue
		}
		w.LeaveBattle(b, s)
		escaped = append(escaped, id)
		w.Notify(s, fmt.Sprintf("%s escapes", s.Name()), world.SoundEngine)
	}
	return escaped, caught
}

// pursue finds the first opponent, in roster order, willing and able to
// chase s
func (e *Engine) pursue(w *world.World, b *battle.Battle, s *ship.Ship) (*ship.Ship, bool) {
	for _, id := range b.PursuersOf(s.ID()) {
		if p, ok := w.Ship(id); ok && p.IsAlive() {
			return p, true
		}
	}
	for _, id := range b.Enemies(s.ID()) {
		p, ok := w.Ship(id)
		if !ok || p.IsDestroyed() || b.IsFleeing(id) {
			continue
		}
		if !e.tactician.WillPursue(w, p, s) {
			continue
		}
		if err := (action.Pursue{Target: s.ID()}).Execute(w, p); err == nil {
			return p, true
		}
	}
	return nil, false
}

func (e *Engine) resolve(w *world.World, b *battle.Battle, res *RoundResult) {
	for _, victimID := range b.Casualties() {
		victim, ok := w.Ship(victimID)
		if !ok {
			continue
		}
		destroyerID, ok := b.DestroyerOf(victimID)
		if !ok {
			continue
		}
		destroyer, ok := w.Ship(destroyerID)
		if !ok || destroyer.IsDestroyed() {
			continue
		}
		Salvage(w, destroyer, victim)
	}
	w.CloseBattle(b, b.Rounds())
	res.Resolved = true
}
