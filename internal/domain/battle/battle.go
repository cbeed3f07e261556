package battle

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Side of a battle roster
type Side int

const (
	Attackers Side = iota
	Defenders
)

func (s Side) String() string {
	if s == Attackers {
		return "attackers"
	}
	return "defenders"
}

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == Attackers {
		return Defenders
	}
	return Attackers
}

// Battle is a multi-party combat encounter at one orbital location.
//
// Lifecycle: active while both rosters are non-empty; resolved otherwise.
// There is no other state. Per-turn intents (flee, surrender, pursuit) are
// cleared at the end of every resolution round.
type Battle struct {
	id        shared.BattleID
	seq       int
	at        location.Orbital
	attackers []shared.ShipID
	defenders []shared.ShipID

	fleeing     []shared.ShipID
	surrendered []shared.ShipID
	pursuits    map[shared.ShipID]shared.ShipID // pursuer -> target

	destroyers map[shared.ShipID]shared.ShipID // victim -> credited destroyer
	casualties []shared.ShipID
	rounds     int
}

// New opens a battle between one attacker and one defender. seq orders
// battles by creation for deterministic turn processing.
func New(id shared.BattleID, seq int, at location.Orbital, attacker, defender shared.ShipID) (*Battle, error) {
	if attacker == defender {
		return nil, shared.NewValidationError("roster", "a ship cannot fight itself")
	}
	return &Battle{
		id:         id,
		seq:        seq,
		at:         at,
		attackers:  []shared.ShipID{attacker},
		defenders:  []shared.ShipID{defender},
		pursuits:   make(map[shared.ShipID]shared.ShipID),
		destroyers: make(map[shared.ShipID]shared.ShipID),
	}, nil
}

func (b *Battle) ID() shared.BattleID {
	return b.id
}

func (b *Battle) Seq() int {
	return b.seq
}

// BeginRound increments and returns the round counter
func (b *Battle) BeginRound() int {
	b.rounds++
	return b.rounds
}

// Rounds is the number of resolution rounds fought so far
func (b *Battle) Rounds() int {
	return b.rounds
}

// At is the orbit the battle takes place on
func (b *Battle) At() location.Orbital {
	return b.at
}

func (b *Battle) Attackers() []shared.ShipID {
	return append([]shared.ShipID(nil), b.attackers...)
}

func (b *Battle) Defenders() []shared.ShipID {
	return append([]shared.ShipID(nil), b.defenders...)
}

// Roster returns the members of side
func (b *Battle) Roster(side Side) []shared.ShipID {
	if side == Attackers {
		return b.Attackers()
	}
	return b.Defenders()
}

// Participants lists attackers then defenders
func (b *Battle) Participants() []shared.ShipID {
	return append(b.Attackers(), b.defenders...)
}

// SideOf reports which roster holds id
func (b *Battle) SideOf(id shared.ShipID) (Side, bool) {
	if contains(b.attackers, id) {
		return Attackers, true
	}
	if contains(b.defenders, id) {
		return Defenders, true
	}
	return 0, false
}

// Enemies returns the opposing roster of id
func (b *Battle) Enemies(id shared.ShipID) []shared.ShipID {
	side, ok := b.SideOf(id)
	if !ok {
		return nil
	}
	return b.Roster(side.Opposite())
}

// Join adds a ship to a side
func (b *Battle) Join(id shared.ShipID, side Side) error {
	if _, ok := b.SideOf(id); ok {
		return shared.NewRejection("%s is already fighting in %s", id, b.id)
	}
	if side == Attackers {
		b.attackers = append(b.attackers, id)
	} else {
		b.defenders = append(b.defenders, id)
	}
	return nil
}

// Remove drops a ship from whichever roster holds it
func (b *Battle) Remove(id shared.ShipID) bool {
	var removed bool
	b.attackers, removed = without(b.attackers, id)
	if !removed {
		b.defenders, removed = without(b.defenders, id)
	}
	return removed
}

// IsOver reports whether either roster is empty
func (b *Battle) IsOver() bool {
	return len(b.attackers) == 0 || len(b.defenders) == 0
}

// Size is the combined roster size
func (b *Battle) Size() int {
	return len(b.attackers) + len(b.defenders)
}

// Per-turn intents

func (b *Battle) DeclareFlee(id shared.ShipID) {
	if !contains(b.fleeing, id) {
		b.fleeing = append(b.fleeing, id)
	}
}

func (b *Battle) IsFleeing(id shared.ShipID) bool {
	return contains(b.fleeing, id)
}

// Fleeing returns ships that declared flight this turn, in declaration order
func (b *Battle) Fleeing() []shared.ShipID {
	return append([]shared.ShipID(nil), b.fleeing...)
}

func (b *Battle) DeclareSurrender(id shared.ShipID) {
	if !contains(b.surrendered, id) {
		b.surrendered = append(b.surrendered, id)
	}
}

func (b *Battle) HasSurrendered(id shared.ShipID) bool {
	return contains(b.surrendered, id)
}

func (b *Battle) Surrendered() []shared.ShipID {
	return append([]shared.ShipID(nil), b.surrendered...)
}

// DeclarePursuit records that pursuer will chase target if it flees
func (b *Battle) DeclarePursuit(pursuer, target shared.ShipID) {
	b.pursuits[pursuer] = target
}

// PursuersOf returns the ships chasing target, in roster order
func (b *Battle) PursuersOf(target shared.ShipID) []shared.ShipID {
	var out []shared.ShipID
	for _, id := range b.Participants() {
		if t, ok := b.pursuits[id]; ok && t == target {
			out = append(out, id)
		}
	}
	return out
}

// HasActed reports whether id already declared an intent this turn
func (b *Battle) HasActed(id shared.ShipID) bool {
	_, pursuing := b.pursuits[id]
	return pursuing || b.IsFleeing(id) || b.HasSurrendered(id)
}

// ClearTurnState forgets flee/surrender/pursuit declarations
func (b *Battle) ClearTurnState() {
	b.fleeing = nil
	b.surrendered = nil
	b.pursuits = make(map[shared.ShipID]shared.ShipID)
}

// Casualties and salvage credit

// CreditDestroyer remembers who landed the killing blow on victim
func (b *Battle) CreditDestroyer(victim, destroyer shared.ShipID) {
	b.destroyers[victim] = destroyer
}

func (b *Battle) DestroyerOf(victim shared.ShipID) (shared.ShipID, bool) {
	d, ok := b.destroyers[victim]
	return d, ok
}

// RecordCasualty removes victim from its roster and keeps it for looting
func (b *Battle) RecordCasualty(victim shared.ShipID) {
	b.Remove(victim)
	if !contains(b.casualties, victim) {
		b.casualties = append(b.casualties, victim)
	}
}

// Casualties returns destroyed ships awaiting loot distribution
func (b *Battle) Casualties() []shared.ShipID {
	return append([]shared.ShipID(nil), b.casualties...)
}

// Teardown clears every roster. Callers revert participants' locations first.
func (b *Battle) Teardown() {
	b.attackers = nil
	b.defenders = nil
	b.ClearTurnState()
}

func (b *Battle) String() string {
	return fmt.Sprintf("Battle[%s at %s, %d vs %d]", b.id, b.at, len(b.attackers), len(b.defenders))
}

func contains(ids []shared.ShipID, id shared.ShipID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func without(ids []shared.ShipID, id shared.ShipID) ([]shared.ShipID, bool) {
	for i, x := range ids {
		if x == id {
			return append(ids[:i:i], ids[i+1:]...), true
		}
	}
	return ids, false
}
