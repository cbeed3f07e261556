package world

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/andrescamacho/starfront-go/internal/domain/battle"
	"github.com/andrescamacho/starfront-go/internal/domain/faction"
	"github.com/andrescamacho/starfront-go/internal/domain/galaxy"
	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// World is the simulation context of one session. It owns every ship and
// battle by id, and carries the galaxy, faction registry, random source and
// the outbound hooks. It is passed explicitly down the turn call chain.
//
// World is not safe for concurrent use; a turn runs on a single goroutine.
type World struct {
	galaxy   *galaxy.Galaxy
	factions *faction.Registry
	rng      shared.Random
	clock    shared.Clock
	turn     int

	ships      map[shared.ShipID]*ship.Ship
	shipOrder  []shared.ShipID
	battles    map[shared.BattleID]*battle.Battle
	battleSeq  int
	battleUUID uuid.UUID

	notifier Notifier
	observer Observer
	journal  *ledger.Journal
}

// Option configures a World
type Option func(*World)

func WithNotifier(n Notifier) Option {
	return func(w *World) { w.notifier = n }
}

func WithObserver(o Observer) Option {
	return func(w *World) { w.observer = o }
}

func WithClock(c shared.Clock) Option {
	return func(w *World) { w.clock = c }
}

func WithJournal(j *ledger.Journal) Option {
	return func(w *World) { w.journal = j }
}

// New creates a session context
func New(g *galaxy.Galaxy, factions *faction.Registry, rng shared.Random, opts ...Option) *World {
	w := &World{
		galaxy:     g,
		factions:   factions,
		rng:        rng,
		clock:      shared.NewRealClock(),
		ships:      make(map[shared.ShipID]*ship.Ship),
		battles:    make(map[shared.BattleID]*battle.Battle),
		battleUUID: uuid.NewSHA1(uuid.NameSpaceURL, []byte("starfront:"+g.ID())),
		notifier:   nopNotifier{},
		observer:   nopObserver{},
		journal:    ledger.NewJournal(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *World) Galaxy() *galaxy.Galaxy {
	return w.galaxy
}

func (w *World) Factions() *faction.Registry {
	return w.factions
}

func (w *World) Rand() shared.Random {
	return w.rng
}

func (w *World) Clock() shared.Clock {
	return w.clock
}

func (w *World) Journal() *ledger.Journal {
	return w.journal
}

func (w *World) Observer() Observer {
	return w.observer
}

// Turn is the number of completed turns
func (w *World) Turn() int {
	return w.turn
}

// EndTurn advances the turn counter
func (w *World) EndTurn() int {
	w.turn++
	return w.turn
}

// Ships

// AddShip registers a ship in the arena
func (w *World) AddShip(s *ship.Ship) error {
	if _, exists := w.ships[s.ID()]; exists {
		return shared.NewValidationError("id", fmt.Sprintf("%s already registered", s.ID()))
	}
	w.ships[s.ID()] = s
	w.shipOrder = append(w.shipOrder, s.ID())
	sort.Slice(w.shipOrder, func(i, j int) bool { return w.shipOrder[i] < w.shipOrder[j] })
	return nil
}

// NextShipID returns an id one above the current maximum
func (w *World) NextShipID() shared.ShipID {
	if len(w.shipOrder) == 0 {
		return 1
	}
	return w.shipOrder[len(w.shipOrder)-1] + 1
}

func (w *World) Ship(id shared.ShipID) (*ship.Ship, bool) {
	s, ok := w.ships[id]
	return s, ok
}

// Ships returns every ship, destroyed included, ordered by id
func (w *World) Ships() []*ship.Ship {
	out := make([]*ship.Ship, 0, len(w.shipOrder))
	for _, id := range w.shipOrder {
		out = append(out, w.ships[id])
	}
	return out
}

// LivingShips returns ships not yet destroyed, ordered by id
func (w *World) LivingShips() []*ship.Ship {
	var out []*ship.Ship
	for _, id := range w.shipOrder {
		if s := w.ships[id]; s.IsAlive() {
			out = append(out, s)
		}
	}
	return out
}

// ShipsAt returns living ships at exactly l (same refinement level)
func (w *World) ShipsAt(l location.Location) []*ship.Ship {
	var out []*ship.Ship
	for _, s := range w.LivingShips() {
		if s.Location().Equal(l) {
			out = append(out, s)
		}
	}
	return out
}

// ShipsOnOrbit returns living ships anywhere on the orbit of l (surface,
// docked and in-battle included)
func (w *World) ShipsOnOrbit(l location.Location) []*ship.Ship {
	var out []*ship.Ship
	for _, s := range w.LivingShips() {
		if location.SameOrbit(s.Location(), l) {
			out = append(out, s)
		}
	}
	return out
}

// ShipsInFaction returns living members of f
func (w *World) ShipsInFaction(f shared.FactionID) []*ship.Ship {
	var out []*ship.Ship
	for _, s := range w.LivingShips() {
		if s.Faction() == f {
			out = append(out, s)
		}
	}
	return out
}

// Destroy marks s destroyed and emits the event. Destruction is terminal.
func (w *World) Destroy(s *ship.Ship, message string) {
	if s.IsDestroyed() {
		return
	}
	s.MarkDestroyed()
	w.Notify(s, message, SoundExplosion)
	w.observer.ShipDestroyed(s.ID())
}

// Battles

// OpenBattle creates a battle at the attacker's orbit and moves both ships
// into it
func (w *World) OpenBattle(attacker, defender *ship.Ship) (*battle.Battle, error) {
	at, ok := attacker.Location().(location.OrbitalLocation)
	if !ok {
		return nil, shared.NewRejection("%s is not on an orbit", attacker.Name())
	}
	w.battleSeq++
	id := shared.BattleID(uuid.NewSHA1(w.battleUUID, []byte(fmt.Sprintf("%d", w.battleSeq))).String())
	b, err := battle.New(id, w.battleSeq, at.AtOrbit(), attacker.ID(), defender.ID())
	if err != nil {
		return nil, err
	}
	w.battles[id] = b
	w.enterBattle(attacker, id)
	w.enterBattle(defender, id)
	w.observer.BattleOpened(id)
	return b, nil
}

// JoinBattle adds s to side of b
func (w *World) JoinBattle(b *battle.Battle, s *ship.Ship, side battle.Side) error {
	if err := b.Join(s.ID(), side); err != nil {
		return err
	}
	w.enterBattle(s, b.ID())
	return nil
}

func (w *World) enterBattle(s *ship.Ship, id shared.BattleID) {
	if in, ok := location.JoinBattle(s.Location(), id); ok {
		s.MoveTo(in)
	}
}

// LeaveBattle removes s from b and restores its prior location
func (w *World) LeaveBattle(b *battle.Battle, s *ship.Ship) {
	b.Remove(s.ID())
	if in, ok := s.Location().(location.InBattle); ok && in.Battle() == b.ID() {
		s.MoveTo(location.LeaveBattle(in))
	}
}

// CloseBattle tears b down, reverting every remaining participant
func (w *World) CloseBattle(b *battle.Battle, rounds int) {
	for _, id := range b.Participants() {
		if s, ok := w.ships[id]; ok {
			w.LeaveBattle(b, s)
		}
	}
	b.Teardown()
	delete(w.battles, b.ID())
	w.observer.BattleResolved(b.ID(), rounds)
}

func (w *World) Battle(id shared.BattleID) (*battle.Battle, bool) {
	b, ok := w.battles[id]
	return b, ok
}

// BattleOf returns the battle s is fighting in
func (w *World) BattleOf(s *ship.Ship) (*battle.Battle, bool) {
	id, ok := s.InBattle()
	if !ok {
		return nil, false
	}
	return w.Battle(id)
}

// Battles returns active battles in creation order
func (w *World) Battles() []*battle.Battle {
	out := make([]*battle.Battle, 0, len(w.battles))
	for _, b := range w.battles {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq() < out[j].Seq() })
	return out
}

// Hooks

// Notify emits a message about s
func (w *World) Notify(s *ship.Ship, message string, sound Sound) {
	w.notifier.Notify(Notification{Turn: w.turn, Ship: s.ID(), Message: message, Sound: sound})
}

// Transfer applies a credit delta to s and journals it. A zero delta is a
// no-op.
func (w *World) Transfer(s *ship.Ship, kind ledger.TransactionType, delta int, description, counterparty string) {
	before := s.Credits()
	applied := s.ChangeCredits(delta)
	if applied == 0 {
		return
	}
	tx, err := ledger.NewTransaction(s.ID(), w.turn, w.clock.Now(), kind, applied, before, description, counterparty)
	if err != nil {
		return
	}
	w.journal.Append(tx)
}

// Standing

// IsHostile reports whether faction f treats s as an enemy: its standing
// with f is at or below the hostile threshold, or s's faction is at war
// with f
func (w *World) IsHostile(s *ship.Ship, f shared.FactionID) bool {
	if f.IsZero() {
		return false
	}
	return s.Reputation().IsHostile(f) || w.factions.AtWar(s.Faction(), f)
}

// AreEnemies reports whether a and b would fight on sight
func (w *World) AreEnemies(a, b *ship.Ship) bool {
	if a.ID() == b.ID() {
		return false
	}
	if !a.Faction().IsZero() && a.Faction() == b.Faction() {
		return false
	}
	return w.IsHostile(a, b.Faction()) || w.IsHostile(b, a.Faction())
}
