package faction

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Relationship between two factions
type Relationship int

const (
	Peace Relationship = iota
	War
	Alliance
)

func (r Relationship) String() string {
	switch r {
	case Peace:
		return "peace"
	case War:
		return "war"
	case Alliance:
		return "alliance"
	}
	return fmt.Sprintf("Relationship(%d)", int(r))
}

// ParseRelationship reverses Relationship.String
func ParseRelationship(s string) (Relationship, error) {
	switch s {
	case "peace", "":
		return Peace, nil
	case "war":
		return War, nil
	case "alliance":
		return Alliance, nil
	}
	return Peace, fmt.Errorf("unknown relationship %q", s)
}

// Faction is an opaque political identity with an optional leader
type Faction struct {
	id        shared.FactionID
	name      string
	leader    shared.ShipID
	hasLeader bool
}

func (f *Faction) ID() shared.FactionID {
	return f.id
}

func (f *Faction) Name() string {
	return f.name
}

// Leader returns the leading ship, if one has been elected
func (f *Faction) Leader() (shared.ShipID, bool) {
	return f.leader, f.hasLeader
}

type pair struct {
	a, b shared.FactionID
}

func newPair(a, b shared.FactionID) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a: a, b: b}
}

// Registry holds every faction of a session in registration order, plus the
// symmetric relationship table
type Registry struct {
	factions  map[shared.FactionID]*Faction
	order     []shared.FactionID
	relations map[pair]Relationship
}

func NewRegistry() *Registry {
	return &Registry{
		factions:  make(map[shared.FactionID]*Faction),
		relations: make(map[pair]Relationship),
	}
}

// Add registers a faction
func (r *Registry) Add(id shared.FactionID, name string) (*Faction, error) {
	if id.IsZero() {
		return nil, shared.NewValidationError("faction", "id cannot be empty")
	}
	if _, exists := r.factions[id]; exists {
		return nil, shared.NewValidationError("faction", fmt.Sprintf("%s already registered", id))
	}
	f := &Faction{id: id, name: name}
	r.factions[id] = f
	r.order = append(r.order, id)
	return f, nil
}

func (r *Registry) Get(id shared.FactionID) (*Faction, bool) {
	f, ok := r.factions[id]
	return f, ok
}

// IDs returns faction ids in registration order
func (r *Registry) IDs() []shared.FactionID {
	out := make([]shared.FactionID, len(r.order))
	copy(out, r.order)
	return out
}

// Relationship returns how a and b stand. A faction is always allied with
// itself; unknown pairs are at peace.
func (r *Registry) Relationship(a, b shared.FactionID) Relationship {
	if a == b {
		return Alliance
	}
	return r.relations[newPair(a, b)]
}

// SetRelationship records a symmetric relationship
func (r *Registry) SetRelationship(a, b shared.FactionID, rel Relationship) error {
	if a == b {
		return shared.NewValidationError("relationship", "a faction cannot relate to itself")
	}
	if _, ok := r.factions[a]; !ok {
		return shared.NewValidationError("relationship", fmt.Sprintf("unknown faction %s", a))
	}
	if _, ok := r.factions[b]; !ok {
		return shared.NewValidationError("relationship", fmt.Sprintf("unknown faction %s", b))
	}
	r.relations[newPair(a, b)] = rel
	return nil
}

// AtWar reports whether two distinct, non-empty factions are at war
func (r *Registry) AtWar(a, b shared.FactionID) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return r.Relationship(a, b) == War
}

// Leader returns the faction's leader
func (r *Registry) Leader(id shared.FactionID) (shared.ShipID, bool) {
	f, ok := r.factions[id]
	if !ok {
		return 0, false
	}
	return f.Leader()
}

// SetLeader installs a leader; the zero ShipID clears it
func (r *Registry) SetLeader(id shared.FactionID, ship shared.ShipID) error {
	f, ok := r.factions[id]
	if !ok {
		return shared.NewValidationError("faction", fmt.Sprintf("unknown faction %s", id))
	}
	f.leader = ship
	f.hasLeader = !ship.IsZero()
	return nil
}

// StepDown clears the faction's leader if it is ship
func (r *Registry) StepDown(id shared.FactionID, ship shared.ShipID) bool {
	f, ok := r.factions[id]
	if !ok || !f.hasLeader || f.leader != ship {
		return false
	}
	f.leader, f.hasLeader = 0, false
	return true
}
