package ship

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/faction"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// StartingCredits is the balance of a freshly spawned ship
const StartingCredits = 200

// Controller says who drives a ship each turn
type Controller string

const (
	ControllerPlayer Controller = "player"
	ControllerAI     Controller = "ai"
)

// Specialization is an AI ship's habitual role; voters favour candidates
// sharing it
type Specialization string

const (
	Miner   Specialization = "miner"
	Trader  Specialization = "trader"
	Fighter Specialization = "fighter"
)

var validSpecializations = map[Specialization]bool{
	Miner:   true,
	Trader:  true,
	Fighter: true,
}

// ParseSpecialization validates a specialization name
func ParseSpecialization(s string) (Specialization, error) {
	sp := Specialization(s)
	if !validSpecializations[sp] {
		return "", fmt.Errorf("unknown specialization %q", s)
	}
	return sp, nil
}

// Ship is an actor of the simulation.
//
// Invariants:
// - credits >= 0
// - a destroyed ship is never revived and is excluded from rosters
// - location changes only by swapping in a new value
//
// Only actions and the battle engine mutate a ship's inventory, location
// or battle membership.
type Ship struct {
	id             shared.ShipID
	name           string
	controller     Controller
	specialization Specialization
	faction        shared.FactionID
	credits        int
	destroyed      bool

	location    location.Location
	destination location.Location
	inventory   *resource.Inventory
	reputation  *faction.Reputation
}

// New spawns a ship with the default loadout at loc
func New(id shared.ShipID, name string, controller Controller, specialization Specialization, loc location.Location) (*Ship, error) {
	s := &Ship{
		id:             id,
		name:           name,
		controller:     controller,
		specialization: specialization,
		credits:        StartingCredits,
		location:       loc,
		inventory:      resource.NewInventory(),
		reputation:     faction.NewReputation(),
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Ship) validate() error {
	if s.id.IsZero() {
		return shared.NewValidationError("id", "ship id must be positive")
	}
	if s.name == "" {
		return shared.NewValidationError("name", "cannot be empty")
	}
	if s.controller != ControllerPlayer && s.controller != ControllerAI {
		return shared.NewValidationError("controller", fmt.Sprintf("unknown controller %q", s.controller))
	}
	if !validSpecializations[s.specialization] {
		return shared.NewValidationError("specialization", fmt.Sprintf("unknown specialization %q", s.specialization))
	}
	if s.location == nil {
		return shared.NewValidationError("location", "cannot be nil")
	}
	if s.credits < 0 {
		return shared.NewValidationError("credits", "cannot be negative")
	}
	return nil
}

// Getters

func (s *Ship) ID() shared.ShipID {
	return s.id
}

func (s *Ship) Name() string {
	return s.name
}

func (s *Ship) Controller() Controller {
	return s.controller
}

func (s *Ship) IsPlayer() bool {
	return s.controller == ControllerPlayer
}

func (s *Ship) Specialization() Specialization {
	return s.specialization
}

func (s *Ship) Faction() shared.FactionID {
	return s.faction
}

func (s *Ship) Credits() int {
	return s.credits
}

func (s *Ship) Location() location.Location {
	return s.location
}

func (s *Ship) Inventory() *resource.Inventory {
	return s.inventory
}

func (s *Ship) Reputation() *faction.Reputation {
	return s.reputation
}

func (s *Ship) IsDestroyed() bool {
	return s.destroyed
}

func (s *Ship) IsAlive() bool {
	return !s.destroyed
}

// IsShielded reports whether a shield is switched on
func (s *Ship) IsShielded() bool {
	return s.inventory.IsEffectActive(resource.EffectShield)
}

// IsCloaked reports whether a cloak is switched on
func (s *Ship) IsCloaked() bool {
	return s.inventory.IsEffectActive(resource.EffectCloak)
}

// InBattle returns the battle the ship is fighting in
func (s *Ship) InBattle() (shared.BattleID, bool) {
	if b, ok := s.location.(location.InBattle); ok {
		return b.Battle(), true
	}
	return "", false
}

// Mutators

// MoveTo swaps in a new location
func (s *Ship) MoveTo(l location.Location) {
	s.location = l
}

// CanAfford reports whether the balance covers amount
func (s *Ship) CanAfford(amount int) bool {
	return s.credits >= amount
}

// ChangeCredits applies delta, clamping the balance at zero. Returns the
// delta actually applied.
func (s *Ship) ChangeCredits(delta int) int {
	before := s.credits
	s.credits += delta
	if s.credits < 0 {
		s.credits = 0
	}
	return s.credits - before
}

// SetFaction changes affiliation; the zero FactionID leaves any faction
func (s *Ship) SetFaction(f shared.FactionID) {
	s.faction = f
}

// MarkDestroyed is terminal
func (s *Ship) MarkDestroyed() {
	s.destroyed = true
	s.destination = nil
	for _, m := range s.inventory.ActiveModules() {
		m.SetActive(false)
	}
}

// Destination is the AI travel target, if any
func (s *Ship) Destination() (location.Location, bool) {
	return s.destination, s.destination != nil
}

func (s *Ship) SetDestination(l location.Location) {
	s.destination = l
}

func (s *Ship) ClearDestination() {
	s.destination = nil
}

// Power is the rough fighting strength used by AI policies
func (s *Ship) Power() int {
	return s.inventory.Hull().Amount() + s.inventory.WeaponDamage()
}

// Value estimates the ship's worth (credits plus inventory at catalog prices)
func (s *Ship) Value() int {
	return s.credits + s.inventory.Value()
}

func (s *Ship) String() string {
	return fmt.Sprintf("%s(%s) at %s", s.name, s.id, s.location)
}
