package resource

import (
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Inventory is a ship's resource stores plus its installed items.
//
// Invariants:
// - exactly one store per Kind
// - len(modules) <= MaxModules (additions past the limit are rejected)
type Inventory struct {
	stores  map[Kind]*Resource
	modules []*Module
}

// NewInventory creates the default loadout: full fuel, energy and hull, no ore
func NewInventory() *Inventory {
	return &Inventory{
		stores: map[Kind]*Resource{
			Fuel:   Full(Fuel),
			Energy: Full(Energy),
			Ore:    Empty(Ore),
			Hull:   Full(Hull),
		},
	}
}

// ReconstructInventory assembles an inventory from persisted stores and modules
func ReconstructInventory(stores []*Resource, modules []*Module) (*Inventory, error) {
	inv := &Inventory{stores: make(map[Kind]*Resource, len(Kinds))}
	for _, r := range stores {
		inv.stores[r.Kind()] = r
	}
	for _, k := range Kinds {
		if inv.stores[k] == nil {
			return nil, shared.NewValidationError("inventory", "missing store for "+string(k))
		}
	}
	if len(modules) > MaxModules {
		return nil, shared.NewValidationError("modules", "too many modules installed")
	}
	inv.modules = append(inv.modules, modules...)
	return inv, nil
}

// Get returns the store for a kind
func (inv *Inventory) Get(k Kind) *Resource {
	return inv.stores[k]
}

func (inv *Inventory) Fuel() *Resource { return inv.stores[Fuel] }
func (inv *Inventory) Energy() *Resource { return inv.stores[Energy] }
func (inv *Inventory) Ore() *Resource { return inv.stores[Ore] }
func (inv *Inventory) Hull() *Resource { return inv.stores[Hull] }

// Modules returns the installed items in installation order
func (inv *Inventory) Modules() []*Module {
	return inv.modules
}

func (inv *Inventory) ModuleCount() int {
	return len(inv.modules)
}

func (inv *Inventory) HasFreeSlot() bool {
	return len(inv.modules) < MaxModules
}

// AddModule installs an item. Rejected when the ship is at MaxModules.
func (inv *Inventory) AddModule(m *Module) error {
	if !inv.HasFreeSlot() {
		return shared.NewRejection("module limit reached: have %d, max %d", len(inv.modules), MaxModules)
	}
	inv.modules = append(inv.modules, m)
	return nil
}

// RemoveModule uninstalls the given module instance
func (inv *Inventory) RemoveModule(m *Module) bool {
	for i, existing := range inv.modules {
		if existing == m {
			inv.modules = append(inv.modules[:i], inv.modules[i+1:]...)
			return true
		}
	}
	return false
}

// FindModule returns the first installed module with the given name,
// preferring a functional one.
func (inv *Inventory) FindModule(name string) *Module {
	var damaged *Module
	for _, m := range inv.modules {
		if m.Name() != name {
			continue
		}
		if m.Usable() {
			return m
		}
		if damaged == nil {
			damaged = m
		}
	}
	return damaged
}

// FindDamaged returns the first damaged module with the given name
func (inv *Inventory) FindDamaged(name string) *Module {
	for _, m := range inv.modules {
		if m.Name() == name && m.IsDamaged() {
			return m
		}
	}
	return nil
}

// EffectModule returns the first usable module providing effect
func (inv *Inventory) EffectModule(effect Effect) *Module {
	for _, m := range inv.modules {
		if m.Spec().Kind == ItemModule && m.Spec().Effect == effect && m.Usable() {
			return m
		}
	}
	return nil
}

// IsEffectActive reports whether any installed module has effect switched on
func (inv *Inventory) IsEffectActive(effect Effect) bool {
	for _, m := range inv.modules {
		if m.IsActive() && m.Spec().Effect == effect {
			return true
		}
	}
	return false
}

// ActiveModules returns modules currently switched on
func (inv *Inventory) ActiveModules() []*Module {
	var out []*Module
	for _, m := range inv.modules {
		if m.IsActive() {
			out = append(out, m)
		}
	}
	return out
}

// Weapon returns the first usable weapon of the class
func (inv *Inventory) Weapon(class WeaponClass) *Module {
	for _, m := range inv.modules {
		if m.IsWeapon() && m.Spec().Class == class && m.Usable() {
			return m
		}
	}
	return nil
}

// HasUsableWeapon reports whether any weapon is installed and undamaged
func (inv *Inventory) HasUsableWeapon() bool {
	for _, m := range inv.modules {
		if m.IsWeapon() && m.Usable() {
			return true
		}
	}
	return false
}

// WeaponDamage sums the damage of usable weapons
func (inv *Inventory) WeaponDamage() int {
	total := 0
	for _, m := range inv.modules {
		if m.IsWeapon() && m.Usable() {
			total += m.Spec().Damage
		}
	}
	return total
}

// ModuleHit describes the outcome of a module damage roll
type ModuleHit struct {
	Module    string
	Destroyed bool
}

// DamageModules rolls for collateral module damage after a hull hit of
// rawDamage. A single module is picked at random; the pick always triggers
// when rawDamage >= hull capacity / module count and otherwise triggers with
// probability rawDamage / threshold.
func (inv *Inventory) DamageModules(rng shared.Random, rawDamage int) *ModuleHit {
	if len(inv.modules) == 0 || rawDamage <= 0 {
		return nil
	}
	threshold := inv.Hull().Capacity() / len(inv.modules)
	if threshold < 1 {
		threshold = 1
	}
	if rawDamage < threshold && !rng.Chance(rawDamage, threshold) {
		return nil
	}
	victim := inv.modules[rng.Intn(len(inv.modules))]
	hit := &ModuleHit{Module: victim.Name()}
	if victim.Hit() {
		inv.RemoveModule(victim)
		hit.Destroyed = true
	}
	return hit
}

// Value estimates what the inventory is worth at catalog prices
func (inv *Inventory) Value() int {
	total := 0
	for _, k := range Kinds {
		r := inv.stores[k]
		spec := specs[k]
		total += r.Amount()*spec.UnitPrice + r.Expanders()*spec.ExpanderPrice
	}
	for _, m := range inv.modules {
		if m.IsDamaged() {
			total += m.Spec().SalePrice()
			continue
		}
		total += m.Spec().Price
	}
	return total
}
