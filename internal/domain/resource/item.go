package resource

import "fmt"

// ItemKind is the closed set of equippable item kinds
type ItemKind int

const (
	ItemModule ItemKind = iota
	ItemWeapon
)

func (k ItemKind) String() string {
	switch k {
	case ItemModule:
		return "module"
	case ItemWeapon:
		return "weapon"
	}
	return fmt.Sprintf("ItemKind(%d)", int(k))
}

// Effect is the toggleable effect a utility module provides
type Effect int

const (
	EffectNone Effect = iota
	EffectShield
	EffectCloak
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectShield:
		return "shield"
	case EffectCloak:
		return "cloak"
	}
	return fmt.Sprintf("Effect(%d)", int(e))
}

// WeaponClass orders weapons by how readily they are used in combat
type WeaponClass int

const (
	// WeaponEnergy fires instantaneously from the energy store
	WeaponEnergy WeaponClass = iota
	// WeaponAmmunition consumes ore as ammunition
	WeaponAmmunition
	// WeaponBeam is the heavy, expensive option
	WeaponBeam
)

// WeaponPriority is the order automated combatants try weapons in
var WeaponPriority = []WeaponClass{WeaponEnergy, WeaponAmmunition, WeaponBeam}

func (c WeaponClass) String() string {
	switch c {
	case WeaponEnergy:
		return "energy"
	case WeaponAmmunition:
		return "ammunition"
	case WeaponBeam:
		return "beam"
	}
	return fmt.Sprintf("WeaponClass(%d)", int(c))
}

// ItemSpec is the fixed catalog data of an equippable item. Which fields are
// meaningful depends on Kind: Effect/Activation/Upkeep for modules,
// Class/FireCost/Damage for weapons.
type ItemSpec struct {
	Name  string
	Kind  ItemKind
	Price int

	Effect     Effect
	Activation Cost
	Upkeep     Cost

	Class    WeaponClass
	FireCost Cost
	Damage   int
}

const (
	Laser      = "Laser"
	TorpedoBay = "Torpedo Bay"
	PulseBeam  = "Pulse Beam"
	Shield     = "Shield"
	Cloak      = "Cloak"
)

// MaxModules is the per-ship limit on installed items
const MaxModules = 4

var catalog = []ItemSpec{
	{Name: Laser, Kind: ItemWeapon, Price: 100, Class: WeaponEnergy, FireCost: Cost{Energy, 1}, Damage: 1},
	{Name: TorpedoBay, Kind: ItemWeapon, Price: 200, Class: WeaponAmmunition, FireCost: Cost{Ore, 1}, Damage: 3},
	{Name: PulseBeam, Kind: ItemWeapon, Price: 350, Class: WeaponBeam, FireCost: Cost{Energy, 3}, Damage: 4},
	{Name: Shield, Kind: ItemModule, Price: 150, Effect: EffectShield, Activation: Cost{Energy, 2}, Upkeep: Cost{Energy, 1}},
	{Name: Cloak, Kind: ItemModule, Price: 300, Effect: EffectCloak, Activation: Cost{Energy, 3}, Upkeep: Cost{Energy, 2}},
}

// Catalog returns every known item in a stable order
func Catalog() []ItemSpec {
	out := make([]ItemSpec, len(catalog))
	copy(out, catalog)
	return out
}

// LookupItem finds an item by name
func LookupItem(name string) (ItemSpec, bool) {
	for _, spec := range catalog {
		if spec.Name == name {
			return spec, true
		}
	}
	return ItemSpec{}, false
}

// WeaponOfClass returns the catalog weapon of the given class
func WeaponOfClass(class WeaponClass) ItemSpec {
	for _, spec := range catalog {
		if spec.Kind == ItemWeapon && spec.Class == class {
			return spec
		}
	}
	panic(fmt.Sprintf("no weapon of class %s in catalog", class))
}

// ModuleWithEffect returns the catalog module providing the effect
func ModuleWithEffect(effect Effect) ItemSpec {
	for _, spec := range catalog {
		if spec.Kind == ItemModule && spec.Effect == effect {
			return spec
		}
	}
	panic(fmt.Sprintf("no module with effect %s in catalog", effect))
}

// SalePrice is what a station pays for a used item
func (s ItemSpec) SalePrice() int {
	return s.Price / 2
}

// RepairPrice is what a station charges to repair a damaged item
func (s ItemSpec) RepairPrice() int {
	return s.Price / 2
}

// OreType describes what a mineable body or region yields
type OreType struct {
	Name    string
	Density int
}

var (
	Iron    = OreType{Name: "iron", Density: 1}
	Cobalt  = OreType{Name: "cobalt", Density: 2}
	Iridium = OreType{Name: "iridium", Density: 3}
)

// LookupOre resolves an ore type by name
func LookupOre(name string) (OreType, bool) {
	for _, o := range []OreType{Iron, Cobalt, Iridium} {
		if o.Name == name {
			return o, true
		}
	}
	return OreType{}, false
}
