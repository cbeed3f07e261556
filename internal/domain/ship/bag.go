package ship

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrescamacho/starfront-go/internal/domain/faction"
	"github.com/andrescamacho/starfront-go/internal/domain/galaxy"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Property bag keys. Resource stores use "<kind>" and "<kind>.expanders";
// reputation uses "rep.<faction>".
const (
	KeyID             = "id"
	KeyName           = "name"
	KeyController     = "controller"
	KeySpecialization = "specialization"
	KeyFaction        = "faction"
	KeyCredits        = "credits"
	KeyDestroyed      = "destroyed"
	KeyModules        = "modules"

	expanderSuffix = ".expanders"
	repPrefix      = "rep."
	moduleSep      = ";"
)

// PropertyBag is the flat persistence shape of a ship
type PropertyBag map[string]string

// Export flattens the ship into a property bag. A ship in battle is exported
// at the location it held before the battle.
func (s *Ship) Export() PropertyBag {
	bag := PropertyBag{
		KeyID:             strconv.Itoa(int(s.id)),
		KeyName:           s.name,
		KeyController:     string(s.controller),
		KeySpecialization: string(s.specialization),
		KeyFaction:        string(s.faction),
		KeyCredits:        strconv.Itoa(s.credits),
		KeyDestroyed:      strconv.FormatBool(s.destroyed),
	}
	location.Export(s.location, bag)

	for _, k := range resource.Kinds {
		r := s.inventory.Get(k)
		bag[string(k)] = strconv.Itoa(r.Amount())
		bag[string(k)+expanderSuffix] = strconv.Itoa(r.Expanders())
	}

	tokens := make([]string, 0, s.inventory.ModuleCount())
	for _, m := range s.inventory.Modules() {
		tokens = append(tokens, m.Encode())
	}
	bag[KeyModules] = strings.Join(tokens, moduleSep)

	for _, f := range s.reputation.Factions() {
		bag[repPrefix+string(f)] = strconv.Itoa(s.reputation.Get(f))
	}
	return bag
}

// Reconstruct rebuilds a ship from a property bag, validating its location
// against g
func Reconstruct(g galaxy.Query, bag PropertyBag) (*Ship, error) {
	id, err := bagInt(bag, KeyID)
	if err != nil {
		return nil, err
	}
	credits, err := bagInt(bag, KeyCredits)
	if err != nil {
		return nil, err
	}
	loc, err := location.Reconstruct(g, bag)
	if err != nil {
		return nil, fmt.Errorf("ship %d location: %w", id, err)
	}

	stores := make([]*resource.Resource, 0, len(resource.Kinds))
	for _, k := range resource.Kinds {
		amount, err := bagInt(bag, string(k))
		if err != nil {
			return nil, err
		}
		expanders, err := bagInt(bag, string(k)+expanderSuffix)
		if err != nil {
			return nil, err
		}
		r, err := resource.New(k, amount, expanders)
		if err != nil {
			return nil, fmt.Errorf("ship %d: %w", id, err)
		}
		stores = append(stores, r)
	}

	var modules []*resource.Module
	if raw := bag[KeyModules]; raw != "" {
		for _, token := range strings.Split(raw, moduleSep) {
			m, err := resource.DecodeModule(token)
			if err != nil {
				return nil, fmt.Errorf("ship %d: %w", id, err)
			}
			modules = append(modules, m)
		}
	}
	inv, err := resource.ReconstructInventory(stores, modules)
	if err != nil {
		return nil, fmt.Errorf("ship %d: %w", id, err)
	}

	rep := faction.NewReputation()
	for key, raw := range bag {
		if !strings.HasPrefix(key, repPrefix) {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		rep.Set(shared.FactionID(strings.TrimPrefix(key, repPrefix)), v)
	}

	destroyed, _ := strconv.ParseBool(bag[KeyDestroyed])
	s := &Ship{
		id:             shared.ShipID(id),
		name:           bag[KeyName],
		controller:     Controller(bag[KeyController]),
		specialization: Specialization(bag[KeySpecialization]),
		faction:        shared.FactionID(bag[KeyFaction]),
		credits:        credits,
		destroyed:      destroyed,
		location:       loc,
		inventory:      inv,
		reputation:     rep,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func bagInt(bag PropertyBag, key string) (int, error) {
	raw, ok := bag[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
