package universe

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/faction"
	"github.com/andrescamacho/starfront-go/internal/domain/galaxy"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// BuildGalaxy creates the galaxy and every sector
func (f *File) BuildGalaxy() (*galaxy.Galaxy, error) {
	g, err := galaxy.New(f.Galaxy.ID, f.Galaxy.Width, f.Galaxy.Height)
	if err != nil {
		return nil, fmt.Errorf("galaxy: %w", err)
	}
	for _, def := range f.Sectors {
		sector, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("sector %q: %w", def.Star, err)
		}
		if err := g.AddSector(sector); err != nil {
			return nil, fmt.Errorf("sector %q: %w", def.Star, err)
		}
	}
	return g, nil
}

func (def SectorDef) build() (*galaxy.Sector, error) {
	sector, err := galaxy.NewSector(shared.NewCoord(def.X, def.Y), def.Star, def.Orbits, shared.FactionID(def.Owner))
	if err != nil {
		return nil, err
	}
	for _, p := range def.Planets {
		planet, err := p.build()
		if err != nil {
			return nil, fmt.Errorf("planet %q: %w", p.Name, err)
		}
		if err := sector.AddPlanet(planet); err != nil {
			return nil, err
		}
	}
	for _, st := range def.Stations {
		station, err := st.build()
		if err != nil {
			return nil, fmt.Errorf("station %q: %w", st.Name, err)
		}
		if err := sector.AddStation(station); err != nil {
			return nil, err
		}
	}
	return sector, nil
}

func (def PlanetDef) build() (*galaxy.Planet, error) {
	orbitOre, err := lookupOre(def.OrbitOre)
	if err != nil {
		return nil, err
	}
	planet := &galaxy.Planet{
		Name:     def.Name,
		Orbit:    def.Orbit,
		Landable: def.Landable,
		OrbitOre: orbitOre,
		Owner:    shared.FactionID(def.Owner),
	}
	for _, r := range def.Regions {
		ore, err := lookupOre(r.Ore)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", r.Name, err)
		}
		planet.Regions = append(planet.Regions, &galaxy.Region{Name: r.Name, Ore: ore, Owner: shared.FactionID(r.Owner)})
	}
	return planet, nil
}

func (def StationDef) build() (*galaxy.Station, error) {
	station := &galaxy.Station{
		Name:  def.Name,
		Orbit: def.Orbit,
		Owner: shared.FactionID(def.Owner),
		Stock: def.Stock,
	}
	for _, item := range def.Stock {
		if _, ok := resource.LookupItem(item); !ok {
			return nil, fmt.Errorf("unknown item %q", item)
		}
	}
	if len(def.Prices) > 0 {
		station.Prices = make(map[resource.Kind]int, len(def.Prices))
		for name, price := range def.Prices {
			k, err := resource.ParseKind(name)
			if err != nil {
				return nil, err
			}
			if price < 0 {
				return nil, fmt.Errorf("negative price for %s", name)
			}
			station.Prices[k] = price
		}
	}
	return station, nil
}

func lookupOre(name string) (*resource.OreType, error) {
	if name == "" {
		return nil, nil
	}
	ore, ok := resource.LookupOre(name)
	if !ok {
		return nil, fmt.Errorf("unknown ore %q", name)
	}
	return &ore, nil
}

// BuildFactions registers the factions and their relationships
func (f *File) BuildFactions() (*faction.Registry, error) {
	r := faction.NewRegistry()
	for _, def := range f.Factions {
		if _, err := r.Add(shared.FactionID(def.ID), def.Name); err != nil {
			return nil, err
		}
	}
	for _, rel := range f.Relationships {
		status, err := faction.ParseRelationship(rel.Status)
		if err != nil {
			return nil, err
		}
		a, b := shared.FactionID(rel.Between[0]), shared.FactionID(rel.Between[1])
		if err := r.SetRelationship(a, b, status); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Build creates a world seeded with seed and spawns every ship
func (f *File) Build(seed int64, opts ...world.Option) (*world.World, error) {
	g, err := f.BuildGalaxy()
	if err != nil {
		return nil, err
	}
	factions, err := f.BuildFactions()
	if err != nil {
		return nil, err
	}
	w := world.New(g, factions, shared.NewSeededRandom(seed, g.ID()), opts...)
	if err := f.SpawnShips(w); err != nil {
		return nil, err
	}
	return w, nil
}

// SpawnShips adds every ship definition to w, numbering them after the ships
// already present
func (f *File) SpawnShips(w *world.World) error {
	for _, def := range f.Ships {
		s, err := def.build(w)
		if err != nil {
			return fmt.Errorf("ship %q: %w", def.Name, err)
		}
		if err := w.AddShip(s); err != nil {
			return fmt.Errorf("ship %q: %w", def.Name, err)
		}
	}
	return nil
}

func (def ShipDef) build(w *world.World) (*ship.Ship, error) {
	loc, err := def.Location.build(w.Galaxy())
	if err != nil {
		return nil, err
	}
	controller := ship.Controller(def.Controller)
	if controller == "" {
		controller = ship.ControllerAI
	}
	spec := ship.Miner
	if def.Specialization != "" {
		if spec, err = ship.ParseSpecialization(def.Specialization); err != nil {
			return nil, err
		}
	}
	s, err := ship.New(w.NextShipID(), def.Name, controller, spec, loc)
	if err != nil {
		return nil, err
	}

	if def.Faction != "" {
		id := shared.FactionID(def.Faction)
		if _, ok := w.Factions().Get(id); !ok {
			return nil, fmt.Errorf("unknown faction %q", def.Faction)
		}
		s.SetFaction(id)
	}
	if def.Credits != nil {
		if *def.Credits < 0 {
			return nil, fmt.Errorf("negative credits")
		}
		s.ChangeCredits(*def.Credits - s.Credits())
	}
	for _, name := range def.Modules {
		item, ok := resource.LookupItem(name)
		if !ok {
			return nil, fmt.Errorf("unknown item %q", name)
		}
		if err := s.Inventory().AddModule(resource.NewModule(item)); err != nil {
			return nil, err
		}
	}
	for name, n := range def.Expanders {
		k, err := resource.ParseKind(name)
		if err != nil {
			return nil, err
		}
		if err := s.Inventory().Get(k).Expand(n); err != nil {
			return nil, err
		}
	}
	for name, amount := range def.Resources {
		k, err := resource.ParseKind(name)
		if err != nil {
			return nil, err
		}
		r := s.Inventory().Get(k)
		if amount < 0 || amount > r.Capacity() {
			return nil, fmt.Errorf("%s amount %d outside 0..%d", name, amount, r.Capacity())
		}
		r.ChangeAmount(amount - r.Amount())
	}
	for name, v := range def.Reputation {
		s.Reputation().Set(shared.FactionID(name), v)
	}
	return s, nil
}

func (def LocationDef) build(g galaxy.Query) (location.Location, error) {
	kind, err := location.ParseKind(def.Kind)
	if err != nil {
		return nil, err
	}
	c := shared.NewCoord(def.X, def.Y)
	switch kind {
	case location.KindInterstellar:
		return location.NewInterstellar(g, c)
	case location.KindOrbital:
		return location.NewOrbital(g, c, def.Orbit)
	case location.KindSurface:
		return location.NewSurface(g, c, def.Orbit, def.Region)
	case location.KindDocked:
		return location.NewDocked(g, c, def.Orbit)
	}
	return nil, fmt.Errorf("ships cannot spawn in %s", kind)
}
