package galaxy

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Region is a subdivision of a landable planet's surface
type Region struct {
	Name  string
	Ore   *resource.OreType
	Owner shared.FactionID
}

// HasOre reports whether the region can be mined
func (r *Region) HasOre() bool {
	return r.Ore != nil
}

// Planet occupies one orbit of a sector
type Planet struct {
	Name     string
	Orbit    int
	Landable bool
	// OrbitOre is set for bodies that can be mined from orbit (belts, giants)
	OrbitOre *resource.OreType
	Regions  []*Region
	Owner    shared.FactionID
}

// Region finds a surface region by name
func (p *Planet) Region(name string) (*Region, bool) {
	for _, r := range p.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// OreRegions returns the regions that carry ore
func (p *Planet) OreRegions() []*Region {
	var out []*Region
	for _, r := range p.Regions {
		if r.HasOre() {
			out = append(out, r)
		}
	}
	return out
}

// IsOrbitMineable reports whether the body can be mined without landing
func (p *Planet) IsOrbitMineable() bool {
	return p.OrbitOre != nil
}

// Station is an orbit-level trading post
type Station struct {
	Name   string
	Orbit  int
	Owner  shared.FactionID
	Prices map[resource.Kind]int
	// Stock lists the item names the station sells
	Stock []string
}

// PriceOf returns the station's unit price, falling back to the catalog price
func (s *Station) PriceOf(k resource.Kind) int {
	if p, ok := s.Prices[k]; ok {
		return p
	}
	return resource.SpecFor(k).UnitPrice
}

// Sells reports whether the item is stocked
func (s *Station) Sells(item string) bool {
	for _, name := range s.Stock {
		if name == item {
			return true
		}
	}
	return false
}

// Sector is a coordinate cell with numbered orbits 1..Orbits, each holding at
// most one planet or station.
type Sector struct {
	Coord    shared.Coord
	Star     string
	Orbits   int
	Owner    shared.FactionID
	planets  map[int]*Planet
	stations map[int]*Station
}

// NewSector creates an empty sector with validation
func NewSector(coord shared.Coord, star string, orbits int, owner shared.FactionID) (*Sector, error) {
	if orbits < 1 {
		return nil, shared.NewValidationError("orbits", "a sector needs at least one orbit")
	}
	return &Sector{
		Coord:    coord,
		Star:     star,
		Orbits:   orbits,
		Owner:    owner,
		planets:  make(map[int]*Planet),
		stations: make(map[int]*Station),
	}, nil
}

// ValidOrbit reports whether orbit exists in the sector
func (s *Sector) ValidOrbit(orbit int) bool {
	return orbit >= 1 && orbit <= s.Orbits
}

func (s *Sector) occupied(orbit int) bool {
	_, p := s.planets[orbit]
	_, st := s.stations[orbit]
	return p || st
}

// AddPlanet places a planet on a free orbit
func (s *Sector) AddPlanet(p *Planet) error {
	if !s.ValidOrbit(p.Orbit) {
		return shared.NewValidationError("orbit", fmt.Sprintf("planet %s orbit %d outside 1..%d", p.Name, p.Orbit, s.Orbits))
	}
	if s.occupied(p.Orbit) {
		return shared.NewValidationError("orbit", fmt.Sprintf("orbit %d of %s already occupied", p.Orbit, s.Coord))
	}
	s.planets[p.Orbit] = p
	return nil
}

// AddStation places a station on a free orbit
func (s *Sector) AddStation(st *Station) error {
	if !s.ValidOrbit(st.Orbit) {
		return shared.NewValidationError("orbit", fmt.Sprintf("station %s orbit %d outside 1..%d", st.Name, st.Orbit, s.Orbits))
	}
	if s.occupied(st.Orbit) {
		return shared.NewValidationError("orbit", fmt.Sprintf("orbit %d of %s already occupied", st.Orbit, s.Coord))
	}
	s.stations[st.Orbit] = st
	return nil
}

// PlanetAt returns the planet occupying orbit, if any
func (s *Sector) PlanetAt(orbit int) (*Planet, bool) {
	p, ok := s.planets[orbit]
	return p, ok
}

// StationAt returns the station occupying orbit, if any
func (s *Sector) StationAt(orbit int) (*Station, bool) {
	st, ok := s.stations[orbit]
	return st, ok
}

func (s *Sector) String() string {
	return fmt.Sprintf("Sector(%s %s, %d orbits)", s.Star, s.Coord, s.Orbits)
}
