package ai

import (
	"github.com/andrescamacho/starfront-go/internal/domain/galaxy"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// siteFunc proposes a destination on one orbit of a sector
type siteFunc func(sector *galaxy.Sector, orbit int) (location.Location, bool)

// SymmetricOrbits lists the orbits of a sector nearest-first from orbit
// `from`: from, from-1, from+1, from-2, from+2, ... Invalid orbits are
// skipped.
func SymmetricOrbits(sector *galaxy.Sector, from int) []int {
	out := make([]int, 0, sector.Orbits)
	if sector.ValidOrbit(from) {
		out = append(out, from)
	}
	for k := 1; from-k >= 1 || from+k <= sector.Orbits; k++ {
		if o := from - k; sector.ValidOrbit(o) {
			out = append(out, o)
		}
		if o := from + k; sector.ValidOrbit(o) {
			out = append(out, o)
		}
	}
	return out
}

// inwardOrbits lists orbits from the outermost down, the order a ship
// entering from open space reaches them
func inwardOrbits(sector *galaxy.Sector) []int {
	out := make([]int, 0, sector.Orbits)
	for o := sector.Orbits; o >= 1; o-- {
		out = append(out, o)
	}
	return out
}

// search scans the ship's own sector symmetrically from its orbit, then the
// other sectors nearest-first by grid distance
func search(w *world.World, s *ship.Ship, pick siteFunc) (location.Location, bool) {
	g := w.Galaxy()
	here := location.Unwrap(s.Location())
	current, inSector := here.(location.OrbitalLocation)

	if inSector {
		if sector, ok := g.SectorAt(here.Coord()); ok {
			for _, o := range SymmetricOrbits(sector, current.Orbit()) {
				if dest, ok := pick(sector, o); ok {
					return dest, true
				}
			}
		}
	}
	radius := max(g.Width(), g.Height())
	for _, sector := range g.SectorsByDistance(here.Coord(), radius) {
		if inSector && sector.Coord == here.Coord() {
			continue
		}
		for _, o := range inwardOrbits(sector) {
			if dest, ok := pick(sector, o); ok {
				return dest, true
			}
		}
	}
	return nil, false
}

// FindClosestMiningDestination finds the nearest place to mine: a body
// mineable from orbit, or a random ore-bearing region on a landable planet
func FindClosestMiningDestination(w *world.World, s *ship.Ship) (location.Location, bool) {
	g := w.Galaxy()
	return search(w, s, func(sector *galaxy.Sector, orbit int) (location.Location, bool) {
		planet, ok := sector.PlanetAt(orbit)
		if !ok || w.IsHostile(s, planet.Owner) {
			return nil, false
		}
		if planet.IsOrbitMineable() {
			dest, err := location.NewOrbital(g, sector.Coord, orbit)
			return dest, err == nil
		}
		if !planet.Landable {
			return nil, false
		}
		regions := planet.OreRegions()
		if len(regions) == 0 {
			return nil, false
		}
		region := regions[w.Rand().Intn(len(regions))]
		dest, err := location.NewSurface(g, sector.Coord, orbit, region.Name)
		return dest, err == nil
	})
}

// FindClosestStation finds the nearest station that will grant docking
func FindClosestStation(w *world.World, s *ship.Ship) (location.Location, bool) {
	g := w.Galaxy()
	return search(w, s, func(sector *galaxy.Sector, orbit int) (location.Location, bool) {
		station, ok := sector.StationAt(orbit)
		if !ok || w.IsHostile(s, station.Owner) {
			return nil, false
		}
		dest, err := location.NewDocked(g, sector.Coord, orbit)
		return dest, err == nil
	})
}
