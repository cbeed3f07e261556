package location

import (
	"github.com/andrescamacho/starfront-go/internal/domain/galaxy"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Transitions only answer "does the target exist". Costs and situational
// rules (already docked, not enough fuel) are checked by actions before
// calling them. A false result means the move is structurally impossible.

// Burn moves one cell in direction d through open space
func Burn(g galaxy.Query, from Interstellar, d shared.Direction) (Interstellar, bool) {
	if !d.IsUnit() {
		return Interstellar{}, false
	}
	to, err := NewInterstellar(g, from.coord.Add(d))
	if err != nil {
		return Interstellar{}, false
	}
	return to, true
}

// EnterSector crosses into the sector at the current coordinate, arriving
// at its outermost orbit
func EnterSector(g galaxy.Query, from Interstellar) (Orbital, bool) {
	sector, ok := g.SectorAt(from.coord)
	if !ok {
		return Orbital{}, false
	}
	to, err := NewOrbital(g, from.coord, sector.Orbits)
	if err != nil {
		return Orbital{}, false
	}
	return to, true
}

// EscapeSector leaves the sector into open space. Only possible from the
// outermost orbit.
func EscapeSector(g galaxy.Query, from Orbital) (Interstellar, bool) {
	sector, ok := g.SectorAt(from.coord)
	if !ok || from.orbit != sector.Orbits {
		return Interstellar{}, false
	}
	return from.Interstellar, true
}

// RaiseOrbit moves one ring outward. From the outermost orbit this is the
// same move as EscapeSector and yields an Interstellar location.
func RaiseOrbit(g galaxy.Query, from Orbital) (Location, bool) {
	sector, ok := g.SectorAt(from.coord)
	if !ok {
		return nil, false
	}
	if from.orbit == sector.Orbits {
		out, ok := EscapeSector(g, from)
		if !ok {
			return nil, false
		}
		return out, true
	}
	to, err := NewOrbital(g, from.coord, from.orbit+1)
	if err != nil {
		return nil, false
	}
	return to, true
}

// LowerOrbit moves one ring inward; impossible from orbit 1
func LowerOrbit(g galaxy.Query, from Orbital) (Orbital, bool) {
	to, err := NewOrbital(g, from.coord, from.orbit-1)
	if err != nil {
		return Orbital{}, false
	}
	return to, true
}

// Land touches down in a region of the landable planet at the orbit
func Land(g galaxy.Query, from Orbital, region string) (Surface, bool) {
	to, err := NewSurface(g, from.coord, from.orbit, region)
	if err != nil {
		return Surface{}, false
	}
	return to, true
}

// TakeOff returns to the planet's orbit
func TakeOff(from Surface) Orbital {
	return from.Orbital
}

// Relocate moves to another region of the same planet
func Relocate(g galaxy.Query, from Surface, region string) (Surface, bool) {
	if region == from.region {
		return Surface{}, false
	}
	return Land(g, from.Orbital, region)
}

// Dock attaches to the station at the orbit
func Dock(g galaxy.Query, from Orbital) (Docked, bool) {
	to, err := NewDocked(g, from.coord, from.orbit)
	if err != nil {
		return Docked{}, false
	}
	return to, true
}

// Undock returns to the station's orbit
func Undock(from Docked) Orbital {
	return from.Orbital
}

// JoinBattle wraps an orbital-level location into the battle
func JoinBattle(from Location, battle shared.BattleID) (InBattle, bool) {
	o, ok := from.(OrbitalLocation)
	if !ok {
		return InBattle{}, false
	}
	return NewInBattle(o, battle), true
}

// LeaveBattle restores the location held before the battle
func LeaveBattle(from InBattle) Location {
	return from.prior
}
