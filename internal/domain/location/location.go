package location

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/galaxy"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Kind tags the refinement level of a location
type Kind int

const (
	KindInterstellar Kind = iota
	KindOrbital
	KindSurface
	KindDocked
	KindInBattle
)

func (k Kind) String() string {
	switch k {
	case KindInterstellar:
		return "interstellar"
	case KindOrbital:
		return "orbital"
	case KindSurface:
		return "surface"
	case KindDocked:
		return "docked"
	case KindInBattle:
		return "battle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind reverses Kind.String
func ParseKind(s string) (Kind, error) {
	for k := KindInterstellar; k <= KindInBattle; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown location kind %q", s)
}

// Location is where an actor is. The set of variants is closed:
// Interstellar, Orbital, Surface, Docked and InBattle. Values are immutable;
// transitions produce new values.
type Location interface {
	Galaxy() string
	Coord() shared.Coord
	Kind() Kind
	Equal(other Location) bool
	String() string

	sealed()
}

// OrbitalLocation is implemented by every variant that sits on an orbit of
// a sector (Orbital, Surface, Docked, InBattle).
type OrbitalLocation interface {
	Location
	Orbit() int
	// AtOrbit strips any refinement and returns the bare orbital position
	AtOrbit() Orbital
}

// Interstellar is open space at a galaxy coordinate
type Interstellar struct {
	galaxy string
	coord  shared.Coord
}

// NewInterstellar validates that c lies inside the galaxy
func NewInterstellar(g galaxy.Query, c shared.Coord) (Interstellar, error) {
	if !g.InBounds(c) {
		return Interstellar{}, shared.NewValidationError("coord", fmt.Sprintf("%s is outside galaxy %s", c, g.ID()))
	}
	return Interstellar{galaxy: g.ID(), coord: c}, nil
}

func (l Interstellar) Galaxy() string { return l.galaxy }
func (l Interstellar) Coord() shared.Coord { return l.coord }
func (l Interstellar) Kind() Kind { return KindInterstellar }
func (l Interstellar) sealed() {}

func (l Interstellar) Equal(other Location) bool {
	o, ok := other.(Interstellar)
	return ok && o.galaxy == l.galaxy && o.coord == l.coord
}

func (l Interstellar) String() string {
	return fmt.Sprintf("interstellar %s", l.coord)
}

// Orbital is a ring of the sector at Coord
type Orbital struct {
	Interstellar
	orbit int
}

// NewOrbital validates that a sector exists at c and has the orbit
func NewOrbital(g galaxy.Query, c shared.Coord, orbit int) (Orbital, error) {
	base, err := NewInterstellar(g, c)
	if err != nil {
		return Orbital{}, err
	}
	sector, ok := g.SectorAt(c)
	if !ok {
		return Orbital{}, shared.NewValidationError("coord", fmt.Sprintf("no sector at %s", c))
	}
	if !sector.ValidOrbit(orbit) {
		return Orbital{}, shared.NewValidationError("orbit", fmt.Sprintf("orbit %d outside 1..%d at %s", orbit, sector.Orbits, c))
	}
	return Orbital{Interstellar: base, orbit: orbit}, nil
}

func (l Orbital) Orbit() int { return l.orbit }
func (l Orbital) AtOrbit() Orbital { return l }
func (l Orbital) Kind() Kind { return KindOrbital }

func (l Orbital) Equal(other Location) bool {
	o, ok := other.(Orbital)
	return ok && o.Interstellar.Equal(l.Interstellar) && o.orbit == l.orbit
}

func (l Orbital) String() string {
	return fmt.Sprintf("orbit %d of %s", l.orbit, l.coord)
}

// Surface is a region on the landable planet at the orbit
type Surface struct {
	Orbital
	region string
}

// NewSurface validates that a landable planet occupies the orbit and owns region
func NewSurface(g galaxy.Query, c shared.Coord, orbit int, region string) (Surface, error) {
	o, err := NewOrbital(g, c, orbit)
	if err != nil {
		return Surface{}, err
	}
	sector, _ := g.SectorAt(c)
	planet, ok := sector.PlanetAt(orbit)
	if !ok || !planet.Landable {
		return Surface{}, shared.NewValidationError("orbit", fmt.Sprintf("no landable planet at orbit %d of %s", orbit, c))
	}
	if _, ok := planet.Region(region); !ok {
		return Surface{}, shared.NewValidationError("region", fmt.Sprintf("%s has no region %q", planet.Name, region))
	}
	return Surface{Orbital: o, region: region}, nil
}

func (l Surface) Region() string { return l.region }
func (l Surface) Kind() Kind { return KindSurface }

func (l Surface) Equal(other Location) bool {
	o, ok := other.(Surface)
	return ok && o.Orbital.Equal(l.Orbital) && o.region == l.region
}

func (l Surface) String() string {
	return fmt.Sprintf("region %s, orbit %d of %s", l.region, l.orbit, l.coord)
}

// Docked is attached to the station at the orbit
type Docked struct {
	Orbital
	station string
}

// NewDocked validates that a station occupies the orbit
func NewDocked(g galaxy.Query, c shared.Coord, orbit int) (Docked, error) {
	o, err := NewOrbital(g, c, orbit)
	if err != nil {
		return Docked{}, err
	}
	sector, _ := g.SectorAt(c)
	station, ok := sector.StationAt(orbit)
	if !ok {
		return Docked{}, shared.NewValidationError("orbit", fmt.Sprintf("no station at orbit %d of %s", orbit, c))
	}
	return Docked{Orbital: o, station: station.Name}, nil
}

func (l Docked) Station() string { return l.station }
func (l Docked) Kind() Kind { return KindDocked }

func (l Docked) Equal(other Location) bool {
	o, ok := other.(Docked)
	return ok && o.Orbital.Equal(l.Orbital) && o.station == l.station
}

func (l Docked) String() string {
	return fmt.Sprintf("docked at %s, orbit %d of %s", l.station, l.orbit, l.coord)
}

// InBattle wraps the orbital-level location a ship held when it entered a
// battle, plus the battle id.
type InBattle struct {
	prior  OrbitalLocation
	battle shared.BattleID
}

// NewInBattle wraps prior. Nesting is flattened: wrapping an InBattle keeps
// its original prior.
func NewInBattle(prior OrbitalLocation, battle shared.BattleID) InBattle {
	if b, ok := prior.(InBattle); ok {
		prior = b.prior
	}
	return InBattle{prior: prior, battle: battle}
}

func (l InBattle) Prior() OrbitalLocation { return l.prior }
func (l InBattle) Battle() shared.BattleID { return l.battle }
func (l InBattle) Galaxy() string { return l.prior.Galaxy() }
func (l InBattle) Coord() shared.Coord { return l.prior.Coord() }
func (l InBattle) Orbit() int { return l.prior.Orbit() }
func (l InBattle) AtOrbit() Orbital { return l.prior.AtOrbit() }
func (l InBattle) Kind() Kind { return KindInBattle }
func (l InBattle) sealed() {}

func (l InBattle) Equal(other Location) bool {
	o, ok := other.(InBattle)
	return ok && o.battle == l.battle && o.prior.Equal(l.prior)
}

func (l InBattle) String() string {
	return fmt.Sprintf("in battle %s at %s", l.battle, l.prior)
}

// SameOrbit reports whether both locations are on the same orbit of the same
// sector, ignoring refinement. Interstellar locations never share an orbit.
func SameOrbit(a, b Location) bool {
	oa, ok := a.(OrbitalLocation)
	if !ok {
		return false
	}
	ob, ok := b.(OrbitalLocation)
	if !ok {
		return false
	}
	return oa.AtOrbit().Equal(ob.AtOrbit())
}

// SameSector reports whether both locations are inside the same sector
func SameSector(a, b Location) bool {
	if a.Galaxy() != b.Galaxy() || a.Coord() != b.Coord() {
		return false
	}
	_, okA := a.(OrbitalLocation)
	_, okB := b.(OrbitalLocation)
	return okA && okB
}

// Unwrap returns the non-battle location underlying l
func Unwrap(l Location) Location {
	if b, ok := l.(InBattle); ok {
		return b.prior
	}
	return l
}
