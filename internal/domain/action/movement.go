package action

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// Burn moves one cell through interstellar space
type Burn struct {
	Direction shared.Direction
}

func (a Burn) Name() string { return NameBurn }

func (a Burn) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	from, err := interstellarOnly(s, "burn")
	if err != nil {
		return err
	}
	if !a.Direction.IsUnit() {
		return shared.NewRejection("invalid burn direction %s", a.Direction)
	}
	if _, ok := location.Burn(w.Galaxy(), from, a.Direction); !ok {
		return shared.NewRejection("cannot burn %s: edge of the galaxy", a.Direction)
	}
	return checkCost(s, CostOf(NameBurn))
}

func (a Burn) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Burn) apply(w *world.World, s *ship.Ship) error {
	to, _ := location.Burn(w.Galaxy(), s.Location().(location.Interstellar), a.Direction)
	pay(s, CostOf(NameBurn))
	s.MoveTo(to)
	w.Notify(s, fmt.Sprintf("%s burns %s to %s", s.Name(), a.Direction, to.Coord()), world.SoundEngine)
	return nil
}

// EnterSector crosses from open space into the sector at the current
// coordinate, arriving at its outermost orbit
type EnterSector struct{}

func (a EnterSector) Name() string { return NameEnterSector }

func (a EnterSector) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	from, err := interstellarOnly(s, "enter a sector")
	if err != nil {
		return err
	}
	if _, ok := location.EnterSector(w.Galaxy(), from); !ok {
		return shared.NewRejection("no sector at %s", from.Coord())
	}
	return checkCost(s, CostOf(NameEnterSector))
}

func (a EnterSector) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a EnterSector) apply(w *world.World, s *ship.Ship) error {
	to, _ := location.EnterSector(w.Galaxy(), s.Location().(location.Interstellar))
	pay(s, CostOf(NameEnterSector))
	s.MoveTo(to)
	sector, _ := w.Galaxy().SectorAt(to.Coord())
	w.Notify(s, fmt.Sprintf("%s enters the %s system", s.Name(), sector.Star), world.SoundEngine)
	return nil
}

// EscapeSector leaves a sector from its outermost orbit
type EscapeSector struct{}

func (a EscapeSector) Name() string { return NameEscape }

func (a EscapeSector) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if err := checkNotInBattle(s, "escape"); err != nil {
		return err
	}
	from, err := orbitalOnly(s, "escape")
	if err != nil {
		return err
	}
	if _, ok := location.EscapeSector(w.Galaxy(), from); !ok {
		sector, _ := w.Galaxy().SectorAt(from.Coord())
		return shared.NewRejection("cannot escape from orbit %d: outermost orbit is %d", from.Orbit(), sector.Orbits)
	}
	return checkCost(s, CostOf(NameEscape))
}

func (a EscapeSector) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a EscapeSector) apply(w *world.World, s *ship.Ship) error {
	to, _ := location.EscapeSector(w.Galaxy(), s.Location().(location.Orbital))
	pay(s, CostOf(NameEscape))
	s.MoveTo(to)
	w.Notify(s, fmt.Sprintf("%s escapes into interstellar space at %s", s.Name(), to.Coord()), world.SoundEngine)
	return nil
}

// RaiseOrbit moves one ring outward; from the outermost orbit it escapes the
// sector
type RaiseOrbit struct{}

func (a RaiseOrbit) Name() string { return NameRaiseOrbit }

func (a RaiseOrbit) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	from, err := orbitalOnly(s, "raise orbit")
	if err != nil {
		return err
	}
	if _, ok := location.RaiseOrbit(w.Galaxy(), from); !ok {
		return shared.NewRejection("cannot raise orbit from %s", from)
	}
	return checkCost(s, CostOf(NameRaiseOrbit))
}

func (a RaiseOrbit) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a RaiseOrbit) apply(w *world.World, s *ship.Ship) error {
	to, _ := location.RaiseOrbit(w.Galaxy(), s.Location().(location.Orbital))
	pay(s, CostOf(NameRaiseOrbit))
	s.MoveTo(to)
	w.Notify(s, fmt.Sprintf("%s raises to %s", s.Name(), to), world.SoundEngine)
	return nil
}

// LowerOrbit moves one ring inward
type LowerOrbit struct{}

func (a LowerOrbit) Name() string { return NameLowerOrbit }

func (a LowerOrbit) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	from, err := orbitalOnly(s, "lower orbit")
	if err != nil {
		return err
	}
	if _, ok := location.LowerOrbit(w.Galaxy(), from); !ok {
		return shared.NewRejection("already at the innermost orbit")
	}
	return checkCost(s, CostOf(NameLowerOrbit))
}

func (a LowerOrbit) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a LowerOrbit) apply(w *world.World, s *ship.Ship) error {
	to, _ := location.LowerOrbit(w.Galaxy(), s.Location().(location.Orbital))
	pay(s, CostOf(NameLowerOrbit))
	s.MoveTo(to)
	w.Notify(s, fmt.Sprintf("%s lowers to %s", s.Name(), to), world.SoundEngine)
	return nil
}

// Land touches down in a region of the planet at the current orbit
type Land struct {
	Region string
}

func (a Land) Name() string { return NameLand }

func (a Land) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	from, err := orbitalOnly(s, "land")
	if err != nil {
		return err
	}
	sector, _ := w.Galaxy().SectorAt(from.Coord())
	planet, ok := sector.PlanetAt(from.Orbit())
	if !ok {
		return shared.NewRejection("no planet at orbit %d", from.Orbit())
	}
	if !planet.Landable {
		return shared.NewRejection("%s cannot be landed on", planet.Name)
	}
	if _, ok := location.Land(w.Galaxy(), from, a.Region); !ok {
		return shared.NewRejection("%s has no region %q", planet.Name, a.Region)
	}
	return checkCost(s, CostOf(NameLand))
}

func (a Land) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Land) apply(w *world.World, s *ship.Ship) error {
	to, _ := location.Land(w.Galaxy(), s.Location().(location.Orbital), a.Region)
	pay(s, CostOf(NameLand))
	s.MoveTo(to)
	w.Notify(s, fmt.Sprintf("%s lands in %s", s.Name(), a.Region), world.SoundEngine)
	return nil
}

// TakeOff lifts off from the surface back to orbit
type TakeOff struct{}

func (a TakeOff) Name() string { return NameTakeOff }

func (a TakeOff) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if _, err := surfaceOnly(s, "take off"); err != nil {
		return err
	}
	return checkCost(s, CostOf(NameTakeOff))
}

func (a TakeOff) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a TakeOff) apply(w *world.World, s *ship.Ship) error {
	to := location.TakeOff(s.Location().(location.Surface))
	pay(s, CostOf(NameTakeOff))
	s.MoveTo(to)
	w.Notify(s, fmt.Sprintf("%s takes off to %s", s.Name(), to), world.SoundEngine)
	return nil
}

// Relocate moves between regions of the planet the ship is landed on
type Relocate struct {
	Region string
}

func (a Relocate) Name() string { return NameRelocate }

func (a Relocate) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	from, err := surfaceOnly(s, "relocate")
	if err != nil {
		return err
	}
	if a.Region == from.Region() {
		return shared.NewRejection("already in %s", a.Region)
	}
	if _, ok := location.Relocate(w.Galaxy(), from, a.Region); !ok {
		return shared.NewRejection("no region %q on this planet", a.Region)
	}
	return checkCost(s, CostOf(NameRelocate))
}

func (a Relocate) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Relocate) apply(w *world.World, s *ship.Ship) error {
	to, _ := location.Relocate(w.Galaxy(), s.Location().(location.Surface), a.Region)
	pay(s, CostOf(NameRelocate))
	s.MoveTo(to)
	w.Notify(s, fmt.Sprintf("%s relocates to %s", s.Name(), a.Region), world.SoundEngine)
	return nil
}

// Dock attaches to the station at the current orbit. Stations refuse ships
// their owner is hostile to.
type Dock struct{}

func (a Dock) Name() string { return NameDock }

func (a Dock) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	from, err := orbitalOnly(s, "dock")
	if err != nil {
		return err
	}
	sector, _ := w.Galaxy().SectorAt(from.Coord())
	station, ok := sector.StationAt(from.Orbit())
	if !ok {
		return shared.NewRejection("no station at orbit %d", from.Orbit())
	}
	if w.IsHostile(s, station.Owner) {
		return shared.NewRejection("%s refuses docking clearance", station.Name)
	}
	if s.IsCloaked() {
		return shared.NewRejection("cannot dock while cloaked")
	}
	return checkCost(s, CostOf(NameDock))
}

func (a Dock) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Dock) apply(w *world.World, s *ship.Ship) error {
	to, _ := location.Dock(w.Galaxy(), s.Location().(location.Orbital))
	station, _ := stationFor(w, to)
	s.MoveTo(to)
	w.Notify(s, fmt.Sprintf("%s docks at %s", s.Name(), station.Name), world.SoundDock)
	return nil
}

// Undock leaves the station for its orbit
type Undock struct{}

func (a Undock) Name() string { return NameUndock }

func (a Undock) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if _, err := dockedOnly(s, "undock"); err != nil {
		return err
	}
	return checkCost(s, CostOf(NameUndock))
}

func (a Undock) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a Undock) apply(w *world.World, s *ship.Ship) error {
	from := s.Location().(location.Docked)
	s.MoveTo(location.Undock(from))
	w.Notify(s, fmt.Sprintf("%s undocks from %s", s.Name(), from.Station()), world.SoundDock)
	return nil
}
