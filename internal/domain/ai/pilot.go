package ai

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/action"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// Branch names the cascade branch that decided a turn
type Branch string

const (
	BranchBattle    Branch = "battle"
	BranchStandDown Branch = "stand-down"
	BranchArrived   Branch = "arrived"
	BranchTravel    Branch = "travel"
	BranchReplan    Branch = "replan"
	BranchDistress  Branch = "distress"
	BranchLost      Branch = "lost"
	BranchSkip      Branch = "skip"
)

// Decision records what the pilot did with a ship's turn
type Decision struct {
	Ship        shared.ShipID
	Branch      Branch
	Actions     []string
	Destination location.Location
	// Rejection is the last rejection met on the way, if any
	Rejection error
}

func (d *Decision) record(a action.Action) {
	d.Actions = append(d.Actions, a.Name())
}

// Pilot drives AI-controlled ships. It also acts as the battle engine's
// tactician so ships fight by the same policies they travel by.
type Pilot struct{}

func NewPilot() *Pilot {
	return &Pilot{}
}

// TakeTurn runs the priority cascade for s. The first satisfied branch
// wins:
//  1. in battle: the battle engine acts for the ship
//  2. a shield or cloak left on outside battle is switched off
//  3. at the destination: trade when docked, otherwise claim then mine
//  4. one step toward the destination
//  5. pick a new destination (station when it must refuel, otherwise the
//     nearest mining site) and step toward it
//  6. call for rescue, or be lost
func (p *Pilot) TakeTurn(w *world.World, s *ship.Ship) Decision {
	d := Decision{Ship: s.ID()}
	if s.IsDestroyed() || s.IsPlayer() {
		d.Branch = BranchSkip
		return d
	}

	if _, ok := s.InBattle(); ok {
		d.Branch = BranchBattle
		return d
	}

	for _, effect := range []resource.Effect{resource.EffectShield, resource.EffectCloak} {
		if s.Inventory().IsEffectActive(effect) {
			a := action.DeactivateModule{Effect: effect}
			if err := a.Execute(w, s); err == nil {
				d.record(a)
				d.Branch = BranchStandDown
				return d
			}
		}
	}

	if dest, ok := s.Destination(); ok {
		d.Destination = dest
		if s.Location().Equal(dest) {
			if p.atDestination(w, s, &d) {
				d.Branch = BranchArrived
				return d
			}
		} else if p.step(w, s, dest, &d) {
			d.Branch = BranchTravel
			return d
		}
		s.ClearDestination()
	}

	if dest, ok := p.replan(w, s); ok {
		s.SetDestination(dest)
		d.Destination = dest
		if s.Location().Equal(dest) {
			if p.atDestination(w, s, &d) {
				d.Branch = BranchReplan
				return d
			}
		} else if p.step(w, s, dest, &d) {
			d.Branch = BranchReplan
			return d
		}
		s.ClearDestination()
	}

	distress := action.Distress{}
	if err := distress.Execute(w, s); err == nil {
		d.record(distress)
		d.Branch = BranchDistress
		return d
	}
	w.Destroy(s, fmt.Sprintf("%s is lost, stranded at %s", s.Name(), s.Location()))
	d.Branch = BranchLost
	return d
}

func (p *Pilot) replan(w *world.World, s *ship.Ship) (location.Location, bool) {
	if MustRefuel(s) {
		return FindClosestStation(w, s)
	}
	return FindClosestMiningDestination(w, s)
}

// atDestination performs the destination's business. Returns false when
// nothing could be done there, so the caller replans.
func (p *Pilot) atDestination(w *world.World, s *ship.Ship, d *Decision) bool {
	if _, docked := s.Location().(location.Docked); docked {
		for _, a := range tradeLoop(w, s) {
			d.record(a)
		}
		s.ClearDestination()
		return len(d.Actions) > 0
	}

	if MustRefuel(s) {
		return false
	}
	if WillClaim(w, s) {
		claim := action.Claim{}
		if err := claim.Execute(w, s); err == nil {
			d.record(claim)
		}
	}
	mine := action.Mine{}
	if err := mine.Execute(w, s); err != nil {
		d.Rejection = err
		return len(d.Actions) > 0
	}
	d.record(mine)
	return true
}

// step performs one movement toward dest. When the move is blocked for lack
// of fuel the ship refines ore instead, if it can.
func (p *Pilot) step(w *world.World, s *ship.Ship, dest location.Location, d *Decision) bool {
	a := NextStep(w, s, dest)
	if a == nil {
		return false
	}
	err := a.Execute(w, s)
	if err == nil {
		d.record(a)
		return true
	}
	d.Rejection = err
	refine := action.Refine{}
	if refine.Execute(w, s) == nil {
		d.record(refine)
		return true
	}
	return false
}

// NextStep returns the single movement that brings s closer to dest: leave
// the current refinement level, change orbit, or burn toward the
// destination's coordinate.
func NextStep(w *world.World, s *ship.Ship, dest location.Location) action.Action {
	destOrbit, destInSector := dest.(location.OrbitalLocation)

	switch cur := s.Location().(type) {
	case location.Docked:
		return action.Undock{}
	case location.Surface:
		if ds, ok := dest.(location.Surface); ok && location.SameOrbit(cur, ds) {
			return action.Relocate{Region: ds.Region()}
		}
		return action.TakeOff{}
	case location.Orbital:
		if destInSector && cur.Coord() == dest.Coord() {
			switch {
			case cur.Orbit() < destOrbit.Orbit():
				return action.RaiseOrbit{}
			case cur.Orbit() > destOrbit.Orbit():
				return action.LowerOrbit{}
			}
			switch ds := dest.(type) {
			case location.Surface:
				return action.Land{Region: ds.Region()}
			case location.Docked:
				return action.Dock{}
			}
			return nil
		}
		sector, _ := w.Galaxy().SectorAt(cur.Coord())
		if cur.Orbit() == sector.Orbits {
			return action.EscapeSector{}
		}
		return action.RaiseOrbit{}
	case location.Interstellar:
		if cur.Coord() == dest.Coord() {
			if destInSector {
				return action.EnterSector{}
			}
			return nil
		}
		return action.Burn{Direction: cur.Coord().DirectionTo(dest.Coord())}
	}
	return nil
}
