package ai

import (
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// Vote scoring weights
const (
	specializationBonus = 2
	colocatedBonus      = 2
	adjacentBonus       = 1
	valueBonus          = 1
)

// Preference scores how much voter favours candidate: shared
// specialization, proximity (same coordinate > adjacent > distant), and a
// candidate worth strictly more than the voter
func Preference(voter, candidate *ship.Ship) int {
	score := 0
	if voter.Specialization() == candidate.Specialization() {
		score += specializationBonus
	}
	switch voter.Location().Coord().DistanceTo(candidate.Location().Coord()) {
	case 0:
		score += colocatedBonus
	case 1:
		score += adjacentBonus
	}
	if candidate.Value() > voter.Value() {
		score += valueBonus
	}
	return score
}

// Vote returns voter's choice among candidates. Ties keep the earliest
// candidate: a later one must score strictly higher to displace it.
// The voter never votes for itself.
func Vote(voter *ship.Ship, candidates []*ship.Ship) (*ship.Ship, bool) {
	var best *ship.Ship
	bestScore := 0
	for _, c := range candidates {
		if c.ID() == voter.ID() {
			continue
		}
		score := Preference(voter, c)
		if best == nil || score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, best != nil
}

// ElectionResult is the outcome of one faction election
type ElectionResult struct {
	Faction shared.FactionID
	Leader  shared.ShipID
	Votes   map[shared.ShipID]int
}

// Elect runs a plurality election among f's living members and installs the
// winner. Every member votes; the candidate with strictly more votes than
// all earlier candidates (in id order) wins, so ties go to the earliest.
func Elect(w *world.World, f shared.FactionID) (ElectionResult, bool) {
	members := w.ShipsInFaction(f)
	res := ElectionResult{Faction: f, Votes: make(map[shared.ShipID]int)}
	if len(members) == 0 {
		_ = w.Factions().SetLeader(f, 0)
		return res, false
	}
	for _, voter := range members {
		if choice, ok := Vote(voter, members); ok {
			res.Votes[choice.ID()]++
		}
	}
	winner := members[0]
	for _, c := range members[1:] {
		if res.Votes[c.ID()] > res.Votes[winner.ID()] {
			winner = c
		}
	}
	res.Leader = winner.ID()
	_ = w.Factions().SetLeader(f, winner.ID())
	return res, true
}
