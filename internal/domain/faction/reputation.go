package faction

import (
	"sort"

	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

const (
	// MembershipThreshold is the standing needed to join a faction
	MembershipThreshold = 10
	// HostileThreshold and below, a faction treats the actor as an enemy
	HostileThreshold = -10
	// DistressThreshold is the standing needed for a faction to answer a distress call
	DistressThreshold = 5
	// DistressCost is the standing a rescue consumes
	DistressCost = 5
	// ClaimBonus is gained with the claimant's own faction
	ClaimBonus = 5
	// ClaimPenalty is lost with the previous owner
	ClaimPenalty = 10
	// AggressionPenalty is lost with a faction whose member is attacked
	AggressionPenalty = 5
)

// Reputation is an actor's signed standing per faction
type Reputation struct {
	values map[shared.FactionID]int
}

func NewReputation() *Reputation {
	return &Reputation{values: make(map[shared.FactionID]int)}
}

// Get returns the standing with f (0 when never touched)
func (r *Reputation) Get(f shared.FactionID) int {
	return r.values[f]
}

func (r *Reputation) Set(f shared.FactionID, v int) {
	if f.IsZero() {
		return
	}
	if v == 0 {
		delete(r.values, f)
		return
	}
	r.values[f] = v
}

// Adjust adds delta to the standing with f
func (r *Reputation) Adjust(f shared.FactionID, delta int) {
	r.Set(f, r.Get(f)+delta)
}

// Decay moves every standing one step toward zero
func (r *Reputation) Decay() {
	for f, v := range r.values {
		switch {
		case v > 0:
			r.Set(f, v-1)
		case v < 0:
			r.Set(f, v+1)
		}
	}
}

// IsHostile reports whether the standing with f has fallen to hostility
func (r *Reputation) IsHostile(f shared.FactionID) bool {
	return !f.IsZero() && r.Get(f) <= HostileThreshold
}

// CanJoin reports whether the standing with f permits membership
func (r *Reputation) CanJoin(f shared.FactionID) bool {
	return r.Get(f) >= MembershipThreshold
}

// Factions lists every faction with a non-zero standing, sorted by id
func (r *Reputation) Factions() []shared.FactionID {
	out := make([]shared.FactionID, 0, len(r.values))
	for f := range r.values {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Rescuer picks the faction that answers a distress call: the highest
// standing at or above DistressThreshold, earliest in order on ties.
func (r *Reputation) Rescuer(order []shared.FactionID) (shared.FactionID, bool) {
	var best shared.FactionID
	bestRep := DistressThreshold - 1
	for _, f := range order {
		if v := r.Get(f); v > bestRep {
			best, bestRep = f, v
		}
	}
	return best, !best.IsZero()
}
