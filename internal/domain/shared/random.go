package shared

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"lukechampine.com/blake3"
)

// Random is the single source of randomness threaded through a simulation
// session. Implementations must be deterministic for a given seed.
type Random interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
	// Chance returns true with probability num/den
	Chance(num, den int) bool
}

// SeededRandom is a PCG generator whose state is derived from a session seed
// and a label by hashing both with BLAKE3.
type SeededRandom struct {
	rng *rand.Rand
}

// NewSeededRandom derives a generator for (seed, label). The same pair always
// yields the same sequence.
func NewSeededRandom(seed int64, label string) *SeededRandom {
	digest := blake3.Sum256([]byte(fmt.Sprintf("%d-%s", seed, label)))
	s1 := binary.BigEndian.Uint64(digest[0:8])
	s2 := binary.BigEndian.Uint64(digest[8:16])
	return &SeededRandom{rng: rand.New(rand.NewPCG(s1, s2))}
}

func (r *SeededRandom) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return r.rng.IntN(n)
}

func (r *SeededRandom) Chance(num, den int) bool {
	if num <= 0 || den <= 0 {
		return false
	}
	if num >= den {
		return true
	}
	return r.rng.IntN(den) < num
}

// ScriptedRandom replays a fixed sequence of Intn results, for tests.
// Chance(num, den) consumes one value v and returns v < num.
// When the script is exhausted it returns 0.
type ScriptedRandom struct {
	values []int
	pos    int
}

func NewScriptedRandom(values ...int) *ScriptedRandom {
	return &ScriptedRandom{values: values}
}

func (r *ScriptedRandom) next() int {
	if r.pos >= len(r.values) {
		return 0
	}
	v := r.values[r.pos]
	r.pos++
	return v
}

func (r *ScriptedRandom) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return r.next() % n
}

func (r *ScriptedRandom) Chance(num, den int) bool {
	if num <= 0 || den <= 0 {
		return false
	}
	if num >= den {
		return true
	}
	return r.next()%den < num
}
