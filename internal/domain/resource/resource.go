package resource

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Resource is a bounded numeric store (fuel, energy, ore or hull).
//
// Invariants:
// - 0 <= amount <= Capacity()
// - 0 <= expanders <= MaxExpanders
type Resource struct {
	kind      Kind
	amount    int
	expanders int
}

// New creates a resource store with validation
func New(kind Kind, amount, expanders int) (*Resource, error) {
	if _, ok := specs[kind]; !ok {
		return nil, shared.NewValidationError("kind", fmt.Sprintf("unknown resource %q", kind))
	}
	if expanders < 0 || expanders > MaxExpanders {
		return nil, shared.NewValidationError("expanders", fmt.Sprintf("must be within [0, %d]", MaxExpanders))
	}
	r := &Resource{kind: kind, expanders: expanders}
	if amount < 0 || amount > r.Capacity() {
		return nil, shared.NewValidationError("amount", fmt.Sprintf("%d outside [0, %d]", amount, r.Capacity()))
	}
	r.amount = amount
	return r, nil
}

// Full creates a store filled to its base capacity
func Full(kind Kind) *Resource {
	return &Resource{kind: kind, amount: specs[kind].BaseCapacity}
}

// Empty creates an empty store at base capacity
func Empty(kind Kind) *Resource {
	return &Resource{kind: kind}
}

func (r *Resource) Kind() Kind {
	return r.kind
}

func (r *Resource) Amount() int {
	return r.amount
}

func (r *Resource) Expanders() int {
	return r.expanders
}

// Capacity is the base capacity plus the expander bonus
func (r *Resource) Capacity() int {
	spec := specs[r.kind]
	return spec.BaseCapacity + r.expanders*spec.PerExpander
}

// Free returns the room left before the store is full
func (r *Resource) Free() int {
	return r.Capacity() - r.amount
}

func (r *Resource) IsFull() bool {
	return r.amount >= r.Capacity()
}

func (r *Resource) IsEmpty() bool {
	return r.amount == 0
}

// ChangeAmount applies delta clamped to [0, capacity]. It returns true only
// when the full delta was applied without clamping.
func (r *Resource) ChangeAmount(delta int) bool {
	switch {
	case delta < -r.amount:
		r.amount = 0
		return false
	case delta > r.Free():
		r.amount = r.Capacity()
		return false
	}
	r.amount += delta
	return true
}

// ChangeAmountWithDiscard applies as much of delta as fits and returns the
// magnitude of the remainder that could not be applied.
func (r *Resource) ChangeAmountWithDiscard(delta int) int {
	before := r.amount
	r.ChangeAmount(delta)
	applied := r.amount - before
	discarded := delta - applied
	if discarded < 0 {
		return -discarded
	}
	return discarded
}

// CanExpand reports whether n more expanders fit under MaxExpanders
func (r *Resource) CanExpand(n int) bool {
	return n > 0 && r.expanders+n <= MaxExpanders
}

// Expand installs n expanders. Rejected, not truncated, when it would pass the cap.
func (r *Resource) Expand(n int) error {
	if n <= 0 {
		return shared.NewRejection("expander quantity must be positive")
	}
	if !r.CanExpand(n) {
		return shared.NewRejection("%s expanders at limit: have %d, cap %d", r.kind, r.expanders, MaxExpanders)
	}
	r.expanders += n
	return nil
}

func (r *Resource) String() string {
	return fmt.Sprintf("%s(%d/%d)", r.kind, r.amount, r.Capacity())
}
