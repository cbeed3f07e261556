package resource

import (
	"fmt"
	"strings"
)

// Condition is the damage state of an installed item
type Condition int

const (
	Functional Condition = iota
	Damaged
)

func (c Condition) String() string {
	if c == Damaged {
		return "damaged"
	}
	return "functional"
}

// Module is an installed item (utility module or weapon).
//
// A hit moves a module functional -> damaged -> destroyed. Damaged modules are
// disabled: weapons cannot fire and effects cannot be active.
type Module struct {
	spec      ItemSpec
	condition Condition
	active    bool
}

// NewModule installs a fresh, functional, inactive item
func NewModule(spec ItemSpec) *Module {
	return &Module{spec: spec}
}

func (m *Module) Spec() ItemSpec {
	return m.spec
}

func (m *Module) Name() string {
	return m.spec.Name
}

func (m *Module) IsWeapon() bool {
	return m.spec.Kind == ItemWeapon
}

func (m *Module) Condition() Condition {
	return m.condition
}

func (m *Module) IsDamaged() bool {
	return m.condition == Damaged
}

func (m *Module) IsActive() bool {
	return m.active
}

// Usable reports whether the module can fire or activate
func (m *Module) Usable() bool {
	return m.condition == Functional
}

// SetActive toggles the effect flag. Only meaningful for modules with an effect.
func (m *Module) SetActive(active bool) {
	m.active = active && m.spec.Kind == ItemModule && m.spec.Effect != EffectNone && m.Usable()
}

// Hit applies one step of damage. Returns true when the module is destroyed
// and must be removed by the caller.
func (m *Module) Hit() bool {
	if m.condition == Damaged {
		return true
	}
	m.condition = Damaged
	m.active = false
	return false
}

// Repair restores a damaged module
func (m *Module) Repair() {
	m.condition = Functional
}

// Encode renders the module as a compact token ("Shield", "Shield|damaged",
// "Cloak|active") used by the property bag.
func (m *Module) Encode() string {
	switch {
	case m.condition == Damaged:
		return m.spec.Name + "|damaged"
	case m.active:
		return m.spec.Name + "|active"
	}
	return m.spec.Name
}

// DecodeModule parses a token produced by Encode
func DecodeModule(token string) (*Module, error) {
	name, state, _ := strings.Cut(token, "|")
	spec, ok := LookupItem(name)
	if !ok {
		return nil, fmt.Errorf("unknown module %q", name)
	}
	m := NewModule(spec)
	switch state {
	case "":
	case "damaged":
		m.condition = Damaged
	case "active":
		m.SetActive(true)
	default:
		return nil, fmt.Errorf("unknown module state %q", state)
	}
	return m, nil
}

func (m *Module) String() string {
	return m.Encode()
}
