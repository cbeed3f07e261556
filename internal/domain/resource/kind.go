package resource

import "fmt"

// Kind identifies one of the fixed-size numeric stores a ship carries
type Kind string

const (
	Fuel   Kind = "fuel"
	Energy Kind = "energy"
	Ore    Kind = "ore"
	Hull   Kind = "hull"
)

// MaxExpanders is the global per-resource cap on installed expanders
const MaxExpanders = 10

// Kinds lists every resource kind in canonical order. Tie-breaks between
// resources (e.g. picking the scarcest expander category) follow this order.
var Kinds = []Kind{Fuel, Energy, Ore, Hull}

// Spec is the fixed data describing a resource kind
type Spec struct {
	BaseCapacity  int
	PerExpander   int
	UnitPrice     int
	ExpanderPrice int
}

var specs = map[Kind]Spec{
	Fuel:   {BaseCapacity: 20, PerExpander: 10, UnitPrice: 2, ExpanderPrice: 40},
	Energy: {BaseCapacity: 20, PerExpander: 10, UnitPrice: 1, ExpanderPrice: 40},
	Ore:    {BaseCapacity: 10, PerExpander: 5, UnitPrice: 3, ExpanderPrice: 60},
	Hull:   {BaseCapacity: 10, PerExpander: 5, UnitPrice: 5, ExpanderPrice: 80},
}

// SpecFor returns the fixed data for a kind
func SpecFor(k Kind) Spec {
	return specs[k]
}

// ParseKind validates a resource name
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := specs[k]; !ok {
		return "", fmt.Errorf("unknown resource %q", name)
	}
	return k, nil
}

func (k Kind) String() string {
	return string(k)
}

// Cost is a fixed resource debit attached to an action or item
type Cost struct {
	Resource Kind
	Amount   int
}

// IsFree reports whether the cost debits nothing
func (c Cost) IsFree() bool {
	return c.Amount <= 0
}

func (c Cost) String() string {
	if c.IsFree() {
		return "free"
	}
	return fmt.Sprintf("%d %s", c.Amount, c.Resource)
}
