package location

import (
	"fmt"
	"strconv"

	"github.com/andrescamacho/starfront-go/internal/domain/galaxy"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Property bag keys
const (
	KeyKind   = "location.kind"
	KeyX      = "location.x"
	KeyY      = "location.y"
	KeyOrbit  = "location.orbit"
	KeyRegion = "location.region"
)

// Export writes l into bag. Battles are transient, so an InBattle location
// is exported as the location held before the battle.
func Export(l Location, bag map[string]string) {
	l = Unwrap(l)
	bag[KeyKind] = l.Kind().String()
	bag[KeyX] = strconv.Itoa(l.Coord().X)
	bag[KeyY] = strconv.Itoa(l.Coord().Y)
	if o, ok := l.(OrbitalLocation); ok {
		bag[KeyOrbit] = strconv.Itoa(o.Orbit())
	}
	if s, ok := l.(Surface); ok {
		bag[KeyRegion] = s.region
	}
}

// Reconstruct rebuilds a location from bag, validating it against g
func Reconstruct(g galaxy.Query, bag map[string]string) (Location, error) {
	kind, err := ParseKind(bag[KeyKind])
	if err != nil {
		return nil, err
	}
	x, err := intKey(bag, KeyX)
	if err != nil {
		return nil, err
	}
	y, err := intKey(bag, KeyY)
	if err != nil {
		return nil, err
	}
	c := shared.NewCoord(x, y)
	if kind == KindInterstellar {
		return NewInterstellar(g, c)
	}
	orbit, err := intKey(bag, KeyOrbit)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindOrbital:
		return NewOrbital(g, c, orbit)
	case KindSurface:
		return NewSurface(g, c, orbit, bag[KeyRegion])
	case KindDocked:
		return NewDocked(g, c, orbit)
	}
	return nil, fmt.Errorf("location kind %s cannot be reconstructed", kind)
}

func intKey(bag map[string]string, key string) (int, error) {
	raw, ok := bag[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
