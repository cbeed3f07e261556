package shared

import "fmt"

// ShipID is the stable arena identifier of an actor
type ShipID int

func (id ShipID) String() string {
	return fmt.Sprintf("ship-%d", int(id))
}

// IsZero checks if the ShipID is the zero value (unassigned)
func (id ShipID) IsZero() bool {
	return id == 0
}

// FactionID identifies a faction. The empty FactionID means "no faction".
type FactionID string

// IsZero reports whether no faction is referenced
func (f FactionID) IsZero() bool {
	return f == ""
}

func (f FactionID) String() string {
	if f == "" {
		return "unaligned"
	}
	return string(f)
}

// BattleID identifies an active battle in the arena
type BattleID string

func (b BattleID) String() string {
	return string(b)
}
