package shared

import "fmt"

// Coord is an immutable grid position in the galaxy
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// NewCoord creates a coordinate value
func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate shifted by the given direction
func (c Coord) Add(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// DistanceTo returns the number of burns needed to reach other
// (Chebyshev distance, diagonal burns allowed)
func (c Coord) DistanceTo(other Coord) int {
	dx := abs(other.X - c.X)
	dy := abs(other.Y - c.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// DirectionTo returns the single burn direction that moves closer to other.
// Returns the zero direction when c == other.
func (c Coord) DirectionTo(other Coord) Direction {
	return Direction{DX: sign(other.X - c.X), DY: sign(other.Y - c.Y)}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit burn vector
type Direction struct {
	DX int
	DY int
}

var (
	North     = Direction{DX: 0, DY: -1}
	NorthEast = Direction{DX: 1, DY: -1}
	East      = Direction{DX: 1, DY: 0}
	SouthEast = Direction{DX: 1, DY: 1}
	South     = Direction{DX: 0, DY: 1}
	SouthWest = Direction{DX: -1, DY: 1}
	West      = Direction{DX: -1, DY: 0}
	NorthWest = Direction{DX: -1, DY: -1}
)

// IsZero reports whether the direction does not move
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// IsUnit reports whether the direction is one of the eight burn directions
func (d Direction) IsUnit() bool {
	return !d.IsZero() && abs(d.DX) <= 1 && abs(d.DY) <= 1
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case NorthEast:
		return "northeast"
	case East:
		return "east"
	case SouthEast:
		return "southeast"
	case South:
		return "south"
	case SouthWest:
		return "southwest"
	case West:
		return "west"
	case NorthWest:
		return "northwest"
	}
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}

// ParseDirection converts a compass name into a Direction
func ParseDirection(name string) (Direction, error) {
	for _, d := range []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest} {
		if d.String() == name {
			return d, nil
		}
	}
	return Direction{}, NewValidationError("direction", fmt.Sprintf("unknown direction %q", name))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
