package galaxy

import (
	"fmt"
	"sort"

	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Query is the read-only galaxy surface the location model and AI consume
type Query interface {
	ID() string
	InBounds(c shared.Coord) bool
	SectorAt(c shared.Coord) (*Sector, bool)
}

// Galaxy owns every sector by coordinate. It is built once per session by
// an external generator or loader and is read-mostly afterwards; only claim
// actions change ownership fields.
type Galaxy struct {
	id      string
	width   int
	height  int
	sectors map[shared.Coord]*Sector
}

// New creates an empty galaxy of width x height cells
func New(id string, width, height int) (*Galaxy, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "cannot be empty")
	}
	if width < 1 || height < 1 {
		return nil, shared.NewValidationError("size", "width and height must be positive")
	}
	return &Galaxy{
		id:      id,
		width:   width,
		height:  height,
		sectors: make(map[shared.Coord]*Sector),
	}, nil
}

func (g *Galaxy) ID() string {
	return g.id
}

func (g *Galaxy) Width() int {
	return g.width
}

func (g *Galaxy) Height() int {
	return g.height
}

// InBounds reports whether c lies inside the galaxy
func (g *Galaxy) InBounds(c shared.Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

// AddSector registers a sector at its coordinate
func (g *Galaxy) AddSector(s *Sector) error {
	if !g.InBounds(s.Coord) {
		return shared.NewValidationError("coord", fmt.Sprintf("sector %s out of bounds", s.Coord))
	}
	if _, exists := g.sectors[s.Coord]; exists {
		return shared.NewValidationError("coord", fmt.Sprintf("sector %s already defined", s.Coord))
	}
	g.sectors[s.Coord] = s
	return nil
}

// SectorAt returns the sector occupying c, if any
func (g *Galaxy) SectorAt(c shared.Coord) (*Sector, bool) {
	s, ok := g.sectors[c]
	return s, ok
}

// Sectors returns all sectors ordered by (y, x)
func (g *Galaxy) Sectors() []*Sector {
	out := make([]*Sector, 0, len(g.sectors))
	for _, s := range g.sectors {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coord.Y != out[j].Coord.Y {
			return out[i].Coord.Y < out[j].Coord.Y
		}
		return out[i].Coord.X < out[j].Coord.X
	})
	return out
}

// SectorsByDistance returns sectors within radius of from, nearest first.
// Equal distances keep (y, x) order so the result is deterministic.
func (g *Galaxy) SectorsByDistance(from shared.Coord, radius int) []*Sector {
	var out []*Sector
	for _, s := range g.Sectors() {
		if from.DistanceTo(s.Coord) <= radius {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return from.DistanceTo(out[i].Coord) < from.DistanceTo(out[j].Coord)
	})
	return out
}
