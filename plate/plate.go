package plate

import (
	"github.com/lixenwraith/screw-puzzle/vmath"
)

// Color is a cosmetic RGB value, rendered by collaborators only
type Color struct {
	R, G, B uint8
}

// Screw is a fastener at a fixed stage position
type Screw struct {
	ID      int
	PlateID int
	Pos     vmath.Point
	Removed bool
}

// Difficulty is the parameter bundle a stage was generated from
type Difficulty struct {
	PlateCount     int
	ScrewsPerPlate int
	EllipseRatio   float64
	MinRadius      float64
	MaxRadius      float64
	OverlapDensity float64
}

// Plate is a shape in the stack; higher ZOrder sits on top
type Plate struct {
	ID     int
	Shape  vmath.Shape
	ZOrder int
	Color  Color
	Screws []*Screw
}

// Remove marks the screw removed; calling it again is a no-op
// Legality (coverage) is the caller's decision
func Remove(s *Screw) {
	if s == nil {
		return
	}
	s.Removed = true
}

// Cleared reports whether every screw is removed; a screwless plate is cleared
func (p *Plate) Cleared() bool {
	for _, s := range p.Screws {
		if !s.Removed {
			return false
		}
	}
	return true
}

// Fallen reports a plate whose screws were all removed; screwless plates
// are fixed in place and never fall
func (p *Plate) Fallen() bool {
	return len(p.Screws) > 0 && p.Cleared()
}

// Remaining counts screws not yet removed
func (p *Plate) Remaining() int {
	n := 0
	for _, s := range p.Screws {
		if !s.Removed {
			n++
		}
	}
	return n
}
