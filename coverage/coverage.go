// Package coverage answers removability queries over a stage's plate stack.
//
// A plate covers a screw when its z-order is strictly greater than the screw's
// owning plate and the screw position lies inside the plate shape. Only stored
// z-order values are compared; creation order carries no meaning here.
//
// None of the queries mutate the stage.
package coverage

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/screw-puzzle/plate"
	"github.com/lixenwraith/screw-puzzle/vmath"
)

// Result lists every plate covering a screw
type Result struct {
	Covered bool
	Plates  []*plate.Plate
}

// Hit pairs a screw with its owning plate
type Hit struct {
	Screw *plate.Screw
	Plate *plate.Plate
}

// IsCovered collects all plates strictly above the screw's owner that contain
// the screw position. Removed screws are evaluated like any other.
// The owner must be present in plates; a missing owner is a broken stage and panics.
func IsCovered(s *plate.Screw, plates []*plate.Plate) Result {
	owner := ownerOf(s, plates)
	return IsCoveredBy(s, owner, plates)
}

// IsCoveredBy is IsCovered with the owning plate already resolved
func IsCoveredBy(s *plate.Screw, owner *plate.Plate, plates []*plate.Plate) Result {
	var res Result
	for _, p := range plates {
		if p.ZOrder <= owner.ZOrder {
			continue
		}
		if vmath.PointInShape(s.Pos, p.Shape) {
			res.Plates = append(res.Plates, p)
		}
	}
	res.Covered = len(res.Plates) > 0
	return res
}

// FindRemovableScrews returns every non-removed, uncovered screw in plate then
// screw order of the stage
func FindRemovableScrews(st *plate.Stage) []Hit {
	if st == nil {
		return nil
	}
	var out []Hit
	for _, p := range st.Plates {
		for _, s := range p.Screws {
			if s.Removed {
				continue
			}
			if !anyAbove(s.Pos, p.ZOrder, st.Plates) {
				out = append(out, Hit{Screw: s, Plate: p})
			}
		}
	}
	return out
}

// HasAnyRemovableScrew stops at the first non-removed, uncovered screw
func HasAnyRemovableScrew(st *plate.Stage) bool {
	if st == nil {
		return false
	}
	for _, p := range st.Plates {
		for _, s := range p.Screws {
			if s.Removed {
				continue
			}
			if !anyAbove(s.Pos, p.ZOrder, st.Plates) {
				return true
			}
		}
	}
	return false
}

// HitTest returns the first non-removed screw within hitRadius of pt, visiting
// plates top-most first and screws in plate order. A higher plate wins even
// when a lower plate's screw is closer.
func HitTest(pt vmath.Point, st *plate.Stage, hitRadius float64) (Hit, bool) {
	if st == nil || len(st.Plates) == 0 {
		return Hit{}, false
	}

	ordered := slices.Clone(st.Plates)
	slices.SortStableFunc(ordered, func(a, b *plate.Plate) int {
		return b.ZOrder - a.ZOrder
	})

	radiusSq := hitRadius * hitRadius
	for _, p := range ordered {
		for _, s := range p.Screws {
			if s.Removed {
				continue
			}
			if vmath.DistSq(pt, s.Pos) <= radiusSq {
				return Hit{Screw: s, Plate: p}, true
			}
		}
	}
	return Hit{}, false
}

// TopPlateAt returns the highest plate whose shape contains pt
func TopPlateAt(pt vmath.Point, st *plate.Stage) (*plate.Plate, bool) {
	if st == nil {
		return nil, false
	}
	var top *plate.Plate
	for _, p := range st.Plates {
		if !vmath.PointInShape(pt, p.Shape) {
			continue
		}
		if top == nil || p.ZOrder > top.ZOrder {
			top = p
		}
	}
	return top, top != nil
}

// anyAbove short-circuits on the first containing plate strictly above z
func anyAbove(pos vmath.Point, z int, plates []*plate.Plate) bool {
	for _, p := range plates {
		if p.ZOrder > z && vmath.PointInShape(pos, p.Shape) {
			return true
		}
	}
	return false
}

func ownerOf(s *plate.Screw, plates []*plate.Plate) *plate.Plate {
	for _, p := range plates {
		if p.ID == s.PlateID {
			return p
		}
	}
	panic(fmt.Sprintf("coverage: screw %d references plate %d not in stack", s.ID, s.PlateID))
}
