package plate

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPlate     = errors.New("screw references unknown plate")
	ErrDuplicateZOrder  = errors.New("duplicate plate z-order")
	ErrDuplicatePlateID = errors.New("duplicate plate id")
	ErrDuplicateScrewID = errors.New("duplicate screw id")
	ErrNilShape         = errors.New("plate has no shape")
)

// Stage is one generated puzzle layout
type Stage struct {
	Number    int
	Plates    []*Plate
	WoodColor Color
	// Params records the generation inputs; gameplay does not read it
	Params Difficulty
}

// PlateByID returns the plate with the given id
func (s *Stage) PlateByID(id int) (*Plate, bool) {
	for _, p := range s.Plates {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// ScrewByID returns the screw and its owning plate
func (s *Stage) ScrewByID(id int) (*Screw, *Plate, bool) {
	for _, p := range s.Plates {
		for _, sc := range p.Screws {
			if sc.ID == id {
				return sc, p, true
			}
		}
	}
	return nil, nil, false
}

// Standing returns a shallow view without fallen plates; plates and screws
// are shared with s, so removals through the view apply to s
func (s *Stage) Standing() *Stage {
	view := *s
	view.Plates = make([]*Plate, 0, len(s.Plates))
	for _, p := range s.Plates {
		if !p.Fallen() {
			view.Plates = append(view.Plates, p)
		}
	}
	return &view
}

// AllCleared reports whether every plate is cleared; an empty stage is cleared
func (s *Stage) AllCleared() bool {
	for _, p := range s.Plates {
		if !p.Cleared() {
			return false
		}
	}
	return true
}

func (s *Stage) RemainingScrews() int {
	n := 0
	for _, p := range s.Plates {
		n += p.Remaining()
	}
	return n
}

func (s *Stage) TotalScrews() int {
	n := 0
	for _, p := range s.Plates {
		n += len(p.Screws)
	}
	return n
}

// Validate checks the construction invariants: unique plate ids, unique
// z-orders, unique screw ids, and every screw's plate id naming its owner
func (s *Stage) Validate() error {
	plateIDs := make(map[int]struct{}, len(s.Plates))
	zOrders := make(map[int]int, len(s.Plates))
	screwIDs := make(map[int]struct{})

	for _, p := range s.Plates {
		if _, dup := plateIDs[p.ID]; dup {
			return fmt.Errorf("plate %d: %w", p.ID, ErrDuplicatePlateID)
		}
		plateIDs[p.ID] = struct{}{}

		if other, dup := zOrders[p.ZOrder]; dup {
			return fmt.Errorf("plates %d and %d share z=%d: %w", other, p.ID, p.ZOrder, ErrDuplicateZOrder)
		}
		zOrders[p.ZOrder] = p.ID

		if p.Shape == nil {
			return fmt.Errorf("plate %d: %w", p.ID, ErrNilShape)
		}
	}

	for _, p := range s.Plates {
		for _, sc := range p.Screws {
			if _, dup := screwIDs[sc.ID]; dup {
				return fmt.Errorf("screw %d: %w", sc.ID, ErrDuplicateScrewID)
			}
			screwIDs[sc.ID] = struct{}{}

			if sc.PlateID != p.ID {
				return fmt.Errorf("screw %d names plate %d but is owned by %d: %w", sc.ID, sc.PlateID, p.ID, ErrUnknownPlate)
			}
		}
	}
	return nil
}

// MustValidate panics on an invariant violation
func (s *Stage) MustValidate() {
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("plate: invalid stage %d: %v", s.Number, err))
	}
}
