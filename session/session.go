// Package session runs one player's game flow over generated stages.
//
// The coverage and plate packages provide mechanism only; this package owns
// the policy: a screw may be removed by a plain tap only when uncovered, and
// a plate whose screws are all out has fallen and no longer covers anything.
// Items, points and statistics follow the stage lifecycle here.
//
// A Session is not safe for concurrent use.
package session

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/screw-puzzle/coverage"
	"github.com/lixenwraith/screw-puzzle/generator"
	"github.com/lixenwraith/screw-puzzle/parameter"
	"github.com/lixenwraith/screw-puzzle/plate"
	"github.com/lixenwraith/screw-puzzle/vmath"
)

// Outcome classifies a removal attempt
type Outcome uint8

const (
	OutcomeRemoved Outcome = iota
	OutcomeBlocked
	OutcomeAlreadyRemoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRemoved:
		return "removed"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeAlreadyRemoved:
		return "already_removed"
	}
	return "unknown"
}

// RemoveResult reports a removal attempt and the events it caused
type RemoveResult struct {
	Outcome  Outcome
	Screw    *plate.Screw
	Plate    *plate.Plate
	Covering []*plate.Plate // set when blocked

	PlateCleared bool
	StageCleared bool
	Reward       int // points granted on stage clear
}

// TapResult reports what a tap did
type TapResult struct {
	Hit      coverage.Hit
	Item     Item           // armed item consumed by the tap, empty for a plain tap
	Remove   RemoveResult   // plain tap or drill
	Covering []*plate.Plate // expose
}

// Stats accumulates across stages
type Stats struct {
	StagesCleared int
	ScrewsRemoved int
}

// Config sets up a new session
type Config struct {
	Width, Height float64
	HitRadius     float64 // <= 0 uses parameter.HitRadius
	StartStage    int     // < 1 uses parameter.StartingStage
	Items         Inventory
	Logger        *slog.Logger
}

// Session owns the current stage and the player's progress
type Session struct {
	gen       *generator.Generator
	width     float64
	height    float64
	hitRadius float64
	log       *slog.Logger

	stageNumber     int
	stage           *plate.Stage
	maybeUnsolvable bool

	points int
	items  Inventory
	stats  Stats
	armed  Item
}

// New creates a session and loads its first stage
func New(gen *generator.Generator, cfg Config) *Session {
	s := &Session{
		gen:         gen,
		width:       cfg.Width,
		height:      cfg.Height,
		hitRadius:   cfg.HitRadius,
		log:         cfg.Logger,
		stageNumber: cfg.StartStage,
		items:       NewInventory(0),
	}
	if s.width <= 0 {
		s.width = parameter.DefaultViewportWidth
	}
	if s.height <= 0 {
		s.height = parameter.DefaultViewportHeight
	}
	if s.hitRadius <= 0 {
		s.hitRadius = parameter.HitRadius
	}
	if s.stageNumber < 1 {
		s.stageNumber = parameter.StartingStage
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if cfg.Items == nil {
		s.items = NewInventory(parameter.StartingItems)
	} else {
		for _, it := range Items {
			s.items[it] = cfg.Items[it]
		}
	}

	s.load(s.gen.Generate(s.stageNumber, s.width, s.height))
	return s
}

func (s *Session) Stage() *plate.Stage   { return s.stage }
func (s *Session) StageNumber() int      { return s.stageNumber }
func (s *Session) Points() int           { return s.points }
func (s *Session) Stats() Stats          { return s.stats }
func (s *Session) Count(it Item) int     { return s.items[it] }
func (s *Session) Armed() Item           { return s.armed }
func (s *Session) MaybeUnsolvable() bool { return s.maybeUnsolvable }

// Stuck reports no legal plain move while screws remain
func (s *Session) Stuck() bool {
	return !s.stage.AllCleared() && !coverage.HasAnyRemovableScrew(s.stage.Standing())
}

// TryRemove removes the screw only if no higher plate covers it
func (s *Session) TryRemove(sc *plate.Screw, p *plate.Plate) RemoveResult {
	res := RemoveResult{Screw: sc, Plate: p}
	if sc.Removed {
		res.Outcome = OutcomeAlreadyRemoved
		return res
	}

	cov := coverage.IsCoveredBy(sc, p, s.stage.Standing().Plates)
	if cov.Covered {
		res.Outcome = OutcomeBlocked
		res.Covering = cov.Plates
		return res
	}

	s.stats.ScrewsRemoved++
	s.remove(&res)
	return res
}

// Tap resolves the top-most screw at pt and applies the armed item, if any,
// otherwise attempts a plain removal
func (s *Session) Tap(pt vmath.Point) (TapResult, error) {
	hit, ok := coverage.HitTest(pt, s.stage, s.hitRadius)
	if !ok {
		return TapResult{}, ErrNoScrew
	}
	out := TapResult{Hit: hit}

	switch s.armed {
	case ItemExpose:
		covering, err := s.Expose(hit.Screw, hit.Plate)
		if err != nil {
			return out, err
		}
		out.Item = ItemExpose
		out.Covering = covering
	case ItemDrill:
		res, err := s.Drill(hit.Screw, hit.Plate)
		if err != nil {
			return out, err
		}
		out.Item = ItemDrill
		out.Remove = res
	default:
		out.Remove = s.TryRemove(hit.Screw, hit.Plate)
	}
	return out, nil
}

// Arm readies a targeted item for the next tap; arming it again disarms
func (s *Session) Arm(it Item) error {
	if !it.Valid() {
		return fmt.Errorf("%q: %w", string(it), ErrUnknownItem)
	}
	if !it.Targeted() {
		return fmt.Errorf("%s: %w", it, ErrNotTargeted)
	}
	if s.armed == it {
		s.armed = ""
		return nil
	}
	if s.items[it] <= 0 {
		return fmt.Errorf("%s: %w", it, ErrNoItem)
	}
	s.armed = it
	return nil
}

func (s *Session) Disarm() {
	s.armed = ""
}

// Hint consumes a hint and lists every currently removable screw
func (s *Session) Hint() ([]coverage.Hit, error) {
	if err := s.items.take(ItemHint); err != nil {
		return nil, err
	}
	hits := coverage.FindRemovableScrews(s.stage.Standing())
	s.log.Debug("hint used", slog.Int("removable", len(hits)))
	return hits, nil
}

// Expose consumes an expose and lists the plates covering the screw
func (s *Session) Expose(sc *plate.Screw, p *plate.Plate) ([]*plate.Plate, error) {
	if err := s.items.take(ItemExpose); err != nil {
		s.armed = ""
		return nil, err
	}
	s.armed = ""
	cov := coverage.IsCoveredBy(sc, p, s.stage.Standing().Plates)
	s.log.Debug("expose used", slog.Int("screw", sc.ID), slog.Int("covering", len(cov.Plates)))
	return cov.Plates, nil
}

// Drill consumes a drill and removes the screw regardless of coverage
// An already removed screw costs nothing
func (s *Session) Drill(sc *plate.Screw, p *plate.Plate) (RemoveResult, error) {
	res := RemoveResult{Screw: sc, Plate: p}
	if sc.Removed {
		s.armed = ""
		res.Outcome = OutcomeAlreadyRemoved
		return res, nil
	}
	if err := s.items.take(ItemDrill); err != nil {
		s.armed = ""
		return res, err
	}
	s.armed = ""
	s.remove(&res)
	s.log.Debug("drill used", slog.Int("screw", sc.ID))
	return res, nil
}

// Shuffle consumes a shuffle and regenerates the current stage number
func (s *Session) Shuffle() (generator.Result, error) {
	if err := s.items.take(ItemShuffle); err != nil {
		return generator.Result{}, err
	}
	res := s.gen.Shuffle(s.stageNumber, s.width, s.height)
	s.load(res)
	return res, nil
}

// Purchase spends points on one item
func (s *Session) Purchase(it Item) error {
	cost, err := it.Cost()
	if err != nil {
		return err
	}
	if s.points < cost {
		return fmt.Errorf("%s costs %d, have %d: %w", it, cost, s.points, ErrInsufficientPoints)
	}
	s.points -= cost
	s.items[it]++
	return nil
}

// NextStage advances and generates the following stage
func (s *Session) NextStage() generator.Result {
	s.stageNumber++
	res := s.gen.Generate(s.stageNumber, s.width, s.height)
	s.load(res)
	return res
}

// Restore replaces the current stage with one rebuilt by a collaborator,
// e.g. from saved state; the stage must pass validation
func (s *Session) Restore(st *plate.Stage) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("restore stage %d: %w", st.Number, err)
	}
	s.stageNumber = st.Number
	s.load(generator.Result{Stage: st, Attempts: 0})
	return nil
}

// Resize changes the viewport used for subsequent generation
func (s *Session) Resize(width, height float64) {
	if width > 0 {
		s.width = width
	}
	if height > 0 {
		s.height = height
	}
}

func (s *Session) load(res generator.Result) {
	s.stage = res.Stage
	s.maybeUnsolvable = res.MaybeUnsolvable
	s.armed = ""
	if res.MaybeUnsolvable {
		s.log.Warn("loaded stage may be unsolvable", slog.Int("stage", s.stageNumber))
	}
}

// remove applies the mutation and the clear events that follow it
func (s *Session) remove(res *RemoveResult) {
	plate.Remove(res.Screw)
	res.Outcome = OutcomeRemoved

	if !res.Plate.Cleared() {
		return
	}
	res.PlateCleared = true
	s.log.Debug("plate cleared", slog.Int("plate", res.Plate.ID))

	if !s.stage.AllCleared() {
		return
	}
	res.StageCleared = true
	res.Reward = StageReward(s.stageNumber)
	s.points += res.Reward
	s.stats.StagesCleared++
	for _, it := range Items {
		s.items[it]++
	}
	s.log.Info("stage cleared",
		slog.Int("stage", s.stageNumber),
		slog.Int("reward", res.Reward),
		slog.Int("points", s.points))
}
