// Package generator builds stages by randomized construction, accepting the
// first candidate that has at least one removable screw.
package generator

import (
	"log/slog"
	"math"
	"time"

	"github.com/lixenwraith/screw-puzzle/coverage"
	"github.com/lixenwraith/screw-puzzle/parameter"
	"github.com/lixenwraith/screw-puzzle/plate"
	"github.com/lixenwraith/screw-puzzle/vmath"
)

// Result is a generated stage plus how it was reached
type Result struct {
	Stage    *plate.Stage
	Attempts int
	// MaybeUnsolvable is set when every attempt lacked a removable screw and
	// the last candidate was returned anyway
	MaybeUnsolvable bool
}

// Generator owns a random source; it keeps no reference to stages it returns
// Not safe for concurrent use, the source is shared across calls
type Generator struct {
	maxAttempts int
	margin      float64
	rng         vmath.Source
	log         *slog.Logger
	observer    Observer
	gate        func(*plate.Stage) bool
}

// New creates a generator; nil options use DefaultOptions
func New(opts *Options) *Generator {
	if opts == nil {
		opts = DefaultOptions()
	}
	g := &Generator{
		maxAttempts: opts.MaxAttempts,
		margin:      opts.Margin,
		rng:         opts.source(),
		log:         opts.Logger,
		observer:    opts.Observer,
		gate:        coverage.HasAnyRemovableScrew,
	}
	if g.maxAttempts <= 0 {
		g.maxAttempts = parameter.GenerationMaxAttempts
	}
	if g.margin < 0 {
		g.margin = 0
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	return g
}

// Generate builds a stage for stageNumber fitting [0,width]x[0,height]
func (g *Generator) Generate(stageNumber int, width, height float64) Result {
	start := time.Now()
	params := CalculateDifficultyParams(stageNumber)
	color := WoodColor(stageNumber)

	var res Result
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		st := g.build(stageNumber, params, color, width, height)
		st.MustValidate()
		res = Result{Stage: st, Attempts: attempt}

		if g.gate(st) {
			g.log.Debug("stage generated",
				slog.Int("stage", stageNumber),
				slog.Int("attempt", attempt),
				slog.Int("plates", len(st.Plates)))
			g.notify(stageNumber, res, start)
			return res
		}

		g.log.Warn("stage has no removable screws, regenerating",
			slog.Int("stage", stageNumber),
			slog.Int("attempt", attempt))
		if g.observer != nil {
			g.observer.AttemptRejected(stageNumber, attempt)
		}
	}

	res.MaybeUnsolvable = true
	g.log.Error("returning possibly unsolvable stage",
		slog.Int("stage", stageNumber),
		slog.Int("attempts", g.maxAttempts))
	g.notify(stageNumber, res, start)
	return res
}

// Shuffle re-rolls the same stage number; no link to any previous layout
func (g *Generator) Shuffle(stageNumber int, width, height float64) Result {
	g.log.Debug("shuffling stage", slog.Int("stage", stageNumber))
	return g.Generate(stageNumber, width, height)
}

func (g *Generator) notify(stageNumber int, res Result, start time.Time) {
	if g.observer != nil {
		g.observer.Generated(stageNumber, res, time.Since(start))
	}
}

// build assembles one candidate; ids are scoped to this candidate
func (g *Generator) build(stageNumber int, params plate.Difficulty, color plate.Color, width, height float64) *plate.Stage {
	ids := plate.NewIDAllocator()
	st := &plate.Stage{
		Number:    stageNumber,
		WoodColor: color,
		Params:    params,
		Plates:    make([]*plate.Plate, 0, params.PlateCount),
	}

	for i := 0; i < params.PlateCount; i++ {
		shape := g.shape(params, width, height)
		p := &plate.Plate{
			ID:     ids.PlateID(),
			Shape:  shape,
			ZOrder: i, // later plates sit on top
			Color:  color,
		}
		g.attachScrews(p, ids, params.ScrewsPerPlate)
		st.Plates = append(st.Plates, p)
	}
	return st
}

func (g *Generator) shape(params plate.Difficulty, width, height float64) vmath.Shape {
	isEllipse := g.rng.Float64() < params.EllipseRatio

	rx := vmath.Range(g.rng, params.MinRadius, params.MaxRadius)
	ry := rx
	if isEllipse {
		ry = rx * vmath.Range(g.rng, parameter.EllipseMinorMin, parameter.EllipseMinorMax)
	}

	margin := math.Max(rx, ry) + g.margin
	center := vmath.Pt(
		fitAxis(g.rng, margin, width),
		fitAxis(g.rng, margin, height),
	)
	rotation := vmath.Angle(g.rng)

	if !isEllipse {
		// Rotation is drawn for circles too, keeping the draw sequence uniform
		return vmath.Circle{C: center, R: rx}
	}
	return vmath.Ellipse{C: center, RX: rx, RY: ry, Rotation: rotation}
}

// fitAxis picks a coordinate in [margin, size-margin], or the midpoint when
// the axis is too short for the shape
func fitAxis(rng vmath.Source, margin, size float64) float64 {
	span := size - 2*margin
	if span <= 0 {
		return size / 2
	}
	return margin + rng.Float64()*span
}

// attachScrews spaces screws evenly around a ring inside the plate, with
// angular and radial jitter
func (g *Generator) attachScrews(p *plate.Plate, ids *plate.IDAllocator, perPlate int) {
	jitter := int(math.Floor(g.rng.Float64()*float64(2*parameter.ScrewCountJitter+1))) - parameter.ScrewCountJitter
	count := max(parameter.ScrewCountMin, perPlate+jitter)

	center := p.Shape.Center()
	rx, ry, rotation := p.Shape.Extent(), p.Shape.Extent(), 0.0
	if e, ok := p.Shape.(vmath.Ellipse); ok {
		rx, ry, rotation = e.RX, e.RY, e.Rotation
	}

	p.Screws = make([]*plate.Screw, 0, count)
	for i := 0; i < count; i++ {
		angle := 2*math.Pi*float64(i)/float64(count) +
			vmath.Range(g.rng, -parameter.ScrewAngleJitter, parameter.ScrewAngleJitter)
		ring := vmath.Range(g.rng, parameter.ScrewRingMin, parameter.ScrewRingMax)

		sin, cos := math.Sincos(angle)
		local := vmath.Pt(center.X+cos*rx*ring, center.Y+sin*ry*ring)
		pos := vmath.Rotate(local, center, rotation)

		p.Screws = append(p.Screws, &plate.Screw{
			ID:      ids.ScrewID(),
			PlateID: p.ID,
			Pos:     pos,
		})
	}
}
