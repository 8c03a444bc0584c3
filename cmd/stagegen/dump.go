package main

import (
	"fmt"

	"github.com/lixenwraith/screw-puzzle/generator"
	"github.com/lixenwraith/screw-puzzle/plate"
	"github.com/lixenwraith/screw-puzzle/vmath"
)

// YAML views of the stage model; the core types carry no encoding tags

type stageDump struct {
	Stage           int         `yaml:"stage"`
	Attempts        int         `yaml:"attempts"`
	MaybeUnsolvable bool        `yaml:"maybe_unsolvable,omitempty"`
	WoodColor       string      `yaml:"wood_color"`
	Params          paramsDump  `yaml:"params"`
	Plates          []plateDump `yaml:"plates"`
}

type paramsDump struct {
	Stage          int     `yaml:"stage"`
	PlateCount     int     `yaml:"plate_count"`
	ScrewsPerPlate int     `yaml:"screws_per_plate"`
	EllipseRatio   float64 `yaml:"ellipse_ratio"`
	MinRadius      float64 `yaml:"min_radius"`
	MaxRadius      float64 `yaml:"max_radius"`
	OverlapDensity float64 `yaml:"overlap_density"`
	WoodColor      string  `yaml:"wood_color"`
}

type plateDump struct {
	ID       int         `yaml:"id"`
	Z        int         `yaml:"z"`
	Kind     string      `yaml:"kind"`
	X        float64     `yaml:"x"`
	Y        float64     `yaml:"y"`
	RX       float64     `yaml:"rx"`
	RY       float64     `yaml:"ry"`
	Rotation float64     `yaml:"rotation,omitempty"`
	Screws   []screwDump `yaml:"screws"`
}

type screwDump struct {
	ID      int     `yaml:"id"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Removed bool    `yaml:"removed,omitempty"`
}

type removableDump struct {
	Screw int `yaml:"screw"`
	Plate int `yaml:"plate"`
	Z     int `yaml:"z"`
}

func hexColor(c plate.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func dumpParams(n int) paramsDump {
	p := generator.CalculateDifficultyParams(n)
	return paramsDump{
		Stage:          n,
		PlateCount:     p.PlateCount,
		ScrewsPerPlate: p.ScrewsPerPlate,
		EllipseRatio:   p.EllipseRatio,
		MinRadius:      p.MinRadius,
		MaxRadius:      p.MaxRadius,
		OverlapDensity: p.OverlapDensity,
		WoodColor:      hexColor(generator.WoodColor(n)),
	}
}

func dumpResult(res generator.Result) stageDump {
	st := res.Stage
	d := stageDump{
		Stage:           st.Number,
		Attempts:        res.Attempts,
		MaybeUnsolvable: res.MaybeUnsolvable,
		WoodColor:       hexColor(st.WoodColor),
		Params:          dumpParams(st.Number),
		Plates:          make([]plateDump, 0, len(st.Plates)),
	}
	for _, p := range st.Plates {
		d.Plates = append(d.Plates, dumpPlate(p))
	}
	return d
}

func dumpPlate(p *plate.Plate) plateDump {
	c := p.Shape.Center()
	pd := plateDump{
		ID:   p.ID,
		Z:    p.ZOrder,
		Kind: p.Shape.Kind().String(),
		X:    c.X,
		Y:    c.Y,
		RX:   p.Shape.Extent(),
		RY:   p.Shape.Extent(),
	}
	if e, ok := p.Shape.(vmath.Ellipse); ok {
		pd.RX, pd.RY, pd.Rotation = e.RX, e.RY, e.Rotation
	}
	for _, s := range p.Screws {
		pd.Screws = append(pd.Screws, screwDump{ID: s.ID, X: s.Pos.X, Y: s.Pos.Y, Removed: s.Removed})
	}
	return pd
}
