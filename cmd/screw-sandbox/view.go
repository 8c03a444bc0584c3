package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/screw-puzzle/coverage"
	"github.com/lixenwraith/screw-puzzle/plate"
	"github.com/lixenwraith/screw-puzzle/session"
	"github.com/lixenwraith/screw-puzzle/vmath"
)

const (
	statusRows  = 2
	screwGlyph  = 'o'
	coverGlyph  = '·'
	shadeStep   = 12 // per z-level darkening so stacked plates stay distinct
	minShadeRGB = 24
)

var (
	styleBackground = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 24))
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(40, 40, 48))
	colorFree       = tcell.NewRGBColor(120, 230, 120)
	colorCovered    = tcell.NewRGBColor(90, 90, 90)
	colorHint       = tcell.NewRGBColor(255, 220, 60)
	colorExposed    = tcell.NewRGBColor(220, 80, 80)
)

// viewport maps terminal cells to stage coordinates
type viewport struct {
	cols, rows    int
	width, height float64
}

func newViewport(cols, rows int, width, height float64) viewport {
	return viewport{cols: cols, rows: max(rows-statusRows, 1), width: width, height: height}
}

// toStage returns the stage point at the center of cell (x, y)
func (v viewport) toStage(x, y int) vmath.Point {
	return vmath.Pt(
		(float64(x)+0.5)*v.width/float64(v.cols),
		(float64(y)+0.5)*v.height/float64(v.rows),
	)
}

// toCell returns the cell containing stage point p
func (v viewport) toCell(p vmath.Point) (int, int) {
	x := int(p.X * float64(v.cols) / v.width)
	y := int(p.Y * float64(v.rows) / v.height)
	return min(max(x, 0), v.cols-1), min(max(y, 0), v.rows-1)
}

// tapRadius widens the hit radius to at least one cell
func (v viewport) tapRadius(hitRadius float64) float64 {
	cell := max(v.width/float64(v.cols), v.height/float64(v.rows))
	return max(hitRadius, cell)
}

// highlights marks screws and plates to accent on the next frame
type highlights struct {
	hinted   map[int]bool // screw ids
	covering map[int]bool // plate ids
}

func plateStyle(p *plate.Plate, exposed bool) tcell.Style {
	if exposed {
		return tcell.StyleDefault.Background(colorExposed)
	}
	shade := func(c uint8) int32 {
		return max(int32(c)-int32(p.ZOrder*shadeStep%96), minShadeRGB)
	}
	return tcell.StyleDefault.Background(tcell.NewRGBColor(shade(p.Color.R), shade(p.Color.G), shade(p.Color.B)))
}

// draw renders standing plates, screws and the status lines
func draw(screen tcell.Screen, v viewport, s *session.Session, hl highlights, msg string) {
	screen.Clear()
	standing := s.Stage().Standing()

	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			style := styleBackground
			if p, ok := coverage.TopPlateAt(v.toStage(x, y), standing); ok {
				style = plateStyle(p, hl.covering[p.ID])
			}
			screen.SetContent(x, y, ' ', nil, style)
		}
	}

	for _, p := range standing.Plates {
		for _, sc := range p.Screws {
			if sc.Removed {
				continue
			}
			x, y := v.toCell(sc.Pos)
			_, _, bg, _ := screen.GetContent(x, y)
			fg := colorFree
			glyph := screwGlyph
			if coverage.IsCoveredBy(sc, p, standing.Plates).Covered {
				fg, glyph = colorCovered, coverGlyph
			}
			if hl.hinted[sc.ID] {
				fg = colorHint
			}
			screen.SetContent(x, y, glyph, nil, bg.Foreground(fg).Bold(true))
		}
	}

	drawStatus(screen, v, s, msg)
	screen.Show()
}

func drawStatus(screen tcell.Screen, v viewport, s *session.Session, msg string) {
	line := fmt.Sprintf(" stage %d  screws %d/%d  points %d  [h]int %d [e]xpose %d [d]rill %d [s]huffle %d",
		s.StageNumber(), s.Stage().RemainingScrews(), s.Stage().TotalScrews(), s.Points(),
		s.Count(session.ItemHint), s.Count(session.ItemExpose), s.Count(session.ItemDrill), s.Count(session.ItemShuffle))
	if armed := s.Armed(); armed != "" {
		line += "  armed: " + string(armed)
	}
	putLine(screen, v.rows, v.cols, line)
	putLine(screen, v.rows+1, v.cols, " "+msg)
}

func putLine(screen tcell.Screen, y, cols int, text string) {
	x := 0
	for _, r := range text {
		if x >= cols {
			break
		}
		screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
	for ; x < cols; x++ {
		screen.SetContent(x, y, ' ', nil, styleStatus)
	}
}
