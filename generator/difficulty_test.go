package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/screw-puzzle/plate"
)

func TestCalculateDifficultyParams_Monotonic(t *testing.T) {
	for n := 0; n <= 200; n++ {
		cur := CalculateDifficultyParams(n)
		next := CalculateDifficultyParams(n + 5)

		assert.LessOrEqual(t, cur.PlateCount, next.PlateCount, "stage %d", n)
		assert.LessOrEqual(t, cur.ScrewsPerPlate, next.ScrewsPerPlate, "stage %d", n)
		assert.LessOrEqual(t, cur.EllipseRatio, next.EllipseRatio, "stage %d", n)
		assert.GreaterOrEqual(t, cur.MinRadius, next.MinRadius, "stage %d", n)
		assert.LessOrEqual(t, cur.MaxRadius, next.MaxRadius, "stage %d", n)
		assert.LessOrEqual(t, cur.OverlapDensity, next.OverlapDensity, "stage %d", n)

		assert.LessOrEqual(t, cur.PlateCount, 12)
		assert.LessOrEqual(t, cur.ScrewsPerPlate, 6)
		assert.LessOrEqual(t, cur.EllipseRatio, 0.7)
		assert.GreaterOrEqual(t, cur.MinRadius, 40.0)
		assert.LessOrEqual(t, cur.MaxRadius, 100.0)
		assert.LessOrEqual(t, cur.MinRadius, cur.MaxRadius)
		assert.LessOrEqual(t, cur.OverlapDensity, 0.8)
	}
}

func TestCalculateDifficultyParams_Values(t *testing.T) {
	assert.Equal(t, plate.Difficulty{
		PlateCount:     3,
		ScrewsPerPlate: 2,
		EllipseRatio:   0.05,
		MinRadius:      59.5,
		MaxRadius:      80.3,
		OverlapDensity: 0.32,
	}, roundParams(CalculateDifficultyParams(1)))

	far := CalculateDifficultyParams(1000)
	assert.Equal(t, 12, far.PlateCount)
	assert.Equal(t, 6, far.ScrewsPerPlate)
	assert.Equal(t, 0.7, far.EllipseRatio)
	assert.Equal(t, 40.0, far.MinRadius)
	assert.Equal(t, 100.0, far.MaxRadius)
	assert.Equal(t, 0.8, far.OverlapDensity)

	assert.Equal(t, CalculateDifficultyParams(0), CalculateDifficultyParams(-7))
}

func TestWoodColor_Bands(t *testing.T) {
	cases := []struct {
		stage int
		want  plate.Color
	}{
		{1, plate.Color{R: 0xD4, G: 0xA5, B: 0x74}},
		{10, plate.Color{R: 0xD4, G: 0xA5, B: 0x74}},
		{11, plate.Color{R: 0xA6, G: 0x7C, B: 0x52}},
		{30, plate.Color{R: 0xA6, G: 0x7C, B: 0x52}},
		{31, plate.Color{R: 0x8B, G: 0x5A, B: 0x3C}},
		{50, plate.Color{R: 0x8B, G: 0x5A, B: 0x3C}},
		{51, plate.Color{R: 0x6B, G: 0x44, B: 0x23}},
		{500, plate.Color{R: 0x6B, G: 0x44, B: 0x23}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WoodColor(tc.stage), "stage %d", tc.stage)
	}
}

// roundParams trims float noise from the linear curves
func roundParams(d plate.Difficulty) plate.Difficulty {
	r := func(v float64) float64 { return float64(int64(v*1000+0.5)) / 1000 }
	d.EllipseRatio = r(d.EllipseRatio)
	d.MinRadius = r(d.MinRadius)
	d.MaxRadius = r(d.MaxRadius)
	d.OverlapDensity = r(d.OverlapDensity)
	return d
}
