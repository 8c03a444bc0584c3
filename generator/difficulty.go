package generator

import (
	"math"

	"github.com/lixenwraith/screw-puzzle/parameter"
	"github.com/lixenwraith/screw-puzzle/plate"
)

// CalculateDifficultyParams maps a stage number to its generation bundle
// Every curve is monotonic in stage number and independently capped
// Negative stage numbers are treated as stage 0
func CalculateDifficultyParams(stageNumber int) plate.Difficulty {
	n := max(stageNumber, 0)
	f := float64(n)

	return plate.Difficulty{
		PlateCount:     min(parameter.PlateCountBase+n/parameter.PlateCountStep, parameter.PlateCountMax),
		ScrewsPerPlate: min(parameter.ScrewsPerPlateBase+n/parameter.ScrewsPerPlateStep, parameter.ScrewsPerPlateMax),
		EllipseRatio:   math.Min(parameter.EllipseRatioMax, f*parameter.EllipseRatioPerStage),
		MinRadius:      math.Max(parameter.MinRadiusFloor, parameter.MinRadiusStart-f*parameter.MinRadiusPerStage),
		MaxRadius:      math.Min(parameter.MaxRadiusCap, parameter.MaxRadiusStart+f*parameter.MaxRadiusPerStage),
		OverlapDensity: math.Min(parameter.OverlapDensityMax, parameter.OverlapDensityStart+f*parameter.OverlapDensityPerStage),
	}
}

// WoodColor darkens in four bands as stages advance
func WoodColor(stageNumber int) plate.Color {
	var c [3]uint8
	switch {
	case stageNumber <= parameter.WoodBandLight:
		c = parameter.WoodLight
	case stageNumber <= parameter.WoodBandStandard:
		c = parameter.WoodStandard
	case stageNumber <= parameter.WoodBandDark:
		c = parameter.WoodDark
	default:
		c = parameter.WoodCharred
	}
	return plate.Color{R: c[0], G: c[1], B: c[2]}
}
