package parameter

// Difficulty curves, indexed by stage number
// Each curve grows in steps and saturates at its cap
const (
	// PlateCountBase plates at stage 0, one more every PlateCountStep stages
	PlateCountBase = 3
	PlateCountStep = 5
	PlateCountMax  = 12

	// ScrewsPerPlateBase screws at stage 0, one more every ScrewsPerPlateStep stages
	ScrewsPerPlateBase = 2
	ScrewsPerPlateStep = 10
	ScrewsPerPlateMax  = 6

	// EllipseRatioPerStage is the ellipse probability added per stage
	EllipseRatioPerStage = 0.05
	EllipseRatioMax      = 0.7

	// Plate radius range; min shrinks, max grows
	MinRadiusStart    = 60.0
	MinRadiusPerStage = 0.5
	MinRadiusFloor    = 40.0
	MaxRadiusStart    = 80.0
	MaxRadiusPerStage = 0.3
	MaxRadiusCap      = 100.0

	// Overlap density target, informational
	OverlapDensityStart    = 0.3
	OverlapDensityPerStage = 0.02
	OverlapDensityMax      = 0.8
)

// Wood palette bands: stage <= threshold picks the band color
const (
	WoodBandLight    = 10
	WoodBandStandard = 30
	WoodBandDark     = 50
)

// Wood palette RGB
var (
	WoodLight    = [3]uint8{0xD4, 0xA5, 0x74}
	WoodStandard = [3]uint8{0xA6, 0x7C, 0x52}
	WoodDark     = [3]uint8{0x8B, 0x5A, 0x3C}
	WoodCharred  = [3]uint8{0x6B, 0x44, 0x23}
)
