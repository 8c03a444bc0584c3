package parameter

// Stage construction
const (
	// GenerationMaxAttempts bounds the rejection-sampling loop
	GenerationMaxAttempts = 10

	// PlateMargin is added to the plate extent when fitting centers in bounds
	PlateMargin = 20.0

	// Ellipse minor radius as a fraction of the major radius
	EllipseMinorMin = 0.5
	EllipseMinorMax = 0.9

	// Screw ring, as a fraction of the plate radius along the screw direction
	ScrewRingMin = 0.6
	ScrewRingMax = 0.8

	// ScrewAngleJitter is the max angular offset (radians) from even spacing
	ScrewAngleJitter = 0.15

	// Screw count per plate varies by ScrewCountJitter around the difficulty value
	ScrewCountJitter = 1
	ScrewCountMin    = 2

	// Default viewport when no renderer supplies one
	DefaultViewportWidth  = 600.0
	DefaultViewportHeight = 600.0
)
