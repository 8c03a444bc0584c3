package vmath

import "math"

// Containment tests for plate outlines
// Degenerate radii (<= 0) contain only the exact center, never divide by zero

// PointInCircle returns true if squared distance from center is <= radius²
func PointInCircle(p, center Point, radius float64) bool {
	if radius <= 0 {
		return p == center
	}
	return DistSq(p, center) <= radius*radius
}

// PointInEllipse rotates p by -rotation about center into the ellipse frame,
// then tests (x/rx)² + (y/ry)² <= 1
func PointInEllipse(p, center Point, rx, ry, rotation float64) bool {
	if rx <= 0 || ry <= 0 {
		return p == center
	}
	sin, cos := math.Sincos(-rotation)
	dx := p.X - center.X
	dy := p.Y - center.Y
	lx := dx*cos - dy*sin
	ly := dx*sin + dy*cos
	nx := lx / rx
	ny := ly / ry
	return nx*nx+ny*ny <= 1
}
