// Package vmath holds the float geometry used by coverage and generation:
// points, circle/ellipse containment, and a seedable random source.
package vmath

import "math"

// Point is a position in stage coordinate space
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistSq returns squared Euclidean distance, no sqrt
func DistSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Rotate rotates p about origin by angle radians, counter-clockwise positive
func Rotate(p, origin Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx := p.X - origin.X
	dy := p.Y - origin.Y
	return Point{
		X: origin.X + dx*cos - dy*sin,
		Y: origin.Y + dx*sin + dy*cos,
	}
}

// Polar returns the point at distance r and angle a from center
func Polar(center Point, r, a float64) Point {
	sin, cos := math.Sincos(a)
	return Point{X: center.X + cos*r, Y: center.Y + sin*r}
}
