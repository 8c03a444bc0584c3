package vmath

// ShapeKind tags the Shape variant
type ShapeKind uint8

const (
	KindCircle ShapeKind = iota
	KindEllipse
)

func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Shape is an immutable plate outline, either Circle or Ellipse
type Shape interface {
	Kind() ShapeKind
	// Center returns the shape origin
	Center() Point
	// Extent returns the largest radius, used for bounds fitting
	Extent() float64
	// Contains reports whether p lies inside or on the boundary
	Contains(p Point) bool
}

// Circle is a disc around C
type Circle struct {
	C Point
	R float64
}

func (c Circle) Kind() ShapeKind       { return KindCircle }
func (c Circle) Center() Point         { return c.C }
func (c Circle) Extent() float64       { return c.R }
func (c Circle) Contains(p Point) bool { return PointInCircle(p, c.C, c.R) }

// Ellipse is rotated by Rotation radians (counter-clockwise) about C
type Ellipse struct {
	C        Point
	RX, RY   float64
	Rotation float64
}

func (e Ellipse) Kind() ShapeKind { return KindEllipse }
func (e Ellipse) Center() Point   { return e.C }

func (e Ellipse) Extent() float64 {
	if e.RX > e.RY {
		return e.RX
	}
	return e.RY
}

func (e Ellipse) Contains(p Point) bool {
	return PointInEllipse(p, e.C, e.RX, e.RY, e.Rotation)
}

// PointInShape dispatches on the shape variant; nil shapes contain nothing
func PointInShape(p Point, s Shape) bool {
	if s == nil {
		return false
	}
	return s.Contains(p)
}
