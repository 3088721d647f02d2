// Package geometry provides the 2-D primitives shared by every detector:
// points, quadrilaterals, regression lines, and perspective transforms.
// It generalizes the teacher's flat ResultPoint/transform package into the
// Point/Quadrilateral/RegressionLine/PerspectiveTransform model of spec.md §3.
package geometry

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the constraint satisfied by both integer and floating-point
// coordinate types, matching Point<T>'s use over PointI/PointF.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a 2-D coordinate pair, generic over its component type. PointI is
// Point[int], PointF is Point[float64].
type Point[T Number] struct {
	X, Y T
}

// PointI is an integer point.
type PointI = Point[int]

// PointF is a floating-point point.
type PointF = Point[float64]

// Add returns a+b.
func (a Point[T]) Add(b Point[T]) Point[T] { return Point[T]{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b.
func (a Point[T]) Sub(b Point[T]) Point[T] { return Point[T]{a.X - b.X, a.Y - b.Y} }

// Scale returns a scaled by s.
func (a Point[T]) Scale(s T) Point[T] { return Point[T]{a.X * s, a.Y * s} }

// Dot returns the dot product a·b.
func (a Point[T]) Dot(b Point[T]) T { return a.X*b.X + a.Y*b.Y }

// Cross returns the z component of the cross product a×b.
func (a Point[T]) Cross(b Point[T]) T { return a.X*b.Y - a.Y*b.X }

// AsFloat converts to a Point[float64].
func (a Point[T]) AsFloat() PointF { return PointF{float64(a.X), float64(a.Y)} }

// L2 returns the Euclidean (L2) norm of the vector.
func (a PointF) L2() float64 { return math.Hypot(a.X, a.Y) }

// L1 returns the Manhattan (L1) norm of the vector.
func L1[T Number](a Point[T]) T { return abs(a.X) + abs(a.Y) }

// LInf returns the Chebyshev (L-infinity) norm of the vector.
func LInf[T Number](a Point[T]) T { return max(abs(a.X), abs(a.Y)) }

func abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Centered converts an integer pixel coordinate to the float coordinate of
// that pixel's center, i.e. p + (0.5, 0.5).
func Centered(p PointI) PointF {
	return PointF{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b PointF) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// CrossProductZ computes the z component of the cross product of vectors
// (b-a) and (c-a) — positive when a,b,c turn counter-clockwise.
func CrossProductZ(a, b, c PointF) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// BresenhamDirection returns the unit-ish (dx, dy) step direction from a
// toward b, rounded to the nearest of the eight compass octants — used by
// cursor-style ray walking across a BitMatrix.
func BresenhamDirection(a, b PointF) PointI {
	d := b.Sub(a)
	norm := math.Max(math.Abs(d.X), math.Abs(d.Y))
	if norm == 0 {
		return PointI{}
	}
	return PointI{X: sign(d.X / norm), Y: sign(d.Y / norm)}
}

func sign(v float64) int {
	switch {
	case v > 0.5:
		return 1
	case v < -0.5:
		return -1
	default:
		return 0
	}
}

// MainDirection returns the cardinal/diagonal direction (one of 8) whose
// angle is closest to the direction of v.
func MainDirection(v PointF) PointF {
	angle := math.Atan2(v.Y, v.X)
	octant := math.Round(angle / (math.Pi / 4))
	a := octant * math.Pi / 4
	return PointF{X: math.Round(math.Cos(a)), Y: math.Round(math.Sin(a))}
}
