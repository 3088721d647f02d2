package geometry

import "math"

// PerspectiveTransform is a 3x3 homography mapping module coordinates to
// pixel coordinates (or vice versa), carried as nine doubles per spec.md §3.
// Ported from the teacher's transform.PerspectiveTransform, generalized to
// build directly from two Quadrilaterals and to represent invalid
// (non-convex source/destination) transforms as a NaN sentinel instead of
// relying on the caller to pre-validate.
type PerspectiveTransform struct {
	a11, a12, a13 float64
	a21, a22, a23 float64
	a31, a32, a33 float64
	valid         bool
}

// invalidTransform is the NaN sentinel returned for non-convex inputs.
var invalidTransform = PerspectiveTransform{
	a11: math.NaN(), a12: math.NaN(), a13: math.NaN(),
	a21: math.NaN(), a22: math.NaN(), a23: math.NaN(),
	a31: math.NaN(), a32: math.NaN(), a33: math.NaN(),
}

// IsValid reports whether the transform was built from two convex quads.
func (pt PerspectiveTransform) IsValid() bool { return pt.valid }

// NewPerspectiveTransform builds the transform from src to dst quadrilaterals
// by composing the inverse of the unit-square-to-src transform with the
// unit-square-to-dst transform. Non-convex inputs yield invalidTransform.
func NewPerspectiveTransform(src, dst Quadrilateral) PerspectiveTransform {
	if !src.IsConvex() || !dst.IsConvex() {
		return invalidTransform
	}
	sp := src.Points()
	dp := dst.Points()
	qToS := quadrilateralToSquare(sp[0], sp[1], sp[2], sp[3])
	sToQ := squareToQuadrilateral(dp[0], dp[1], dp[2], dp[3])
	t := sToQ.times(qToS)
	t.valid = true
	return t
}

// Apply maps a single point through the transform with a homogeneous divide.
func (pt PerspectiveTransform) Apply(p PointF) PointF {
	denominator := pt.a13*p.X + pt.a23*p.Y + pt.a33
	return PointF{
		X: (pt.a11*p.X + pt.a21*p.Y + pt.a31) / denominator,
		Y: (pt.a12*p.X + pt.a22*p.Y + pt.a32) / denominator,
	}
}

// TransformPoints transforms pairs of (x, y) coordinates in-place.
// points must have even length: [x0, y0, x1, y1, ...].
func (pt PerspectiveTransform) TransformPoints(points []float64) {
	for i := 0; i+1 < len(points); i += 2 {
		x := points[i]
		y := points[i+1]
		denominator := pt.a13*x + pt.a23*y + pt.a33
		points[i] = (pt.a11*x + pt.a21*y + pt.a31) / denominator
		points[i+1] = (pt.a12*x + pt.a22*y + pt.a32) / denominator
	}
}

// squareToQuadrilateral computes the transform from the unit square to a
// quadrilateral. When the source corners are affinely related (dx3==dy3==0)
// the construction degenerates to the affine branch with no perspective
// denominator, per spec.md §3.
func squareToQuadrilateral(p0, p1, p2, p3 PointF) PerspectiveTransform {
	dx3 := p0.X - p1.X + p2.X - p3.X
	dy3 := p0.Y - p1.Y + p2.Y - p3.Y
	if dx3 == 0 && dy3 == 0 {
		return PerspectiveTransform{
			a11: p1.X - p0.X, a21: p2.X - p1.X, a31: p0.X,
			a12: p1.Y - p0.Y, a22: p2.Y - p1.Y, a32: p0.Y,
			a13: 0, a23: 0, a33: 1,
		}
	}
	dx1 := p1.X - p2.X
	dx2 := p3.X - p2.X
	dy1 := p1.Y - p2.Y
	dy2 := p3.Y - p2.Y
	denominator := dx1*dy2 - dx2*dy1
	a13 := (dx3*dy2 - dx2*dy3) / denominator
	a23 := (dx1*dy3 - dx3*dy1) / denominator
	return PerspectiveTransform{
		a11: p1.X - p0.X + a13*p1.X, a21: p3.X - p0.X + a23*p3.X, a31: p0.X,
		a12: p1.Y - p0.Y + a13*p1.Y, a22: p3.Y - p0.Y + a23*p3.Y, a32: p0.Y,
		a13: a13, a23: a23, a33: 1,
	}
}

// quadrilateralToSquare is the inverse of squareToQuadrilateral: the adjoint
// of the square-to-quad transform for these same four points.
func quadrilateralToSquare(p0, p1, p2, p3 PointF) PerspectiveTransform {
	return squareToQuadrilateral(p0, p1, p2, p3).buildAdjoint()
}

func (pt PerspectiveTransform) buildAdjoint() PerspectiveTransform {
	return PerspectiveTransform{
		a11: pt.a22*pt.a33 - pt.a23*pt.a32,
		a21: pt.a23*pt.a31 - pt.a21*pt.a33,
		a31: pt.a21*pt.a32 - pt.a22*pt.a31,
		a12: pt.a13*pt.a32 - pt.a12*pt.a33,
		a22: pt.a11*pt.a33 - pt.a13*pt.a31,
		a32: pt.a12*pt.a31 - pt.a11*pt.a32,
		a13: pt.a12*pt.a23 - pt.a13*pt.a22,
		a23: pt.a13*pt.a21 - pt.a11*pt.a23,
		a33: pt.a11*pt.a22 - pt.a12*pt.a21,
	}
}

func (pt PerspectiveTransform) times(other PerspectiveTransform) PerspectiveTransform {
	return PerspectiveTransform{
		a11: pt.a11*other.a11 + pt.a21*other.a12 + pt.a31*other.a13,
		a21: pt.a11*other.a21 + pt.a21*other.a22 + pt.a31*other.a23,
		a31: pt.a11*other.a31 + pt.a21*other.a32 + pt.a31*other.a33,
		a12: pt.a12*other.a11 + pt.a22*other.a12 + pt.a32*other.a13,
		a22: pt.a12*other.a21 + pt.a22*other.a22 + pt.a32*other.a23,
		a32: pt.a12*other.a31 + pt.a22*other.a32 + pt.a32*other.a33,
		a13: pt.a13*other.a11 + pt.a23*other.a12 + pt.a33*other.a13,
		a23: pt.a13*other.a21 + pt.a23*other.a22 + pt.a33*other.a23,
		a33: pt.a13*other.a31 + pt.a23*other.a32 + pt.a33*other.a33,
	}
}
