package geometry

import "math"

// Quadrilateral is an ordered set of four points: top-left, top-right,
// bottom-right, bottom-left. It replaces the teacher's flat
// []ResultPoint/[3]ResultPoint results with the fixed-shape type spec.md §3
// calls for, carrying convexity and blend operations the teacher never
// needed (it only ever ordered three finder-pattern centres).
type Quadrilateral struct {
	TopLeft, TopRight, BottomRight, BottomLeft PointF
}

// NewQuadrilateral builds a Quadrilateral from its four corners in TL, TR,
// BR, BL order.
func NewQuadrilateral(tl, tr, br, bl PointF) Quadrilateral {
	return Quadrilateral{tl, tr, br, bl}
}

// Points returns the four corners as a slice, in TL,TR,BR,BL order.
func (q Quadrilateral) Points() [4]PointF {
	return [4]PointF{q.TopLeft, q.TopRight, q.BottomRight, q.BottomLeft}
}

// Center returns the centroid of the four corners.
func (q Quadrilateral) Center() PointF {
	p := q.Points()
	return PointF{
		X: (p[0].X + p[1].X + p[2].X + p[3].X) / 4,
		Y: (p[0].Y + p[1].Y + p[2].Y + p[3].Y) / 4,
	}
}

// Orientation returns the angle, in radians, of the top-left-to-top-right edge.
func (q Quadrilateral) Orientation() float64 {
	d := q.TopRight.Sub(q.TopLeft)
	return math.Atan2(d.Y, d.X)
}

// BoundingBox returns the axis-aligned bounding box as (min, max) corners.
func (q Quadrilateral) BoundingBox() (min, max PointF) {
	p := q.Points()
	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	return min, max
}

// IsConvex reports whether the quadrilateral is convex and well-conditioned:
// all four corner cross-products must share a sign, and the ratio between
// the largest and smallest cross-product magnitude must stay under 4 — this
// rejects near-degenerate quads that would make a PerspectiveTransform
// numerically unstable, per spec.md §3.
func (q Quadrilateral) IsConvex() bool {
	p := q.Points()
	var crosses [4]float64
	for i := range p {
		a := p[i]
		b := p[(i+1)%4]
		c := p[(i+2)%4]
		crosses[i] = CrossProductZ(a, b, c)
	}
	positive := crosses[0] > 0
	minAbs, maxAbs := math.Abs(crosses[0]), math.Abs(crosses[0])
	for _, c := range crosses[1:] {
		if (c > 0) != positive {
			return false
		}
		a := math.Abs(c)
		if a < minAbs {
			minAbs = a
		}
		if a > maxAbs {
			maxAbs = a
		}
	}
	if minAbs == 0 {
		return false
	}
	return maxAbs/minAbs < 4
}

// PointInQuad reports whether p lies within the (convex) quadrilateral,
// tested via same-sign cross products against each edge.
func (q Quadrilateral) PointInQuad(p PointF) bool {
	corners := q.Points()
	sign := 0.0
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%4]
		cp := CrossProductZ(a, b, p)
		if cp == 0 {
			continue
		}
		s := 1.0
		if cp < 0 {
			s = -1.0
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// RotatedCorners returns the quadrilateral with its corners cyclically
// shifted by n positions (n>0 rotates TL→TR→BR→BL→TL).
func (q Quadrilateral) RotatedCorners(n int) Quadrilateral {
	p := q.Points()
	var out [4]PointF
	for i := range out {
		out[i] = p[((i+n)%4+4)%4]
	}
	return Quadrilateral{out[0], out[1], out[2], out[3]}
}

// BlendQuadrilaterals averages two quadrilaterals after rotation-aligning
// them by nearest top-left corner, matching spec.md §3's "blend two
// quadrilaterals" operation (used to combine the inner/outer ring corner
// fits in the concentric-pattern detector).
func BlendQuadrilaterals(a, b Quadrilateral) Quadrilateral {
	bestShift := 0
	bestDist := math.Inf(1)
	for shift := 0; shift < 4; shift++ {
		rb := b.RotatedCorners(shift)
		d := Distance(a.TopLeft, rb.TopLeft)
		if d < bestDist {
			bestDist = d
			bestShift = shift
		}
	}
	rb := b.RotatedCorners(bestShift)
	ap, bp := a.Points(), rb.Points()
	var out [4]PointF
	for i := range out {
		out[i] = PointF{
			X: (ap[i].X + bp[i].X) / 2,
			Y: (ap[i].Y + bp[i].Y) / 2,
		}
	}
	return Quadrilateral{out[0], out[1], out[2], out[3]}
}
