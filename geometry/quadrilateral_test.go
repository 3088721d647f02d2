package geometry

import "testing"

func square() Quadrilateral {
	return NewQuadrilateral(
		PointF{X: 0, Y: 0},
		PointF{X: 10, Y: 0},
		PointF{X: 10, Y: 10},
		PointF{X: 0, Y: 10},
	)
}

func TestQuadrilateralCenter(t *testing.T) {
	q := square()
	got := q.Center()
	want := PointF{X: 5, Y: 5}
	if got != want {
		t.Errorf("Center = %v, want %v", got, want)
	}
}

func TestQuadrilateralIsConvex(t *testing.T) {
	if !square().IsConvex() {
		t.Error("square should be convex")
	}
	degenerate := NewQuadrilateral(
		PointF{X: 0, Y: 0},
		PointF{X: 0, Y: 0},
		PointF{X: 10, Y: 10},
		PointF{X: 0, Y: 10},
	)
	if degenerate.IsConvex() {
		t.Error("degenerate quad should not be convex")
	}
}

func TestQuadrilateralPointInQuad(t *testing.T) {
	q := square()
	if !q.PointInQuad(PointF{X: 5, Y: 5}) {
		t.Error("center should be inside")
	}
	if q.PointInQuad(PointF{X: 20, Y: 20}) {
		t.Error("far point should be outside")
	}
}

func TestRotatedCorners(t *testing.T) {
	q := square()
	r := q.RotatedCorners(1)
	if r.TopLeft != q.TopRight {
		t.Errorf("RotatedCorners(1).TopLeft = %v, want %v", r.TopLeft, q.TopRight)
	}
}

func TestBlendQuadrilaterals(t *testing.T) {
	a := square()
	b := NewQuadrilateral(
		PointF{X: 2, Y: 2},
		PointF{X: 12, Y: 2},
		PointF{X: 12, Y: 12},
		PointF{X: 2, Y: 12},
	)
	blended := BlendQuadrilaterals(a, b)
	want := PointF{X: 1, Y: 1}
	if blended.TopLeft != want {
		t.Errorf("blended TopLeft = %v, want %v", blended.TopLeft, want)
	}
}
