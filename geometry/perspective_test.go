package geometry

import "testing"

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}

func TestNewPerspectiveTransformIdentitySquare(t *testing.T) {
	unit := NewQuadrilateral(
		PointF{X: 0, Y: 0}, PointF{X: 1, Y: 0}, PointF{X: 1, Y: 1}, PointF{X: 0, Y: 1},
	)
	pt := NewPerspectiveTransform(unit, unit)
	if !pt.IsValid() {
		t.Fatal("transform should be valid")
	}
	p := pt.Apply(PointF{X: 0.25, Y: 0.75})
	if !almostEqual(p.X, 0.25) || !almostEqual(p.Y, 0.75) {
		t.Errorf("Apply = %v, want {0.25 0.75}", p)
	}
}

func TestNewPerspectiveTransformMapsCorners(t *testing.T) {
	unit := NewQuadrilateral(
		PointF{X: 0, Y: 0}, PointF{X: 1, Y: 0}, PointF{X: 1, Y: 1}, PointF{X: 0, Y: 1},
	)
	dst := NewQuadrilateral(
		PointF{X: 10, Y: 20}, PointF{X: 110, Y: 20}, PointF{X: 110, Y: 120}, PointF{X: 10, Y: 120},
	)
	pt := NewPerspectiveTransform(unit, dst)
	if !pt.IsValid() {
		t.Fatal("transform should be valid")
	}
	for i, corner := range unit.Points() {
		want := dst.Points()[i]
		got := pt.Apply(corner)
		if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
			t.Errorf("corner %d: Apply(%v) = %v, want %v", i, corner, got, want)
		}
	}
}

func TestNewPerspectiveTransformInvalidOnDegenerate(t *testing.T) {
	unit := NewQuadrilateral(
		PointF{X: 0, Y: 0}, PointF{X: 1, Y: 0}, PointF{X: 1, Y: 1}, PointF{X: 0, Y: 1},
	)
	degenerate := NewQuadrilateral(
		PointF{X: 0, Y: 0}, PointF{X: 0, Y: 0}, PointF{X: 1, Y: 1}, PointF{X: 0, Y: 1},
	)
	pt := NewPerspectiveTransform(unit, degenerate)
	if pt.IsValid() {
		t.Error("transform built from a degenerate quad should be invalid")
	}
}

func TestTransformPoints(t *testing.T) {
	unit := NewQuadrilateral(
		PointF{X: 0, Y: 0}, PointF{X: 1, Y: 0}, PointF{X: 1, Y: 1}, PointF{X: 0, Y: 1},
	)
	dst := NewQuadrilateral(
		PointF{X: 0, Y: 0}, PointF{X: 2, Y: 0}, PointF{X: 2, Y: 2}, PointF{X: 0, Y: 2},
	)
	pt := NewPerspectiveTransform(unit, dst)
	pts := []float64{0.5, 0.5}
	pt.TransformPoints(pts)
	if !almostEqual(pts[0], 1) || !almostEqual(pts[1], 1) {
		t.Errorf("TransformPoints = %v, want {1 1}", pts)
	}
}
