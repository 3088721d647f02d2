package geometry

import "testing"

func TestRegressionLineThroughHorizontalPoints(t *testing.T) {
	pts := []PointF{{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 2, Y: 5}, {X: 3, Y: 5}}
	r := NewRegressionLineThroughPoints(pts)
	if !r.IsValid() {
		t.Fatal("line should be valid")
	}
	for _, p := range pts {
		if d := r.Distance(p); d > 1e-9 {
			t.Errorf("Distance(%v) = %v, want ~0", p, d)
		}
	}
}

func TestRegressionLineAddAndEvaluate(t *testing.T) {
	r := NewRegressionLine(PointF{X: 0, Y: 1})
	for _, p := range []PointF{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}} {
		r.Add(p)
	}
	if !r.Evaluate(0, false) {
		t.Fatal("Evaluate should succeed for a clean horizontal run")
	}
	if got := r.Distance(PointF{X: 1, Y: 0}); got > 1e-9 {
		t.Errorf("Distance on-line point = %v, want ~0", got)
	}
}

func TestIntersectLines(t *testing.T) {
	horiz := NewRegressionLineThroughPoints([]PointF{{X: 0, Y: 5}, {X: 10, Y: 5}})
	vert := NewRegressionLineThroughPoints([]PointF{{X: 5, Y: 0}, {X: 5, Y: 10}})
	got := IntersectLines(horiz, vert)
	want := PointF{X: 5, Y: 5}
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Errorf("IntersectLines = %v, want %v", got, want)
	}
}

func TestRegressionLineHighRes(t *testing.T) {
	r := NewRegressionLineThroughPoints([]PointF{{X: 0, Y: 0}, {X: 100, Y: 0}})
	if !r.HighRes() {
		t.Error("a long line should be HighRes")
	}
	short := NewRegressionLineThroughPoints([]PointF{{X: 0, Y: 0}, {X: 1, Y: 0}})
	if short.HighRes() {
		t.Error("a short, flat line should not be HighRes")
	}
}
