package geometry

import "testing"

func TestPointAddSub(t *testing.T) {
	a := PointI{X: 1, Y: 2}
	b := PointI{X: 3, Y: 4}
	if got := a.Add(b); got != (PointI{X: 4, Y: 6}) {
		t.Errorf("Add = %v, want {4 6}", got)
	}
	if got := b.Sub(a); got != (PointI{X: 2, Y: 2}) {
		t.Errorf("Sub = %v, want {2 2}", got)
	}
}

func TestPointScaleDotCross(t *testing.T) {
	a := PointI{X: 2, Y: 3}
	if got := a.Scale(2); got != (PointI{X: 4, Y: 6}) {
		t.Errorf("Scale = %v, want {4 6}", got)
	}
	b := PointI{X: 1, Y: 0}
	if got := a.Dot(b); got != 2 {
		t.Errorf("Dot = %d, want 2", got)
	}
	if got := a.Cross(b); got != -3 {
		t.Errorf("Cross = %d, want -3", got)
	}
}

func TestCentered(t *testing.T) {
	got := Centered(PointI{X: 3, Y: 4})
	want := PointF{X: 3.5, Y: 4.5}
	if got != want {
		t.Errorf("Centered = %v, want %v", got, want)
	}
}

func TestDistance(t *testing.T) {
	d := Distance(PointF{X: 0, Y: 0}, PointF{X: 3, Y: 4})
	if d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestBresenhamDirection(t *testing.T) {
	got := BresenhamDirection(PointF{X: 0, Y: 0}, PointF{X: 5, Y: 0})
	if got != (PointI{X: 1, Y: 0}) {
		t.Errorf("BresenhamDirection = %v, want {1 0}", got)
	}
	if got := BresenhamDirection(PointF{X: 0, Y: 0}, PointF{X: 0, Y: 0}); got != (PointI{}) {
		t.Errorf("BresenhamDirection(same point) = %v, want zero", got)
	}
}

func TestL1LInf(t *testing.T) {
	p := PointI{X: -3, Y: 4}
	if got := L1(p); got != 7 {
		t.Errorf("L1 = %d, want 7", got)
	}
	if got := LInf(p); got != 4 {
		t.Errorf("LInf = %d, want 4", got)
	}
}
