package bitutil

import (
	"testing"

	"github.com/gobarcode/core/geometry"
)

// stripeMatrix builds a 10-wide, 1-tall matrix with three black columns
// (2,3,4) surrounded by white, useful for edge/pattern-reading tests.
func stripeMatrix() *BitMatrix {
	bm := NewBitMatrixWithSize(10, 1)
	for x := 2; x <= 4; x++ {
		bm.Set(x, 0)
	}
	return bm
}

func TestCursorStepAndBounds(t *testing.T) {
	bm := stripeMatrix()
	c := NewBitMatrixCursor(bm, geometry.PointI{X: 0, Y: 0}, geometry.PointI{X: 1, Y: 0})
	if !c.IsInBounds() {
		t.Fatal("cursor should start in bounds")
	}
	if !c.Step(9) {
		t.Fatal("stepping to the last column should stay in bounds")
	}
	if c.Step(1) {
		t.Error("stepping past the last column should leave bounds")
	}
}

func TestCursorIsBlackWhite(t *testing.T) {
	bm := stripeMatrix()
	c := NewBitMatrixCursor(bm, geometry.PointI{X: 3, Y: 0}, geometry.PointI{X: 1, Y: 0})
	if !c.IsBlack() {
		t.Error("column 3 should be black")
	}
	c.P.X = 0
	if !c.IsWhite() {
		t.Error("column 0 should be white")
	}
}

func TestCursorTurns(t *testing.T) {
	bm := stripeMatrix()
	c := NewBitMatrixCursor(bm, geometry.PointI{X: 0, Y: 0}, geometry.PointI{X: 1, Y: 0})
	c.TurnLeft()
	if c.D != (geometry.PointI{X: 0, Y: -1}) {
		t.Errorf("TurnLeft from (1,0) = %v, want (0,-1)", c.D)
	}
	c.TurnRight()
	c.TurnRight()
	if c.D != (geometry.PointI{X: 0, Y: 1}) {
		t.Errorf("after two TurnRight = %v, want (0,1)", c.D)
	}
	c.TurnBack()
	if c.D != (geometry.PointI{X: 0, Y: -1}) {
		t.Errorf("TurnBack = %v, want (0,-1)", c.D)
	}
}

func TestCursorStepToEdge(t *testing.T) {
	bm := stripeMatrix()
	c := NewBitMatrixCursor(bm, geometry.PointI{X: 0, Y: 0}, geometry.PointI{X: 1, Y: 0})
	steps := c.StepToEdge(1, 0, false)
	if steps != 2 {
		t.Errorf("StepToEdge(first edge) = %d, want 2 (lands on column 2)", steps)
	}
	if c.P.X != 2 {
		t.Errorf("cursor X = %d, want 2", c.P.X)
	}
}

func TestCursorReadPattern(t *testing.T) {
	bm := stripeMatrix()
	c := NewBitMatrixCursor(bm, geometry.PointI{X: 0, Y: 0}, geometry.PointI{X: 1, Y: 0})
	pattern := make(PatternRow, 2)
	out := c.ReadPattern(pattern, 0)
	if out[0] != 2 || out[1] != 3 {
		t.Errorf("ReadPattern = %v, want [2 3] (2 white then 3 black modules)", out)
	}
}

func TestPatternRowSum(t *testing.T) {
	p := PatternRow{1, 2, 3}
	if got := p.Sum(); got != 6 {
		t.Errorf("Sum = %d, want 6", got)
	}
}

func TestCountEdges(t *testing.T) {
	bm := stripeMatrix()
	c := NewBitMatrixCursor(bm, geometry.PointI{X: 0, Y: 0}, geometry.PointI{X: 1, Y: 0})
	if got := c.CountEdges(10); got != 2 {
		t.Errorf("CountEdges = %d, want 2 (white->black, black->white)", got)
	}
}
