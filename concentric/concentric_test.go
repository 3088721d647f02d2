package concentric

import (
	"testing"

	"github.com/gobarcode/core/bitutil"
	"github.com/gobarcode/core/geometry"
)

// bullseyeMatrix builds a square image with a black center dot surrounded by
// a black square ring (Chebyshev distance 2-3) on a white field, mimicking
// an Aztec-style bullseye finder pattern centered at (cx, cy).
func bullseyeMatrix(size, cx, cy int) *bitutil.BitMatrix {
	bm := bitutil.NewBitMatrixWithSize(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-cx, y-cy
			d := dx
			if d < 0 {
				d = -d
			}
			ady := dy
			if ady < 0 {
				ady = -ady
			}
			if ady > d {
				d = ady
			}
			if d == 0 || (d >= 2 && d <= 3) {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

func closeEnough(p geometry.PointF, want geometry.PointF, tol float64) bool {
	return geometry.Distance(p, want) <= tol
}

func TestAverageEdgePixels(t *testing.T) {
	bm := bullseyeMatrix(21, 10, 10)
	got, ok := AverageEdgePixels(bm, geometry.PointI{X: 10, Y: 10}, geometry.PointI{X: 1, Y: 0}, 10, 2)
	if !ok {
		t.Fatal("AverageEdgePixels should succeed on a clean bullseye")
	}
	want := geometry.PointF{X: 10.5, Y: 10.5}
	if !closeEnough(got, want, 2) {
		t.Errorf("AverageEdgePixels = %v, want near %v", got, want)
	}
}

func TestCenterOfDoubleCross(t *testing.T) {
	bm := bullseyeMatrix(21, 10, 10)
	got, ok := CenterOfDoubleCross(bm, geometry.PointI{X: 10, Y: 10}, 10, 2)
	if !ok {
		t.Fatal("CenterOfDoubleCross should succeed on a clean bullseye")
	}
	want := geometry.PointF{X: 10.5, Y: 10.5}
	if !closeEnough(got, want, 2) {
		t.Errorf("CenterOfDoubleCross = %v, want near %v", got, want)
	}
}

func TestCenterOfRingFindsOuterRing(t *testing.T) {
	bm := bullseyeMatrix(21, 10, 10)
	got, ok := CenterOfRing(bm, geometry.PointI{X: 10, Y: 10}, 10, 2, false)
	if !ok {
		t.Fatal("CenterOfRing should trace the black ring at distance 2-3")
	}
	want := geometry.PointF{X: 10.5, Y: 10.5}
	if !closeEnough(got, want, 2) {
		t.Errorf("CenterOfRing = %v, want near %v", got, want)
	}
}

func TestCenterOfRingFailsOnBlankImage(t *testing.T) {
	bm := bitutil.NewBitMatrixWithSize(21, 21)
	if _, ok := CenterOfRing(bm, geometry.PointI{X: 10, Y: 10}, 10, 1, false); ok {
		t.Error("CenterOfRing should fail when there is no edge to trace")
	}
}

func TestFinetuneConcentricPatternCenter(t *testing.T) {
	bm := bullseyeMatrix(41, 20, 20)
	got, ok := FinetuneConcentricPatternCenter(bm, geometry.PointF{X: 19, Y: 19}, 15, 4)
	if !ok {
		t.Fatal("FinetuneConcentricPatternCenter should succeed on a clean bullseye")
	}
	if !bm.Get(int(got.X), int(got.Y)) {
		t.Errorf("refined center %v should land on a black pixel", got)
	}
}
