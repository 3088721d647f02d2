package detector

import "testing"

func TestRoundToMicroQRDimension(t *testing.T) {
	cases := []struct {
		estimate, want int
	}{
		{10, 11}, {11, 11}, {12, 11}, {13, 13}, {16, 15}, {17, 17}, {20, 17},
	}
	for _, c := range cases {
		if got := roundToMicroQRDimension(c.estimate); got != c.want {
			t.Errorf("roundToMicroQRDimension(%d) = %d, want %d", c.estimate, got, c.want)
		}
	}
}

func TestComputeMicroQRDimension(t *testing.T) {
	// An M2 symbol (13 modules) photographed at module size 2 spans 26px
	// along each axis.
	got := computeMicroQRDimension(2.0, 26.0, 26.0)
	if got != 13 {
		t.Errorf("computeMicroQRDimension = %d, want 13", got)
	}
}

func TestComputeMicroQRDimensionZeroModuleSize(t *testing.T) {
	if got := computeMicroQRDimension(0, 10, 10); got != 11 {
		t.Errorf("computeMicroQRDimension with zero module size = %d, want 11 (fallback)", got)
	}
}

func TestCreateMicroQRTransformProducesSquareCorners(t *testing.T) {
	topLeft := &FinderPattern{X: 10, Y: 10, EstimatedModuleSize: 2}
	xform := createMicroQRTransform(topLeft, 13)

	points := []float64{3.5, 3.5}
	xform.TransformPoints(points)
	if got, want := points[0], topLeft.X; got != want {
		t.Errorf("transformed top-left X = %v, want %v", got, want)
	}
	if got, want := points[1], topLeft.Y; got != want {
		t.Errorf("transformed top-left Y = %v, want %v", got, want)
	}
}
