package detector

import (
	"math"

	"github.com/gobarcode/core/bitutil"
	"github.com/gobarcode/core/internal"
	"github.com/gobarcode/core/transform"
)

// microQRPatternCenterPos is the center offset, in modules, of Micro QR's
// single finder pattern from the symbol's top-left corner — the same 3.5
// constant full QR Code uses for each of its three finder patterns.
const microQRPatternCenterPos = 3.5

// microQRDimensions lists the four valid Micro QR module dimensions.
var microQRDimensions = [4]int{11, 13, 15, 17}

// roundToMicroQRDimension snaps an estimated dimension to the nearest of
// the four valid Micro QR sizes.
func roundToMicroQRDimension(estimate int) int {
	best := microQRDimensions[0]
	bestDiff := int(math.MaxInt32)
	for _, d := range microQRDimensions {
		diff := d - estimate
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			best = d
		}
	}
	return best
}

// computeMicroQRDimension estimates a Micro QR symbol's module dimension
// from its single finder pattern, given an independent estimate of the
// symbol's outer extent along each axis (e.g. from a border scan). Micro
// QR's finder sits flush against the symbol's own top-left corner, so the
// dimension is simply the extent divided by the module size.
func computeMicroQRDimension(moduleSize, width, height float64) int {
	if moduleSize <= 0 {
		return microQRDimensions[0]
	}
	estimate := int(math.Round((width + height) / (2 * moduleSize)))
	return roundToMicroQRDimension(estimate)
}

// createMicroQRTransform builds the perspective transform from the ideal
// module grid to image coordinates for a Micro QR symbol, given only its
// single finder pattern. Because there is no second or third finder
// pattern to anchor the far corners, the bottom-right corner is inferred
// the same way full QR Code's detector falls back when it can't find an
// alignment pattern: by vector addition across the other two corners.
func createMicroQRTransform(topLeft *FinderPattern, dimension int) *transform.PerspectiveTransform {
	moduleSize := topLeft.EstimatedModuleSize
	span := moduleSize * float64(dimension-7)
	dimMinusThree := float64(dimension) - microQRPatternCenterPos

	topRightX, topRightY := topLeft.X+span, topLeft.Y
	bottomLeftX, bottomLeftY := topLeft.X, topLeft.Y+span
	bottomRightX := (topRightX - topLeft.X) + bottomLeftX
	bottomRightY := (topRightY - topLeft.Y) + bottomLeftY

	return transform.QuadrilateralToQuadrilateral(
		microQRPatternCenterPos, microQRPatternCenterPos,
		dimMinusThree, microQRPatternCenterPos,
		dimMinusThree, dimMinusThree,
		microQRPatternCenterPos, dimMinusThree,
		topLeft.X, topLeft.Y, topRightX, topRightY, bottomRightX, bottomRightY, bottomLeftX, bottomLeftY,
	)
}

// DetectMicroQR locates a Micro QR symbol's module grid from its single
// top-left finder pattern and samples it into a bit matrix, mirroring how
// Detector.Detect does the equivalent work for full QR Code's three
// finder patterns. width/height are an independent estimate of the
// symbol's outer extent (e.g. from a quiet-zone border scan), used only to
// pick which of the four valid dimensions the symbol is.
func DetectMicroQR(image *bitutil.BitMatrix, topLeft *FinderPattern, width, height float64) (*internal.DetectorResult, error) {
	dimension := computeMicroQRDimension(topLeft.EstimatedModuleSize, width, height)
	xform := createMicroQRTransform(topLeft, dimension)
	sampler := &transform.DefaultGridSampler{}
	bits, err := sampler.SampleGridTransform(image, dimension, dimension, xform)
	if err != nil {
		return nil, err
	}
	points := []internal.ResultPoint{{X: topLeft.X, Y: topLeft.Y}}
	return internal.NewDetectorResult(bits, points), nil
}
