package binarizer

import (
	barcode "github.com/gobarcode/core"
	"github.com/gobarcode/core/bitutil"
)

// DefaultFixedThreshold is the luminance cutoff FixedThreshold uses when none
// is supplied: pixels strictly below this value binarize to black.
const DefaultFixedThreshold = 127

// FixedThreshold binarizes against a single caller-supplied luminance cutoff
// instead of estimating one from the image, trading adaptivity for a
// predictable, content-independent result. Useful for pre-thresholded or
// synthetic images where a histogram peak search would be meaningless.
type FixedThreshold struct {
	source    barcode.LuminanceSource
	threshold int
}

// NewFixedThreshold creates a FixedThreshold binarizer using threshold as the
// black/white cutoff.
func NewFixedThreshold(source barcode.LuminanceSource, threshold int) *FixedThreshold {
	return &FixedThreshold{source: source, threshold: threshold}
}

// LuminanceSource returns the underlying source.
func (f *FixedThreshold) LuminanceSource() barcode.LuminanceSource { return f.source }

// Width returns the image width.
func (f *FixedThreshold) Width() int { return f.source.Width() }

// Height returns the image height.
func (f *FixedThreshold) Height() int { return f.source.Height() }

// BlackRow returns a row binarized against the fixed threshold.
func (f *FixedThreshold) BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	width := f.source.Width()
	if row == nil || row.Size() < width {
		row = bitutil.NewBitArray(width)
	} else {
		row.Clear()
	}
	luminances := f.source.Row(y, nil)
	for x := 0; x < width; x++ {
		if int(luminances[x]&0xff) < f.threshold {
			row.Set(x)
		}
	}
	return row, nil
}

// BlackMatrix returns the full matrix binarized against the fixed threshold.
func (f *FixedThreshold) BlackMatrix() (*bitutil.BitMatrix, error) {
	width := f.source.Width()
	height := f.source.Height()
	matrix := bitutil.NewBitMatrixWithSize(width, height)
	luminances := f.source.Matrix()
	for y := 0; y < height; y++ {
		offset := y * width
		for x := 0; x < width; x++ {
			if int(luminances[offset+x]&0xff) < f.threshold {
				matrix.Set(x, y)
			}
		}
	}
	return matrix, nil
}
