package binarizer

import (
	barcode "github.com/gobarcode/core"
	"github.com/gobarcode/core/bitutil"
)

// BoolCast binarizes a source whose luminance values are already effectively
// binary (0 or 0xff, as produced by synthetic test images or a prior
// thresholding pass) by casting each byte directly to a bit instead of
// running histogram or block analysis. Any luminance below the midpoint
// casts to black.
type BoolCast struct {
	source barcode.LuminanceSource
}

// NewBoolCast creates a BoolCast binarizer.
func NewBoolCast(source barcode.LuminanceSource) *BoolCast {
	return &BoolCast{source: source}
}

// LuminanceSource returns the underlying source.
func (b *BoolCast) LuminanceSource() barcode.LuminanceSource { return b.source }

// Width returns the image width.
func (b *BoolCast) Width() int { return b.source.Width() }

// Height returns the image height.
func (b *BoolCast) Height() int { return b.source.Height() }

// BlackRow casts a row of luminance bytes directly to black/white.
func (b *BoolCast) BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	width := b.source.Width()
	if row == nil || row.Size() < width {
		row = bitutil.NewBitArray(width)
	} else {
		row.Clear()
	}
	luminances := b.source.Row(y, nil)
	for x := 0; x < width; x++ {
		if luminances[x] < 0x80 {
			row.Set(x)
		}
	}
	return row, nil
}

// BlackMatrix casts the full luminance matrix directly to black/white.
func (b *BoolCast) BlackMatrix() (*bitutil.BitMatrix, error) {
	width := b.source.Width()
	height := b.source.Height()
	matrix := bitutil.NewBitMatrixWithSize(width, height)
	luminances := b.source.Matrix()
	for y := 0; y < height; y++ {
		offset := y * width
		for x := 0; x < width; x++ {
			if luminances[offset+x] < 0x80 {
				matrix.Set(x, y)
			}
		}
	}
	return matrix, nil
}
