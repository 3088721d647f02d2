package binarizer

import (
	"testing"

	barcode "github.com/gobarcode/core"
)

type constSource struct {
	w, h int
	v    byte
}

func (c *constSource) Row(y int, row []byte) []byte {
	out := make([]byte, c.w)
	for x := range out {
		out[x] = c.v
	}
	return out
}
func (c *constSource) Matrix() []byte {
	out := make([]byte, c.w*c.h)
	for i := range out {
		out[i] = c.v
	}
	return out
}
func (c *constSource) Width() int  { return c.w }
func (c *constSource) Height() int { return c.h }

func TestFixedThresholdBlackRow(t *testing.T) {
	src := &constSource{w: 4, h: 1, v: 50}
	b := NewFixedThreshold(src, 100)
	row, err := b.BlackRow(0, nil)
	if err != nil {
		t.Fatalf("BlackRow: %v", err)
	}
	for x := 0; x < 4; x++ {
		if !row.Get(x) {
			t.Errorf("pixel %d below threshold should be black", x)
		}
	}
}

func TestFixedThresholdAboveCutoffIsWhite(t *testing.T) {
	src := &constSource{w: 4, h: 1, v: 200}
	b := NewFixedThreshold(src, 100)
	row, err := b.BlackRow(0, nil)
	if err != nil {
		t.Fatalf("BlackRow: %v", err)
	}
	for x := 0; x < 4; x++ {
		if row.Get(x) {
			t.Errorf("pixel %d above threshold should be white", x)
		}
	}
}

func TestFixedThresholdBlackMatrix(t *testing.T) {
	src := &constSource{w: 3, h: 3, v: 10}
	b := NewFixedThreshold(src, 128)
	matrix, err := b.BlackMatrix()
	if err != nil {
		t.Fatalf("BlackMatrix: %v", err)
	}
	if !matrix.Get(1, 1) {
		t.Error("uniformly dark image should binarize fully black")
	}
}

func TestFixedThresholdLuminanceSource(t *testing.T) {
	src := &constSource{w: 2, h: 2, v: 0}
	b := NewFixedThreshold(src, DefaultFixedThreshold)
	if b.LuminanceSource() != barcode.LuminanceSource(src) {
		t.Error("LuminanceSource should return the wrapped source")
	}
	if b.Width() != 2 || b.Height() != 2 {
		t.Errorf("Width/Height = %d/%d, want 2/2", b.Width(), b.Height())
	}
}
