package binarizer

import "testing"

func TestBoolCastBlackRow(t *testing.T) {
	src := &constSource{w: 4, h: 1, v: 0}
	b := NewBoolCast(src)
	row, err := b.BlackRow(0, nil)
	if err != nil {
		t.Fatalf("BlackRow: %v", err)
	}
	for x := 0; x < 4; x++ {
		if !row.Get(x) {
			t.Errorf("pixel %d with luminance 0 should cast to black", x)
		}
	}
}

func TestBoolCastBlackMatrixWhite(t *testing.T) {
	src := &constSource{w: 2, h: 2, v: 0xff}
	b := NewBoolCast(src)
	matrix, err := b.BlackMatrix()
	if err != nil {
		t.Fatalf("BlackMatrix: %v", err)
	}
	if matrix.Get(0, 0) {
		t.Error("pixel with luminance 0xff should cast to white")
	}
}

func TestBoolCastDimensions(t *testing.T) {
	src := &constSource{w: 5, h: 7, v: 0}
	b := NewBoolCast(src)
	if b.Width() != 5 || b.Height() != 7 {
		t.Errorf("Width/Height = %d/%d, want 5/7", b.Width(), b.Height())
	}
	if b.LuminanceSource() == nil {
		t.Error("LuminanceSource should not be nil")
	}
}
