package barcode_test

import (
	"image"
	"image/color"
	"testing"

	barcode "github.com/gobarcode/core"
	"github.com/gobarcode/core/binarizer"
)

func TestDecodeBarcodeNotFoundOnBlankImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	source := barcode.NewImageLuminanceSource(img)
	bitmap := barcode.NewBinaryBitmap(binarizer.NewGlobalHistogram(source))

	b := barcode.DecodeBarcode(bitmap, &barcode.DecodeOptions{})
	if b == nil {
		t.Fatal("DecodeBarcode should always return a non-nil Barcode")
	}
	if b.IsValid() {
		t.Error("a blank image should not decode as a valid barcode")
	}
	if b.Err == nil {
		t.Error("an invalid Barcode should carry a non-nil Err")
	}
}
