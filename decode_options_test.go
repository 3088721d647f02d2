package barcode_test

import (
	"image"
	"image/color"
	"testing"

	barcode "github.com/gobarcode/core"
	"github.com/gobarcode/core/content"

	_ "github.com/gobarcode/core/binarizer"
)

func blankImage(w, h int) *barcode.ImageLuminanceSource {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	return barcode.NewImageLuminanceSource(img)
}

func TestReadBarcodesBlankImageReturnsEmpty(t *testing.T) {
	source := blankImage(64, 64)
	results := barcode.ReadBarcodes(source, &barcode.DecodeOptions{})
	if len(results) != 0 {
		t.Errorf("ReadBarcodes on a blank image = %d results, want 0", len(results))
	}
}

func TestReadBarcodesReturnErrorsOnBlankImage(t *testing.T) {
	source := blankImage(64, 64)
	results := barcode.ReadBarcodes(source, &barcode.DecodeOptions{ReturnErrors: true})
	if len(results) != 1 {
		t.Fatalf("ReadBarcodes with ReturnErrors on a blank image = %d results, want 1", len(results))
	}
	if results[0].IsValid() {
		t.Error("the reported result should not be valid")
	}
}

func TestReadBarcodesTryRotateAndDownscaleDoNotPanic(t *testing.T) {
	source := blankImage(32, 32)
	opts := &barcode.DecodeOptions{TryRotate: true, TryDownscale: true}
	results := barcode.ReadBarcodes(source, opts)
	if len(results) != 0 {
		t.Errorf("ReadBarcodes on a blank image with retries = %d results, want 0", len(results))
	}
}

func TestDecodeOptionsTextModeAppliesToResult(t *testing.T) {
	r := barcode.NewResult("hello", nil, nil, barcode.FormatQRCode)
	b := barcode.NewBarcodeFromResult(r, barcode.FormatQRCode, nil)
	b.TextMode = content.Hex
	if got, want := b.Text(), "68656C6C6F"; got != want {
		t.Errorf("Text() with TextMode=Hex = %q, want %q", got, want)
	}
	if got, want := b.Text(content.Plain), "hello"; got != want {
		t.Errorf("Text(Plain) override = %q, want %q", got, want)
	}
}
