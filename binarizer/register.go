package binarizer

import barcode "github.com/gobarcode/core"

// init registers every Binarizer implementation in this package against
// barcode.BinarizerKind, the same dependency-inversion trick register.go in
// each symbology package uses to let barcode.ReadBarcodes pick a concrete
// type without barcode importing binarizer (which already imports barcode
// for the LuminanceSource/Binarizer interfaces, so the reverse import would
// cycle).
func init() {
	barcode.RegisterBinarizer(barcode.BinarizerLocalAverage, func(source barcode.LuminanceSource, _ int) barcode.Binarizer {
		return NewHybrid(source)
	})
	barcode.RegisterBinarizer(barcode.BinarizerGlobalHistogram, func(source barcode.LuminanceSource, _ int) barcode.Binarizer {
		return NewGlobalHistogram(source)
	})
	barcode.RegisterBinarizer(barcode.BinarizerFixedThreshold, func(source barcode.LuminanceSource, threshold int) barcode.Binarizer {
		return NewFixedThreshold(source, threshold)
	})
	barcode.RegisterBinarizer(barcode.BinarizerBoolCast, func(source barcode.LuminanceSource, _ int) barcode.Binarizer {
		return NewBoolCast(source)
	})
}
