package datamatrix

import barcode "github.com/gobarcode/core"

func init() {
	barcode.RegisterReader(barcode.FormatDataMatrix, func(opts *barcode.DecodeOptions) barcode.Reader {
		return NewReader()
	})
	barcode.RegisterWriter(barcode.FormatDataMatrix, func() barcode.Writer {
		return NewWriter()
	})
}
