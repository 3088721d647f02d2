package barcode

import "github.com/gobarcode/core/content"

// BinarizerKind selects which Binarizer implementation ReadBarcodes builds
// internally for each retry pass, matching spec.md §6's binarizer read
// option. The zero value, BinarizerLocalAverage, is the teacher's adaptive
// Hybrid binarizer — the best default for photographed, unevenly-lit images.
type BinarizerKind int

const (
	// BinarizerLocalAverage uses the Hybrid block-local thresholding binarizer.
	BinarizerLocalAverage BinarizerKind = iota
	// BinarizerGlobalHistogram uses the single whole-image histogram binarizer.
	BinarizerGlobalHistogram
	// BinarizerFixedThreshold uses a caller-supplied constant cutoff.
	BinarizerFixedThreshold
	// BinarizerBoolCast casts already-binary luminance bytes directly.
	BinarizerBoolCast
)

// binarizerFactory builds the Binarizer implementation a BinarizerKind names.
// This indirection lives here (rather than in package binarizer, which must
// not import this package) so DecodeOptions.Binarizer can drive construction
// without the binarizer package depending back on barcode.
type binarizerFactory func(source LuminanceSource, fixedThreshold int) Binarizer

var binarizerFactories = map[BinarizerKind]binarizerFactory{}

// RegisterBinarizer lets package binarizer (or any other binarizer
// implementation) install itself under a BinarizerKind without creating an
// import cycle; binarizer's init() calls this for each of its kinds.
func RegisterBinarizer(kind BinarizerKind, factory binarizerFactory) {
	binarizerFactories[kind] = factory
}

func buildBinarizer(kind BinarizerKind, source LuminanceSource, fixedThreshold int) Binarizer {
	if factory, ok := binarizerFactories[kind]; ok {
		return factory(source, fixedThreshold)
	}
	return nil
}

// DecodeOptions configures barcode decoding behavior.
type DecodeOptions struct {
	// PureBarcode hints that the image contains only the barcode with minimal
	// border and no rotation.
	PureBarcode bool

	// TryHarder enables spending more time looking for barcodes.
	TryHarder bool

	// PossibleFormats limits which formats to look for.
	PossibleFormats []Format

	// CharacterSet specifies the character set to use when decoding.
	CharacterSet string

	// AllowedLengths restricts the set of valid barcode lengths for 1D formats.
	AllowedLengths []int

	// AssumeCode39CheckDigit assumes Code 39 includes a check digit.
	AssumeCode39CheckDigit bool

	// AssumeGS1 assumes data is GS1 formatted.
	AssumeGS1 bool

	// AllowedEANExtensions restricts the allowed EAN extension lengths.
	AllowedEANExtensions []int

	// AlsoInverted enables checking for barcodes on inverted images.
	AlsoInverted bool

	// TryRotate additionally tries the image rotated 90, 180 and 270 degrees.
	TryRotate bool

	// TryDownscale additionally tries the image shrunk by 1/2, 1/3 and 1/4.
	TryDownscale bool

	// Binarizer selects which Binarizer implementation to binarize with.
	Binarizer BinarizerKind

	// FixedThreshold is the luminance cutoff used when Binarizer is
	// BinarizerFixedThreshold; zero means binarizer.DefaultFixedThreshold.
	FixedThreshold int

	// TextMode selects how a decoded Barcode's Text() renders its content.
	TextMode content.TextMode

	// MinLineCount is the per-row-agreement threshold a 1-D decode must meet
	// to be accepted; zero disables the check. Barcode.LineCount reports the
	// number of scan rows that agreed on the result.
	MinLineCount int

	// MaxNumberOfSymbols stops ReadBarcodes after this many successful reads;
	// zero (or DecodeBarcode, which only ever returns one) means unbounded.
	MaxNumberOfSymbols int

	// ReturnErrors makes ReadBarcodes return one non-valid Barcode, carrying
	// the error of a single plain decode pass, when no valid symbol is found.
	// Symbols that are located but fail to decode are not reported, and no
	// non-valid result is added alongside valid ones.
	ReturnErrors bool
}

// Reader decodes barcodes from a BinaryBitmap.
type Reader interface {
	// Decode attempts to decode a barcode from the image.
	Decode(image *BinaryBitmap, opts *DecodeOptions) (*Result, error)

	// Reset resets any internal state.
	Reset()
}

// applyTextMode stamps opts.TextMode onto b so Barcode.Text() honors the
// caller's requested rendering without an explicit argument.
func applyTextMode(b *Barcode, opts *DecodeOptions) *Barcode {
	if opts != nil {
		b.TextMode = opts.TextMode
	}
	return b
}

// DecodeBarcode runs a MultiFormatReader over image and lifts the outcome
// into the public Barcode record, always returning a non-nil Barcode whose
// Err field carries the failure (Unsupported for "nothing found") instead of
// a Go error — matching spec.md's decision to make "no barcode found" a
// first-class Barcode.Err rather than an out-of-band error return.
//
// This is the single-shot form: it binarizes and decodes image exactly as
// handed in, with no rotation or downscale retries. Use ReadBarcodes to get
// spec.md §5's "single call internally explores rotations and downscale
// factors" behavior and to recover more than one symbol from an image.
func DecodeBarcode(image *BinaryBitmap, opts *DecodeOptions) *Barcode {
	reader := NewMultiFormatReader()
	result, err := reader.Decode(image, opts)
	format := FormatQRCode
	if result != nil {
		format = result.Format
	}
	b := NewBarcodeFromResult(result, format, err)
	return applyTextMode(b, opts)
}

// rotationsToTry returns the candidate clockwise rotation counts (each unit
// is 90 degrees) ReadBarcodes explores: just identity unless TryRotate.
func rotationsToTry(opts *DecodeOptions) []int {
	if opts != nil && opts.TryRotate {
		return []int{0, 1, 2, 3}
	}
	return []int{0}
}

// downscaleFactorsToTry returns the candidate shrink factors ReadBarcodes
// explores: just 1 (no shrink) unless TryDownscale.
func downscaleFactorsToTry(opts *DecodeOptions) []int {
	if opts != nil && opts.TryDownscale {
		return []int{1, 2, 3, 4}
	}
	return []int{1}
}

// buildBitmapVariant rotates then downscales source per rotations/factor and
// wraps the result in a fresh BinaryBitmap using opts' chosen binarizer.
func buildBitmapVariant(source LuminanceSource, rotations, factor int, opts *DecodeOptions) *BinaryBitmap {
	view := source
	for i := 0; i < rotations; i++ {
		view = rotateLuminance90CW(view)
	}
	view = downscaleLuminance(view, factor)
	kind := BinarizerLocalAverage
	threshold := DefaultFixedThreshold
	if opts != nil {
		kind = opts.Binarizer
		if opts.FixedThreshold != 0 {
			threshold = opts.FixedThreshold
		}
	}
	b := buildBinarizer(kind, view, threshold)
	if b == nil {
		b = buildBinarizer(BinarizerLocalAverage, view, threshold)
	}
	return NewBinaryBitmap(b)
}

// DefaultFixedThreshold mirrors binarizer.DefaultFixedThreshold so callers
// configuring DecodeOptions don't need to import the binarizer package just
// to pick the default cutoff.
const DefaultFixedThreshold = 127

// blankOutRegion clears the module grid a found Barcode occupies, so a
// subsequent ReadBarcodes pass over the same bitmap doesn't redetect it.
func blankOutRegion(bitmap *BinaryBitmap, b *Barcode) {
	matrix, err := bitmap.BlackMatrix()
	if err != nil {
		return
	}
	q := b.Position
	minX, minY := q.TopLeft.X, q.TopLeft.Y
	maxX, maxY := q.TopLeft.X, q.TopLeft.Y
	for _, p := range []struct{ X, Y float64 }{
		{q.TopLeft.X, q.TopLeft.Y}, {q.TopRight.X, q.TopRight.Y},
		{q.BottomRight.X, q.BottomRight.Y}, {q.BottomLeft.X, q.BottomLeft.Y},
	} {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	left, top := int(minX), int(minY)
	width, height := int(maxX-minX)+1, int(maxY-minY)+1
	if left < 0 {
		width += left
		left = 0
	}
	if top < 0 {
		height += top
		top = 0
	}
	if left >= matrix.Width() || top >= matrix.Height() || width <= 0 || height <= 0 {
		return
	}
	if left+width > matrix.Width() {
		width = matrix.Width() - left
	}
	if top+height > matrix.Height() {
		height = matrix.Height() - top
	}
	matrix.SetRegion(left, top, width, height)
}

// ReadBarcodes implements spec.md §6's `read_barcodes(image, options) ->
// [Barcode]`: a single call that serially explores the rotation and
// downscale variants opts requests, stops once opts.MaxNumberOfSymbols valid
// results have been found (0 means unbounded — read until a pass over every
// variant turns up nothing new). When nothing valid is found and
// opts.ReturnErrors is set, it returns the single non-valid Barcode of one
// plain DecodeBarcode pass; located-but-undecodable symbols are not reported.
func ReadBarcodes(source LuminanceSource, opts *DecodeOptions) []*Barcode {
	if opts == nil {
		opts = &DecodeOptions{}
	}
	var results []*Barcode
	maxSymbols := opts.MaxNumberOfSymbols
	// maxPassesPerVariant bounds the per-variant blank-and-retry loop so a
	// pathological bounding-box miss (the blanked region failing to cover
	// what the reader just found) can't spin forever when the caller left
	// MaxNumberOfSymbols at its unbounded zero value.
	const maxPassesPerVariant = 64
	for _, rot := range rotationsToTry(opts) {
		for _, factor := range downscaleFactorsToTry(opts) {
			bitmap := buildBitmapVariant(source, rot, factor, opts)
			reader := NewMultiFormatReader()
			for pass := 0; pass < maxPassesPerVariant; pass++ {
				result, err := reader.Decode(bitmap, opts)
				if err != nil {
					break
				}
				format := FormatQRCode
				if result != nil {
					format = result.Format
				}
				b := applyTextMode(NewBarcodeFromResult(result, format, nil), opts)
				if opts.MinLineCount > 0 && b.LineCount < opts.MinLineCount {
					blankOutRegion(bitmap, b)
					continue
				}
				results = append(results, b)
				blankOutRegion(bitmap, b)
				if maxSymbols > 0 && len(results) >= maxSymbols {
					return results
				}
			}
		}
	}
	if len(results) == 0 && opts.ReturnErrors {
		results = append(results, DecodeBarcode(NewBinaryBitmap(buildBinarizer(BinarizerLocalAverage, source, DefaultFixedThreshold)), opts))
	}
	return results
}
