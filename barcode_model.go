package barcode

import (
	"fmt"

	"github.com/gobarcode/core/bitutil"
	"github.com/gobarcode/core/content"
	"github.com/gobarcode/core/geometry"
)

// ImageView is the borrowed, read-only view into greyscale pixel data that a
// Reader operates on for the duration of one Decode call. It is realized by
// the teacher's LuminanceSource interface (see luminance.go) — ImageView is
// the name spec.md's data model uses for that same contract.
type ImageView = LuminanceSource

// ErrorKind enumerates the four terminal outcomes a Barcode's decode can
// report, per spec.md §3's four-variant Error sum type.
type ErrorKind int

const (
	// ErrorNone means the barcode decoded successfully.
	ErrorNone ErrorKind = iota
	// ErrorFormatKind means the symbol's structure was invalid or unsupported
	// by this decoder (bad version/mode bits, malformed codewords).
	ErrorFormatKind
	// ErrorChecksumKind means the symbol's error-correction/checksum failed.
	ErrorChecksumKind
	// ErrorUnsupportedKind means the symbol encodes a feature this library
	// does not implement.
	ErrorUnsupportedKind
)

// String names the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return "None"
	case ErrorFormatKind:
		return "Format"
	case ErrorChecksumKind:
		return "Checksum"
	case ErrorUnsupportedKind:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// DecodeError is a Barcode's structured failure record: a kind, a
// human-readable message, and an optional source location for diagnostics.
// Two DecodeErrors are Equal when all four fields match.
type DecodeError struct {
	Kind    ErrorKind
	Message string
	File    string
	Line    int
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s (%s:%d)", e.Kind, e.Message, e.File, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Equal reports whether two DecodeErrors carry the same kind, message, and
// source location.
func (e *DecodeError) Equal(other *DecodeError) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Kind == other.Kind && e.Message == other.Message && e.File == other.File && e.Line == other.Line
}

// classifyError maps the teacher's sentinel errors.go variables onto the
// four-kind DecodeError taxonomy; anything else falls back to Unsupported.
func classifyError(err error) *DecodeError {
	switch err {
	case nil:
		return nil
	case ErrChecksum:
		return &DecodeError{Kind: ErrorChecksumKind, Message: err.Error()}
	case ErrFormat:
		return &DecodeError{Kind: ErrorFormatKind, Message: err.Error()}
	case ErrNotFound:
		return &DecodeError{Kind: ErrorUnsupportedKind, Message: err.Error()}
	default:
		return &DecodeError{Kind: ErrorUnsupportedKind, Message: err.Error()}
	}
}

// Barcode is the immutable result record a Reader produces: format, ECI-aware
// content, pixel-space position, orientation, and the decode outcome.
// It generalizes the teacher's flat Result (a string plus a loosely-typed
// metadata map) into the structured record of spec.md §3, built on the new
// content.Content and geometry.Quadrilateral types.
type Barcode struct {
	Format           Format
	Content          *content.Content
	Position         geometry.Quadrilateral
	Orientation      int
	LineCount        int
	IsMirrored       bool
	IsReaderInit     bool
	Err              *DecodeError
	ECLevel          string
	Version          string
	StructuredAppend content.StructuredAppendInfo
	Matrix           *bitutil.BitMatrix
	TextMode         content.TextMode
}

// IsValid reports whether the barcode decoded without error.
func (b *Barcode) IsValid() bool { return b.Err == nil }

// Text returns the decoded text, honoring any ECI designators the content
// carries. An optional TextMode overrides the Barcode's own TextMode field
// (populated from DecodeOptions.TextMode by DecodeBarcode/ReadBarcodes); with
// neither set it behaves as content.Plain, same as calling Content.Text()
// directly.
func (b *Barcode) Text(mode ...content.TextMode) string {
	if b.Content == nil {
		return ""
	}
	m := b.TextMode
	if len(mode) > 0 {
		m = mode[0]
	}
	if m == content.Plain {
		return b.Content.Text()
	}
	return b.Content.TextWithMode(m)
}

// quadFromPoints builds a best-effort Quadrilateral from a Reader's
// loosely-ordered ResultPoints: 2 points (a line, duplicated into a
// degenerate quad), 3 (finder-pattern triangle, duplicated corner), or 4
// (already a quad) point results are all handled, matching what the
// teacher's various Reader implementations return.
func quadFromPoints(points []ResultPoint) geometry.Quadrilateral {
	toF := func(p ResultPoint) geometry.PointF { return geometry.PointF{X: p.X, Y: p.Y} }
	switch len(points) {
	case 0:
		return geometry.Quadrilateral{}
	case 1:
		p := toF(points[0])
		return geometry.NewQuadrilateral(p, p, p, p)
	case 2:
		a, b := toF(points[0]), toF(points[1])
		return geometry.NewQuadrilateral(a, b, b, a)
	case 3:
		a, b, c := toF(points[0]), toF(points[1]), toF(points[2])
		return geometry.NewQuadrilateral(a, b, c, c)
	default:
		return geometry.NewQuadrilateral(toF(points[0]), toF(points[1]), toF(points[2]), toF(points[3]))
	}
}

// NewBarcodeFromResult adapts a Reader's teacher-style Result (and its
// decode error, if any) into the public Barcode record. Every symbology
// package still does the bit-level work the teacher's way and returns a
// Result; this is the one place that result gets lifted into the richer
// content/geometry model the rest of this module's public API uses.
func NewBarcodeFromResult(r *Result, format Format, decodeErr error) *Barcode {
	b := &Barcode{Format: format, Err: classifyError(decodeErr)}
	if r == nil {
		return b
	}
	b.Format = r.Format
	b.Position = quadFromPoints(r.Points)
	if r.RawBytes != nil {
		b.Content = content.NewContentFromBytes(r.RawBytes)
	} else {
		b.Content = content.NewContent()
		b.Content.AppendString(r.Text)
	}
	if v, ok := r.Metadata[MetadataSymbologyIdentifier]; ok {
		if s, ok := v.(string); ok && len(s) >= 2 {
			b.Content.Symbology = content.SymbologyIdentifier{Code: s[1], Modifier: s[len(s)-1]}
		}
	}
	if v, ok := r.Metadata[MetadataErrorCorrectionLevel]; ok {
		if s, ok := v.(string); ok {
			b.ECLevel = s
		}
	}
	if v, ok := r.Metadata[MetadataOrientation]; ok {
		if o, ok := v.(int); ok {
			b.Orientation = o
		}
	}
	if idx, ok := r.Metadata[MetadataStructuredAppendSequence]; ok {
		if n, ok := idx.(int); ok {
			b.StructuredAppend = content.StructuredAppendInfo{Index: n & 0xF, Count: (n >> 4) + 1}
		}
	}
	b.LineCount = 1
	return b
}
