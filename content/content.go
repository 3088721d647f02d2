package content

import (
	"github.com/gobarcode/core/charset"
)

// Type classifies a decoded payload's character makeup, per zxing-cpp's
// ContentType enum (Content.h).
type Type int

const (
	// Text is an all-printable-text payload.
	Text Type = iota
	// Binary is raw bytes with no ECI designator.
	Binary
	// Mixed carries more than one ECI span, some of it binary.
	Mixed
)

// String renders the content type name.
func (t Type) String() string {
	switch t {
	case Text:
		return "Text"
	case Binary:
		return "Binary"
	case Mixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// Encoding records an ECI designator switch starting at byte offset Pos.
type Encoding struct {
	ECI ECI
	Pos int
}

// Content is the ECI-aware payload a symbology decoder produces: a raw byte
// buffer annotated with one or more character-set spans, plus the
// symbology-identifier and application-indicator metadata AIM-compliant
// scanners attach to the decoded text. It replaces the teacher's flat
// decoded string (each decoder package returned a plain Go string, guessing
// the encoding once via charset.GuessEncoding) with the full multi-ECI model
// of spec.md §3, grounded on zxing-cpp's Content class (Content.h/.cpp).
type Content struct {
	Binary            []byte
	Encodings         []Encoding
	HintedCharset     string
	ApplicationIndicator string
	Symbology         SymbologyIdentifier
	HasECI            bool
}

// NewContent creates an empty Content with an initial Unknown encoding span.
func NewContent() *Content {
	return &Content{Encodings: []Encoding{{ECI: Unknown, Pos: 0}}}
}

// NewContentFromBytes wraps raw bytes as ISO-8859-1 content, matching the
// teacher's and zxing-cpp's default assumption absent an explicit ECI.
func NewContentFromBytes(b []byte) *Content {
	return &Content{
		Binary:    append([]byte(nil), b...),
		Encodings: []Encoding{{ECI: ECIFromCharacterSet("ISO8859_1"), Pos: 0}},
	}
}

// Append adds raw bytes to the buffer under the currently active encoding.
func (c *Content) Append(b []byte) {
	c.Binary = append(c.Binary, b...)
}

// AppendByte adds a single byte.
func (c *Content) AppendByte(v byte) {
	c.Binary = append(c.Binary, v)
}

// AppendString adds a UTF-8 string's bytes.
func (c *Content) AppendString(s string) {
	c.Binary = append(c.Binary, s...)
}

// SwitchEncoding records an ECI designator switch at the current write
// position; isECI distinguishes an explicit in-band ECI designator from an
// encoding switch inferred from a mode indicator (e.g. QR's Kanji mode).
func (c *Content) SwitchEncoding(eci ECI, isECI bool) {
	if isECI {
		c.HasECI = true
	}
	pos := len(c.Binary)
	if len(c.Encodings) > 0 && c.Encodings[len(c.Encodings)-1].Pos == pos {
		c.Encodings[len(c.Encodings)-1].ECI = eci
		return
	}
	c.Encodings = append(c.Encodings, Encoding{ECI: eci, Pos: pos})
}

// Empty reports whether the content carries no bytes.
func (c *Content) Empty() bool { return len(c.Binary) == 0 }

// Type classifies the content by scanning its ECI spans: any binary-tagged
// span without a text encoding makes it Binary (if that's the only span) or
// Mixed (if combined with text spans).
func (c *Content) Type() Type {
	if len(c.Encodings) == 0 {
		return Text
	}
	allBinary := true
	anyBinary := false
	for _, e := range c.Encodings {
		if e.ECI.IsUnknown() {
			anyBinary = true
		} else {
			allBinary = false
		}
	}
	switch {
	case allBinary:
		return Binary
	case anyBinary:
		return Mixed
	default:
		return Text
	}
}

// guessedCharacterSet resolves the encoding to use when no explicit ECI
// designator was seen, via the teacher's byte-statistics guesser.
func (c *Content) guessedCharacterSet() string {
	return charset.GuessEncoding(c.Binary, c.HintedCharset)
}

// Text decodes the buffer to a Go string, honoring per-span ECI designators
// where present and falling back to statistical guessing for spans with no
// designator (the teacher's charset.GuessEncoding/DecodeBytes pair).
func (c *Content) Text() string {
	if len(c.Encodings) <= 1 {
		name := c.Encodings0Name()
		if name == "" {
			name = c.guessedCharacterSet()
		}
		return charset.DecodeBytes(c.Binary, name)
	}
	var out []byte
	for i, e := range c.Encodings {
		start := e.Pos
		end := len(c.Binary)
		if i+1 < len(c.Encodings) {
			end = c.Encodings[i+1].Pos
		}
		name := e.ECI.GoName()
		if name == "" {
			name = c.guessedCharacterSet()
		}
		out = append(out, charset.DecodeBytes(c.Binary[start:end], name)...)
	}
	return string(out)
}

// Encodings0Name returns the Go encoding name of the first span, or "".
func (c *Content) Encodings0Name() string {
	if len(c.Encodings) == 0 {
		return ""
	}
	return c.Encodings[0].ECI.GoName()
}

// UTF8Protocol renders the content the way a protocol-aware consumer (one
// that understands symbology identifiers, GS1 AIs and ECI designators) would
// want it serialized: the symbology identifier, optionally the GS1-HRI
// formatted payload, otherwise the plain decoded text.
func (c *Content) UTF8Protocol() string {
	text := c.Text()
	if c.Symbology.AIFlag == AIFlagGS1 {
		text = FormatGS1HRI(text)
	}
	return c.Symbology.StringWithECI(c.HasECI) + text
}

// BinaryECI returns the raw bytes with no character-set interpretation,
// matching zxing-cpp's Content::binaryECI() escape hatch for binary-mode
// payloads the caller wants untouched.
func (c *Content) BinaryECI() []byte {
	return append([]byte(nil), c.Binary...)
}
