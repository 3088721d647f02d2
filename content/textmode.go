package content

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gobarcode/core/charset"
)

// TextMode selects how Content.TextWithMode renders a decoded payload,
// mirroring zxing-cpp's TextMode enum (ZXing/TextMode.h).
type TextMode int

const (
	// Plain transcodes each ECI segment and concatenates them, with no
	// escaping or protocol framing. This is what Text() returns.
	Plain TextMode = iota
	// ECI emits a \XXXXXX escape at every ECI transition, then the segment,
	// so the caller can recover the original per-span charset boundaries
	// from the string alone.
	ECI
	// HRI applies GS1 AI formatting when the content carries a GS1
	// application indicator; otherwise falls back to Plain.
	HRI
	// Hex renders the raw byte buffer as uppercase hex, ignoring ECI spans
	// entirely.
	Hex
	// Escaped replaces non-graphical code points with a named escape (e.g.
	// "<GS>") or a "<U+XXXX>" fallback.
	Escaped
)

// String names the text mode.
func (m TextMode) String() string {
	switch m {
	case Plain:
		return "Plain"
	case ECI:
		return "ECI"
	case HRI:
		return "HRI"
	case Hex:
		return "Hex"
	case Escaped:
		return "Escaped"
	default:
		return "Unknown"
	}
}

// controlNames maps the C0 control codes callers are most likely to hit in
// barcode payloads (GS1 field/record separators) to their named escapes;
// anything else falls back to a numeric codepoint escape.
var controlNames = map[rune]string{
	0x1D: "GS",
	0x1E: "RS",
	0x1F: "US",
	0x04: "EOT",
	0x00: "NUL",
}

// TextWithMode renders the content under the given TextMode, generalizing
// Text() (which always behaves as Plain) per spec.md's caller-selectable
// text view.
func (c *Content) TextWithMode(mode TextMode) string {
	switch mode {
	case ECI:
		return c.textWithECIEscapes()
	case HRI:
		if c.Symbology.AIFlag == AIFlagGS1 {
			return FormatGS1HRI(c.Text())
		}
		return c.Text()
	case Hex:
		return fmt.Sprintf("%X", c.Binary)
	case Escaped:
		return escapeNonGraphical(c.Text())
	default:
		return c.Text()
	}
}

// textWithECIEscapes renders \XXXXXX escapes (six decimal digits, per
// zxing-cpp's TextMode::Escaped ECI framing) ahead of every encoding span,
// then the span's transcoded text.
func (c *Content) textWithECIEscapes() string {
	if len(c.Encodings) == 0 {
		return c.Text()
	}
	var sb strings.Builder
	for i, e := range c.Encodings {
		start := e.Pos
		end := len(c.Binary)
		if i+1 < len(c.Encodings) {
			end = c.Encodings[i+1].Pos
		}
		if !e.ECI.IsUnknown() {
			fmt.Fprintf(&sb, "\\%06d", e.ECI.Value)
		}
		name := e.ECI.GoName()
		if name == "" {
			name = c.guessedCharacterSet()
		}
		sb.WriteString(charset.DecodeBytes(c.Binary[start:end], name))
	}
	return sb.String()
}

// escapeNonGraphical walks s rune by rune, replacing anything that is not a
// printable graphical character with a named escape (for the handful of C0
// controls GS1 payloads actually use) or a "<U+XXXX>" fallback.
func escapeNonGraphical(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r == utf8.RuneError {
			sb.WriteString("<U+FFFD>")
			continue
		}
		if unicode.IsGraphic(r) && r != 0 {
			sb.WriteRune(r)
			continue
		}
		if name, ok := controlNames[r]; ok {
			sb.WriteString("<" + name + ">")
			continue
		}
		fmt.Fprintf(&sb, "<U+%04X>", r)
	}
	return sb.String()
}
