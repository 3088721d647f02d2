// Package content implements the ECI-aware payload model shared by every
// symbology decoder: a byte buffer tagged with one or more character-set
// spans, plus the symbology-identifier and GS1/AIM application-indicator
// metadata the AIM standard defines for barcode scanners. It generalizes the
// teacher's flat charset.ECI/charset.GuessEncoding pair into the full
// Content type of spec.md §3, grounded on zxing-cpp's Content.h/ECI.h
// (see _examples/original_source/core/src).
package content

import (
	"errors"

	"github.com/gobarcode/core/charset"
)

// ErrInvalidECI is returned for an ECI designator value the teacher's ECI
// table has no entry for.
var ErrInvalidECI = errors.New("content: invalid ECI value")

// ECI wraps the teacher's charset.ECI with the convenience of being usable
// as a map key and compared with ==, since charset.ECI is only ever handed
// around as a pointer.
type ECI struct {
	Value int
}

// Unknown is the sentinel ECI value meaning "no designator seen yet".
var Unknown = ECI{Value: -1}

// ECIFromValue resolves a numeric ECI designator.
func ECIFromValue(value int) (ECI, error) {
	eci, err := charset.GetECIByValue(value)
	if err != nil {
		return Unknown, err
	}
	if eci == nil {
		return Unknown, ErrInvalidECI
	}
	return ECI{Value: eci.Value}, nil
}

// ECIFromCharacterSet resolves an ECI by Go/teacher encoding name, defaulting
// to Unknown if unrecognised.
func ECIFromCharacterSet(name string) ECI {
	eci := charset.GetECIByName(name)
	if eci == nil {
		return Unknown
	}
	return ECI{Value: eci.Value}
}

// IsUnknown reports whether this ECI is the Unknown sentinel.
func (e ECI) IsUnknown() bool { return e.Value < 0 }

// teacherECI resolves back to the charset package's descriptor table.
func (e ECI) teacherECI() *charset.ECI {
	eci, _ := charset.GetECIByValue(e.Value)
	return eci
}

// GoName returns the Go standard encoding name used to decode bytes tagged
// with this ECI, or "" for Unknown/unrecognised values.
func (e ECI) GoName() string {
	if eci := e.teacherECI(); eci != nil {
		return eci.GoName
	}
	return ""
}

// String returns the ECI's canonical name, e.g. "UTF8", "ISO8859_1".
func (e ECI) String() string {
	if eci := e.teacherECI(); eci != nil {
		return eci.Name
	}
	return "Unknown"
}
