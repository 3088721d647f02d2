package content

import "sort"

// StructuredAppendInfo describes one piece of a multi-symbol sequence: its
// 0-based Index within the sequence, the total symbol Count, and an optional
// sequence ID (Data Matrix/Aztec use a numeric ID to disambiguate concurrent
// sequences; QR Code's structured append has no ID field, so ID is empty).
type StructuredAppendInfo struct {
	Index int
	Count int
	ID    string
}

// IsValid reports whether this describes an actual multi-symbol sequence
// (Count > 1) rather than a standalone symbol.
func (s StructuredAppendInfo) IsValid() bool { return s.Count > 1 }

// Part pairs a StructuredAppendInfo with the Content decoded from that piece
// of the sequence, as collected by a multi-symbol reader before merging.
type Part struct {
	Info    StructuredAppendInfo
	Content *Content
}

// MergeStructuredAppend concatenates the binary payloads of a structured
// append sequence in Index order, once every piece (0..Count-1, matching ID)
// has been collected. It returns false if any piece is missing or the
// pieces disagree on Count/ID, mirroring zxing-cpp's StructuredAppend merge
// logic (see _examples/original_source/core/src/MultiFormatReader.cpp's
// DecodeMulti path). The root package's multi.go only declares the
// MultipleBarcodeReader interface; no reader here calls this function.
func MergeStructuredAppend(parts []Part) (*Content, bool) {
	if len(parts) == 0 {
		return nil, false
	}
	count := parts[0].Info.Count
	id := parts[0].Info.ID
	seen := make([]bool, count)
	sorted := make([]Part, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Info.Index < sorted[j].Info.Index })

	for _, p := range sorted {
		if p.Info.Count != count || p.Info.ID != id {
			return nil, false
		}
		if p.Info.Index < 0 || p.Info.Index >= count {
			return nil, false
		}
		seen[p.Info.Index] = true
	}
	for _, ok := range seen {
		if !ok {
			return nil, false
		}
	}

	merged := NewContent()
	for _, p := range sorted {
		merged.Encodings = append(merged.Encodings, shiftEncodings(p.Content.Encodings, len(merged.Binary))...)
		merged.Binary = append(merged.Binary, p.Content.Binary...)
	}
	if len(merged.Encodings) > 1 {
		merged.Encodings = merged.Encodings[1:]
	}
	merged.Symbology = sorted[0].Content.Symbology
	return merged, true
}

func shiftEncodings(encs []Encoding, offset int) []Encoding {
	out := make([]Encoding, len(encs))
	for i, e := range encs {
		out[i] = Encoding{ECI: e.ECI, Pos: e.Pos + offset}
	}
	return out
}
