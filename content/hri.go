package content

import "strings"

// gs1FieldLength describes one GS1 Application Identifier's payload shape.
// A negative length means "variable, up to abs(length) digits, terminated by
// the FNC1 group separator". Ported from the aiInfos table in zxing-cpp's
// HRI.cpp (see _examples/original_source/core/src/HRI.cpp); trimmed to the
// AIs common enough to show up on real-world retail/logistics labels rather
// than the GS1 syntax dictionary's full few hundred entries.
var gs1FieldLength = map[string]int{
	"00": 18, "01": 14, "02": 14,
	"10": -20, "11": 6, "12": 6, "13": 6, "15": 6, "16": 6, "17": 6,
	"20": 2, "21": -20, "22": -20,
	"30": -8, "37": -8,
	"90": -30, "91": -90, "92": -90, "93": -90, "94": -90, "95": -90,
	"96": -90, "97": -90, "98": -90, "99": -90,
	"240": -30, "241": -30, "242": -6, "243": -20,
	"250": -30, "251": -30, "253": -30, "254": -20, "255": -25,
	"400": -30, "401": -30, "402": 17, "403": -30,
	"410": 13, "411": 13, "412": 13, "413": 13, "414": 13, "415": 13, "416": 13,
	"420": -20, "421": -15, "422": 3, "423": -15, "424": 3, "425": -15, "426": 3,
}

// groupSeparator is the FNC1-encoded field terminator (ASCII GS, 0x1D) used
// between variable-length GS1 fields.
const groupSeparator = 0x1D

// lookupAI finds the longest matching AI prefix (4, 3, then 2 digits) in s
// and returns its length descriptor.
func lookupAI(s string) (ai string, fieldLen int, ok bool) {
	for _, n := range []int{4, 3, 2} {
		if len(s) < n {
			continue
		}
		if fl, found := gs1FieldLength[s[:n]]; found {
			return s[:n], fl, true
		}
	}
	return "", 0, false
}

// FormatGS1HRI renders a GS1-prefixed payload as human-readable "(AI)value"
// groups, e.g. "(01)09501101530003(17)250101(10)ABC123". Fields are
// delimited by the GS1 Application Identifier table and, for variable-length
// fields, by an explicit FNC1 group separator in the payload. Input that
// doesn't resolve to valid AIs from the current position onward is passed
// through verbatim for the remainder, matching zxing-cpp's lenient fallback.
func FormatGS1HRI(payload string) string {
	var sb strings.Builder
	s := payload
	for len(s) > 0 {
		ai, fieldLen, ok := lookupAI(s)
		if !ok {
			sb.WriteString(s)
			break
		}
		rest := s[len(ai):]
		var value string
		if fieldLen < 0 {
			max := -fieldLen
			if idx := strings.IndexByte(rest, groupSeparator); idx >= 0 && idx <= max {
				value = rest[:idx]
				rest = rest[idx+1:]
			} else if len(rest) <= max {
				value = rest
				rest = ""
			} else {
				value = rest[:max]
				rest = rest[max:]
			}
		} else {
			if len(rest) < fieldLen {
				value = rest
				rest = ""
			} else {
				value = rest[:fieldLen]
				rest = rest[fieldLen:]
			}
		}
		sb.WriteByte('(')
		sb.WriteString(ai)
		sb.WriteByte(')')
		sb.WriteString(value)
		s = rest
	}
	return sb.String()
}
