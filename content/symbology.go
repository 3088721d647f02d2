package content

// AIFlag records whether the payload carries a GS1 application-identifier
// prefix or an AIM-style "]" application indicator, per AIM's symbology
// identifier spec (see SymbologyIdentifier.h in _examples/original_source).
type AIFlag int

const (
	// AIFlagNone means no application-indicator prefix is present.
	AIFlagNone AIFlag = iota
	// AIFlagGS1 marks a GS1-formatted payload (leading FNC1-style AI groups).
	AIFlagGS1
	// AIFlagAIM marks an AIM-application-indicator-prefixed payload.
	AIFlagAIM
)

// SymbologyIdentifier is the three-or-four-character "]cm" prefix scanners
// emit ahead of decoded payloads to identify the symbology and options used,
// per ISO/IEC 15424. Code is the symbology letter ('Q' for QR, 'd' for Data
// Matrix, 'z' for Aztec); Modifier further distinguishes model/ECC/GS1
// options within that symbology.
type SymbologyIdentifier struct {
	Code             byte
	Modifier         byte
	ECIModifierOffset int
	AIFlag           AIFlag
}

// String renders the identifier as "]cm" with no ECI modifier applied.
func (s SymbologyIdentifier) String() string { return s.StringWithECI(false) }

// StringWithECI renders the identifier, applying ECIModifierOffset to the
// modifier digit when hasECI is true.
func (s SymbologyIdentifier) StringWithECI(hasECI bool) string {
	if s.Code == 0 {
		return ""
	}
	modVal := digitValue(s.Modifier)
	if hasECI {
		modVal += s.ECIModifierOffset
	}
	return "]" + string(s.Code) + string(digitChar(modVal))
}

func digitValue(c byte) int {
	if c >= 'A' {
		return int(c-'A') + 10
	}
	return int(c - '0')
}

func digitChar(v int) byte {
	if v >= 10 {
		return byte(v-10) + 'A'
	}
	return byte(v) + '0'
}

// QRSymbologyIdentifier builds the "]Q" identifier for QR Code (modifier 1),
// Micro QR (modifier 2) and rMQR (modifier 5). hasGS1 and hasAIM only set
// AIFlag and leave the modifier unchanged; there is no Model 1 option.
func QRSymbologyIdentifier(isMicro, isRMQR bool, hasGS1, hasAIM bool) SymbologyIdentifier {
	mod := byte('1')
	switch {
	case isRMQR:
		mod = '5'
	case isMicro:
		mod = '2'
	}
	ai := AIFlagNone
	if hasGS1 {
		ai = AIFlagGS1
	} else if hasAIM {
		ai = AIFlagAIM
	}
	return SymbologyIdentifier{Code: 'Q', Modifier: mod, ECIModifierOffset: 4, AIFlag: ai}
}

// DataMatrixSymbologyIdentifier builds the "]d" family identifier for Data
// Matrix. Modifier 2 marks GS1-formatted payloads, modifier 1 plain ECC200.
func DataMatrixSymbologyIdentifier(hasGS1 bool) SymbologyIdentifier {
	mod := byte('1')
	ai := AIFlagNone
	if hasGS1 {
		mod = '2'
		ai = AIFlagGS1
	}
	return SymbologyIdentifier{Code: 'd', Modifier: mod, ECIModifierOffset: 3, AIFlag: ai}
}

// AztecSymbologyIdentifier builds the "]z" family identifier for Aztec Code.
// Modifier 1 marks GS1-formatted payloads, 0 plain.
func AztecSymbologyIdentifier(hasGS1 bool) SymbologyIdentifier {
	mod := byte('0')
	ai := AIFlagNone
	if hasGS1 {
		mod = '1'
		ai = AIFlagGS1
	}
	return SymbologyIdentifier{Code: 'z', Modifier: mod, ECIModifierOffset: 6, AIFlag: ai}
}
