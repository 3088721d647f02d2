package decoder

import "fmt"

// MicroQRVersion represents a Micro QR Code symbol size, M1 through M4.
// Unlike full QR Code, Micro QR has only four sizes and M1 carries no
// error correction at all, so it is modeled separately from Version
// rather than folding it into the same table.
type MicroQRVersion struct {
	Number int // 1-4, i.e. M1-M4
}

// DimensionForVersion returns the module dimension for this version:
// 11, 13, 15 or 17 for M1-M4 respectively.
func (v *MicroQRVersion) DimensionForVersion() int {
	return 9 + 2*v.Number
}

// HasErrorCorrection reports whether this version carries Reed-Solomon
// error correction codewords. M1 does not.
func (v *MicroQRVersion) HasErrorCorrection() bool {
	return v.Number > 1
}

var microQRVersions = [4]MicroQRVersion{{Number: 1}, {Number: 2}, {Number: 3}, {Number: 4}}

// GetMicroQRVersionForNumber returns the MicroQRVersion for the given
// version number (1-4).
func GetMicroQRVersionForNumber(number int) (*MicroQRVersion, error) {
	if number < 1 || number > 4 {
		return nil, fmt.Errorf("qrcode/decoder: invalid micro qr version %d", number)
	}
	return &microQRVersions[number-1], nil
}

// GetProvisionalMicroQRVersionForDimension returns the MicroQRVersion for a
// Micro QR symbol of the given module dimension.
func GetProvisionalMicroQRVersionForDimension(dimension int) (*MicroQRVersion, error) {
	if dimension < 11 || dimension > 17 || dimension%2 != 1 {
		return nil, fmt.Errorf("qrcode/decoder: invalid micro qr dimension %d", dimension)
	}
	return GetMicroQRVersionForNumber((dimension - 9) / 2)
}

// microQRSymbolNumberAndECLevel enumerates the 7 valid (version, EC level)
// combinations a Micro QR symbol's format information can select, indexed
// by the 3-bit "symbol number" field of ISO/IEC 18004 Annex C. M1 has no
// EC level; the remaining three versions each support a subset of L/M/Q.
type microQRSymbolNumberAndECLevel struct {
	Version int
	ECLevel ErrorCorrectionLevel
}

var microQRSymbolNumbers = [8]microQRSymbolNumberAndECLevel{
	{Version: 1, ECLevel: ECLevelL}, // M1, no EC in practice but L is the placeholder
	{Version: 2, ECLevel: ECLevelL},
	{Version: 2, ECLevel: ECLevelM},
	{Version: 3, ECLevel: ECLevelL},
	{Version: 3, ECLevel: ECLevelM},
	{Version: 4, ECLevel: ECLevelL},
	{Version: 4, ECLevel: ECLevelM},
	{Version: 4, ECLevel: ECLevelQ},
}
