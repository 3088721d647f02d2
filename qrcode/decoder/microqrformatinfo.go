package decoder

import "math/bits"

// microQRFormatGenerator is the BCH(15,5) generator polynomial used by
// format information, shared between full QR Code and Micro QR Code per
// ISO/IEC 18004 Annex C: x^10+x^8+x^5+x^4+x^2+x+1.
const microQRFormatGenerator = 0x537

// microQRFormatMask is the XOR mask applied to Micro QR format information
// before transmission, distinct from formatInfoMaskQR so an all-light
// symbol number/mask combination never encodes to an all-zero bit string.
const microQRFormatMask = 0x4445

// MicroQRFormatInformation encapsulates a Micro QR symbol's format info:
// which of the 4 sizes it is, its error correction level, and its data
// mask pattern.
type MicroQRFormatInformation struct {
	Version  int
	ECLevel  ErrorCorrectionLevel
	DataMask byte
}

// bchEncode computes the 15-bit BCH codeword for a 5-bit format data value
// using microQRFormatGenerator, the same algorithm real QR/Micro QR
// encoders use to build their format-info lookup tables.
func bchEncode(data int) int {
	bchCode := data << 10
	for degree(bchCode) >= degree(microQRFormatGenerator) {
		bchCode ^= microQRFormatGenerator << uint(degree(bchCode)-degree(microQRFormatGenerator))
	}
	return (data << 10) | bchCode
}

func degree(value int) int {
	if value == 0 {
		return -1
	}
	return bits.Len(uint(value)) - 1
}

// microQRFormatDecodeLookup maps every masked 15-bit format codeword to the
// symbol-number index (0-7, see microQRSymbolNumbers) and mask pattern (0-3)
// it encodes. Building it by BCH-encoding each of the 32 possible data
// values (rather than hardcoding 32 literal codewords) keeps the table
// self-verifying: anyone can recompute it from the generator polynomial.
var microQRFormatDecodeLookup = buildMicroQRFormatDecodeLookup()

func buildMicroQRFormatDecodeLookup() [][2]int {
	table := make([][2]int, 0, 32)
	for symbolNumber := 0; symbolNumber < 8; symbolNumber++ {
		for mask := 0; mask < 4; mask++ {
			data := symbolNumber<<2 | mask
			codeword := bchEncode(data) ^ microQRFormatMask
			table = append(table, [2]int{codeword, data})
		}
	}
	return table
}

func newMicroQRFormatInformation(data int) *MicroQRFormatInformation {
	symbolNumber := microQRSymbolNumbers[(data>>2)&0x07]
	return &MicroQRFormatInformation{
		Version:  symbolNumber.Version,
		ECLevel:  symbolNumber.ECLevel,
		DataMask: byte(data & 0x03),
	}
}

// DecodeMicroQRFormatInformation decodes a Micro QR symbol's 15-bit format
// information, correcting up to 3 bit errors by nearest-neighbor Hamming
// distance the same way DecodeFormatInformation does for full QR Code.
func DecodeMicroQRFormatInformation(maskedFormatInfo int) *MicroQRFormatInformation {
	bestDifference := 32
	bestData := -1
	for _, entry := range microQRFormatDecodeLookup {
		codeword, data := entry[0], entry[1]
		if codeword == maskedFormatInfo {
			return newMicroQRFormatInformation(data)
		}
		if diff := bits.OnesCount(uint(maskedFormatInfo ^ codeword)); diff < bestDifference {
			bestDifference = diff
			bestData = data
		}
	}
	if bestDifference <= 3 && bestData >= 0 {
		return newMicroQRFormatInformation(bestData)
	}
	return nil
}
