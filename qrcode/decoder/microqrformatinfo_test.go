package decoder

import "testing"

func TestBCHEncodeMatchesKnownQRFormatCodewords(t *testing.T) {
	// bchEncode is shared machinery; cross-check it against the hand-kept
	// full QR formatInfoDecodeLookup table, whose first two rows are well
	// known (data 0x00 and 0x01), to make sure the generator arithmetic
	// itself is correct before trusting it for Micro QR's table.
	cases := []struct {
		data int
		want int
	}{
		{0x00, 0x5412 ^ formatInfoMaskQR},
		{0x01, 0x5125 ^ formatInfoMaskQR},
	}
	for _, c := range cases {
		if got := bchEncode(c.data); got != c.want {
			t.Errorf("bchEncode(%#x) = %#x, want %#x", c.data, got, c.want)
		}
	}
}

func TestDecodeMicroQRFormatInformationRoundTrip(t *testing.T) {
	for symbolNumber := 0; symbolNumber < 8; symbolNumber++ {
		for mask := 0; mask < 4; mask++ {
			data := symbolNumber<<2 | mask
			codeword := bchEncode(data) ^ microQRFormatMask
			fi := DecodeMicroQRFormatInformation(codeword)
			if fi == nil {
				t.Fatalf("symbolNumber=%d mask=%d: decode failed", symbolNumber, mask)
			}
			want := microQRSymbolNumbers[symbolNumber]
			if fi.Version != want.Version || fi.ECLevel != want.ECLevel {
				t.Errorf("symbolNumber=%d: got version=%d ec=%v, want version=%d ec=%v",
					symbolNumber, fi.Version, fi.ECLevel, want.Version, want.ECLevel)
			}
			if int(fi.DataMask) != mask {
				t.Errorf("symbolNumber=%d: DataMask = %d, want %d", symbolNumber, fi.DataMask, mask)
			}
		}
	}
}

func TestDecodeMicroQRFormatInformationCorrectsBitErrors(t *testing.T) {
	codeword := bchEncode(0x05) ^ microQRFormatMask
	corrupted := codeword ^ 0x01 // flip a single bit
	fi := DecodeMicroQRFormatInformation(corrupted)
	if fi == nil {
		t.Fatal("expected a single bit error to be correctable")
	}
	want := microQRSymbolNumbers[(0x05>>2)&0x07]
	if fi.Version != want.Version || fi.ECLevel != want.ECLevel {
		t.Errorf("got version=%d ec=%v, want version=%d ec=%v", fi.Version, fi.ECLevel, want.Version, want.ECLevel)
	}
}

func TestMicroQRFormatCodewordsAreWellSeparated(t *testing.T) {
	// A usable BCH code keeps every pair of valid codewords far enough
	// apart that correcting up to 3 bit errors can't confuse them.
	for i, a := range microQRFormatDecodeLookup {
		for _, b := range microQRFormatDecodeLookup[i+1:] {
			diff := a[0] ^ b[0]
			ones := 0
			for diff != 0 {
				ones += diff & 1
				diff >>= 1
			}
			if ones <= 6 {
				t.Fatalf("codewords %#x and %#x differ by only %d bits", a[0], b[0], ones)
			}
		}
	}
}
