package decoder

import "testing"

func TestMicroQRDimensionForVersion(t *testing.T) {
	cases := []struct {
		version, want int
	}{
		{1, 11}, {2, 13}, {3, 15}, {4, 17},
	}
	for _, c := range cases {
		v, err := GetMicroQRVersionForNumber(c.version)
		if err != nil {
			t.Fatalf("GetMicroQRVersionForNumber(%d): %v", c.version, err)
		}
		if got := v.DimensionForVersion(); got != c.want {
			t.Errorf("M%d dimension = %d, want %d", c.version, got, c.want)
		}
	}
}

func TestMicroQRVersionInvalidNumber(t *testing.T) {
	if _, err := GetMicroQRVersionForNumber(5); err == nil {
		t.Error("expected an error for version 5")
	}
	if _, err := GetMicroQRVersionForNumber(0); err == nil {
		t.Error("expected an error for version 0")
	}
}

func TestGetProvisionalMicroQRVersionForDimension(t *testing.T) {
	v, err := GetProvisionalMicroQRVersionForDimension(15)
	if err != nil {
		t.Fatalf("GetProvisionalMicroQRVersionForDimension(15): %v", err)
	}
	if v.Number != 3 {
		t.Errorf("version = %d, want 3", v.Number)
	}
	if _, err := GetProvisionalMicroQRVersionForDimension(12); err == nil {
		t.Error("expected an error for an even dimension")
	}
}

func TestMicroQRHasErrorCorrection(t *testing.T) {
	m1, _ := GetMicroQRVersionForNumber(1)
	m2, _ := GetMicroQRVersionForNumber(2)
	if m1.HasErrorCorrection() {
		t.Error("M1 should have no error correction")
	}
	if !m2.HasErrorCorrection() {
		t.Error("M2 should have error correction")
	}
}
