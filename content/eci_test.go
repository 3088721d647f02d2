package content

import "testing"

func TestECIFromValue(t *testing.T) {
	eci, err := ECIFromValue(26)
	if err != nil {
		t.Fatalf("ECIFromValue(26) error: %v", err)
	}
	if eci.String() != "UTF8" {
		t.Errorf("String() = %q, want UTF8", eci.String())
	}
	if eci.GoName() != "UTF-8" {
		t.Errorf("GoName() = %q, want UTF-8", eci.GoName())
	}
}

func TestECIFromValueInvalid(t *testing.T) {
	if _, err := ECIFromValue(999999); err == nil {
		t.Error("expected an error for an unrecognized ECI value")
	}
}

func TestECIFromCharacterSet(t *testing.T) {
	eci := ECIFromCharacterSet("ISO8859_1")
	if eci.IsUnknown() {
		t.Fatal("ISO8859_1 should resolve")
	}
	if eci.Value != 1 {
		t.Errorf("Value = %d, want 1", eci.Value)
	}
}

func TestECIFromCharacterSetUnknown(t *testing.T) {
	eci := ECIFromCharacterSet("not-a-real-charset")
	if !eci.IsUnknown() {
		t.Error("unrecognised charset name should resolve to Unknown")
	}
}

func TestUnknownIsUnknown(t *testing.T) {
	if !Unknown.IsUnknown() {
		t.Error("Unknown.IsUnknown() should be true")
	}
}
