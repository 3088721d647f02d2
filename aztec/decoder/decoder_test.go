package decoder

import "testing"

func TestDecodeRune(t *testing.T) {
	result, err := Decode(&AztecDetectorResult{NbLayers: 0, RuneValue: 0x19})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Text != "025" {
		t.Errorf("Text = %q, want 025", result.Text)
	}
	if string(result.RawBytes) != "025" {
		t.Errorf("RawBytes = %q, want 025", result.RawBytes)
	}
}

func TestDecodeRuneZero(t *testing.T) {
	result, err := Decode(&AztecDetectorResult{NbLayers: 0, RuneValue: 0})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Text != "000" {
		t.Errorf("Text = %q, want 000", result.Text)
	}
}

func TestDecodeRuneMax(t *testing.T) {
	result, err := Decode(&AztecDetectorResult{NbLayers: 0, RuneValue: 255})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Text != "255" {
		t.Errorf("Text = %q, want 255", result.Text)
	}
}
