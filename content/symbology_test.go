package content

import "testing"

func TestQRSymbologyIdentifierPlain(t *testing.T) {
	s := QRSymbologyIdentifier(false, false, false, false)
	if got := s.String(); got != "]Q1" {
		t.Errorf("String() = %q, want ]Q1", got)
	}
}

func TestQRSymbologyIdentifierMicroAndRMQR(t *testing.T) {
	if got := QRSymbologyIdentifier(true, false, false, false).String(); got != "]Q2" {
		t.Errorf("micro QR String() = %q, want ]Q2", got)
	}
	if got := QRSymbologyIdentifier(false, true, false, false).String(); got != "]Q5" {
		t.Errorf("rMQR String() = %q, want ]Q5", got)
	}
}

func TestQRSymbologyIdentifierWithECI(t *testing.T) {
	s := QRSymbologyIdentifier(false, false, false, false)
	if got := s.StringWithECI(true); got != "]Q5" {
		t.Errorf("StringWithECI(true) = %q, want ]Q5 (modifier 1 + offset 4)", got)
	}
}

func TestDataMatrixSymbologyIdentifier(t *testing.T) {
	if got := DataMatrixSymbologyIdentifier(false).String(); got != "]d1" {
		t.Errorf("String() = %q, want ]d1", got)
	}
	gs1 := DataMatrixSymbologyIdentifier(true)
	if got := gs1.String(); got != "]d2" {
		t.Errorf("GS1 String() = %q, want ]d2", got)
	}
	if gs1.AIFlag != AIFlagGS1 {
		t.Error("GS1 Data Matrix identifier should set AIFlagGS1")
	}
}

func TestAztecSymbologyIdentifier(t *testing.T) {
	if got := AztecSymbologyIdentifier(false).String(); got != "]z0" {
		t.Errorf("String() = %q, want ]z0", got)
	}
	if got := AztecSymbologyIdentifier(true).String(); got != "]z1" {
		t.Errorf("GS1 String() = %q, want ]z1", got)
	}
}

func TestSymbologyIdentifierEmpty(t *testing.T) {
	var s SymbologyIdentifier
	if got := s.String(); got != "" {
		t.Errorf("zero-value String() = %q, want empty", got)
	}
}
