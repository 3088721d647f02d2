package content

import "testing"

func TestFormatGS1HRIFixedFields(t *testing.T) {
	got := FormatGS1HRI("0109501101530003")
	want := "(01)09501101530003"
	if got != want {
		t.Errorf("FormatGS1HRI = %q, want %q", got, want)
	}
}

func TestFormatGS1HRIVariableFieldWithSeparator(t *testing.T) {
	payload := "10ABC123" + string(rune(groupSeparator)) + "17250101"
	got := FormatGS1HRI(payload)
	want := "(10)ABC123(17)250101"
	if got != want {
		t.Errorf("FormatGS1HRI = %q, want %q", got, want)
	}
}

func TestFormatGS1HRIMultipleFixedFields(t *testing.T) {
	got := FormatGS1HRI("0109501101530003" + "17250101" + "10ABC1")
	want := "(01)09501101530003(17)250101(10)ABC1"
	if got != want {
		t.Errorf("FormatGS1HRI = %q, want %q", got, want)
	}
}

func TestFormatGS1HRIUnknownPrefixPassesThrough(t *testing.T) {
	got := FormatGS1HRI("ZZtrailing-garbage")
	if got != "ZZtrailing-garbage" {
		t.Errorf("FormatGS1HRI = %q, want passthrough", got)
	}
}
