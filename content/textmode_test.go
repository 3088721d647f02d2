package content

import "testing"

func TestTextWithModePlainMatchesText(t *testing.T) {
	c := NewContentFromBytes([]byte("hello"))
	if got, want := c.TextWithMode(Plain), c.Text(); got != want {
		t.Errorf("TextWithMode(Plain) = %q, want %q", got, want)
	}
}

func TestTextWithModeHex(t *testing.T) {
	c := NewContentFromBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	if got, want := c.TextWithMode(Hex), "DEADBEEF"; got != want {
		t.Errorf("TextWithMode(Hex) = %q, want %q", got, want)
	}
}

func TestTextWithModeEscaped(t *testing.T) {
	c := NewContent()
	c.AppendString("ab")
	c.AppendByte(0x1D)
	c.AppendString("cd")
	got := c.TextWithMode(Escaped)
	if got != "ab<GS>cd" {
		t.Errorf("TextWithMode(Escaped) = %q, want ab<GS>cd", got)
	}
}

func TestTextWithModeHRIFallsBackToPlainWithoutGS1(t *testing.T) {
	c := NewContentFromBytes([]byte("plain text"))
	if got, want := c.TextWithMode(HRI), c.Text(); got != want {
		t.Errorf("TextWithMode(HRI) without GS1 = %q, want %q", got, want)
	}
}

func TestTextWithModeHRIFormatsGS1(t *testing.T) {
	c := NewContentFromBytes([]byte("0109501101530003171201021017650"))
	c.Symbology.AIFlag = AIFlagGS1
	got := c.TextWithMode(HRI)
	want := FormatGS1HRI(c.Text())
	if got != want {
		t.Errorf("TextWithMode(HRI) = %q, want %q", got, want)
	}
}

func TestTextWithModeECIEmitsEscape(t *testing.T) {
	c := NewContent()
	c.AppendString("abc")
	eci, err := ECIFromValue(26) // UTF8
	if err != nil {
		t.Fatalf("ECIFromValue: %v", err)
	}
	c.SwitchEncoding(eci, true)
	c.AppendString("def")
	got := c.TextWithMode(ECI)
	if got != "abc\\000026def" {
		t.Errorf("TextWithMode(ECI) = %q, want abc\\000026def", got)
	}
}
