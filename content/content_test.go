package content

import "testing"

func TestNewContentFromBytesText(t *testing.T) {
	c := NewContentFromBytes([]byte("hello"))
	if c.Text() != "hello" {
		t.Errorf("Text() = %q, want hello", c.Text())
	}
	if c.Type() != Text {
		t.Errorf("Type() = %v, want Text", c.Type())
	}
}

func TestContentEmpty(t *testing.T) {
	c := NewContent()
	if !c.Empty() {
		t.Error("freshly built Content should be Empty")
	}
	c.AppendString("x")
	if c.Empty() {
		t.Error("Content with bytes should not be Empty")
	}
}

func TestContentSwitchEncoding(t *testing.T) {
	c := NewContent()
	c.AppendString("abc")
	eci, err := ECIFromValue(26) // UTF8
	if err != nil {
		t.Fatalf("ECIFromValue: %v", err)
	}
	c.SwitchEncoding(eci, true)
	c.AppendString("def")
	if !c.HasECI {
		t.Error("SwitchEncoding(isECI=true) should set HasECI")
	}
	if len(c.Encodings) != 2 {
		t.Fatalf("Encodings = %v, want 2 spans", c.Encodings)
	}
	if c.Encodings[1].Pos != 3 {
		t.Errorf("second span Pos = %d, want 3", c.Encodings[1].Pos)
	}
}

func TestContentUTF8ProtocolWithSymbology(t *testing.T) {
	c := NewContentFromBytes([]byte("hi"))
	c.Symbology = QRSymbologyIdentifier(false, false, false, false)
	got := c.UTF8Protocol()
	want := "]Q1hi"
	if got != want {
		t.Errorf("UTF8Protocol() = %q, want %q", got, want)
	}
}

func TestContentUTF8ProtocolGS1HRI(t *testing.T) {
	c := NewContent()
	c.AppendString("0109501101530003")
	c.Symbology = DataMatrixSymbologyIdentifier(true)
	got := c.UTF8Protocol()
	want := "]d2(01)09501101530003"
	if got != want {
		t.Errorf("UTF8Protocol() = %q, want %q", got, want)
	}
}

func TestContentBinaryECIIsACopy(t *testing.T) {
	c := NewContentFromBytes([]byte("abc"))
	b := c.BinaryECI()
	b[0] = 'z'
	if c.Binary[0] == 'z' {
		t.Error("BinaryECI should return a copy, not the live buffer")
	}
}
