package content

import "testing"

func part(index, count int, text string) Part {
	c := NewContent()
	c.AppendString(text)
	return Part{Info: StructuredAppendInfo{Index: index, Count: count}, Content: c}
}

func TestMergeStructuredAppendOrdersByIndex(t *testing.T) {
	parts := []Part{part(1, 2, "world"), part(0, 2, "hello ")}
	merged, ok := MergeStructuredAppend(parts)
	if !ok {
		t.Fatal("merge should succeed when all indices are present")
	}
	if merged.Text() != "hello world" {
		t.Errorf("Text() = %q, want %q", merged.Text(), "hello world")
	}
}

func TestMergeStructuredAppendMissingPiece(t *testing.T) {
	parts := []Part{part(0, 3, "a"), part(2, 3, "c")}
	if _, ok := MergeStructuredAppend(parts); ok {
		t.Error("merge should fail when index 1 of 3 is missing")
	}
}

func TestMergeStructuredAppendCountMismatch(t *testing.T) {
	parts := []Part{part(0, 2, "a"), part(1, 3, "b")}
	if _, ok := MergeStructuredAppend(parts); ok {
		t.Error("merge should fail when pieces disagree on Count")
	}
}

func TestStructuredAppendInfoIsValid(t *testing.T) {
	if (StructuredAppendInfo{Count: 1}).IsValid() {
		t.Error("a single-symbol sequence should not be IsValid")
	}
	if !(StructuredAppendInfo{Count: 2}).IsValid() {
		t.Error("a two-symbol sequence should be IsValid")
	}
}
