package bitutil

import "testing"

func TestMatrixGetSet(t *testing.T) {
	m := NewMatrix[int](3, 2)
	m.Set(1, 1, 42)
	if got := m.Get(1, 1); got != 42 {
		t.Errorf("Get(1,1) = %d, want 42", got)
	}
	if got := m.Get(0, 0); got != 0 {
		t.Errorf("Get(0,0) = %d, want 0 (zero value)", got)
	}
}

func TestMatrixFilled(t *testing.T) {
	m := NewMatrixFilled(2, 2, "x")
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := m.Get(x, y); got != "x" {
				t.Errorf("Get(%d,%d) = %q, want %q", x, y, got, "x")
			}
		}
	}
}

func TestMatrixRow(t *testing.T) {
	m := NewMatrix[int](3, 2)
	m.Set(0, 1, 1)
	m.Set(1, 1, 2)
	m.Set(2, 1, 3)
	row := m.Row(1)
	if len(row) != 3 || row[0] != 1 || row[1] != 2 || row[2] != 3 {
		t.Errorf("Row(1) = %v, want [1 2 3]", row)
	}
	row[0] = 99
	if got := m.Get(0, 1); got != 99 {
		t.Error("Row should return a view into the matrix's backing slice")
	}
}
