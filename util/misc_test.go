package util

import (
	"testing"
)

func TestIfThenElse(t *testing.T) {
	if IfThenElse(true, 1, 2) != 1 {
		t.Error("IfThenElse(true, 1, 2) should be 1")
	}
	if IfThenElse(false, 1, 2) != 2 {
		t.Error("IfThenElse(false, 1, 2) should be 2")
	}
	if IfThenElse(true, "a", "b") != "a" {
		t.Error("IfThenElse(true, 'a', 'b') should be 'a'")
	}
	if IfThenElse(false, "a", "b") != "b" {
		t.Error("IfThenElse(false, 'a', 'b') should be 'b'")
	}
}

func TestMakeMatrix2D(t *testing.T) {
	m := MakeMatrix2D[int](3, 4)
	if len(m) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(m))
	}
	for i, row := range m {
		if len(row) != 4 {
			t.Errorf("Row %d: expected 4 columns, got %d", i, len(row))
		}
	}
}

func TestMakeMatrix2DZero(t *testing.T) {
	m := MakeMatrix2D[int](0, 0)
	if len(m) != 0 {
		t.Errorf("Expected 0 rows, got %d", len(m))
	}
}

func TestIsRectangular(t *testing.T) {
	tests := []struct {
		name       string
		m          [][]int
		rows, cols int
		expected   bool
	}{
		{"exact", MakeMatrix2D[int](8, 8), 8, 8, true},
		{"too few rows", MakeMatrix2D[int](7, 8), 8, 8, false},
		{"too many cols", MakeMatrix2D[int](8, 9), 8, 8, false},
		{"ragged", [][]int{{1, 2}, {3}}, 2, 2, false},
		{"nil", nil, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRectangular(tt.m, tt.rows, tt.cols); got != tt.expected {
				t.Errorf("IsRectangular = %v; want %v", got, tt.expected)
			}
		})
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := [][]float64{{1, 2}, {3, 4}}
	b := [][]float64{{1, 2.5}, {0, 4}}
	if d := MaxAbsDiff(a, b); d != 3 {
		t.Errorf("MaxAbsDiff = %f; want 3", d)
	}
	if d := MaxAbsDiff(a, a); d != 0 {
		t.Errorf("MaxAbsDiff of identical matrices = %f; want 0", d)
	}
}
