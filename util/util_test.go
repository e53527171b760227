package util

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi int
		expected  int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{3, 4, 81, 4},
		{7, 5, 2, 5},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.expected {
			t.Fatalf("Clamp(%d, %d, %d): expected %d, got %d", tc.v, tc.lo, tc.hi, tc.expected, got)
		}
	}
}

func TestBoolToU8(t *testing.T) {
	if BoolToU8(true) != 1 || BoolToU8(false) != 0 {
		t.Fatalf("Invalid conversion")
	}
}
