package aoc

import (
	"slices"
	"testing"
)

func TestSplitInts(t *testing.T) {
	tests := []struct {
		in, sep string
		want    []int
	}{
		{"1,2,3", ",", []int{1, 2, 3}},
		{" 7-9\n", "-", []int{7, 9}},
		{"42", ",", []int{42}},
	}
	for _, tt := range tests {
		if got := SplitInts(tt.in, tt.sep); !slices.Equal(got, tt.want) {
			t.Errorf("SplitInts(%q, %q) = %v, want %v", tt.in, tt.sep, got, tt.want)
		}
	}
}

func TestSumProduct(t *testing.T) {
	if got := Sum(1, 2, 3, 4); got != 10 {
		t.Errorf("Sum = %d, want 10", got)
	}
	if got := Product(2, 3, 4); got != 24 {
		t.Errorf("Product = %d, want 24", got)
	}
	if got := Product[int](); got != 1 {
		t.Errorf("Product() = %d, want 1", got)
	}
}

func TestIntPanicsOnGarbage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Int(\"x1\") did not panic")
		}
	}()
	Int("x1")
}
