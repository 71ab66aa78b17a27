package main

import (
	_ "embed"
	"testing"

	aoc "github.com/Pharisaeus/AoC2025"
	"github.com/Pharisaeus/AoC2025/aoctest"
)

//go:embed puzzle.go
var source []byte

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, source, map[string]func([]byte) int{
		"part1": part1,
		"part2": part2,
	})
}

func TestMaxJoltage(t *testing.T) {
	tests := []struct {
		bank string
		n    int
		want int
	}{
		{"987654321111111", 2, 98},
		{"811111111111119", 2, 89},
		{"234234234234278", 2, 78},
		{"818181911112111", 2, 92},
		{"987654321111111", 12, 987654321111},
		{"234234234234278", 12, 434234234278},
		{"12", 2, 12},
		{"5", 1, 5},
	}
	for _, tt := range tests {
		if got := maxJoltage(aoc.Digits(tt.bank), tt.n); got != tt.want {
			t.Errorf("maxJoltage(%s, %d) = %d; want %d", tt.bank, tt.n, got, tt.want)
		}
	}
}

func TestShortBankPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("maxJoltage on a short bank did not panic")
		}
	}()
	maxJoltage([]int{1, 2}, 3)
}
