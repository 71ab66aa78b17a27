package main

import (
	_ "embed"
	"testing"

	"github.com/Pharisaeus/AoC2025/aoctest"
)

//go:embed puzzle.go
var source []byte

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, source, map[string]func([]byte) int{
		// The puzzle's example only makes ten connections.
		"part1": func(in []byte) int { return part1(in, 10) },
		"part2": part2,
	})
}

func TestMalformedInputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("part2 on malformed input did not panic")
		}
	}()
	part2([]byte("1,2,3\n4,5\n"))
}
