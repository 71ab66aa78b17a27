package main

import (
	_ "embed"
	"testing"

	"github.com/Pharisaeus/AoC2025/aoctest"
	"github.com/stretchr/testify/assert"
)

//go:embed puzzle.go
var source []byte

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, source, map[string]func([]byte) int{
		"part1": part1,
		"part2": part2,
	})
}

func TestApply(t *testing.T) {
	assert.Equal(t, 6, apply('+', []int{1, 2, 3}))
	assert.Equal(t, 24, apply('*', []int{2, 3, 4}))
	assert.Panics(t, func() { apply('-', []int{1}) })
}

func TestSingleProblem(t *testing.T) {
	in := []byte("12\n 3\n+\n")
	// Rows: 12 + 3. Columns: 1 and 23.
	assert.Equal(t, 15, part1(in))
	assert.Equal(t, 24, part2(in))
}
