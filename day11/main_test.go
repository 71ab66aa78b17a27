package main

import (
	_ "embed"
	"testing"

	aoc "github.com/Pharisaeus/AoC2025"
	"github.com/Pharisaeus/AoC2025/aoctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed puzzle.go
var source []byte

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, source, map[string]func([]byte) int{
		"part1": part1,
		"part2": part2,
	})
}

func TestParseDevices(t *testing.T) {
	g := parseDevices([]byte("a: b c\nb: out\nc:\n"))
	assert.Len(t, g.Nodes, 4)
	assert.Equal(t, map[string]int{"b": 1, "c": 1}, g.Edges["a"])
	assert.Panics(t, func() { parseDevices([]byte("a b c\n")) })
}

func TestCountPaths(t *testing.T) {
	in := []byte("you: a b\na: out\nb: a out\n")
	got, err := countPaths(in, "you")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = countPaths(in, "you", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = countPaths(in, "svr")
	assert.Error(t, err)
}

func TestCycle(t *testing.T) {
	_, err := countPaths([]byte("you: a\na: b\nb: a out\n"), "you")
	assert.ErrorIs(t, err, aoc.ErrCycle)
}
