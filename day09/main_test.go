package main

import (
	_ "embed"
	"testing"

	aoc "github.com/Pharisaeus/AoC2025"
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

func TestRect(t *testing.T) {
	r := span(aoc.Pt{X: 11, Y: 1}, aoc.Pt{X: 2, Y: 5})
	assert.Equal(t, rect{aoc.Pt{X: 2, Y: 1}, aoc.Pt{X: 11, Y: 5}}, r)
	assert.Equal(t, 50, r.tiles())
	assert.False(t, r.degenerate())
	assert.True(t, r.strictlyContains(aoc.Pt{X: 7, Y: 3}))
	assert.False(t, r.strictlyContains(aoc.Pt{X: 2, Y: 3}))
	assert.Equal(t, "POLYGON((2 1,11 1,11 5,2 5,2 1))", r.wkt())

	line := span(aoc.Pt{X: 3, Y: 4}, aoc.Pt{X: 9, Y: 4})
	assert.True(t, line.degenerate())
	assert.Equal(t, 7, line.tiles())
}

func TestPolygonWKT(t *testing.T) {
	pts := []aoc.Pt{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	assert.Equal(t, "POLYGON((0 0,4 0,4 4,0 4,0 0))", polygonWKT(pts))
}

func TestSquareFloor(t *testing.T) {
	in := []byte("0,0\n4,0\n4,4\n0,4\n")
	assert.Equal(t, 25, part1(in))
	assert.Equal(t, 25, part2(in))
}

func TestLShapedFloor(t *testing.T) {
	// Corners (4,0) and (0,4) span the notch, so the best fit is an arm.
	in := []byte("0,0\n4,0\n4,2\n2,2\n2,4\n0,4\n")
	assert.Equal(t, 25, part1(in))
	assert.Equal(t, 15, part2(in))
}
