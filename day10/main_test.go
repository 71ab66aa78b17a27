package main

import (
	_ "embed"
	"testing"

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

var sampleMachines = []struct {
	line            string
	lights, joltage int
}{
	{"[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}", 2, 10},
	{"[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}", 3, 12},
	{"[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}", 2, 11},
}

func TestPerMachine(t *testing.T) {
	for _, tt := range sampleMachines {
		m := parseMachine(tt.line)
		got, err := fewestLightPresses(m)
		require.NoError(t, err)
		assert.Equal(t, tt.lights, got, tt.line)

		got, err = fewestJoltagePresses(m)
		require.NoError(t, err)
		assert.Equal(t, tt.joltage, got, tt.line)
	}
}

func TestParseMachine(t *testing.T) {
	m := parseMachine("[.##.] (3) (1,3) () {3,5,4,7}")
	assert.Equal(t, 0b0110, m.lights)
	assert.Equal(t, 4, m.size)
	assert.Equal(t, [][]int{{3}, {1, 3}, nil}, m.buttons)
	assert.Equal(t, []int{3, 5, 4, 7}, m.joltage)

	assert.Panics(t, func() { parseMachine("[.#] (2) {1,1}") })
	assert.Panics(t, func() { parseMachine("[.#] (1) {1}") })
	assert.Panics(t, func() { parseMachine("[.x] (1) {1,1}") })
}

func TestInfeasible(t *testing.T) {
	// The only button always lights both, so one alone is unreachable.
	_, err := fewestLightPresses(parseMachine("[#.] (0,1) {1,2}"))
	assert.ErrorIs(t, err, ErrInfeasible)

	// One button feeds both counters, which want different values.
	_, err = fewestJoltagePresses(parseMachine("[#.] (0,1) {1,2}"))
	assert.ErrorIs(t, err, ErrInfeasible)

	// Consistent, but only with a negative press count.
	_, err = fewestJoltagePresses(parseMachine("[#.] (0,1) (1) {2,1}"))
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestAllZero(t *testing.T) {
	m := parseMachine("[..] (0) (1) {0,0}")
	got, err := fewestLightPresses(m)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	got, err = fewestJoltagePresses(m)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestEchelon(t *testing.T) {
	a, b, err := echelon([][]float64{{1, 1}, {2, 2}}, []float64{1, 2})
	require.NoError(t, err)
	assert.Len(t, a, 1)
	assert.Len(t, b, 1)

	_, _, err = echelon([][]float64{{1, 1}, {2, 2}}, []float64{1, 3})
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestMinIntegerSum(t *testing.T) {
	// x0 + x1 = 3 and x1 + x2 = 3 is best served by x1 alone.
	got, _, err := minIntegerSum([][]float64{{1, 1, 0}, {0, 1, 1}}, []float64{3, 3}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	// 2·x0 + 2·x1 = 3 only has fractional solutions.
	_, _, err = minIntegerSum([][]float64{{2, 2}}, []float64{3}, 2)
	assert.ErrorIs(t, err, ErrInfeasible)
}
