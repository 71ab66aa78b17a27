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

func TestMerge(t *testing.T) {
	got := merge([]span{{10, 14}, {3, 5}, {16, 20}, {12, 18}, {6, 6}, {30, 30}})
	assert.Equal(t, []span{{3, 6}, {10, 20}, {30, 30}}, got)
	assert.Empty(t, merge(nil))
}

func TestFresh(t *testing.T) {
	m := merge([]span{{3, 5}, {10, 20}})
	for id, want := range map[int]bool{2: false, 3: true, 5: true, 6: false, 10: true, 15: true, 20: true, 21: false} {
		assert.Equal(t, want, fresh(m, id), "id %d", id)
	}
}

func TestMissingSeparatorPanics(t *testing.T) {
	assert.Panics(t, func() { part1([]byte("3-5\n1\n")) })
}
