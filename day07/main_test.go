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

func TestSmallManifold(t *testing.T) {
	in := []byte("..S..\n.....\n..^..\n.....\n.^.^.\n.....\n")
	assert.Equal(t, 3, part1(in))
	assert.Equal(t, 4, part2(in))
}

func TestBeamLeavesThroughSide(t *testing.T) {
	in := []byte("S.\n^.\n..\n")
	assert.Equal(t, 1, part1(in))
	assert.Equal(t, 2, part2(in))
}

func TestMalformed(t *testing.T) {
	assert.Panics(t, func() { part1([]byte("..S..\n..x..\n")) })
	assert.Panics(t, func() { part1([]byte(".....\n")) })
}
