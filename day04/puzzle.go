package main

import (
	aoc "github.com/Pharisaeus/AoC2025"
	"github.com/rs/zerolog/log"
)

const (
	roll  = '@'
	empty = '.'
)

func isRoll(b byte) bool { return b == roll }

// accessible reports whether the roll at p has fewer than four rolls among
// its eight neighbours.
func accessible(g aoc.Grid[byte], p aoc.Pt) bool {
	n := 0
	p.ForNeighbors(func(q aoc.Pt) bool {
		if v, ok := g.AtOk(q); ok && v == roll {
			n++
		}
		return n < 4
	})
	return n < 4
}

func reachable(g aoc.Grid[byte]) []aoc.Pt {
	var out []aoc.Pt
	g.ForEach(func(p aoc.Pt, v byte) {
		if v == roll && accessible(g, p) {
			out = append(out, p)
		}
	})
	return out
}

/*
want=13

..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func part1(input []byte) int {
	return len(reachable(aoc.ParseGrid(aoc.Lines(input), empty)))
}

// want=43
func part2(input []byte) int {
	g := aoc.ParseGrid(aoc.Lines(input), empty)
	start := g.Count(isRoll)
	for round := 1; ; round++ {
		before := g.Hash()
		for _, p := range reachable(g) {
			g.Set(p, empty)
		}
		if g.Hash() == before {
			log.Debug().Int("rounds", round).Msg("no more rolls reachable")
			break
		}
	}
	return start - g.Count(isRoll)
}
