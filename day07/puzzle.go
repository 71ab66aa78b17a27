package main

import (
	"fmt"

	aoc "github.com/Pharisaeus/AoC2025"
)

const (
	emitter  = 'S'
	splitter = '^'
	space    = '.'
)

// trace sends a beam down from the source and returns how many splitters it
// hits and how many timelines reach the bottom or leave through a side.
// Beams sharing a column merge for the split count but keep their timeline
// counts.
func trace(g aoc.Grid[byte]) (splits, timelines int) {
	size := g.Size()
	beams := make([]int, size.X)
	started := false
	for y, row := range g {
		next := make([]int, size.X)
		for x, c := range row {
			switch c {
			case emitter:
				if started {
					panic(fmt.Sprintf("second source at %d,%d", x, y))
				}
				started = true
				next[x]++
			case splitter:
				if beams[x] == 0 {
					continue
				}
				splits++
				for _, nx := range []int{x - 1, x + 1} {
					if nx < 0 || nx >= size.X {
						timelines += beams[x]
						continue
					}
					next[nx] += beams[x]
				}
			case space:
				next[x] += beams[x]
			default:
				panic(fmt.Sprintf("bad cell %q at %d,%d", c, x, y))
			}
		}
		beams = next
	}
	if !started {
		panic("no source")
	}
	return splits, timelines + aoc.Sum(beams...)
}

/*
want=21

.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
*/
func part1(input []byte) int {
	splits, _ := trace(aoc.ParseGrid(aoc.Lines(input), space))
	return splits
}

// want=40
func part2(input []byte) int {
	_, timelines := trace(aoc.ParseGrid(aoc.Lines(input), space))
	return timelines
}
