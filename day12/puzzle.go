package main

import (
	"errors"
	"fmt"
	"strings"

	aoc "github.com/Pharisaeus/AoC2025"
	"github.com/rs/zerolog/log"
)

// ErrNeedsPacking is returned for a region that neither trivially fits its
// presents nor trivially lacks the room for them.
var ErrNeedsPacking = errors.New("region needs real packing")

type region struct {
	w, h   int
	counts []int
}

// whole is the area of the region usable by whole 3x3 blocks.
func (r region) whole() int {
	return (r.w - r.w%3) * (r.h - r.h%3)
}

// fits decides whether the presents fit under the tree. Every present fits
// in a 3x3 block, so a region with a block per present fits; one whose
// block area is below the cells the presents cover does not.
func (r region) fits(cells []int) (bool, error) {
	need, blocks := 0, 0
	for i, c := range r.counts {
		need += c * cells[i]
		blocks += c
	}
	switch area := r.whole(); {
	case area >= 9*blocks:
		return true, nil
	case area < need:
		return false, nil
	default:
		return false, fmt.Errorf("%dx%d: %d cells in %d: %w", r.w, r.h, need, area, ErrNeedsPacking)
	}
}

func parseFarm(input []byte) (cells []int, regions []region) {
	text := strings.ReplaceAll(string(input), "\r\n", "\n")
	for _, block := range strings.Split(strings.TrimSpace(text), "\n\n") {
		lines := aoc.Lines([]byte(block))
		if strings.HasSuffix(lines[0], ":") {
			i := aoc.Int(strings.TrimSuffix(lines[0], ":"))
			if i != len(cells) {
				panic(fmt.Sprintf("shape %d out of order", i))
			}
			cells = append(cells, strings.Count(block[len(lines[0]):], "#"))
			continue
		}
		for _, l := range lines {
			dim, counts, ok := strings.Cut(l, ":")
			if !ok {
				panic(fmt.Sprintf("bad region %q", l))
			}
			wh := aoc.SplitInts(dim, "x")
			if len(wh) != 2 {
				panic(fmt.Sprintf("bad region size %q", dim))
			}
			r := region{w: wh[0], h: wh[1], counts: aoc.Ints(strings.Fields(counts)...)}
			if len(r.counts) > len(cells) {
				panic(fmt.Sprintf("region %q lists %d shapes, have %d", l, len(r.counts), len(cells)))
			}
			regions = append(regions, r)
		}
	}
	return cells, regions
}

func countFitting(input []byte) (int, error) {
	cells, regions := parseFarm(input)
	n := 0
	for _, r := range regions {
		ok, err := r.fits(cells)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	log.Debug().Int("shapes", len(cells)).Int("regions", len(regions)).Int("fitting", n).Msg("packed")
	return n, nil
}

/*
want=2

0:
###
##.
##.

1:
###
.#.
###

4x4: 1 1
6x6: 1 1
7x3: 2 0
*/
func part1(input []byte) int {
	return aoc.MustGet(countFitting(input))
}
