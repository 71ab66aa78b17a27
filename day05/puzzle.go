package main

import (
	"cmp"
	"slices"
	"strings"

	aoc "github.com/Pharisaeus/AoC2025"
)

// span is an inclusive range of fresh ingredient IDs.
type span struct {
	lo, hi int
}

// merge sorts spans and joins the ones that overlap or touch.
func merge(spans []span) []span {
	spans = slices.Clone(spans)
	slices.SortFunc(spans, func(a, b span) int { return cmp.Compare(a.lo, b.lo) })
	var out []span
	for _, s := range spans {
		if n := len(out); n > 0 && s.lo <= out[n-1].hi+1 {
			out[n-1].hi = max(out[n-1].hi, s.hi)
			continue
		}
		out = append(out, s)
	}
	return out
}

// fresh reports whether id falls in one of the merged spans.
func fresh(merged []span, id int) bool {
	_, found := slices.BinarySearchFunc(merged, id, func(s span, id int) int {
		switch {
		case s.hi < id:
			return -1
		case s.lo > id:
			return 1
		}
		return 0
	})
	return found
}

func parse(input []byte) ([]span, []int) {
	text := strings.ReplaceAll(string(input), "\r\n", "\n")
	rs, ids, ok := strings.Cut(text, "\n\n")
	if !ok {
		panic("missing blank line between ranges and IDs")
	}
	var spans []span
	for _, l := range aoc.Lines([]byte(rs)) {
		v := aoc.SplitInts(l, "-")
		spans = append(spans, span{v[0], v[1]})
	}
	return merge(spans), aoc.Ints(strings.Fields(ids)...)
}

/*
want=3

3-5
10-14
16-20
12-18

1
5
8
11
17
32
*/
func part1(input []byte) int {
	spans, ids := parse(input)
	n := 0
	for _, id := range ids {
		if fresh(spans, id) {
			n++
		}
	}
	return n
}

// want=14
func part2(input []byte) int {
	spans, _ := parse(input)
	n := 0
	for _, s := range spans {
		n += s.hi - s.lo + 1
	}
	return n
}
