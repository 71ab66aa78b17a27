package main

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	aoc "github.com/Pharisaeus/AoC2025"
	"github.com/peterstace/simplefeatures/geom"
	"github.com/rs/zerolog/log"
)

func parseTiles(input []byte) []aoc.Pt {
	var pts []aoc.Pt
	for _, l := range aoc.Lines(input) {
		if l == "" {
			continue
		}
		v := aoc.SplitInts(l, ",")
		if len(v) != 2 {
			panic(fmt.Sprintf("bad tile %q", l))
		}
		pts = append(pts, aoc.Pt{X: v[0], Y: v[1]})
	}
	return pts
}

// rect is the axis-aligned rectangle spanned by two red tiles.
type rect struct {
	lo, hi aoc.Pt
}

func span(a, b aoc.Pt) rect {
	return rect{
		lo: aoc.Pt{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		hi: aoc.Pt{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// tiles is the number of tiles covered, edges included.
func (r rect) tiles() int {
	return (r.hi.X - r.lo.X + 1) * (r.hi.Y - r.lo.Y + 1)
}

func (r rect) degenerate() bool {
	return r.lo.X == r.hi.X || r.lo.Y == r.hi.Y
}

func (r rect) strictlyContains(p aoc.Pt) bool {
	return r.lo.X < p.X && p.X < r.hi.X && r.lo.Y < p.Y && p.Y < r.hi.Y
}

func (r rect) wkt() string {
	return fmt.Sprintf("POLYGON((%d %d,%d %d,%d %d,%d %d,%d %d))",
		r.lo.X, r.lo.Y, r.hi.X, r.lo.Y, r.hi.X, r.hi.Y, r.lo.X, r.hi.Y, r.lo.X, r.lo.Y)
}

func polygonWKT(pts []aoc.Pt) string {
	coords := make([]string, 0, len(pts)+1)
	for _, p := range pts {
		coords = append(coords, fmt.Sprintf("%d %d", p.X, p.Y))
	}
	coords = append(coords, coords[0])
	return "POLYGON((" + strings.Join(coords, ",") + "))"
}

// rects returns every rectangle with red opposite corners, largest first.
func rects(pts []aoc.Pt) []rect {
	var out []rect
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			out = append(out, span(pts[i], pts[j]))
		}
	}
	slices.SortStableFunc(out, func(a, b rect) int { return cmp.Compare(b.tiles(), a.tiles()) })
	return out
}

/*
want=50

7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3
*/
func part1(input []byte) int {
	rs := rects(parseTiles(input))
	if len(rs) == 0 {
		return 0
	}
	return rs[0].tiles()
}

// want=24
func part2(input []byte) int {
	pts := parseTiles(input)
	if len(pts) < 3 {
		return 0
	}
	floor := aoc.MustGet(geom.UnmarshalWKT(polygonWKT(pts)))
	checked := 0
	for _, r := range rects(pts) {
		if r.degenerate() || slices.ContainsFunc(pts, r.strictlyContains) {
			continue
		}
		checked++
		ok := aoc.MustGet(geom.Contains(floor, aoc.MustGet(geom.UnmarshalWKT(r.wkt()))))
		if ok {
			log.Debug().Int("checked", checked).Msg("found largest enclosed rectangle")
			return r.tiles()
		}
	}
	return 0
}
