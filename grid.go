package aoc

import (
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid turns lines into a rectangular byte grid. Lines shorter than the
// longest one are padded on the right with pad.
func ParseGrid(lines []string, pad byte) Grid[byte] {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	g := MakeGrid[byte](width, len(lines))
	for y, l := range lines {
		n := copy(g[y], l)
		for x := n; x < width; x++ {
			g[y][x] = pad
		}
	}
	return g
}

// Clone returns a deep copy of the grid.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// ForEach calls f for every cell, row by row.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Count returns the number of cells for which f returns true.
func (g Grid[T]) Count(f func(T) bool) int {
	n := 0
	g.ForEach(func(_ Pt, v T) {
		if f(v) {
			n++
		}
	})
	return n
}

var hashers map[reflect.Type]any // of func(*Grid[T]) deephash.Sum

func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

// Transpose returns the grid with rows and columns swapped, so that
// out[x] is column x of g.
func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

// DistSq returns the squared euclidean distance between a and b.
func (a Pt3[T]) DistSq(b Pt3[T]) T {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}
