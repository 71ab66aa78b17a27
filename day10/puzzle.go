package main

import (
	"fmt"
	"slices"
	"strings"

	aoc "github.com/Pharisaeus/AoC2025"
	"github.com/rs/zerolog/log"
)

type machine struct {
	lights  int // bit i set when light i must be on
	size    int
	buttons [][]int
	joltage []int
}

func inner(f string, l, r byte) (string, bool) {
	if len(f) < 2 || f[0] != l || f[len(f)-1] != r {
		return "", false
	}
	return f[1 : len(f)-1], true
}

func parseMachine(line string) machine {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		panic(fmt.Sprintf("bad machine %q", line))
	}
	var m machine
	lights, ok := inner(fields[0], '[', ']')
	if !ok {
		panic(fmt.Sprintf("bad lights %q", fields[0]))
	}
	m.size = len(lights)
	for i, c := range lights {
		switch c {
		case '#':
			m.lights |= 1 << i
		case '.':
		default:
			panic(fmt.Sprintf("bad light %q", c))
		}
	}
	for _, f := range fields[1:] {
		if s, ok := inner(f, '(', ')'); ok {
			var btn []int
			if s != "" {
				btn = aoc.SplitInts(s, ",")
			}
			for _, i := range btn {
				if i < 0 || i >= m.size {
					panic(fmt.Sprintf("button %s wires missing light %d", f, i))
				}
			}
			m.buttons = append(m.buttons, btn)
			continue
		}
		if s, ok := inner(f, '{', '}'); ok {
			m.joltage = aoc.SplitInts(s, ",")
			continue
		}
		panic(fmt.Sprintf("bad field %q", f))
	}
	if m.joltage != nil && len(m.joltage) != m.size {
		panic(fmt.Sprintf("%d joltages for %d lights", len(m.joltage), m.size))
	}
	return m
}

func parseMachines(input []byte) []machine {
	var out []machine
	for _, l := range aoc.Lines(input) {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, parseMachine(l))
	}
	return out
}

func mask(btn []int) int {
	m := 0
	for _, i := range btn {
		m ^= 1 << i
	}
	return m
}

// fewestLightPresses searches light states breadth first; pressing a button
// twice undoes it, so each state needs visiting once.
func fewestLightPresses(m machine) (int, error) {
	type state struct{ lights, presses int }
	seen := map[int]bool{0: true}
	q := aoc.NewQueue(state{})
	best := -1
	q.While(func(s state) bool {
		if s.lights == m.lights {
			best = s.presses
			return false
		}
		for _, b := range m.buttons {
			next := s.lights ^ mask(b)
			if !seen[next] {
				seen[next] = true
				q.Push(state{next, s.presses + 1})
			}
		}
		return true
	})
	if best < 0 {
		return 0, ErrInfeasible
	}
	return best, nil
}

// fewestJoltagePresses finds the fewest presses that raise every counter to
// its joltage. Press counts x satisfy A·x = joltage, where A[i][j] is 1 when
// button j feeds counter i.
func fewestJoltagePresses(m machine) (int, error) {
	buttons := slices.DeleteFunc(slices.Clone(m.buttons), func(b []int) bool { return len(b) == 0 })
	a := make([][]float64, len(m.joltage))
	b := make([]float64, len(m.joltage))
	for i, want := range m.joltage {
		a[i] = make([]float64, len(buttons))
		for j, btn := range buttons {
			if slices.Contains(btn, i) {
				a[i][j] = 1
			}
		}
		b[i] = float64(want)
	}
	sum, nodes, err := minIntegerSum(a, b, len(buttons))
	log.Debug().Int("buttons", len(buttons)).Int("nodes", nodes).Int("presses", sum).Err(err).Msg("joltage")
	return sum, err
}

/*
want=7

[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}
*/
func part1(input []byte) int {
	n := 0
	for _, m := range parseMachines(input) {
		n += aoc.MustGet(fewestLightPresses(m))
	}
	return n
}

// want=33
func part2(input []byte) int {
	return aoc.Sum(aoc.Parallel(parseMachines(input), func(m machine) int {
		return aoc.MustGet(fewestJoltagePresses(m))
	})...)
}
