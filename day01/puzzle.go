package main

import (
	"fmt"

	aoc "github.com/Pharisaeus/AoC2025"
)

const (
	dialSize  = 100
	dialStart = 50
)

// parseRotations turns lines like L68 or R48 into signed clicks, negative
// meaning towards lower numbers.
func parseRotations(input []byte) []int {
	var out []int
	for _, l := range aoc.Lines(input) {
		if l == "" {
			continue
		}
		n := aoc.Int(l[1:])
		switch l[0] {
		case 'L':
			out = append(out, -n)
		case 'R':
			out = append(out, n)
		default:
			panic(fmt.Sprintf("bad rotation %q", l))
		}
	}
	return out
}

// turn rotates the dial from cur by delta clicks and returns the new position
// and how many times the dial pointed at zero along the way, including where
// it stops.
func turn(cur, delta int) (pos, zeros int) {
	p := cur + delta
	zeros = p / dialSize
	if zeros < 0 {
		zeros = -zeros
	}
	if cur != 0 && p <= 0 {
		zeros++
	}
	return ((p % dialSize) + dialSize) % dialSize, zeros
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func part1(input []byte) int {
	cur, n := dialStart, 0
	for _, d := range parseRotations(input) {
		cur, _ = turn(cur, d)
		if cur == 0 {
			n++
		}
	}
	return n
}

// want=6
func part2(input []byte) int {
	cur, n := dialStart, 0
	for _, d := range parseRotations(input) {
		var z int
		cur, z = turn(cur, d)
		n += z
	}
	return n
}
