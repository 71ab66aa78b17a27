package main

import (
	"strconv"
	"strings"

	aoc "github.com/Pharisaeus/AoC2025"
)

type idRange struct {
	lo, hi int
}

func parseRanges(input []byte) []idRange {
	var out []idRange
	for _, f := range strings.Split(strings.TrimSpace(string(input)), ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v := aoc.SplitInts(f, "-")
		if len(v) != 2 {
			panic("bad range " + f)
		}
		out = append(out, idRange{v[0], v[1]})
	}
	return out
}

// repeats reports whether s is some block of digits repeated exactly k times.
func repeats(s string, k int) bool {
	if k < 2 || len(s)%k != 0 {
		return false
	}
	n := len(s) / k
	return strings.Repeat(s[:n], k) == s
}

func twice(id string) bool {
	return repeats(id, 2)
}

func atLeastTwice(id string) bool {
	for k := 2; k <= len(id); k++ {
		if repeats(id, k) {
			return true
		}
	}
	return false
}

// sumInvalid adds up the IDs in every range that invalid rejects. Ranges are
// checked concurrently.
func sumInvalid(rs []idRange, invalid func(string) bool) int {
	return aoc.ParallelMapFold(rs, func(r idRange) int {
		sum := 0
		for id := r.lo; id <= r.hi; id++ {
			if invalid(strconv.Itoa(id)) {
				sum += id
			}
		}
		return sum
	}, func(acc, v int) int { return acc + v }, 0)
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func part1(input []byte) int {
	return sumInvalid(parseRanges(input), twice)
}

// want=4174379265
func part2(input []byte) int {
	return sumInvalid(parseRanges(input), atLeastTwice)
}
