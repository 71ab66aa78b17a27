package main

import (
	"fmt"

	aoc "github.com/Pharisaeus/AoC2025"
)

func parseBanks(input []byte) [][]int {
	var banks [][]int
	for _, l := range aoc.Lines(input) {
		if l == "" {
			continue
		}
		banks = append(banks, aoc.Digits(l))
	}
	return banks
}

// maxJoltage returns the largest number formed by switching on n batteries
// of bank while keeping their order.
func maxJoltage(bank []int, n int) int {
	if len(bank) < n {
		panic(fmt.Sprintf("bank of %d batteries cannot supply %d", len(bank), n))
	}
	v, start := 0, 0
	for need := n; need > 0; need-- {
		best := start
		for i := start + 1; i < len(bank)-need+1; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		v = v*10 + bank[best]
		start = best + 1
	}
	return v
}

func totalJoltage(input []byte, n int) int {
	sum := 0
	for _, b := range parseBanks(input) {
		sum += maxJoltage(b, n)
	}
	return sum
}

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func part1(input []byte) int {
	return totalJoltage(input, 2)
}

// want=3121910778619
func part2(input []byte) int {
	return totalJoltage(input, 12)
}
