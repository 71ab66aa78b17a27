package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		panic(fmt.Sprintf("not a digit: %q", r))
	}
	return int(r - '0')
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, 1 for none.
func Product[T Number](nums ...T) T {
	prod := T(1)
	for _, v := range nums {
		prod *= v
	}
	return prod
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// SplitInts splits s around sep and parses every field.
func SplitInts(s, sep string) []int {
	return Ints(strings.Split(strings.TrimSpace(s), sep)...)
}
