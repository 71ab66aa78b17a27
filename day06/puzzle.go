package main

import (
	"fmt"
	"strings"

	aoc "github.com/Pharisaeus/AoC2025"
)

// apply folds nums with the worksheet operator op.
func apply(op byte, nums []int) int {
	switch op {
	case '+':
		return aoc.Sum(nums...)
	case '*':
		return aoc.Product(nums...)
	}
	panic(fmt.Sprintf("unknown operator %q", op))
}

// split separates the number rows from the operator row at the bottom.
func split(input []byte) (rows []string, ops []string) {
	lines := aoc.Lines(input)
	if len(lines) < 2 {
		panic("worksheet needs numbers and operators")
	}
	return lines[:len(lines)-1], strings.Fields(lines[len(lines)-1])
}

/*
want=4277556

123 328  51 64
 45 64  387 23
  6 98  215 314
*   +   *   +
*/
func part1(input []byte) int {
	rows, ops := split(input)
	cols := make([][]int, len(ops))
	for _, r := range rows {
		for i, f := range strings.Fields(r) {
			cols[i] = append(cols[i], aoc.Int(f))
		}
	}
	total := 0
	for i, op := range ops {
		total += apply(op[0], cols[i])
	}
	return total
}

// want=3263827
func part2(input []byte) int {
	rows, ops := split(input)
	// Each column of digits, read top to bottom, is one number. Problems are
	// separated by columns of spaces.
	var problems [][]int
	var cur []int
	for _, col := range aoc.ParseGrid(rows, ' ').Transpose() {
		s := strings.TrimSpace(string(col))
		if s == "" {
			if cur != nil {
				problems = append(problems, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, aoc.Int(s))
	}
	if cur != nil {
		problems = append(problems, cur)
	}
	if len(problems) != len(ops) {
		panic(fmt.Sprintf("%d problems but %d operators", len(problems), len(ops)))
	}
	total := 0
	for i, op := range ops {
		total += apply(op[0], problems[i])
	}
	return total
}
