package aoc

import (
	"slices"
	"testing"
)

func TestQueueWhile(t *testing.T) {
	q := NewQueue(1)
	var seen []int
	q.While(func(v int) bool {
		seen = append(seen, v)
		if v < 4 {
			q.Push(v * 2)
			q.Push(v*2 + 1)
		}
		return true
	})
	if want := []int{1, 2, 3, 4, 5, 6, 7}; !slices.Equal(seen, want) {
		t.Errorf("visit order = %v, want %v", seen, want)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d after drain", q.Len())
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue reported ok")
	}
}
