package aoc

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// ErrCycle is returned by the path counters when the walk runs into a cycle.
var ErrCycle = errors.New("graph has a cycle")

type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddArc adds a directed edge from a to b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// CountPaths returns the number of distinct paths from start to end,
// following arcs. The reachable part of the graph must be acyclic.
func (g *Graph[K]) CountPaths(start, end K) (int, error) {
	return g.CountPathsVia(start, end)
}

// CountPathsVia returns the number of distinct paths from start to end that
// pass through every node in via, in any order. Counts are memoized on
// (node, via nodes seen so far), so large DAGs are fine.
func (g *Graph[K]) CountPathsVia(start, end K, via ...K) (int, error) {
	if len(via) > 63 {
		return 0, fmt.Errorf("too many via nodes: %d", len(via))
	}
	all := uint64(1)<<len(via) - 1

	type state struct {
		n    K
		seen uint64
	}
	memo := make(map[state]int)
	onPath := make(map[state]bool)

	var walk func(n K, seen uint64) (int, error)
	walk = func(n K, seen uint64) (int, error) {
		if i := slices.Index(via, n); i >= 0 {
			seen |= 1 << i
		}
		if n == end {
			if seen == all {
				return 1, nil
			}
			return 0, nil
		}
		s := state{n, seen}
		if v, ok := memo[s]; ok {
			return v, nil
		}
		if onPath[s] {
			return 0, fmt.Errorf("%w through %v", ErrCycle, n)
		}
		onPath[s] = true
		defer delete(onPath, s)

		total := 0
		for next := range g.Edges[n] {
			c, err := walk(next, seen)
			if err != nil {
				return 0, err
			}
			total += c
		}
		memo[s] = total
		return total, nil
	}
	return walk(start, 0)
}

// ReachableNodes returns the nodes reachable from a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}
