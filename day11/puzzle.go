package main

import (
	"fmt"
	"strings"

	aoc "github.com/Pharisaeus/AoC2025"
	"github.com/rs/zerolog/log"
)

func parseDevices(input []byte) *aoc.Graph[string] {
	var g aoc.Graph[string]
	for _, l := range aoc.Lines(input) {
		if strings.TrimSpace(l) == "" {
			continue
		}
		from, outs, ok := strings.Cut(l, ":")
		if !ok {
			panic(fmt.Sprintf("bad device %q", l))
		}
		from = strings.TrimSpace(from)
		g.AddNode(from)
		for _, to := range strings.Fields(outs) {
			g.AddArc(from, to, 1)
		}
	}
	return &g
}

func countPaths(input []byte, start string, via ...string) (int, error) {
	g := parseDevices(input)
	if !g.Nodes[start] {
		return 0, fmt.Errorf("no device %q", start)
	}
	log.Debug().Str("from", start).Int("reachable", len(g.ReachableNodes(start))).Int("devices", len(g.Nodes)).Msg("device graph")
	return g.CountPathsVia(start, "out", via...)
}

/*
want=5

aaa: you hhh
you: bbb ccc
bbb: ddd eee
ccc: ddd eee fff
ddd: ggg
eee: out
fff: out
ggg: out
hhh: ccc fff iii
iii: out
*/
func part1(input []byte) int {
	return aoc.MustGet(countPaths(input, "you"))
}

/*
want=2

svr: aaa bbb
aaa: fft
fft: ccc
bbb: tty
tty: ccc
ccc: ddd eee
ddd: hub
hub: fff
eee: dac
dac: fff
fff: ggg hhh
ggg: out
hhh: out
*/
func part2(input []byte) int {
	return aoc.MustGet(countPaths(input, "svr", "dac", "fft"))
}
