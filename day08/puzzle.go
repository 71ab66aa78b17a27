package main

import (
	"bytes"

	aoc "github.com/Pharisaeus/AoC2025"
	"github.com/Pharisaeus/AoC2025/circuit"
	"github.com/rs/zerolog/log"
)

func newClusterer(input []byte) (*circuit.Clusterer, error) {
	pts, err := circuit.ParsePoints(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	c, err := circuit.New(pts)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("boxes", len(pts)).Int("connections", len(c.Edges())).Msg("built clusterer")
	return c.WithLogger(log.Logger), nil
}

/*
want=40

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func part1(input []byte, connections int) int {
	c := aoc.MustGet(newClusterer(input))
	return aoc.MustGet(c.LargestGroupsProduct(connections, 3))
}

// want=25272
func part2(input []byte) int {
	c := aoc.MustGet(newClusterer(input))
	return aoc.MustGet(c.FinalEdgeProduct())
}
