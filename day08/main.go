// Command day08 connects junction boxes into circuits, shortest
// connection first.
package main

import (
	"fmt"
	"os"
	"time"

	aoc "github.com/Pharisaeus/AoC2025"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	aoc.SetupLogging()

	var (
		input       string
		debug       bool
		connections int
	)
	cmd := &cobra.Command{
		Use:           "day08",
		Short:         "Day 8: Playground",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			aoc.SetDebug(debug)
			path := aoc.InputPath(input)
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			log.Debug().Str("input", path).Int("bytes", len(data)).Msg("read input")

			c, err := newClusterer(data)
			if err != nil {
				return err
			}
			t0 := time.Now()
			p1, err := c.LargestGroupsProduct(connections, 3)
			if err != nil {
				return fmt.Errorf("part 1: %w", err)
			}
			log.Debug().Dur("took", time.Since(t0)).Msg("part 1")
			fmt.Fprintln(cmd.OutOrStdout(), p1)

			t0 = time.Now()
			p2, err := c.FinalEdgeProduct()
			if err != nil {
				return fmt.Errorf("part 2: %w", err)
			}
			log.Debug().Dur("took", time.Since(t0)).Msg("part 2")
			fmt.Fprintln(cmd.OutOrStdout(), p2)
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "8.txt", "puzzle input file, relative to $AOC_INPUT_DIR when set")
	cmd.Flags().BoolVar(&debug, "debug", false, "debug logging")
	cmd.Flags().IntVar(&connections, "connections", 1000, "connections to try for part 1")

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("day08 failed")
	}
}
