// Command day02 sums the product IDs made of a repeated digit block.
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
		input string
		debug bool
	)
	cmd := &cobra.Command{
		Use:           "day02",
		Short:         "Day 2: Gift Shop",
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

			t0 := time.Now()
			p1 := part1(data)
			log.Debug().Dur("took", time.Since(t0)).Msg("part 1")
			fmt.Fprintln(cmd.OutOrStdout(), p1)

			t0 = time.Now()
			p2 := part2(data)
			log.Debug().Dur("took", time.Since(t0)).Msg("part 2")
			fmt.Fprintln(cmd.OutOrStdout(), p2)
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "2.txt", "puzzle input file, relative to $AOC_INPUT_DIR when set")
	cmd.Flags().BoolVar(&debug, "debug", false, "debug logging")

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("day02 failed")
	}
}
