// Package aoctest checks puzzle solvers against the samples in their doc
// comments.
package aoctest

import (
	"fmt"
	"testing"

	aoc "github.com/Pharisaeus/AoC2025"
)

// CheckSamples runs every solver on the sample attached to the function of
// the same name in src and compares fmt.Sprint of the result with the
// sample's want= value. Every sample needs a solver and every solver needs a
// sample.
func CheckSamples[T any](t testing.TB, src []byte, solvers map[string]func([]byte) T) {
	t.Helper()
	samples := aoc.Samples(src)
	for _, name := range aoc.SampleNames(samples) {
		s := samples[name]
		f, ok := solvers[name]
		if !ok {
			t.Errorf("sample for %s has no solver", name)
			continue
		}
		if got := fmt.Sprint(f([]byte(s.Input))); got != s.Want {
			t.Errorf("%s(sample) = %s ❌; want %s", name, got, s.Want)
		}
	}
	for name := range solvers {
		if _, ok := samples[name]; !ok {
			t.Errorf("solver %s has no sample", name)
		}
	}
}
