// Package aoc holds the small helpers shared by the Advent of Code 2025
// solvers: parsing, points, grids, graphs, queues and the doc-comment
// samples the solvers are tested against.
package aoc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

// Sample is the example from a puzzle description, attached to a solver
// function as a doc comment of the form
//
//	/*
//	want=42
//
//	input line 1
//	input line 2
//	*/
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := Sample{
			Want:  m[1],
			Input: m[2],
		}
		return s, true
	}
	var zero Sample
	return zero, false
}

// Samples extracts the samples of every function declared in src, keyed by
// function name. A function whose sample has only a want= line reuses the
// input of the previous sample in the file.
func Samples(src []byte) map[string]Sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "", src, parser.ParseComments)
	if err != nil {
		log.Fatal().Err(err).Msg("parsing source to extract samples")
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.Input = Or(s.Input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.Input
				break
			}
		}
	}
	return samples
}

// SampleNames returns the sorted names of the functions carrying samples.
func SampleNames(samples map[string]Sample) []string {
	names := maps.Keys(samples)
	slices.Sort(names)
	return names
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Lines splits the input into lines, dropping trailing blank lines.
func Lines(in []byte) []string {
	lines := strings.Split(strings.ReplaceAll(string(in), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Parallel calls f on every element of in, each on its own goroutine, and
// returns the results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
