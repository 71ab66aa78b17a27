package aoc

import (
	"slices"
	"testing"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    Sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: Sample{
				Want: "1",
				Input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: Sample{
				Want: "1234",
				Input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=7`,
			want: Sample{
				Want: "7",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %v, want %v", tt.comment, got, tt.want)
		}
	}
}

func TestSamples(t *testing.T) {
	src := []byte(`package p

/*
want=3

a
b
*/
func part1() {}

// want=5
func part2() {}

// no sample here
func helper() {}
`)
	got := Samples(src)
	if len(got) != 2 {
		t.Fatalf("Samples found %d samples, want 2: %v", len(got), got)
	}
	if got["part1"].Want != "3" || got["part1"].Input != "a\nb\n" {
		t.Errorf("part1 sample = %+v", got["part1"])
	}
	if got["part2"].Want != "5" || got["part2"].Input != got["part1"].Input {
		t.Errorf("part2 sample = %+v, want input reused from part1", got["part2"])
	}
	if names := SampleNames(got); !slices.Equal(names, []string{"part1", "part2"}) {
		t.Errorf("SampleNames = %v", names)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n\r\n", []string{"a", "b"}},
		{"", nil},
		{"x", []string{"x"}},
	}
	for _, tt := range tests {
		if got := Lines([]byte(tt.in)); !slices.Equal(got, tt.want) {
			t.Errorf("Lines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParallelMapFold(t *testing.T) {
	got := ParallelMapFold([]int{1, 2, 3, 4}, func(v int) int { return v * v }, func(acc, v int) int { return acc + v }, 0)
	if got != 30 {
		t.Errorf("ParallelMapFold = %d, want 30", got)
	}
}
