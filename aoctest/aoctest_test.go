package aoctest

import (
	"strings"
	"testing"
)

var src = []byte(`package p

/*
want=6

1
2
3
*/
func sum() {}

// want=3
func count() {}
`)

type recorder struct {
	testing.TB
	errors []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, format)
}

func lines(in []byte) []string {
	return strings.Fields(string(in))
}

func TestCheckSamples(t *testing.T) {
	CheckSamples(t, src, map[string]func([]byte) int{
		"sum": func(in []byte) int {
			n := 0
			for _, l := range lines(in) {
				n += int(l[0] - '0')
			}
			return n
		},
		"count": func(in []byte) int { return len(lines(in)) },
	})
}

func TestCheckSamplesReportsMismatches(t *testing.T) {
	r := &recorder{TB: t}
	CheckSamples(r, src, map[string]func([]byte) int{
		"sum":   func([]byte) int { return 0 },
		"other": func([]byte) int { return 0 },
	})
	// sum is wrong, count has no solver, other has no sample.
	if len(r.errors) != 3 {
		t.Errorf("got %d errors, want 3: %q", len(r.errors), r.errors)
	}
}
