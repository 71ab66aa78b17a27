package main

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	pivotTol    = 1e-9
	integralTol = 1e-6
)

// ErrInfeasible is returned when no number of presses reaches the target.
var ErrInfeasible = errors.New("no combination of presses reaches the target")

// echelon reduces a·x = b to row echelon form and drops the rows that became
// zero, so that the remaining system has full row rank. An inconsistent
// system returns ErrInfeasible.
func echelon(a [][]float64, b []float64) ([][]float64, []float64, error) {
	m := len(a)
	if m == 0 {
		return nil, nil, nil
	}
	n := len(a[0])
	rows := make([][]float64, m)
	for i := range a {
		rows[i] = append(slices.Clone(a[i]), b[i])
	}
	r := 0
	for c := 0; c < n && r < m; c++ {
		p := r
		for i := r + 1; i < m; i++ {
			if math.Abs(rows[i][c]) > math.Abs(rows[p][c]) {
				p = i
			}
		}
		if math.Abs(rows[p][c]) < pivotTol {
			continue
		}
		rows[r], rows[p] = rows[p], rows[r]
		for i := r + 1; i < m; i++ {
			f := rows[i][c] / rows[r][c]
			if f == 0 {
				continue
			}
			for k := c; k <= n; k++ {
				rows[i][k] -= f * rows[r][k]
			}
		}
		r++
	}
	for i := r; i < m; i++ {
		if math.Abs(rows[i][n]) > integralTol {
			return nil, nil, ErrInfeasible
		}
	}
	outA := make([][]float64, r)
	outB := make([]float64, r)
	for i := 0; i < r; i++ {
		outA[i], outB[i] = rows[i][:n], rows[i][n]
	}
	return outA, outB, nil
}

// bound restricts variable v to x <= at (upper) or x >= at.
type bound struct {
	v     int
	upper bool
	at    float64
}

// ilp minimises the sum of n non-negative integer variables subject to
// a·x = b, where a has full row rank.
type ilp struct {
	a [][]float64
	b []float64
	n int

	best  int
	found bool
	nodes int
}

// relax solves the linear relaxation under bounds. Every bound becomes an
// extra row with its own slack column, which keeps the rows independent.
func (p *ilp) relax(bounds []bound) (float64, []float64, error) {
	rows, cols := len(p.a)+len(bounds), p.n+len(bounds)
	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	for i, row := range p.a {
		for j, v := range row {
			a.Set(i, j, v)
		}
		b[i] = p.b[i]
	}
	for k, bd := range bounds {
		i := len(p.a) + k
		a.Set(i, bd.v, 1)
		if bd.upper {
			a.Set(i, p.n+k, 1)
		} else {
			a.Set(i, p.n+k, -1)
		}
		b[i] = bd.at
	}
	c := make([]float64, cols)
	for j := 0; j < p.n; j++ {
		c[j] = 1
	}
	return lp.Simplex(c, a, b, 1e-10, nil)
}

func (p *ilp) search(bounds []bound) error {
	p.nodes++
	f, x, err := p.relax(bounds)
	if errors.Is(err, lp.ErrInfeasible) {
		return nil
	}
	if err != nil {
		return err
	}
	if p.found && math.Ceil(f-integralTol) >= float64(p.best) {
		return nil
	}
	for j := 0; j < p.n; j++ {
		fl := math.Floor(x[j])
		if frac := x[j] - fl; frac > integralTol && frac < 1-integralTol {
			if err := p.search(append(slices.Clip(bounds), bound{v: j, upper: true, at: fl})); err != nil {
				return err
			}
			return p.search(append(slices.Clip(bounds), bound{v: j, at: fl + 1}))
		}
	}
	sum := 0
	for j := 0; j < p.n; j++ {
		sum += int(math.Round(x[j]))
	}
	if !p.found || sum < p.best {
		p.best, p.found = sum, true
	}
	return nil
}

// minIntegerSum returns the smallest sum of non-negative integers x with
// a·x = b.
func minIntegerSum(a [][]float64, b []float64, n int) (sum, nodes int, err error) {
	a, b, err = echelon(a, b)
	if err != nil {
		return 0, 0, err
	}
	if len(a) == 0 {
		return 0, 0, nil
	}
	p := &ilp{a: a, b: b, n: n}
	if err := p.search(nil); err != nil {
		return 0, p.nodes, err
	}
	if !p.found {
		return 0, p.nodes, ErrInfeasible
	}
	return p.best, p.nodes, nil
}
