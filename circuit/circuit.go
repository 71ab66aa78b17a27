// Package circuit joins junction boxes into circuits.
//
// Every pair of boxes is a candidate connection. Connections are applied
// shortest first over a disjoint-set forest until either a caller-supplied
// number of connections has been tried or every box sits in one circuit.
package circuit

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	aoc "github.com/Pharisaeus/AoC2025"
	"github.com/rs/zerolog"
)

// Unbounded is a limit that lets Connect run until a single circuit remains.
const Unbounded = math.MaxInt

// MaxCoord is the largest coordinate ParsePoints accepts. Squared distances
// between such points stay well inside int64.
const MaxCoord = 1 << 30

var (
	ErrNoPoints     = errors.New("circuit: no points")
	ErrInvalidLimit = errors.New("circuit: limit must be positive")
	ErrNoEdge       = errors.New("circuit: no connection was processed")
	ErrTooFewGroups = errors.New("circuit: too few circuits")
	ErrMalformed    = errors.New("circuit: malformed point")
)

// Point is a junction box position.
type Point = aoc.Pt3[int]

// Edge is a candidate connection between the boxes at indexes I < J.
type Edge struct {
	I, J   int
	A, B   Point
	DistSq int
}

// Dist returns the euclidean length of the connection.
func (e Edge) Dist() float64 {
	return math.Sqrt(float64(e.DistSq))
}

func (e Edge) String() string {
	return fmt.Sprintf("%v-%v", e.A, e.B)
}

// Clusterer holds the boxes and every pairwise connection, shortest first.
// It is immutable after New; each Connect call works on fresh state.
type Clusterer struct {
	points []Point
	edges  []Edge
	logger zerolog.Logger
}

// New returns a Clusterer for points. Boxes are identified by their index,
// so two boxes at the same position are still two boxes.
//
// Connections of equal length keep their construction order: by I, then
// by J.
func New(points []Point) (*Clusterer, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	n := len(points)
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{
				I:      i,
				J:      j,
				A:      points[i],
				B:      points[j],
				DistSq: points[i].DistSq(points[j]),
			})
		}
	}
	slices.SortStableFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.DistSq, b.DistSq)
	})
	return &Clusterer{
		points: slices.Clone(points),
		edges:  edges,
		logger: zerolog.Nop(),
	}, nil
}

// WithLogger sets the logger Connect reports to.
func (c *Clusterer) WithLogger(l zerolog.Logger) *Clusterer {
	c.logger = l
	return c
}

// Points returns a copy of the boxes in input order.
func (c *Clusterer) Points() []Point { return slices.Clone(c.points) }

// Edges returns a copy of every connection, shortest first.
func (c *Clusterer) Edges() []Edge { return slices.Clone(c.edges) }

// Result is the outcome of one Connect call.
type Result struct {
	// Groups maps the root index of each circuit to its members, in the
	// order they joined.
	Groups map[int][]int
	// Last is the connection at which processing stopped.
	Last Edge
	// Processed is the number of connections tried, merging or not.
	Processed int
}

// Sizes returns the circuit sizes, largest first.
func (r Result) Sizes() []int {
	sizes := make([]int, 0, len(r.Groups))
	for _, g := range r.Groups {
		sizes = append(sizes, len(g))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes
}

// Members returns the members of the circuit rooted at root.
func (r Result) Members(root int) []int {
	return r.Groups[root]
}

// forest is a disjoint-set forest over box indexes.
type forest []int

func newForest(n int) forest {
	f := make(forest, n)
	for i := range f {
		f[i] = i
	}
	return f
}

// find returns the root of x and points every index on the way directly
// at it.
func (f forest) find(x int) int {
	root := x
	for f[root] != root {
		root = f[root]
	}
	for f[x] != root {
		x, f[x] = f[x], root
	}
	return root
}

// Connect applies connections shortest first. It stops once limit
// connections have been tried or a single circuit remains. A connection
// between boxes already in the same circuit changes nothing but still
// counts toward limit.
func (c *Clusterer) Connect(limit int) (Result, error) {
	if limit <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	f := newForest(len(c.points))
	groups := make(map[int][]int, len(c.points))
	for i := range c.points {
		groups[i] = []int{i}
	}

	var (
		last      Edge
		processed int
	)
	for _, e := range c.edges {
		if processed >= limit || len(groups) == 1 {
			break
		}
		ra, rb := f.find(e.I), f.find(e.J)
		if ra != rb {
			groups[ra] = append(groups[ra], groups[rb]...)
			delete(groups, rb)
			f[e.I] = ra
			f[e.J] = ra
			f[rb] = ra
		}
		last = e
		processed++
	}
	c.logger.Debug().
		Int("limit", limit).
		Int("processed", processed).
		Int("circuits", len(groups)).
		Msg("connected")
	if processed == 0 {
		return Result{}, ErrNoEdge
	}
	return Result{
		Groups:    groups,
		Last:      last,
		Processed: processed,
	}, nil
}

// LargestGroupsProduct connects up to limit connections and returns the
// product of the sizes of the k largest circuits.
func (c *Clusterer) LargestGroupsProduct(limit, k int) (int, error) {
	r, err := c.Connect(limit)
	if err != nil {
		return 0, err
	}
	sizes := r.Sizes()
	if len(sizes) < k {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrTooFewGroups, len(sizes), k)
	}
	return aoc.Product(sizes[:k]...), nil
}

// FinalEdgeProduct connects until a single circuit remains and returns the
// product of the X coordinates of the connection that completed it.
func (c *Clusterer) FinalEdgeProduct() (int, error) {
	r, err := c.Connect(Unbounded)
	if err != nil {
		return 0, err
	}
	return r.Last.A.X * r.Last.B.X, nil
}

// ParsePoints reads one "x,y,z" box per line. Blank lines are skipped.
// Coordinates must lie in [0, MaxCoord].
func ParsePoints(r io.Reader) ([]Point, error) {
	var pts []Point
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		p, err := parsePoint(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

func parsePoint(s string) (Point, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: %q has %d fields, want 3", ErrMalformed, s, len(fields))
	}
	var v [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
		}
		if n < 0 || n > MaxCoord {
			return Point{}, fmt.Errorf("%w: %q: coordinate %d outside [0, %d]", ErrMalformed, s, n, MaxCoord)
		}
		v[i] = n
	}
	return Point{X: v[0], Y: v[1], Z: v[2]}, nil
}
